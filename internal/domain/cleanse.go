package domain

import "math"

// CleanseCoordinates converts accidents to plot points, replacing FARS
// sentinel coordinates with NaN. Latitude and longitude are checked
// independently: an unknown longitude leaves a known latitude in place.
func CleanseCoordinates(accidents []Accident) []Point {
	points := make([]Point, len(accidents))
	for i, a := range accidents {
		points[i] = Point{
			Lon: cleanse(a.Longitude, LongitudeSentinel),
			Lat: cleanse(a.Latitude, LatitudeSentinel),
		}
	}
	return points
}

func cleanse(v, sentinel float64) float64 {
	if math.IsNaN(v) || v > sentinel {
		return math.NaN()
	}
	return v
}

// Bounds is the axis range of a plot in degrees.
type Bounds struct {
	MinLon, MaxLon float64
	MinLat, MaxLat float64
}

// Empty reports whether either axis has no known values.
func (b Bounds) Empty() bool {
	return math.IsInf(b.MinLon, 1) || math.IsInf(b.MinLat, 1)
}

// Contains reports whether p lies inside b. Missing points are never inside.
func (b Bounds) Contains(p Point) bool {
	if p.Missing() {
		return false
	}
	return p.Lon >= b.MinLon && p.Lon <= b.MaxLon && p.Lat >= b.MinLat && p.Lat <= b.MaxLat
}

// Overlaps reports whether the rectangle [minLon,maxLon]×[minLat,maxLat]
// intersects b.
func (b Bounds) Overlaps(minLon, minLat, maxLon, maxLat float64) bool {
	return minLon <= b.MaxLon && maxLon >= b.MinLon && minLat <= b.MaxLat && maxLat >= b.MinLat
}

// ComputeBounds returns the range of the known coordinates. Each axis skips
// its own NaNs, so a row with an unknown longitude still widens the latitude
// range.
func ComputeBounds(points []Point) Bounds {
	b := Bounds{
		MinLon: math.Inf(1), MaxLon: math.Inf(-1),
		MinLat: math.Inf(1), MaxLat: math.Inf(-1),
	}
	for _, p := range points {
		if !math.IsNaN(p.Lon) {
			b.MinLon = math.Min(b.MinLon, p.Lon)
			b.MaxLon = math.Max(b.MaxLon, p.Lon)
		}
		if !math.IsNaN(p.Lat) {
			b.MinLat = math.Min(b.MinLat, p.Lat)
			b.MaxLat = math.Max(b.MaxLat, p.Lat)
		}
	}
	return b
}
