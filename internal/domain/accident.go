package domain

import (
	"context"
	"math"
	"time"
)

// Column names used by the FARS accident files.
const (
	ColState     = "STATE"
	ColMonth     = "MONTH"
	ColLatitude  = "LATITUDE"
	ColLongitude = "LONGITUD"
)

// Sentinel thresholds: values above these mean "unknown".
const (
	LatitudeSentinel  = 90.0
	LongitudeSentinel = 900.0
)

// Accident is one crash row. Latitude and Longitude are NaN when missing.
type Accident struct {
	State     int
	Month     int
	Latitude  float64
	Longitude float64

	// Values holds the raw row in the order of Dataset.Columns.
	Values []string
}

// Dataset is a parsed accident file.
type Dataset struct {
	Path      string
	Columns   []string
	Accidents []Accident
}

// Len returns the number of rows.
func (d *Dataset) Len() int { return len(d.Accidents) }

// ColumnIndex returns the position of a column, or -1 if the file lacks it.
func (d *Dataset) ColumnIndex(name string) int {
	for i, c := range d.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Value returns the raw value of column name in row i.
func (d *Dataset) Value(i int, name string) (string, bool) {
	if i < 0 || i >= len(d.Accidents) {
		return "", false
	}
	idx := d.ColumnIndex(name)
	if idx < 0 || idx >= len(d.Accidents[i].Values) {
		return "", false
	}
	return d.Accidents[i].Values[idx], true
}

// HasState reports whether state occurs anywhere in the STATE column.
func (d *Dataset) HasState(state int) bool {
	for _, a := range d.Accidents {
		if a.State == state {
			return true
		}
	}
	return false
}

// FilterState returns the accidents recorded for state, in file order.
func (d *Dataset) FilterState(state int) []Accident {
	var out []Accident
	for _, a := range d.Accidents {
		if a.State == state {
			out = append(out, a)
		}
	}
	return out
}

// YearDataset is the MONTH projection of one year's file, tagged with the
// requested year.
type YearDataset struct {
	Year     int
	Months   []int
	LoadedAt time.Time
}

// NewYearDataset projects d to its MONTH column and tags it with year.
// The year is the one requested, not one derived from the data.
func NewYearDataset(year int, d *Dataset, loadedAt time.Time) *YearDataset {
	months := make([]int, len(d.Accidents))
	for i, a := range d.Accidents {
		months[i] = a.Month
	}
	return &YearDataset{Year: year, Months: months, LoadedAt: loadedAt}
}

// YearResult is the outcome of loading a single year. Exactly one of Data and
// Err is set.
type YearResult struct {
	Year int
	Data *YearDataset
	Err  error
}

// OK reports whether the year loaded.
func (r YearResult) OK() bool { return r.Err == nil && r.Data != nil }

// Point is a (longitude, latitude) pair; either may be NaN.
type Point struct {
	Lon float64
	Lat float64
}

// Missing reports whether either coordinate is unknown.
func (p Point) Missing() bool { return math.IsNaN(p.Lon) || math.IsNaN(p.Lat) }

// StatePlot is what gets drawn for one state and year. Points keeps every
// filtered row, including ones with missing coordinates; renderers skip those.
type StatePlot struct {
	State  int
	Year   int
	Points []Point
	Bounds Bounds
}

// MapRenderer draws a state plot: a map outline scaled to the plot bounds with
// one marker per point.
type MapRenderer interface {
	RenderStateMap(ctx context.Context, plot StatePlot) error
}
