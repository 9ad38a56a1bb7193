package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanseCoordinates(t *testing.T) {
	accidents := []Accident{
		{State: 1, Latitude: 32.5, Longitude: -86.9},
		{State: 1, Latitude: 40, Longitude: 999.9999},
		{State: 1, Latitude: 99.9999, Longitude: -87.1},
		{State: 1, Latitude: 88.8888, Longitude: 888.8888},
		{State: 1, Latitude: math.NaN(), Longitude: math.NaN()},
	}

	points := CleanseCoordinates(accidents)
	require.Len(t, points, len(accidents))

	assert.Equal(t, Point{Lon: -86.9, Lat: 32.5}, points[0])

	assert.True(t, math.IsNaN(points[1].Lon), "longitude sentinel should be missing")
	assert.Equal(t, 40.0, points[1].Lat, "latitude should be retained")

	assert.Equal(t, -87.1, points[2].Lon)
	assert.True(t, math.IsNaN(points[2].Lat))

	// Both are under their thresholds, so neither is treated as unknown.
	assert.Equal(t, 88.8888, points[3].Lat)
	assert.Equal(t, 888.8888, points[3].Lon)

	assert.True(t, points[4].Missing())
}

func TestCleanseCoordinates_BoundaryValues(t *testing.T) {
	points := CleanseCoordinates([]Accident{{Latitude: 90, Longitude: 900}})
	assert.Equal(t, 90.0, points[0].Lat)
	assert.Equal(t, 900.0, points[0].Lon)
}

func TestComputeBounds(t *testing.T) {
	t.Run("sentinel longitude does not distort range", func(t *testing.T) {
		points := CleanseCoordinates([]Accident{
			{Latitude: 33.1, Longitude: -87.5},
			{Latitude: 34.9, Longitude: -85.2},
			{Latitude: 40, Longitude: 999},
		})
		b := ComputeBounds(points)

		assert.Equal(t, -87.5, b.MinLon)
		assert.Equal(t, -85.2, b.MaxLon)
		assert.Equal(t, 33.1, b.MinLat)
		assert.Equal(t, 40.0, b.MaxLat, "latitude of a row with unknown longitude still counts")
		assert.False(t, b.Empty())
	})

	t.Run("no known coordinates", func(t *testing.T) {
		b := ComputeBounds([]Point{{Lon: math.NaN(), Lat: math.NaN()}})
		assert.True(t, b.Empty())
	})

	t.Run("only latitudes known", func(t *testing.T) {
		b := ComputeBounds([]Point{{Lon: math.NaN(), Lat: 30}})
		assert.True(t, b.Empty())
	})

	t.Run("empty input", func(t *testing.T) {
		assert.True(t, ComputeBounds(nil).Empty())
	})
}

func TestBounds_ContainsAndOverlaps(t *testing.T) {
	b := Bounds{MinLon: -90, MaxLon: -80, MinLat: 30, MaxLat: 35}

	assert.True(t, b.Contains(Point{Lon: -85, Lat: 32}))
	assert.False(t, b.Contains(Point{Lon: -75, Lat: 32}))
	assert.False(t, b.Contains(Point{Lon: math.NaN(), Lat: 32}))

	assert.True(t, b.Overlaps(-95, 25, -85, 31))
	assert.False(t, b.Overlaps(-120, 40, -110, 45))
}
