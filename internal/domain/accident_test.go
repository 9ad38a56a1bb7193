package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testDataset() *Dataset {
	return &Dataset{
		Columns: []string{"STATE", "ST_CASE", "MONTH", "LATITUDE", "LONGITUD"},
		Accidents: []Accident{
			{State: 1, Month: 1, Latitude: 32.6, Longitude: -86.9, Values: []string{"1", "10001", "1", "32.6", "-86.9"}},
			{State: 6, Month: 2, Latitude: 36.7, Longitude: -119.4, Values: []string{"6", "60001", "2", "36.7", "-119.4"}},
			{State: 1, Month: 2, Latitude: 33.1, Longitude: -87.2, Values: []string{"1", "10002", "2", "33.1", "-87.2"}},
		},
	}
}

func TestDataset_Value(t *testing.T) {
	d := testDataset()

	v, ok := d.Value(1, "ST_CASE")
	assert.True(t, ok)
	assert.Equal(t, "60001", v)

	_, ok = d.Value(1, "COUNTY")
	assert.False(t, ok)

	_, ok = d.Value(7, "STATE")
	assert.False(t, ok)
}

func TestDataset_StateDomainImpliesNonEmptyFilter(t *testing.T) {
	d := testDataset()

	for _, a := range d.Accidents {
		assert.True(t, d.HasState(a.State))
		assert.NotEmpty(t, d.FilterState(a.State))
	}

	assert.False(t, d.HasState(99))
	assert.Empty(t, d.FilterState(99))
}

func TestDataset_FilterStateKeepsOrder(t *testing.T) {
	got := testDataset().FilterState(1)
	assert.Len(t, got, 2)
	assert.Equal(t, "10001", got[0].Values[1])
	assert.Equal(t, "10002", got[1].Values[1])
}

func TestNewYearDataset(t *testing.T) {
	fixed := time.Date(2024, 4, 26, 12, 0, 0, 0, time.UTC)
	y := NewYearDataset(2013, testDataset(), fixed)

	assert.Equal(t, 2013, y.Year)
	assert.Equal(t, []int{1, 2, 2}, y.Months)
	assert.Equal(t, fixed, y.LoadedAt)
}

func TestInvalidStateError(t *testing.T) {
	err := error(&InvalidStateError{State: 99, Year: 2013})
	assert.ErrorIs(t, err, ErrInvalidState)
	assert.Contains(t, err.Error(), "99")
}
