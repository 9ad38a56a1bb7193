package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileName(t *testing.T) {
	assert.Equal(t, "accident_2013.csv.bz2", FileName(2013))
	assert.Equal(t, "accident_2015.csv.bz2", FileName(int64(2015)))
	assert.Equal(t, "accident_0.csv.bz2", FileName(0))
}

func TestFileName_TruncatesFractionalYears(t *testing.T) {
	tests := []struct {
		name string
		year float64
		want string
	}{
		{"whole", 2013.0, "accident_2013.csv.bz2"},
		{"fraction below half", 2013.2, "accident_2013.csv.bz2"},
		{"fraction above half", 2013.7, "accident_2013.csv.bz2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FileName(tt.year))
		})
	}
}
