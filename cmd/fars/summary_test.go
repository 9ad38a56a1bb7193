package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInts(t *testing.T) {
	got, err := parseInts([]string{"2013", "2014.7", "6"})
	require.NoError(t, err)
	assert.Equal(t, []int{2013, 2014, 6}, got)

	_, err = parseInts([]string{"2013", "next"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "next")
}
