package datastructure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClockTime(t *testing.T) {
	assert.Equal(t, "00:00:00", Midnight.String())
	assert.Equal(t, "23:59:59", LastSecond.String())
	assert.Equal(t, "10:00:00", NewClockTime(10, 0, 0).String())

	c, err := ParseClockTime("18:05:09")
	require.NoError(t, err)
	assert.Equal(t, 18, c.Hour())
	assert.Equal(t, 5, c.Minute())
	assert.Equal(t, 9, c.Second())

	_, err = ParseClockTime("24:00:00")
	assert.Error(t, err)
	_, err = ParseClockTime("noon")
	assert.Error(t, err)
}

func TestSortedUnique(t *testing.T) {
	assert.Equal(t, []LocationID{1, 2, 5}, SortedUnique([]LocationID{5, 1, 2, 5, 1}))
	assert.Empty(t, SortedUnique([]LocationID{}))
}
