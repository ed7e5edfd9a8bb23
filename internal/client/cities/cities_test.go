package cities

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCoordinatesCaseInsensitive(t *testing.T) {
	lower, ok := GetCoordinates("colombo")
	require.True(t, ok)

	upper, ok := GetCoordinates("Colombo")
	require.True(t, ok)

	assert.Equal(t, upper, lower)
	assert.InDelta(t, 6.9271, lower.Lat, 1e-9)
	assert.InDelta(t, 79.8612, lower.Lng, 1e-9)
}

func TestGetCoordinatesUnknown(t *testing.T) {
	_, ok := GetCoordinates("Atlantis")
	assert.False(t, ok)

	_, ok = GetCoordinates("")
	assert.False(t, ok)
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	require.Len(t, names, len(All()))
	assert.True(t, sort.StringsAreSorted(names))
	assert.Contains(t, names, "Jaffna")
}
