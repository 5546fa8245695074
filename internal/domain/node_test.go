package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPositionKey_RoundTrip(t *testing.T) {
	positions := []Position{
		{Lat: 49.444, Lng: 7.769},
		{Lat: 49.44412345678901, Lng: 7.76912345678901}, // full float64 precision
		{Lat: -33.9, Lng: 151.2},
		{Lat: 0, Lng: 0},
	}

	for _, pos := range positions {
		key := pos.Key()
		got, err := ParsePositionKey(key)
		require.NoError(t, err)
		assert.Equal(t, pos, got, "key %q must round-trip bit-exactly", key)
	}
}

func TestPositionKey_DistinctForCloseValues(t *testing.T) {
	// Exact equality is deliberate: numerically close positions stay
	// separate cache entries.
	a := Position{Lat: 49.444, Lng: 7.769}
	b := Position{Lat: 49.4440000000001, Lng: 7.769}
	assert.NotEqual(t, a.Key(), b.Key())
}

func TestParsePositionKey_Malformed(t *testing.T) {
	for _, key := range []string{"", "49.444", "abc,def", "49.444,xyz"} {
		_, err := ParsePositionKey(key)
		require.Error(t, err, "key %q", key)
	}
}
