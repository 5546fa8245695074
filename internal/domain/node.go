package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Position is a WGS-84 latitude/longitude pair as reported by the node feed.
// Values are carried verbatim; equality (and therefore cache identity) is
// exact floating-point equality, matching the source data's behaviour.
type Position struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Key encodes the position as a cache key. Floats are formatted with the
// shortest representation that parses back to the identical bits, so a
// persisted key always matches the in-memory one.
func (p Position) Key() string {
	return strconv.FormatFloat(p.Lat, 'g', -1, 64) + "," + strconv.FormatFloat(p.Lng, 'g', -1, 64)
}

// ParsePositionKey is the inverse of [Position.Key].
func ParsePositionKey(key string) (Position, error) {
	lat, lng, ok := strings.Cut(key, ",")
	if !ok {
		return Position{}, fmt.Errorf("parse position key %q: missing separator", key)
	}
	latF, err := strconv.ParseFloat(lat, 64)
	if err != nil {
		return Position{}, fmt.Errorf("parse position key %q: %w", key, err)
	}
	lngF, err := strconv.ParseFloat(lng, 64)
	if err != nil {
		return Position{}, fmt.Errorf("parse position key %q: %w", key, err)
	}
	return Position{Lat: latF, Lng: lngF}, nil
}

// Nodes maps a node identifier to its reported position. Distinct node ids
// with identical positions stay distinct entries; deduplication happens only
// at the cache layer, never here.
type Nodes map[string]Position
