package domain

import (
	"encoding/json"
	"fmt"
)

// Geometry is a GeoJSON geometry. Coordinates stay an opaque raw message so
// the boundary provider's nesting (Polygon, MultiPolygon, ...) passes through
// to the output byte for byte.
type Geometry struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
}

// ParseGeometry decodes a boundary provider response. A response without a
// geometry type or coordinates is malformed and fails the run.
func ParseGeometry(data []byte) (Geometry, error) {
	var g Geometry
	if err := json.Unmarshal(data, &g); err != nil {
		return Geometry{}, fmt.Errorf("parse boundary geometry: %w", err)
	}
	if g.Type == "" || len(g.Coordinates) == 0 {
		return Geometry{}, fmt.Errorf("parse boundary geometry: missing type or coordinates")
	}
	return g, nil
}

// FeatureProperties annotate an area polygon with its node tally.
type FeatureProperties struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Feature is one GeoJSON feature: a municipal boundary plus its node count.
type Feature struct {
	Type       string            `json:"type"`
	Properties FeatureProperties `json:"properties"`
	Geometry   Geometry          `json:"geometry"`
}

// NewFeature builds a feature fresh from its inputs; features never share
// state with each other.
func NewFeature(count AreaCount, geometry Geometry) Feature {
	return Feature{
		Type:       "Feature",
		Properties: FeatureProperties{Name: count.Name, Count: count.Count},
		Geometry:   geometry,
	}
}

// FeatureCollection is the output document rendered by the map page.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// NewFeatureCollection wraps features in a collection. A nil slice becomes an
// empty one so the JSON output always carries a features array.
func NewFeatureCollection(features []Feature) FeatureCollection {
	if features == nil {
		features = []Feature{}
	}
	return FeatureCollection{Type: "FeatureCollection", Features: features}
}
