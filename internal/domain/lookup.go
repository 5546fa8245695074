package domain

import "context"

// AreaLookup answers the two geodata queries the pipeline needs. Both are
// idempotent for a given key, which is what makes the caching layer an
// optimization rather than a correctness dependency.
type AreaLookup interface {
	// LookupPoint returns every administrative area a position falls into.
	LookupPoint(ctx context.Context, pos Position) (CandidateAreaSet, error)

	// LookupArea returns the boundary geometry of an administrative area.
	LookupArea(ctx context.Context, areaID string) (Geometry, error)
}
