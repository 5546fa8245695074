package domain

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strconv"
)

// Municipal administrative depth range. The numeric suffix of a type code
// encodes depth, larger meaning more local; only O06–O08 count as municipal.
const (
	minMunicipalDepth = 6
	maxMunicipalDepth = 8
)

// depthRe extracts the numeric suffix of an administrative type code,
// e.g. "O07" -> 7.
var depthRe = regexp.MustCompile(`(\d+)$`)

// AreaRecord is one candidate administrative area returned by the
// reverse-geocode provider for a position.
type AreaRecord struct {
	ID   string `json:"-"` // taken from the candidate-set key
	Name string `json:"name"`
	Type string `json:"type"`
}

// Depth returns the administrative depth encoded in the record's type code,
// or false for codes without a numeric suffix.
func (r AreaRecord) Depth() (int, bool) {
	m := depthRe.FindStringSubmatch(r.Type)
	if m == nil {
		return 0, false
	}
	d, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return d, true
}

// CandidateAreaSet is the full reverse-geocode response for one position:
// area id -> record, every administrative level the point falls into.
type CandidateAreaSet map[string]AreaRecord

// ParseCandidateSet decodes a raw provider response and fills each record's
// ID from its map key.
func ParseCandidateSet(data []byte) (CandidateAreaSet, error) {
	var set CandidateAreaSet
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("parse candidate area set: %w", err)
	}
	for id, rec := range set {
		rec.ID = id
		set[id] = rec
	}
	return set, nil
}

// ResolveMunicipal selects the most local municipal area from a candidate
// set: among candidates with depth 6–8, the one with the maximum depth wins.
// The second return is false when no candidate is municipal at all.
//
// Candidates are scanned in sorted id order so an (in practice impossible)
// depth tie resolves deterministically instead of depending on map order.
func ResolveMunicipal(candidates CandidateAreaSet) (AreaRecord, bool) {
	ids := make([]string, 0, len(candidates))
	for id := range candidates {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var best AreaRecord
	bestDepth := 0
	for _, id := range ids {
		rec := candidates[id]
		depth, ok := rec.Depth()
		if !ok || depth < minMunicipalDepth || depth > maxMunicipalDepth {
			continue
		}
		if depth > bestDepth {
			best = rec
			bestDepth = depth
		}
	}
	if bestDepth == 0 {
		return AreaRecord{}, false
	}
	return best, true
}
