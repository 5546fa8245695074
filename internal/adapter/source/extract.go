// Package source fetches and parses community node-list documents.
package source

import (
	"encoding/json"
	"fmt"

	"github.com/freifunk-westpfalz/ffrn-expansion-map/internal/domain"
)

// Supported node-list document formats.
const (
	FormatNodelist = "nodelist"
	FormatFfmap    = "ffmap"
)

// Formats lists the accepted values for the format flag.
var Formats = []string{FormatNodelist, FormatFfmap}

type ffmapDocument struct {
	Nodes []ffmapNode `json:"nodes"`
}

type ffmapNode struct {
	ID  string    `json:"id"`
	Geo []float64 `json:"geo"` // [lat, lng], null or absent for unpositioned nodes
}

type nodelistDocument struct {
	Nodes []nodelistNode `json:"nodes"`
}

type nodelistNode struct {
	ID       string            `json:"id"`
	Position *nodelistPosition `json:"position"`
}

type nodelistPosition struct {
	Lat  float64 `json:"lat"`
	Long float64 `json:"long"`
}

// Extract parses a node-list document into node id -> position. Nodes
// without position data are dropped silently; a document without a "nodes"
// member is malformed and fails the run.
func Extract(doc []byte, format string) (domain.Nodes, error) {
	switch format {
	case FormatFfmap:
		return extractFfmap(doc)
	case FormatNodelist:
		return extractNodelist(doc)
	default:
		return nil, fmt.Errorf("unknown node-list format %q", format)
	}
}

func extractFfmap(doc []byte) (domain.Nodes, error) {
	var parsed ffmapDocument
	if err := json.Unmarshal(doc, &parsed); err != nil {
		return nil, fmt.Errorf("parse ffmap document: %w", err)
	}
	if parsed.Nodes == nil {
		return nil, fmt.Errorf("parse ffmap document: missing nodes list")
	}

	nodes := make(domain.Nodes)
	for _, n := range parsed.Nodes {
		if len(n.Geo) < 2 {
			continue
		}
		nodes[n.ID] = domain.Position{Lat: n.Geo[0], Lng: n.Geo[1]}
	}
	return nodes, nil
}

func extractNodelist(doc []byte) (domain.Nodes, error) {
	var parsed nodelistDocument
	if err := json.Unmarshal(doc, &parsed); err != nil {
		return nil, fmt.Errorf("parse nodelist document: %w", err)
	}
	if parsed.Nodes == nil {
		return nil, fmt.Errorf("parse nodelist document: missing nodes list")
	}

	nodes := make(domain.Nodes)
	for _, n := range parsed.Nodes {
		if n.Position == nil {
			continue
		}
		nodes[n.ID] = domain.Position{Lat: n.Position.Lat, Lng: n.Position.Long}
	}
	return nodes, nil
}
