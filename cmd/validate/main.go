// Command validate performs integrity checks on a finished run's output
// artifacts: nodes.geojson structure, per-feature properties and geometry,
// and cross-consistency between the feature counts and state.json.
//
// Usage:
//
//	go run ./cmd/validate -geojson nodes.geojson -state state.json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/freifunk-westpfalz/ffrn-expansion-map/internal/domain"
)

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	geojsonPath := flag.String("geojson", "nodes.geojson", "path to the feature collection")
	statePath := flag.String("state", "state.json", "path to the run-state record")
	flag.Parse()

	phases := []*phase{
		validateGeoJSON(*geojsonPath),
		validateState(*statePath),
		validateConsistency(*geojsonPath, *statePath),
	}

	failed := false
	for _, p := range phases {
		if p.passed() {
			fmt.Printf("PASS %s\n", p.name)
			continue
		}
		failed = true
		fmt.Printf("FAIL %s\n", p.name)
		for _, e := range p.errors {
			fmt.Printf("  - %s\n", e)
		}
	}
	if failed {
		os.Exit(1)
	}
}

func loadCollection(path string, p *phase) (domain.FeatureCollection, bool) {
	var fc domain.FeatureCollection
	data, err := os.ReadFile(path)
	if err != nil {
		p.errorf("read %s: %v", path, err)
		return fc, false
	}
	if err := json.Unmarshal(data, &fc); err != nil {
		p.errorf("parse %s: %v", path, err)
		return fc, false
	}
	return fc, true
}

func loadState(path string, p *phase) (domain.RunState, bool) {
	var state domain.RunState
	data, err := os.ReadFile(path)
	if err != nil {
		p.errorf("read %s: %v", path, err)
		return state, false
	}
	if err := json.Unmarshal(data, &state); err != nil {
		p.errorf("parse %s: %v", path, err)
		return state, false
	}
	return state, true
}

func validateGeoJSON(path string) *phase {
	p := &phase{name: "geojson structure"}
	fc, ok := loadCollection(path, p)
	if !ok {
		return p
	}

	if fc.Type != "FeatureCollection" {
		p.errorf("type is %q, want FeatureCollection", fc.Type)
	}
	if fc.Features == nil {
		p.errorf("features member is missing")
	}
	for i, f := range fc.Features {
		if f.Type != "Feature" {
			p.errorf("feature %d: type is %q", i, f.Type)
		}
		if f.Properties.Name == "" {
			p.errorf("feature %d: empty area name", i)
		}
		if f.Properties.Count < 1 {
			p.errorf("feature %d (%s): count %d, want >= 1", i, f.Properties.Name, f.Properties.Count)
		}
		if f.Geometry.Type == "" || len(f.Geometry.Coordinates) == 0 {
			p.errorf("feature %d (%s): incomplete geometry", i, f.Properties.Name)
		}
	}
	return p
}

func validateState(path string) *phase {
	p := &phase{name: "state record"}
	state, ok := loadState(path, p)
	if !ok {
		return p
	}

	if _, err := time.Parse("2006-01-02 15:04", state.LastModified); err != nil {
		p.errorf("last_modified %q: %v", state.LastModified, err)
	}
	if state.Nodes < 0 {
		p.errorf("nodes is %d, want >= 0", state.Nodes)
	}
	return p
}

func validateConsistency(geojsonPath, statePath string) *phase {
	p := &phase{name: "count consistency"}
	fc, ok := loadCollection(geojsonPath, p)
	if !ok {
		return p
	}
	state, ok := loadState(statePath, p)
	if !ok {
		return p
	}

	sum := 0
	for _, f := range fc.Features {
		sum += f.Properties.Count
	}
	if sum != state.Nodes {
		p.errorf("feature counts sum to %d but state reports %d nodes", sum, state.Nodes)
	}
	return p
}
