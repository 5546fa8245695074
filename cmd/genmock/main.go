// Command genmock generates a mock nodelist document and a pre-warmed
// geocode cache covering it, so expansion-map can run end to end without
// touching the real geoportal. It uses the actual domain and cache packages
// to ensure the fixtures match real pipeline behavior.
//
// Usage:
//
//	go run ./cmd/genmock -nodes 50 -out testdata/nodes.json -cache-out cache.json
//	python3 -m http.server &
//	CACHE_PATH=cache.json ./expansion-map http://localhost:8000/testdata/nodes.json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"

	"github.com/freifunk-westpfalz/ffrn-expansion-map/internal/adapter/artifact"
	"github.com/freifunk-westpfalz/ffrn-expansion-map/internal/adapter/geoportal"
	"github.com/freifunk-westpfalz/ffrn-expansion-map/internal/domain"
)

// mockTown is one fake municipality with a center the generated nodes
// scatter around.
type mockTown struct {
	id       string
	name     string
	typeCode string
	lat      float64
	lng      float64
}

var towns = []mockTown{
	{id: "1001", name: "Exampletown", typeCode: "O07", lat: 49.444, lng: 7.769},
	{id: "1002", name: "Othertown", typeCode: "O07", lat: 49.35, lng: 7.6},
	{id: "1003", name: "Kleinstadt", typeCode: "O06", lat: 49.5, lng: 7.9},
	{id: "1004", name: "Bergdorf-Mitte", typeCode: "O08", lat: 49.42, lng: 7.82},
}

func main() {
	nodeCount := flag.Int("nodes", 50, "number of mock nodes to generate")
	out := flag.String("out", "nodes.json", "path for the nodelist document")
	cacheOut := flag.String("cache-out", "cache.json", "path for the pre-warmed cache")
	seed := flag.Int64("seed", 1, "random seed, fixed for reproducible fixtures")
	flag.Parse()

	if err := run(*nodeCount, *out, *cacheOut, *seed); err != nil {
		log.Fatal(err)
	}
}

func run(nodeCount int, out, cacheOut string, seed int64) error {
	rng := rand.New(rand.NewSource(seed))
	cache := geoportal.NewCache()

	type nodeDoc struct {
		ID       string `json:"id"`
		Position struct {
			Lat  float64 `json:"lat"`
			Long float64 `json:"long"`
		} `json:"position"`
	}
	var docNodes []nodeDoc

	for i := range nodeCount {
		town := towns[i%len(towns)]
		pos := domain.Position{
			Lat: town.lat + (rng.Float64()-0.5)*0.02,
			Lng: town.lng + (rng.Float64()-0.5)*0.02,
		}

		var n nodeDoc
		n.ID = fmt.Sprintf("node-%04d", i)
		n.Position.Lat = pos.Lat
		n.Position.Long = pos.Lng
		docNodes = append(docNodes, n)

		candidates, err := candidateDoc(town)
		if err != nil {
			return err
		}
		cache.PutPoint(pos.Key(), candidates)
	}

	for _, town := range towns {
		boundary, err := boundaryDoc(town)
		if err != nil {
			return err
		}
		cache.PutArea(town.id, boundary)
	}

	doc, err := json.MarshalIndent(map[string]any{"version": "1.0.1", "nodes": docNodes}, "", "  ")
	if err != nil {
		return err
	}
	if err := artifact.WriteFileAtomic(out, doc); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	if err := cache.Save(cacheOut); err != nil {
		return err
	}

	log.Printf("wrote %d nodes to %s, %d towns to %s", nodeCount, out, len(towns), cacheOut)
	return nil
}

// candidateDoc builds the raw reverse-geocode response for a town: the town
// itself plus the state- and district-level areas above it.
func candidateDoc(town mockTown) (json.RawMessage, error) {
	set := map[string]any{
		"1":     map[string]string{"name": "Rheinland-Pfalz", "type": "O02"},
		"44":    map[string]string{"name": "Kaiserslautern", "type": "O04"},
		town.id: map[string]string{"name": town.name, "type": town.typeCode},
	}
	return json.Marshal(set)
}

// boundaryDoc builds a square boundary polygon around the town center.
func boundaryDoc(town mockTown) (json.RawMessage, error) {
	const d = 0.02
	ring := [][]float64{
		{town.lng - d, town.lat - d},
		{town.lng + d, town.lat - d},
		{town.lng + d, town.lat + d},
		{town.lng - d, town.lat + d},
		{town.lng - d, town.lat - d},
	}
	return json.Marshal(map[string]any{"type": "Polygon", "coordinates": [][][]float64{ring}})
}
