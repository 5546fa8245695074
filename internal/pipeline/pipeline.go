// Package pipeline runs the resolve-and-aggregate flow: node document in,
// FeatureCollection and run state out.
package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"sync/atomic"

	"github.com/freifunk-westpfalz/ffrn-expansion-map/internal/domain"
	"github.com/freifunk-westpfalz/ffrn-expansion-map/internal/observability"
)

// NodeSource fetches and parses the node-list document.
type NodeSource interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
	Extract(doc []byte, format string) (domain.Nodes, error)
}

// Result bundles the two output documents of a run.
type Result struct {
	Collection domain.FeatureCollection
	State      domain.RunState
}

// Pipeline orchestrates one map-generation run.
type Pipeline struct {
	source  NodeSource
	lookup  domain.AreaLookup
	logger  *slog.Logger
	metrics *observability.Metrics
	done    atomic.Bool
}

// New creates a Pipeline with the given stages and observability.
func New(source NodeSource, lookup domain.AreaLookup, logger *slog.Logger, metrics *observability.Metrics) *Pipeline {
	return &Pipeline{
		source:  source,
		lookup:  lookup,
		logger:  logger,
		metrics: metrics,
	}
}

// CheckReadiness returns nil once a run has completed.
func (p *Pipeline) CheckReadiness(_ context.Context) error {
	if !p.done.Load() {
		return errors.New("run has not completed yet")
	}
	return nil
}

// Run executes the whole flow. Per-node resolution failures become
// diagnostics and the run continues; every other failure aborts with no
// output.
func (p *Pipeline) Run(ctx context.Context, sourceURL, format string) (Result, error) {
	p.metrics.RunActive.Set(1)
	defer p.metrics.RunActive.Set(0)

	doc, err := p.source.Fetch(ctx, sourceURL)
	if err != nil {
		return Result{}, err
	}

	nodes, err := p.source.Extract(doc, format)
	if err != nil {
		return Result{}, err
	}
	p.metrics.NodesExtracted.Add(float64(len(nodes)))
	p.logger.Info("nodes extracted", "format", format, "count", len(nodes))

	dist, err := p.aggregate(ctx, nodes)
	if err != nil {
		return Result{}, err
	}

	features, err := p.buildFeatures(ctx, dist)
	if err != nil {
		return Result{}, err
	}

	result := Result{
		Collection: domain.NewFeatureCollection(features),
		State:      domain.NewRunState(dist.Total()),
	}

	p.done.Store(true)
	p.logger.Info("run complete", "areas", dist.Len(), "nodes", dist.Total())
	return result, nil
}

// aggregate resolves every node to its municipal area and tallies the
// counts. Nodes are scanned in sorted id order so output is stable for a
// fixed input document.
func (p *Pipeline) aggregate(ctx context.Context, nodes domain.Nodes) (*domain.Distribution, error) {
	ids := make([]string, 0, len(nodes))
	for id := range nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	dist := domain.NewDistribution()
	for _, id := range ids {
		pos := nodes[id]

		candidates, err := p.lookup.LookupPoint(ctx, pos)
		if err != nil {
			return nil, err
		}

		area, ok := domain.ResolveMunicipal(candidates)
		if !ok {
			p.metrics.NodesUnresolved.Inc()
			p.logger.Warn("no municipal area for node", "node", id, "lat", pos.Lat, "lng", pos.Lng)
			continue
		}

		dist.Add(area)
		p.metrics.NodesResolved.Inc()
	}
	return dist, nil
}

// buildFeatures joins the tally with boundary polygons, one feature per
// area in first-seen order.
func (p *Pipeline) buildFeatures(ctx context.Context, dist *domain.Distribution) ([]domain.Feature, error) {
	features := make([]domain.Feature, 0, dist.Len())
	for _, areaID := range dist.AreaIDs() {
		geometry, err := p.lookup.LookupArea(ctx, areaID)
		if err != nil {
			return nil, err
		}
		count, _ := dist.Get(areaID)
		features = append(features, domain.NewFeature(count, geometry))
	}
	return features, nil
}
