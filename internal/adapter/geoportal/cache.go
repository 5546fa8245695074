package geoportal

import (
	"context"
	"encoding/json"

	"github.com/freifunk-westpfalz/ffrn-expansion-map/internal/domain"
	"github.com/freifunk-westpfalz/ffrn-expansion-map/internal/observability"
)

// RawFetcher fetches raw provider documents; implemented by Client.
type RawFetcher interface {
	FetchPoint(ctx context.Context, pos domain.Position) (json.RawMessage, error)
	FetchArea(ctx context.Context, areaID string) (json.RawMessage, error)
}

// CachedLookup implements domain.AreaLookup with a get-or-fetch-and-store
// wrapper around the provider. On a hit no external call is made; on a miss
// the provider is called exactly once and the raw response stored unmodified.
type CachedLookup struct {
	inner   RawFetcher
	cache   *Cache
	metrics *observability.Metrics
}

// NewCachedLookup creates the cache decorator around a provider.
func NewCachedLookup(inner RawFetcher, cache *Cache, metrics *observability.Metrics) *CachedLookup {
	return &CachedLookup{
		inner:   inner,
		cache:   cache,
		metrics: metrics,
	}
}

// LookupPoint returns the candidate areas for a position, via cache.
func (l *CachedLookup) LookupPoint(ctx context.Context, pos domain.Position) (domain.CandidateAreaSet, error) {
	key := pos.Key()
	raw, ok := l.cache.Point(key)
	if !ok {
		l.metrics.CacheLookups.WithLabelValues("point", "miss").Inc()
		var err error
		raw, err = l.inner.FetchPoint(ctx, pos)
		if err != nil {
			return nil, err
		}
		l.cache.PutPoint(key, raw)
	} else {
		l.metrics.CacheLookups.WithLabelValues("point", "hit").Inc()
	}
	return domain.ParseCandidateSet(raw)
}

// LookupArea returns the boundary geometry for an area id, via cache.
func (l *CachedLookup) LookupArea(ctx context.Context, areaID string) (domain.Geometry, error) {
	raw, ok := l.cache.Area(areaID)
	if !ok {
		l.metrics.CacheLookups.WithLabelValues("area", "miss").Inc()
		var err error
		raw, err = l.inner.FetchArea(ctx, areaID)
		if err != nil {
			return domain.Geometry{}, err
		}
		l.cache.PutArea(areaID, raw)
	} else {
		l.metrics.CacheLookups.WithLabelValues("area", "hit").Inc()
	}
	return domain.ParseGeometry(raw)
}
