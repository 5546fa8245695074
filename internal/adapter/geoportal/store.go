package geoportal

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/freifunk-westpfalz/ffrn-expansion-map/internal/adapter/artifact"
)

// Cache is the two-namespace geocode memo: position key -> raw candidate
// document, area id -> raw boundary document. Entries are never evicted or
// invalidated; the boundary data is assumed stable and the dataset small.
//
// The cache is purely an optimization. An empty cache produces identical
// output, only slower.
type Cache struct {
	points map[string]json.RawMessage
	areas  map[string]json.RawMessage
}

// cacheFile is the on-disk shape, one member per namespace.
type cacheFile struct {
	Point map[string]json.RawMessage `json:"point"`
	Area  map[string]json.RawMessage `json:"area"`
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{
		points: make(map[string]json.RawMessage),
		areas:  make(map[string]json.RawMessage),
	}
}

// LoadCache reads a persisted cache from path. A missing or unreadable file
// is not an error; the run just starts cold.
func LoadCache(path string, logger *slog.Logger) *Cache {
	cache := NewCache()

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.Warn("cache unreadable, starting cold", "path", path, "error", err)
		}
		return cache
	}

	var file cacheFile
	if err := json.Unmarshal(data, &file); err != nil {
		logger.Warn("cache corrupt, starting cold", "path", path, "error", err)
		return cache
	}

	if file.Point != nil {
		cache.points = file.Point
	}
	if file.Area != nil {
		cache.areas = file.Area
	}
	logger.Info("cache loaded", "path", path, "points", len(cache.points), "areas", len(cache.areas))
	return cache
}

// Save persists the cache to path, atomically replacing any previous file.
// Called once at normal process exit.
func (c *Cache) Save(path string) error {
	data, err := json.Marshal(cacheFile{Point: c.points, Area: c.areas})
	if err != nil {
		return fmt.Errorf("serialize cache: %w", err)
	}
	if err := artifact.WriteFileAtomic(path, data); err != nil {
		return fmt.Errorf("write cache %s: %w", path, err)
	}
	return nil
}

// Point returns the cached candidate document for a position key.
func (c *Cache) Point(key string) (json.RawMessage, bool) {
	doc, ok := c.points[key]
	return doc, ok
}

// PutPoint stores a raw candidate document.
func (c *Cache) PutPoint(key string, doc json.RawMessage) {
	c.points[key] = doc
}

// Area returns the cached boundary document for an area id.
func (c *Cache) Area(areaID string) (json.RawMessage, bool) {
	doc, ok := c.areas[areaID]
	return doc, ok
}

// PutArea stores a raw boundary document.
func (c *Cache) PutArea(areaID string, doc json.RawMessage) {
	c.areas[areaID] = doc
}
