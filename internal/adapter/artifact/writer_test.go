package artifact

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/freifunk-westpfalz/ffrn-expansion-map/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWriter() *Writer {
	return NewWriter(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestWriteGeoJSON_OverwritesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nodes.geojson")
	require.NoError(t, os.WriteFile(path, []byte("stale content"), 0o644))

	fc := domain.NewFeatureCollection([]domain.Feature{
		domain.NewFeature(
			domain.AreaCount{Name: "Exampletown", Count: 2},
			domain.Geometry{Type: "Polygon", Coordinates: json.RawMessage(`[[[7.7,49.4],[7.8,49.4],[7.7,49.4]]]`)},
		),
	})
	require.NoError(t, testWriter().WriteGeoJSON(path, fc))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got domain.FeatureCollection
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, fc, got)
}

func TestWriteState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	state := domain.RunState{LastModified: "2026-08-29 12:00", Nodes: 42}
	require.NoError(t, testWriter().WriteState(path, state))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"last_modified":"2026-08-29 12:00","nodes":42}`, string(data))
}

func TestWriteGeoJSON_EmptyCollectionKeepsFeaturesArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nodes.geojson")

	require.NoError(t, testWriter().WriteGeoJSON(path, domain.NewFeatureCollection(nil)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"FeatureCollection","features":[]}`, string(data))
}

func TestWriteFileAtomic_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.json")

	require.NoError(t, WriteFileAtomic(path, []byte(`{}`)))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "out.json", entries[0].Name())
}
