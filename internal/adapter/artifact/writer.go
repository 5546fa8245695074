// Package artifact writes the run's output files.
package artifact

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/freifunk-westpfalz/ffrn-expansion-map/internal/domain"
)

// Writer persists the GeoJSON and run-state documents.
type Writer struct {
	logger *slog.Logger
}

// NewWriter creates a Writer.
func NewWriter(logger *slog.Logger) *Writer {
	return &Writer{logger: logger}
}

// WriteGeoJSON overwrites path with the feature collection.
func (w *Writer) WriteGeoJSON(path string, fc domain.FeatureCollection) error {
	data, err := json.Marshal(fc)
	if err != nil {
		return fmt.Errorf("serialize feature collection: %w", err)
	}
	if err := WriteFileAtomic(path, data); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	w.logger.Info("geojson written", "path", path, "features", len(fc.Features))
	return nil
}

// WriteState overwrites path with the run-state record.
func (w *Writer) WriteState(path string, state domain.RunState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("serialize run state: %w", err)
	}
	if err := WriteFileAtomic(path, data); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	w.logger.Info("state written", "path", path, "nodes", state.Nodes)
	return nil
}

// WriteFileAtomic writes data to a temp file next to path and renames it
// into place, so readers never observe a truncated document.
func WriteFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
