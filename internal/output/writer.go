// Package output writes the per-state and national JSON files. Field
// names and nesting are part of the contract for downstream consumers.
package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/solarcrm/ratesync/internal/models"
)

const (
	statesSubdir = "states"
	nationalFile = "national_utility_rates.json"
)

// Writer persists summaries under a single output directory, with one
// JSON file per state in a states/ subdirectory.
type Writer struct {
	dir    string
	logger *logrus.Logger
}

// NewWriter creates the output directory tree up front so a run fails
// before any network activity if the destination is unwritable.
func NewWriter(dir string, logger *logrus.Logger) (*Writer, error) {
	if err := os.MkdirAll(filepath.Join(dir, statesSubdir), 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	return &Writer{dir: dir, logger: logger}, nil
}

// WriteState writes one completed state summary to states/<ST>.json.
func (w *Writer) WriteState(summary models.StateSummary) error {
	path := filepath.Join(w.dir, statesSubdir, summary.State+".json")
	return w.writeJSON(path, summary)
}

// WriteNational writes the national summary file.
func (w *Writer) WriteNational(summary models.NationalSummary) error {
	return w.writeJSON(filepath.Join(w.dir, nationalFile), summary)
}

func (w *Writer) writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}

	// Write to a temp file in the same directory and rename it into place
	// so an interrupted run never leaves a truncated file at path.
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("writing %s: %w", path, err)
	}

	w.logger.WithField("path", path).Debug("wrote output file")
	return nil
}
