// Package report persists merged compile reports and their analysis as JSON.
package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"go.trai.ch/sourcerer/internal/core/domain"
	"go.trai.ch/sourcerer/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ReportStore = (*Store)(nil)

// Store implements ports.ReportStore with flat JSON files.
type Store struct{}

// NewStore creates a new report store.
func NewStore() *Store {
	return &Store{}
}

// WriteReport writes the report with sorted keys and four-space indentation,
// replacing any previous file atomically.
func (s *Store) WriteReport(path string, report domain.Report) error {
	if report == nil {
		report = domain.Report{}
	}
	if err := writeJSON(path, report); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrReportWriteFailed.Error()), "path", path)
	}
	return nil
}

// WriteAnalysis writes the classified errors in the same layout as reports.
func (s *Store) WriteAnalysis(path string, analysis domain.Analysis) error {
	if analysis == nil {
		analysis = domain.Analysis{}
	}
	if err := writeJSON(path, analysis); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrReportWriteFailed.Error()), "path", path)
	}
	return nil
}

// ReadReport loads a report written by WriteReport.
func (s *Store) ReadReport(path string) (domain.Report, error) {
	//nolint:gosec // path comes from the operator's configuration
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrReportReadFailed.Error()), "path", path)
	}

	report := make(domain.Report)
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrReportReadFailed.Error()), "path", path)
	}
	return report, nil
}

func encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(v); err != nil {
		return nil, zerr.Wrap(err, "failed to marshal json")
	}
	return buf.Bytes(), nil
}

func writeJSON(path string, v any) error {
	data, err := encode(v)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, "failed to create report directory")
	}

	// Create temp file in the same directory
	tmpFile, err := os.CreateTemp(dir, ".report-*.json")
	if err != nil {
		return zerr.Wrap(err, "failed to create temp report file")
	}
	tmpName := tmpFile.Name()

	// Clean up temp file on error
	defer func() {
		if _, err := os.Stat(tmpName); err == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return zerr.Wrap(err, "failed to write report file")
	}
	if err := tmpFile.Sync(); err != nil {
		_ = tmpFile.Close()
		return zerr.Wrap(err, "failed to sync report file")
	}
	if err := tmpFile.Close(); err != nil {
		return zerr.Wrap(err, "failed to close temp report file")
	}

	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return zerr.Wrap(err, "failed to chmod report file")
	}

	// Atomic rename
	if err := os.Rename(tmpName, path); err != nil {
		return zerr.Wrap(err, "failed to rename temp report file")
	}
	return nil
}
