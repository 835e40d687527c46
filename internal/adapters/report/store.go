// Package report persists check reports as JSON files.
package report

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/lockcheck/internal/core/domain"
	"go.trai.ch/lockcheck/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ReportStore = (*Store)(nil)

// Store implements ports.ReportStore using one indented JSON file per report.
type Store struct {
	mu sync.Mutex
}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Get reads the report at path.
func (s *Store) Get(path string) (*domain.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is resolved from the run configuration
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrReportReadFailed.Error()), "path", path)
	}

	var r domain.Report
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrReportReadFailed.Error()), "path", path)
	}
	return &r, nil
}

// Put writes the report to path, creating parent directories.
func (s *Store) Put(path string, r domain.Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r.Violations == nil {
		r.Violations = []domain.Violation{}
	}

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrReportWriteFailed.Error())
	}
	data = append(data, '\n')

	path = filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrReportWriteFailed.Error()), "path", path)
	}

	//nolint:gosec // Path is resolved from the run configuration
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrReportWriteFailed.Error()), "path", path)
	}
	return nil
}
