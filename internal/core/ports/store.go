package ports

import "go.trai.ch/lockcheck/internal/core/domain"

// ReportStore defines the interface for persisting check reports.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ReportStore interface {
	// Get reads the report at path.
	// Returns nil, nil if not found.
	Get(path string) (*domain.Report, error)

	// Put writes the report to path, creating parent directories.
	Put(path string, report domain.Report) error
}
