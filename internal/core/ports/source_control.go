package ports

import "context"

// SourceControl checks out refs of the recipe repository.
//
//go:generate mockgen -source=source_control.go -destination=mocks/mock_source_control.go -package=mocks
type SourceControl interface {
	// Clone performs a shallow clone of url at ref into dest.
	Clone(ctx context.Context, url, ref, dest string) error
}
