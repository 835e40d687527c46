package ports

import (
	"context"

	"go.trai.ch/lockcheck/internal/core/domain"
)

//go:generate mockgen -source=manifest.go -destination=mocks/mock_manifest.go -package=mocks

// ManifestParser builds a package manifest from a requirements file and a build profile.
type ManifestParser interface {
	// Parse reads src and returns the fingerprinted manifest.
	// Profile tool requirements rejected by filter are dropped.
	// It never silently drops a requirements entry: malformed lines, duplicate names,
	// unreadable files and missing recipes are errors.
	Parse(ctx context.Context, src domain.ManifestSource, filter domain.RequirementFilter) (*domain.PackageManifest, error)
}

// RecipeFingerprinter locates recipe folders and hashes their content.
type RecipeFingerprinter interface {
	// Locate returns the recipe folder serving name at version.
	Locate(recipesDir, name, version string) (string, error)

	// Fingerprint returns the content hash of the recipe folder serving name at version.
	Fingerprint(ctx context.Context, recipesDir, name, version string) (string, error)
}

// DependencyCollector produces the manifest of a repository ref.
type DependencyCollector interface {
	// Collect checks out ref and parses its manifest.
	// domain.WorkingTreeRef parses the working tree at cfg.Root in place.
	Collect(ctx context.Context, cfg *domain.Config, ref string) (*domain.PackageManifest, error)
}
