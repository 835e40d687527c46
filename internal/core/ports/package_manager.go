package ports

import (
	"context"

	"go.trai.ch/lockcheck/internal/core/domain"
)

// PackageLister enumerates packages materialized in the package cache.
//
//go:generate mockgen -source=package_manager.go -destination=mocks/mock_package_manager.go -package=mocks
type PackageLister interface {
	// ListInstalled returns "name/version" references in sorted order.
	ListInstalled(ctx context.Context) ([]string, error)
}

// RecipeExporter publishes a recipe folder to the package cache.
type RecipeExporter interface {
	// Export exports the recipe at recipePath under version.
	Export(ctx context.Context, recipePath, version string) error
}

// PackageInstaller installs the requirements of a manifest.
type PackageInstaller interface {
	// Install installs src's requirements with its profile, building missing binaries.
	Install(ctx context.Context, src domain.ManifestSource) error
}
