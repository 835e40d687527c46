package ports

import "go.trai.ch/lockcheck/internal/core/domain"

// ConfigLoader defines the interface for loading the run configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load resolves the configuration for a run started in cwd.
	//
	// path names the config file. A relative path is searched for walking up from cwd
	// and yields the defaults rooted at cwd when no such file exists. A missing absolute
	// path is an error. Environment overrides are applied last.
	Load(cwd, path string) (*domain.Config, error)
}
