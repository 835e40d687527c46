// Package config provides the configuration loader for lockcheck.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/lockcheck/internal/core/domain"
	"go.trai.ch/lockcheck/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*FileConfigLoader)(nil)

// Environment variables overriding the configuration file.
const (
	EnvServerURL  = "GITHUB_SERVER_URL"
	EnvRepository = "GITHUB_REPOSITORY"
	EnvHeadRef    = "GITHUB_HEAD_REF"
	EnvBaseRef    = "GITHUB_BASE_REF"
	EnvConanfile  = "CONAN_TXT"
	EnvProfile    = "CONAN_PROFILE"
)

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
type FileConfigLoader struct {
	lookupEnv func(string) (string, bool)
}

// NewLoader creates a new FileConfigLoader reading overrides from the process environment.
func NewLoader() *FileConfigLoader {
	return &FileConfigLoader{lookupEnv: os.LookupEnv}
}

// Load resolves the configuration for a run started in cwd.
func (l *FileConfigLoader) Load(cwd, path string) (*domain.Config, error) {
	if path == "" {
		path = domain.ConfigFileName
	}

	var (
		file Lockfile
		root = cwd
	)

	configPath, err := findConfig(cwd, path)
	if err != nil {
		return nil, err
	}
	if configPath != "" {
		file, err = readLockfile(configPath)
		if err != nil {
			return nil, err
		}
		root = filepath.Dir(configPath)
	}

	cfg := l.resolve(root, &file)

	policy, err := domain.ParseVersionPolicy(string(cfg.VersionPolicy))
	if err != nil {
		return nil, zerr.With(err, "file", configPath)
	}
	cfg.VersionPolicy = policy

	if _, err := cfg.Filter(); err != nil {
		return nil, zerr.With(err, "file", configPath)
	}

	return cfg, nil
}

// Load reads a configuration file from the given path.
func Load(path string) (*domain.Config, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}
	return NewLoader().Load(filepath.Dir(abs), abs)
}

func (l *FileConfigLoader) resolve(root string, file *Lockfile) *domain.Config {
	cfg := &domain.Config{
		Root:          root,
		ServerURL:     withDefault(file.Repository.ServerURL, domain.DefaultServerURL),
		Repository:    file.Repository.Name,
		BaseRef:       withDefault(file.BaseRef, domain.DefaultBaseRef),
		HeadRef:       file.HeadRef,
		Conanfile:     withDefault(file.Conanfile, domain.DefaultConanfile),
		Profile:       file.Profile,
		RecipesDir:    withDefault(file.RecipesDir, domain.DefaultRecipesDir),
		VersionPolicy: domain.VersionPolicy(file.VersionPolicy),
		ReportUnused:  file.ReportUnused,
		ReportPath:    domain.DefaultReportPath(),
		Exclude:       file.Filter.Exclude,
	}
	if file.ReportPath != nil {
		cfg.ReportPath = *file.ReportPath
	}

	overrides := []struct {
		env    string
		target *string
	}{
		{EnvServerURL, &cfg.ServerURL},
		{EnvRepository, &cfg.Repository},
		{EnvHeadRef, &cfg.HeadRef},
		{EnvBaseRef, &cfg.BaseRef},
		{EnvConanfile, &cfg.Conanfile},
		{EnvProfile, &cfg.Profile},
	}
	for _, o := range overrides {
		if v, ok := l.lookupEnv(o.env); ok && v != "" {
			*o.target = v
		}
	}
	return cfg
}

// findConfig returns the config file path, or "" when a relative path is
// not found in cwd or any of its parents.
func findConfig(cwd, path string) (string, error) {
	if filepath.IsAbs(path) {
		if _, err := os.Stat(path); err != nil {
			readErr := zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
			return "", zerr.With(readErr, "file", path)
		}
		return path, nil
	}

	dir := cwd
	for {
		candidate := filepath.Join(dir, path)
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, nil
		}
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			readErr := zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
			return "", zerr.With(readErr, "file", candidate)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

func readLockfile(path string) (Lockfile, error) {
	var file Lockfile

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		readErr := zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
		return file, zerr.With(readErr, "file", path)
	}

	if err := yaml.Unmarshal(data, &file); err != nil {
		parseErr := zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
		return file, zerr.With(parseErr, "file", path)
	}

	if file.Version != "" && file.Version != SchemaVersion {
		versionErr := zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, "unsupported config version"), "file", path)
		return file, zerr.With(versionErr, "version", file.Version)
	}
	return file, nil
}

func withDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
