// Package recipes locates and fingerprints recipe folders in a recipes tree.
//
// The tree follows the conan-center-index layout: recipes/<name>/config.yml maps each
// version to a folder under recipes/<name>/, and a recipe without config.yml lives in
// a folder named after the version or in "all".
package recipes

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	lfs "go.trai.ch/lockcheck/internal/adapters/fs"
	"go.trai.ch/lockcheck/internal/core/domain"
	"go.trai.ch/lockcheck/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.RecipeFingerprinter = (*Index)(nil)

// ignoredEntries are build leftovers that never belong to a recipe's source.
var ignoredEntries = []string{"build", "__pycache__", "*.pyc", "CMakeUserPresets.json"}

// recipeConfig is the structure of recipes/<name>/config.yml.
type recipeConfig struct {
	Versions map[string]struct {
		Folder string `yaml:"folder"`
	} `yaml:"versions"`
}

// Index implements ports.RecipeFingerprinter over a recipes directory.
type Index struct {
	hasher *lfs.Hasher
}

// NewIndex creates a new Index hashing folders with hasher.
func NewIndex(hasher *lfs.Hasher) *Index {
	return &Index{hasher: hasher}
}

// Locate returns the folder serving name at version.
func (i *Index) Locate(recipesDir, name, version string) (string, error) {
	recipeDir := filepath.Join(recipesDir, name)
	if !isDir(recipeDir) {
		return "", notFound(name, version, recipeDir)
	}

	configPath := filepath.Join(recipeDir, domain.RecipeConfigFileName)
	data, err := os.ReadFile(configPath) //nolint:gosec // Path is built from the configured recipes tree
	switch {
	case err == nil:
		return locateFromConfig(data, configPath, recipeDir, name, version)
	case !errors.Is(err, fs.ErrNotExist):
		return "", zerr.With(zerr.Wrap(err, domain.ErrRecipeIndexParseFailed.Error()), "path", configPath)
	}

	for _, folder := range []string{version, domain.DefaultRecipeFolder} {
		candidate := filepath.Join(recipeDir, folder)
		if folder != "" && isDir(candidate) {
			return candidate, nil
		}
	}
	return "", notFound(name, version, recipeDir)
}

func locateFromConfig(data []byte, configPath, recipeDir, name, version string) (string, error) {
	var cfg recipeConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrRecipeIndexParseFailed.Error()), "path", configPath)
	}

	entry, ok := cfg.Versions[version]
	if !ok || entry.Folder == "" {
		return "", notFound(name, version, configPath)
	}

	folder := filepath.Join(recipeDir, filepath.FromSlash(entry.Folder))
	if !isDir(folder) {
		return "", zerr.With(notFound(name, version, folder), "config", configPath)
	}
	return folder, nil
}

// Fingerprint hashes the folder serving name at version.
func (i *Index) Fingerprint(ctx context.Context, recipesDir, name, version string) (string, error) {
	folder, err := i.Locate(recipesDir, name, version)
	if err != nil {
		return "", err
	}

	sum, err := i.hasher.HashTree(ctx, folder, ignoredEntries)
	if err != nil {
		fpErr := zerr.Wrap(err, domain.ErrFingerprintFailed.Error())
		fpErr = zerr.With(fpErr, "package", name)
		return "", zerr.With(fpErr, "version", version)
	}
	return sum, nil
}

func notFound(name, version, path string) error {
	err := zerr.With(zerr.Wrap(domain.ErrRecipeNotFound, "no recipe folder"), "package", name)
	err = zerr.With(err, "version", version)
	return zerr.With(err, "path", path)
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
