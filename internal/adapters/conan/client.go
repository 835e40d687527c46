// Package conan drives the Conan 2 CLI to export recipes, install requirements and list the cache.
package conan

import (
	"context"
	"encoding/json"
	"slices"

	"go.trai.ch/lockcheck/internal/core/domain"
	"go.trai.ch/lockcheck/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.PackageLister    = (*Client)(nil)
	_ ports.RecipeExporter   = (*Client)(nil)
	_ ports.PackageInstaller = (*Client)(nil)
)

// localCacheKey is the remote name Conan reports the local cache under.
const localCacheKey = "Local Cache"

// BuildPolicy is passed as "--build" to conan install.
const BuildPolicy = "missing"

// Client implements the package manager ports using the conan executable.
type Client struct {
	runner ports.CommandRunner
	binary string
}

// NewClient creates a new Client running conan through runner.
func NewClient(runner ports.CommandRunner) *Client {
	return &Client{runner: runner, binary: "conan"}
}

// ListInstalled returns the "name/version" references in the local cache, sorted.
func (c *Client) ListInstalled(ctx context.Context) ([]string, error) {
	out, err := c.runner.Run(ctx, domain.Command{
		Name: c.binary,
		Args: []string{"list", "*", "--format=json"},
	})
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrListInstalledFailed.Error())
	}
	return parseListOutput(out)
}

// Export exports the recipe folder at recipePath to the local cache under version.
func (c *Client) Export(ctx context.Context, recipePath, version string) error {
	_, err := c.runner.Run(ctx, domain.Command{
		Name: c.binary,
		Args: []string{"export", recipePath, "--version", version},
	})
	if err != nil {
		exportErr := zerr.Wrap(err, domain.ErrExportFailed.Error())
		exportErr = zerr.With(exportErr, "recipe", recipePath)
		return zerr.With(exportErr, "version", version)
	}
	return nil
}

// Install installs the requirements of src, using its profile for the host and build contexts.
func (c *Client) Install(ctx context.Context, src domain.ManifestSource) error {
	args := []string{"install", src.Requirements}
	if src.Profile != "" {
		args = append(args, "-pr:h", src.Profile, "-pr:b", src.Profile)
	}
	args = append(args, "--build", BuildPolicy)

	_, err := c.runner.Run(ctx, domain.Command{
		Name: c.binary,
		Args: args,
		Dir:  src.Root,
	})
	if err != nil {
		installErr := zerr.Wrap(err, domain.ErrInstallFailed.Error())
		return zerr.With(installErr, "conanfile", src.Requirements)
	}
	return nil
}

// listResult mirrors the output of "conan list --format=json":
// remote name to reference to revision details.
type listResult map[string]map[string]json.RawMessage

func parseListOutput(out []byte) ([]string, error) {
	var result listResult
	if err := json.Unmarshal(out, &result); err != nil {
		return nil, zerr.Wrap(err, domain.ErrConanListParseFailed.Error())
	}

	cache, ok := result[localCacheKey]
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrConanListParseFailed, "unexpected output"), "reason", "no local cache entry")
	}

	refs := make([]string, 0, len(cache))
	for ref := range cache {
		// Conan reports failures as an "error" key in place of a reference.
		if ref == "error" {
			var msg string
			if err := json.Unmarshal(cache[ref], &msg); err != nil {
				msg = string(cache[ref])
			}
			return nil, zerr.With(zerr.Wrap(domain.ErrListInstalledFailed, "conan list"), "reason", msg)
		}
		refs = append(refs, ref)
	}
	slices.Sort(refs)
	return refs, nil
}
