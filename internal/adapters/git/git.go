// Package git checks out refs of the recipe repository using the git CLI.
package git

import (
	"context"

	"go.trai.ch/lockcheck/internal/core/domain"
	"go.trai.ch/lockcheck/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SourceControl = (*Client)(nil)

// Client implements ports.SourceControl by shelling out to git.
type Client struct {
	runner ports.CommandRunner
}

// NewClient creates a new Client running git through runner.
func NewClient(runner ports.CommandRunner) *Client {
	return &Client{runner: runner}
}

// Clone fetches the single commit at ref from url into dest and checks it out.
// ref may be a branch, a tag or a commit hash.
func (c *Client) Clone(ctx context.Context, url, ref, dest string) error {
	if ref == "" {
		return zerr.With(zerr.Wrap(domain.ErrMissingRef, "cannot clone"), "url", url)
	}

	steps := [][]string{
		{"init", "--quiet", dest},
		{"-C", dest, "remote", "add", "origin", url},
		{"-C", dest, "fetch", "--quiet", "--depth", "1", "origin", ref},
		{"-C", dest, "checkout", "--quiet", "FETCH_HEAD"},
	}

	for _, args := range steps {
		cmd := domain.Command{
			Name: "git",
			Args: args,
			Env:  map[string]string{"GIT_TERMINAL_PROMPT": "0"},
		}
		if _, err := c.runner.Run(ctx, cmd); err != nil {
			cloneErr := zerr.Wrap(err, domain.ErrCloneFailed.Error())
			cloneErr = zerr.With(cloneErr, "ref", ref)
			return zerr.With(cloneErr, "url", url)
		}
	}
	return nil
}
