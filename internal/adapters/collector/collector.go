// Package collector produces the package manifest of a recipe repository ref.
package collector

import (
	"context"
	"os"

	"go.trai.ch/lockcheck/internal/core/domain"
	"go.trai.ch/lockcheck/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.DependencyCollector = (*Collector)(nil)

// Collector implements ports.DependencyCollector.
// Refs other than domain.WorkingTreeRef are cloned into a temporary workspace.
type Collector struct {
	vcs    ports.SourceControl
	parser ports.ManifestParser
	logger ports.Logger
}

// New creates a new Collector.
func New(vcs ports.SourceControl, parser ports.ManifestParser, logger ports.Logger) *Collector {
	return &Collector{vcs: vcs, parser: parser, logger: logger}
}

// Collect checks out ref and parses its manifest.
func (c *Collector) Collect(ctx context.Context, cfg *domain.Config, ref string) (*domain.PackageManifest, error) {
	filter, err := cfg.Filter()
	if err != nil {
		return nil, err
	}

	if ref == "" || ref == domain.WorkingTreeRef {
		return c.parser.Parse(ctx, cfg.ManifestSource(cfg.Root), filter)
	}

	url := cfg.CloneURL()
	if url == "" {
		return nil, zerr.With(zerr.Wrap(domain.ErrMissingRepository, "cannot check out ref"), "ref", ref)
	}

	dir, err := os.MkdirTemp("", "lockcheck-*")
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrWorkspaceCreateFailed.Error())
	}
	defer func() {
		if rmErr := os.RemoveAll(dir); rmErr != nil {
			c.logger.Warn("failed to remove workspace " + dir + ": " + rmErr.Error())
		}
	}()

	c.logger.Info("checking out " + ref)
	if err := c.vcs.Clone(ctx, url, ref, dir); err != nil {
		return nil, err
	}

	m, err := c.parser.Parse(ctx, cfg.ManifestSource(dir), filter)
	if err != nil {
		return nil, zerr.With(err, "ref", ref)
	}
	return m, nil
}
