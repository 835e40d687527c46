package collector

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lockcheck/internal/adapters/git"
	"go.trai.ch/lockcheck/internal/adapters/logger"
	"go.trai.ch/lockcheck/internal/adapters/manifest"
	"go.trai.ch/lockcheck/internal/core/ports"
)

// NodeID is the unique identifier for the dependency collector Graft node.
const NodeID graft.ID = "adapter.collector"

func init() {
	graft.Register(graft.Node[ports.DependencyCollector]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{git.NodeID, manifest.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.DependencyCollector, error) {
			vcs, err := graft.Dep[ports.SourceControl](ctx)
			if err != nil {
				return nil, err
			}
			parser, err := graft.Dep[ports.ManifestParser](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(vcs, parser, log), nil
		},
	})
}
