package manifest

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lockcheck/internal/adapters/recipes"
	"go.trai.ch/lockcheck/internal/core/ports"
)

// NodeID is the unique identifier for the manifest parser Graft node.
const NodeID graft.ID = "adapter.manifest"

func init() {
	graft.Register(graft.Node[ports.ManifestParser]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{recipes.NodeID},
		Run: func(ctx context.Context) (ports.ManifestParser, error) {
			fingerprinter, err := graft.Dep[ports.RecipeFingerprinter](ctx)
			if err != nil {
				return nil, err
			}
			return NewParser(fingerprinter), nil
		},
	})
}
