package recipes

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lockcheck/internal/adapters/fs"
	"go.trai.ch/lockcheck/internal/core/ports"
)

// NodeID is the unique identifier for the recipe index Graft node.
const NodeID graft.ID = "adapter.recipes"

func init() {
	graft.Register(graft.Node[ports.RecipeFingerprinter]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.HasherNodeID},
		Run: func(ctx context.Context) (ports.RecipeFingerprinter, error) {
			hasher, err := graft.Dep[*fs.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			return NewIndex(hasher), nil
		},
	})
}
