package git

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lockcheck/internal/adapters/shell"
	"go.trai.ch/lockcheck/internal/core/ports"
)

// NodeID is the unique identifier for the source control Graft node.
const NodeID graft.ID = "adapter.git"

func init() {
	graft.Register(graft.Node[ports.SourceControl]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.SourceControl, error) {
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}
			return NewClient(runner), nil
		},
	})
}
