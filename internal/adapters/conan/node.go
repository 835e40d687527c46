package conan

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lockcheck/internal/adapters/shell"
	"go.trai.ch/lockcheck/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the conan client Graft node.
	NodeID graft.ID = "adapter.conan"
	// ListerNodeID provides the client as a ports.PackageLister.
	ListerNodeID graft.ID = "adapter.conan.lister"
	// ExporterNodeID provides the client as a ports.RecipeExporter.
	ExporterNodeID graft.ID = "adapter.conan.exporter"
	// InstallerNodeID provides the client as a ports.PackageInstaller.
	InstallerNodeID graft.ID = "adapter.conan.installer"
)

func init() {
	graft.Register(graft.Node[*Client]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (*Client, error) {
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}
			return NewClient(runner), nil
		},
	})

	graft.Register(graft.Node[ports.PackageLister]{
		ID:        ListerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID},
		Run: func(ctx context.Context) (ports.PackageLister, error) {
			client, err := graft.Dep[*Client](ctx)
			if err != nil {
				return nil, err
			}
			return client, nil
		},
	})

	graft.Register(graft.Node[ports.RecipeExporter]{
		ID:        ExporterNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID},
		Run: func(ctx context.Context) (ports.RecipeExporter, error) {
			client, err := graft.Dep[*Client](ctx)
			if err != nil {
				return nil, err
			}
			return client, nil
		},
	})

	graft.Register(graft.Node[ports.PackageInstaller]{
		ID:        InstallerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID},
		Run: func(ctx context.Context) (ports.PackageInstaller, error) {
			client, err := graft.Dep[*Client](ctx)
			if err != nil {
				return nil, err
			}
			return client, nil
		},
	})
}
