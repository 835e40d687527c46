package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lockcheck/internal/adapters/collector"          //nolint:depguard // Wired in app layer
	"go.trai.ch/lockcheck/internal/adapters/conan"              //nolint:depguard // Wired in app layer
	"go.trai.ch/lockcheck/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/lockcheck/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/lockcheck/internal/adapters/recipes"            //nolint:depguard // Wired in app layer
	"go.trai.ch/lockcheck/internal/adapters/report"             //nolint:depguard // Wired in app layer
	"go.trai.ch/lockcheck/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/lockcheck/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			collector.NodeID,
			recipes.NodeID,
			conan.ListerNodeID,
			conan.ExporterNodeID,
			conan.InstallerNodeID,
			report.NodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewComponents(app, log), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}
	coll, err := graft.Dep[ports.DependencyCollector](ctx)
	if err != nil {
		return nil, err
	}
	fingerprinter, err := graft.Dep[ports.RecipeFingerprinter](ctx)
	if err != nil {
		return nil, err
	}
	lister, err := graft.Dep[ports.PackageLister](ctx)
	if err != nil {
		return nil, err
	}
	exporter, err := graft.Dep[ports.RecipeExporter](ctx)
	if err != nil {
		return nil, err
	}
	installer, err := graft.Dep[ports.PackageInstaller](ctx)
	if err != nil {
		return nil, err
	}
	store, err := graft.Dep[ports.ReportStore](ctx)
	if err != nil {
		return nil, err
	}
	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, coll, fingerprinter, lister, exporter, installer, store, telemetry, log), nil
}
