// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/lockcheck/internal/adapters/collector"
	_ "go.trai.ch/lockcheck/internal/adapters/conan"
	_ "go.trai.ch/lockcheck/internal/adapters/config"
	_ "go.trai.ch/lockcheck/internal/adapters/fs"
	_ "go.trai.ch/lockcheck/internal/adapters/git"
	_ "go.trai.ch/lockcheck/internal/adapters/logger"
	_ "go.trai.ch/lockcheck/internal/adapters/manifest"
	_ "go.trai.ch/lockcheck/internal/adapters/recipes"
	_ "go.trai.ch/lockcheck/internal/adapters/report"
	_ "go.trai.ch/lockcheck/internal/adapters/shell"
	_ "go.trai.ch/lockcheck/internal/adapters/telemetry/progrock"
	// Register app nodes.
	_ "go.trai.ch/lockcheck/internal/app"
)
