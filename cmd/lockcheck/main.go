// Package main is the entry point for the lockcheck tool.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/lockcheck/cmd/lockcheck/commands"
	"go.trai.ch/lockcheck/internal/app"
	"go.trai.ch/lockcheck/internal/core/domain"
	_ "go.trai.ch/lockcheck/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run(opts ...func(*app.App)) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}

	for _, opt := range opts {
		opt(components.App)
	}

	// 2. Interface - CLI
	cli := commands.New(components.App)

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		// Violations were already printed one per line.
		if errors.Is(err, domain.ErrRecipeBumpViolations) || errors.Is(err, domain.ErrLockDriftDetected) {
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
