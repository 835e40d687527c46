package ports

import (
	"context"

	"go.trai.ch/lockcheck/internal/core/domain"
)

// CommandRunner defines the interface for running external tools (conan, git).
//
//go:generate mockgen -source=command_runner.go -destination=mocks/mock_command_runner.go -package=mocks
type CommandRunner interface {
	// Run executes the command and returns its standard output.
	// Standard error is streamed to the logger.
	// It returns domain.ErrCommandFailed with an exit_code if the command fails.
	Run(ctx context.Context, cmd domain.Command) ([]byte, error)
}
