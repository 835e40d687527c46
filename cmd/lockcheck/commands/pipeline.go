package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/lockcheck/internal/app"
)

func (c *CLI) newPipelineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pipeline",
		Short: "Run the recipe check, export, install and lock check in sequence",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Pipeline(cmd.Context(), app.PipelineOptions{
				ConfigPath: configPath(cmd),
			})
		},
	}
}
