// Package commands implements the CLI commands for lockcheck.
package commands

import (
	"context"

	"github.com/spf13/cobra"
	"go.trai.ch/lockcheck/internal/app"
	"go.trai.ch/lockcheck/internal/build"
	"go.trai.ch/lockcheck/internal/core/domain"
)

// CLI represents the command line interface for lockcheck.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "lockcheck",
		Short:         "Consistency checks for a Conan recipe repository",
		Long:          "lockcheck verifies that changed recipes bump their version and that the lock file pins every installed package.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", domain.ConfigFileName, "Path to the configuration file")
	rootCmd.PersistentFlags().Bool("json", false, "Emit logs as JSON")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		if jsonLogs, _ := cmd.Flags().GetBool("json"); jsonLogs {
			c.app.EnableJSONLogs()
		}
	}

	rootCmd.AddCommand(c.newCheckRecipesCmd())
	rootCmd.AddCommand(c.newCheckLockCmd())
	rootCmd.AddCommand(c.newPipelineCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

func configPath(cmd *cobra.Command) string {
	path, _ := cmd.Flags().GetString("config")
	return path
}
