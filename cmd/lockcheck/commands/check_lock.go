package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/lockcheck/internal/app"
)

func (c *CLI) newCheckLockCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check-lock",
		Short: "Fail if installed packages are not pinned by the lock file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			installed, _ := cmd.Flags().GetString("installed")
			return c.app.CheckLock(cmd.Context(), app.LockCheckOptions{
				ConfigPath:    configPath(cmd),
				InstalledFile: installed,
			})
		},
	}
	cmd.Flags().StringP("installed", "i", "",
		"File of name/version lines to check instead of the Conan cache (\"-\" reads stdin)")
	return cmd
}
