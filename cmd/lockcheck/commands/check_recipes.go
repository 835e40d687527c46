package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/lockcheck/internal/app"
)

func (c *CLI) newCheckRecipesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check-recipes",
		Short: "Fail if a recipe changed without a version bump",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			base, _ := cmd.Flags().GetString("base")
			head, _ := cmd.Flags().GetString("head")
			return c.app.CheckRecipes(cmd.Context(), app.RecipeCheckOptions{
				ConfigPath: configPath(cmd),
				Base:       base,
				Head:       head,
			})
		},
	}
	cmd.Flags().String("base", "", "Ref to compare against (default: base_ref from config)")
	cmd.Flags().String("head", "", "Ref under test (default: head_ref from config, or the working tree)")
	return cmd
}
