package cli

import (
	"fmt"
	"os"

	"github.com/piwi3910/BoxCut/internal/cli/formatter"
	"github.com/piwi3910/BoxCut/internal/model"
	"github.com/piwi3910/BoxCut/internal/project"
	"github.com/spf13/cobra"
)

func newCatalogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Show sheet sizes and material prices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatCatalog(app.Catalog))
			return nil
		},
	}
	cmd.AddCommand(newCatalogInitCmd(app))
	return cmd
}

func newCatalogInitCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the built-in catalog to the catalog file for editing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := app.CatalogPath
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("catalog %s already exists (use --force to overwrite)", path)
			}
			if err := project.SaveCatalog(path, model.DefaultCatalog()); err != nil {
				return fmt.Errorf("writing catalog: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing catalog file")
	return cmd
}
