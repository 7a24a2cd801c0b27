package cli

import (
	"fmt"

	"github.com/piwi3910/BoxCut/internal/cli/formatter"
	"github.com/piwi3910/BoxCut/internal/model"
	"github.com/piwi3910/BoxCut/internal/project"
	"github.com/spf13/cobra"
)

func newPresetCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preset",
		Short: "Manage named box presets",
	}
	cmd.AddCommand(
		newPresetSaveCmd(app),
		newPresetListCmd(app),
		newPresetDeleteCmd(app),
	)
	return cmd
}

func newPresetSaveCmd(app *App) *cobra.Command {
	var (
		params      paramFlags
		description string
	)

	cmd := &cobra.Command{
		Use:   "save <name>",
		Short: "Save the given parameters as a preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := params.resolve(cmd.Flags(), app.PresetPath, app.Catalog)
			if err != nil {
				return err
			}

			presets, err := project.LoadPresets(app.PresetPath)
			if err != nil {
				return fmt.Errorf("loading presets: %w", err)
			}
			preset := model.NewBoxPreset(args[0], description, raw)
			presets.Add(preset)
			if err := project.SavePresets(app.PresetPath, presets); err != nil {
				return fmt.Errorf("saving presets: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Saved preset %q (%s)\n", preset.Name, preset.ID)
			return nil
		},
	}

	params.register(cmd.Flags(), false)
	cmd.Flags().StringVar(&description, "description", "", "what the preset is for")
	return cmd
}

func newPresetListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			presets, err := project.LoadPresets(app.PresetPath)
			if err != nil {
				return fmt.Errorf("loading presets: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatPresets(presets.Presets))
			return nil
		},
	}
}

func newPresetDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <name|id>",
		Aliases: []string{"rm"},
		Short:   "Delete a preset",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets, err := project.LoadPresets(app.PresetPath)
			if err != nil {
				return fmt.Errorf("loading presets: %w", err)
			}
			if !presets.Remove(args[0]) {
				return fmt.Errorf("preset %q not found", args[0])
			}
			if err := project.SavePresets(app.PresetPath, presets); err != nil {
				return fmt.Errorf("saving presets: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted preset %q\n", args[0])
			return nil
		},
	}
}
