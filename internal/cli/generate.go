package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/piwi3910/BoxCut/internal/cli/formatter"
	"github.com/piwi3910/BoxCut/internal/engine"
	"github.com/piwi3910/BoxCut/internal/model"
	"github.com/spf13/cobra"
)

func newGenerateCmd(app *App) *cobra.Command {
	var (
		params  paramFlags
		exports exportFlags
		strict  bool
		save    bool
		name    string
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Derive the cut list and cost estimate for a box",
		Example: `  boxcut generate -W 400 -D 300 -H 150 -t 18 --material birch_plywood_18mm
  boxcut generate --prompt "box 40x30x15 cm, mdf" --pdf box.pdf --dxf box.dxf`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := params.resolve(cmd.Flags(), app.PresetPath, app.Catalog)
			if err != nil {
				return err
			}

			gen := app.Generator()
			if cmd.Flags().Changed("strict") {
				gen = gen.WithOptions(engine.EstimatorOptions{StrictFit: strict})
			}

			record, err := gen.Generate(raw)
			if err != nil {
				return fmt.Errorf("generating design: %w", err)
			}
			app.logger().Debug("design generated",
				"panels", len(record.Panels),
				"pieces", record.InstanceCount(),
				"material_area", record.MaterialArea,
				"waste_percent", record.WastePercent,
			)

			out := cmd.OutOrStdout()
			if asJSON {
				if err := writeJSON(out, record); err != nil {
					return err
				}
			} else {
				fmt.Fprintln(out, formatter.FormatDesign(record))
			}

			written, err := exports.write(record, app.Config)
			for _, path := range written {
				fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", path)
			}
			if err != nil {
				return err
			}

			if save {
				id, err := saveDesign(cmd, app, name, record)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Saved as %s\n", id)
			}
			return nil
		},
	}

	fs := cmd.Flags()
	params.register(fs, true)
	exports.register(fs)
	fs.BoolVar(&strict, "strict", false, "strict sheet fit check (default from config)")
	fs.BoolVar(&save, "save", false, "save the design to the history")
	fs.StringVar(&name, "name", "", "name for the saved design")
	fs.BoolVar(&asJSON, "json", false, "print the design record as JSON")

	return cmd
}

// saveDesign stores a record in the history and remembers its ID.
func saveDesign(cmd *cobra.Command, app *App, name string, record model.DesignRecord) (string, error) {
	history, err := app.History()
	if err != nil {
		return "", err
	}
	if name == "" {
		p := record.Params
		name = fmt.Sprintf("%.0fx%.0fx%.0f %s", p.Width, p.Depth, p.Height, p.Material)
	}
	entry, err := history.Save(cmd.Context(), name, record)
	if err != nil {
		return "", fmt.Errorf("saving design: %w", err)
	}
	app.rememberDesign(entry.ID)
	app.logger().Info("design saved", "id", entry.ID, "name", entry.Name)
	return entry.ID, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
