package cli

import (
	"fmt"

	"github.com/piwi3910/BoxCut/internal/cli/formatter"
	"github.com/piwi3910/BoxCut/internal/engine"
	"github.com/spf13/cobra"
)

// scenarioJSON is the JSON form of one comparison row.
type scenarioJSON struct {
	Name         string  `json:"name"`
	Material     string  `json:"material,omitempty"`
	Thickness    float64 `json:"thickness,omitempty"`
	MaterialArea float64 `json:"material_area,omitempty"`
	WastePercent float64 `json:"waste_percent,omitempty"`
	TotalCost    float64 `json:"total_cost,omitempty"`
	Error        string  `json:"error,omitempty"`
}

func newCompareCmd(app *App) *cobra.Command {
	var (
		params paramFlags
		strict bool
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare the box across materials, a thinner stock and the strict fit check",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := params.resolve(cmd.Flags(), app.PresetPath, app.Catalog)
			if err != nil {
				return err
			}

			gen := app.Generator()
			opts := gen.Estimator.Options
			if cmd.Flags().Changed("strict") {
				opts.StrictFit = strict
			}

			current, err := engine.Normalize(raw, gen.Defaults)
			if err != nil {
				return fmt.Errorf("generating design: %w", err)
			}

			scenarios := engine.BuildDefaultScenarios(app.Catalog, current, opts)
			results := engine.CompareScenarios(gen, raw, scenarios)
			app.logger().Debug("scenarios compared", "count", len(results))

			if !asJSON {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatComparison(results))
				return nil
			}

			rows := make([]scenarioJSON, 0, len(results))
			for _, r := range results {
				row := scenarioJSON{Name: r.Scenario.Name}
				if r.Err != nil {
					row.Error = r.Err.Error()
				} else {
					row.Material = r.Record.Params.Material
					row.Thickness = r.Record.Params.Thickness
					row.MaterialArea = r.Record.MaterialArea
					row.WastePercent = r.Record.WastePercent
					row.TotalCost = r.Record.TotalCost
				}
				rows = append(rows, row)
			}
			return writeJSON(cmd.OutOrStdout(), rows)
		},
	}

	params.register(cmd.Flags(), true)
	cmd.Flags().BoolVar(&strict, "strict", false, "strict sheet fit check for the base scenario")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the comparison as JSON")

	return cmd
}
