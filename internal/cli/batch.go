package cli

import (
	"fmt"
	"path/filepath"

	"github.com/piwi3910/BoxCut/internal/cli/formatter"
	"github.com/piwi3910/BoxCut/internal/engine"
	"github.com/piwi3910/BoxCut/internal/importer"
	"github.com/spf13/cobra"
)

func newBatchCmd(app *App) *cobra.Command {
	var (
		strict    bool
		save      bool
		exportDir string
	)

	cmd := &cobra.Command{
		Use:   "batch <file.csv|file.xlsx>",
		Short: "Generate one design per row of a CSV or Excel file",
		Long: `Reads box descriptions from a CSV or XLSX file. A header row is optional;
recognised columns are name, width, depth, height, thickness, kerf, material
and style. Empty cells take the configured defaults.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			imported := importer.ImportFile(args[0], app.Catalog)
			for _, w := range imported.Warnings {
				app.logger().Warn(w, "file", args[0])
			}
			for _, e := range imported.Errors {
				fmt.Fprintf(cmd.ErrOrStderr(), "skipped: %s\n", e)
			}
			if len(imported.Rows) == 0 {
				return fmt.Errorf("no usable rows in %s", args[0])
			}

			gen := app.Generator()
			if cmd.Flags().Changed("strict") {
				gen = gen.WithOptions(engine.EstimatorOptions{StrictFit: strict})
			}

			results := make([]formatter.BatchResult, 0, len(imported.Rows))
			for _, row := range imported.Rows {
				res := formatter.BatchResult{Name: row.Name, Line: row.Line}
				res.Record, res.Err = gen.Generate(row.Params)
				if res.Err != nil {
					results = append(results, res)
					continue
				}

				if exportDir != "" {
					stem := filepath.Join(exportDir, fileStem(row.Name))
					exports := exportFlags{dxf: stem + ".dxf", xlsx: stem + ".xlsx"}
					if _, err := exports.write(res.Record, app.Config); err != nil {
						return err
					}
				}
				if save {
					id, err := saveDesign(cmd, app, row.Name, res.Record)
					if err != nil {
						return err
					}
					res.ID = id
				}
				results = append(results, res)
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatBatch(results))
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "strict sheet fit check (default from config)")
	cmd.Flags().BoolVar(&save, "save", false, "save each design to the history")
	cmd.Flags().StringVar(&exportDir, "export-dir", "", "write a DXF and an XLSX per design into this directory")

	return cmd
}
