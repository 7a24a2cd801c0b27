package cli

import (
	"fmt"
	"strings"

	"github.com/piwi3910/BoxCut/internal/cli/formatter"
	"github.com/piwi3910/BoxCut/internal/importer"
	"github.com/spf13/cobra"
)

func newInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file.dxf>",
		Short: "List the closed outlines in a DXF file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result := importer.ReadDXF(args[0])
			app.logger().Debug("dxf read", "file", args[0], "shapes", len(result.Shapes), "errors", len(result.Errors))

			if len(result.Shapes) == 0 && len(result.Errors) > 0 {
				return fmt.Errorf("reading %s: %s", args[0], strings.Join(result.Errors, "; "))
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatShapes(result))
			return nil
		},
	}
}
