package cli

import (
	"fmt"

	"github.com/piwi3910/BoxCut/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newHistoryCmd(app *App) *cobra.Command {
	var (
		limit  int
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List saved designs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			history, err := app.History()
			if err != nil {
				return err
			}
			entries, err := history.List(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("listing history: %w", err)
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), entries)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatHistory(entries))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "number of designs to show (0 = all)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the list as JSON")
	cmd.AddCommand(newHistoryDeleteCmd(app))
	return cmd
}

func newHistoryDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a saved design",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			history, err := app.History()
			if err != nil {
				return err
			}
			if err := history.Delete(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("deleting design %s: %w", args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
			return nil
		},
	}
}

func newShowCmd(app *App) *cobra.Command {
	var (
		exports exportFlags
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a saved design and optionally export it again",
		Long:  "Shows a saved design. The ID may be shortened to any unique prefix of at least four characters.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			history, err := app.History()
			if err != nil {
				return err
			}
			entry, err := history.Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("loading design %s: %w", args[0], err)
			}

			out := cmd.OutOrStdout()
			if asJSON {
				if err := writeJSON(out, entry); err != nil {
					return err
				}
			} else {
				fmt.Fprintf(out, "%s  %s  %s\n", formatter.Bold(entry.Name), formatter.Dim(entry.ID), formatter.Dim(formatter.Timestamp(entry.CreatedAt)))
				fmt.Fprintln(out, formatter.FormatDesign(entry.Record))
			}

			written, err := exports.write(entry.Record, app.Config)
			for _, path := range written {
				fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", path)
			}
			return err
		},
	}

	exports.register(cmd.Flags())
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the saved entry as JSON")
	return cmd
}
