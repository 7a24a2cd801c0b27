package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/piwi3910/BoxCut/internal/server"
	"github.com/spf13/cobra"
)

func newServeCmd(app *App) *cobra.Command {
	var (
		addr      string
		noHistory bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the design pipeline over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.Verbose {
				gin.SetMode(gin.ReleaseMode)
			}

			srv := server.New(app.Generator(), app.Catalog, nil, app.logger())
			if !noHistory {
				history, err := app.History()
				if err != nil {
					app.logger().Warn("history disabled", "error", err)
				} else {
					srv.History = history
				}
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return srv.Run(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().BoolVar(&noHistory, "no-history", false, "do not open the design history")
	return cmd
}
