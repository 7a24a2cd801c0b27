// BoxCut: panel cut lists and material estimates for simple boxes.
//
// Build:
//   go build -o boxcut ./cmd/boxcut
//
// Environment:
//   BOXCUT_CONFIG  config file (default ~/.boxcut/config.json)
//   BOXCUT_DB      design history database (default ~/.boxcut/history.db)

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/piwi3910/BoxCut/internal/cli"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	app := cli.NewApp()
	defer app.Close()

	app.IsTerminal = func() bool {
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}

	return cli.NewRootCmd(app).ExecuteContext(context.Background())
}
