// Package cli implements the boxcut command line.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/piwi3910/BoxCut/internal/cli/formatter"
	"github.com/piwi3910/BoxCut/internal/engine"
	"github.com/piwi3910/BoxCut/internal/model"
	"github.com/piwi3910/BoxCut/internal/project"
	"github.com/piwi3910/BoxCut/internal/server"
	"github.com/piwi3910/BoxCut/internal/store"
	"github.com/spf13/cobra"
)

// recentLimit caps the recent designs kept in the config file.
const recentLimit = 10

// App holds the paths and loaded state shared by all commands. Config and
// Catalog are filled in before any command runs.
type App struct {
	ConfigPath  string
	CatalogPath string // Overrides the config's catalog_path when set
	HistoryPath string // Overrides the config's history_path when set
	PresetPath  string

	Verbose bool
	Plain   bool

	Config  model.AppConfig
	Catalog model.Catalog
	Logger  *slog.Logger

	// IsTerminal reports whether stdout is a terminal. Nil means it is not.
	IsTerminal func() bool

	history *store.Store
}

// NewApp returns an App using the default file locations.
func NewApp() *App {
	return &App{
		ConfigPath:  project.DefaultConfigPath(),
		HistoryPath: os.Getenv("BOXCUT_DB"),
		PresetPath:  project.DefaultPresetPath(),
	}
}

// Load reads the config and the catalog. Flags given on the command line
// take precedence over the config file.
func (a *App) Load() error {
	cfg, err := project.LoadAppConfig(a.ConfigPath)
	if err != nil {
		return fmt.Errorf("loading config %s: %w", a.ConfigPath, err)
	}
	a.Config = cfg

	catalogPath := a.CatalogPath
	if catalogPath == "" {
		catalogPath = cfg.CatalogPath
	}
	if catalogPath == "" {
		catalogPath = project.DefaultCatalogPath()
	}
	catalog, err := project.LoadCatalog(catalogPath)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}
	a.Catalog = catalog
	a.CatalogPath = catalogPath

	if a.HistoryPath == "" {
		a.HistoryPath = cfg.HistoryPath
	}
	if a.HistoryPath == "" {
		a.HistoryPath = project.DefaultHistoryPath()
	}
	return nil
}

// Generator returns a pipeline configured from the loaded config and catalog.
func (a *App) Generator() *engine.Generator {
	return engine.NewGenerator(a.Catalog, a.Config)
}

// History opens the design history on first use.
func (a *App) History() (*store.Store, error) {
	if a.history != nil {
		return a.history, nil
	}
	st, err := store.Open(a.HistoryPath)
	if err != nil {
		return nil, fmt.Errorf("opening history %s: %w", a.HistoryPath, err)
	}
	a.logger().Debug("history opened", "path", a.HistoryPath)
	a.history = st
	return st, nil
}

// Close releases the history database if it was opened.
func (a *App) Close() error {
	if a.history == nil {
		return nil
	}
	err := a.history.Close()
	a.history = nil
	return err
}

func (a *App) logger() *slog.Logger {
	if a.Logger == nil {
		a.Logger = server.NewLogger(nil, slog.LevelInfo)
	}
	return a.Logger
}

// rememberDesign records a saved design in the config's recent list.
func (a *App) rememberDesign(id string) {
	a.Config.AddRecentDesign(id, recentLimit)
	if err := project.SaveAppConfig(a.ConfigPath, a.Config); err != nil {
		a.logger().Warn("could not update recent designs", "path", a.ConfigPath, "error", err)
	}
}

// NewRootCmd creates the top-level "boxcut" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "boxcut",
		Short:         "Panel cut lists and material estimates for simple boxes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelWarn
			if app.Verbose {
				level = slog.LevelDebug
			}
			app.Logger = server.NewLogger(cmd.ErrOrStderr(), level)

			tty := app.IsTerminal != nil && app.IsTerminal()
			formatter.SetPlain(app.Plain || !tty)

			return app.Load()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&app.ConfigPath, "config", app.ConfigPath, "config file (env BOXCUT_CONFIG)")
	pf.StringVar(&app.CatalogPath, "catalog", app.CatalogPath, "catalog YAML file")
	pf.StringVar(&app.HistoryPath, "history", app.HistoryPath, "design history database (env BOXCUT_DB)")
	pf.StringVar(&app.PresetPath, "presets", app.PresetPath, "box presets file")
	pf.BoolVarP(&app.Verbose, "verbose", "v", false, "debug logging on stderr")
	pf.BoolVar(&app.Plain, "plain", false, "plain output without borders")

	root.AddCommand(
		newGenerateCmd(app),
		newBatchCmd(app),
		newCompareCmd(app),
		newCatalogCmd(app),
		newPresetCmd(app),
		newHistoryCmd(app),
		newShowCmd(app),
		newInspectCmd(app),
		newServeCmd(app),
	)

	return root
}
