package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvroute/csvgraph"
	"github.com/katalvlaran/lvroute/internal/config"
	"github.com/katalvlaran/lvroute/internal/logging"
	"github.com/katalvlaran/lvroute/route"
)

// rootFlags are shared by every subcommand.
type rootFlags struct {
	configPath string
	dataPath   string
	logLevel   string
}

// app is the state built in PersistentPreRunE.
type app struct {
	cfg config.Config
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	var (
		flags rootFlags
		a     app
	)

	root := &cobra.Command{
		Use:          "lvroute",
		Short:        "Find a route between two cities in a weighted adjacency table",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(flags.configPath)
			if err != nil {
				return err
			}
			if flags.dataPath != "" {
				cfg.Data.Path = flags.dataPath
			}
			if flags.logLevel != "" {
				cfg.Logging.Level = flags.logLevel
			}
			a.cfg = cfg
			a.log = logging.New(cfg.Logging, cmd.ErrOrStderr())

			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "path to a YAML config file")
	pf.StringVarP(&flags.dataPath, "data", "f", "", "path to the city CSV table (overrides config)")
	pf.StringVar(&flags.logLevel, "log-level", "", "log level: debug|info|warn|error")

	root.AddCommand(newRouteCmd(&a), newCitiesCmd(&a))

	return root
}

// loadGraph reads the configured table.
func (a *app) loadGraph() (*route.Graph, error) {
	g, err := csvgraph.LoadGraph(a.cfg.Data.Path)
	if err != nil {
		a.log.Error("load graph", "path", a.cfg.Data.Path, "err", err)
		return nil, err
	}
	a.log.Debug("graph loaded", "path", a.cfg.Data.Path, "cities", g.Len())

	return g, nil
}
