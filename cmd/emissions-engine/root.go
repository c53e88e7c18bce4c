package main

import (
	"fmt"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/carboneg/emissions-engine/internal/catalog"
	"github.com/carboneg/emissions-engine/internal/distance"
	"github.com/carboneg/emissions-engine/internal/engine"
)

// app holds the wired engine and its dependencies for subcommands.
type app struct {
	config  Config
	logger  zerolog.Logger
	catalog *catalog.MemoryCatalog
	engine  *engine.Engine
}

// setup wires the catalog, distance resolver and engine from the parsed
// configuration. Called once from the root command's PersistentPreRunE.
func (a *app) setup(cmd *cobra.Command) error {
	bootstrap := zerolog.New(cmd.ErrOrStderr()).With().Timestamp().Logger()
	a.config = parseConfig(bootstrap)
	a.logger = newLogger(a.config)

	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		a.logger = a.logger.Level(zerolog.DebugLevel)
	}

	if a.config.CatalogPath != "" {
		cat, err := catalog.LoadFile(a.config.CatalogPath)
		if err != nil {
			return fmt.Errorf("loading catalog from %s: %w", a.config.CatalogPath, err)
		}
		a.catalog = cat
		a.logger.Debug().Str("path", a.config.CatalogPath).Msg("catalog loaded from file")
	} else {
		cat, err := catalog.Default()
		if err != nil {
			return fmt.Errorf("loading embedded catalog: %w", err)
		}
		a.catalog = cat
	}

	client := distance.NewAirportGapClient(
		a.config.DistanceAPI,
		&http.Client{Timeout: a.config.HTTPTimeout},
		a.logger,
	)
	resolver := distance.NewFallbackResolver(client, a.logger)

	a.engine = engine.New(a.catalog, resolver, a.logger)
	return nil
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:           "emissions-engine",
		Short:         "Greenhouse gas emission calculation engine",
		Long:          "Calculate kg CO2e emissions for activity records against an Egyptian-first emission factor catalog.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.AddCommand(newCalculateCmd(a), newBatchCmd(a), newCategoriesCmd(a))

	return cmd
}
