package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/GriffinCanCode/RetreatCatalog/backend/internal/infrastructure/config"
)

// Execute runs the root command and exits non-zero on failure
func Execute() {
	cmd := newRootCmd()
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

// globals holds the persistent flags shared by every subcommand
type globals struct {
	envFiles []string
	catalog  string
	logLevel string
	dev      bool

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	g := &globals{}

	cmd := &cobra.Command{
		Use:          "retreats",
		Short:        "Retreat package catalog service",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return g.load(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringSliceVar(&g.envFiles, "env-file", []string{".env"}, "dotenv files applied before reading the environment")
	flags.StringVarP(&g.catalog, "catalog", "c", "", "catalog definition glob (overrides CATALOG_GLOB; empty uses the embedded seed)")
	flags.StringVar(&g.logLevel, "log-level", "", "log level (overrides LOG_LEVEL)")
	flags.BoolVar(&g.dev, "dev", false, "development logging (overrides LOG_DEV)")

	cmd.AddCommand(serveCmd(g))
	cmd.AddCommand(validateCmd(g))
	cmd.AddCommand(listCmd(g))
	return cmd
}

// load reads .env files and the environment, then applies explicitly set flags
func (g *globals) load(cmd *cobra.Command) error {
	if err := config.LoadDotEnv(g.envFiles...); err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("catalog") {
		cfg.Catalog.Glob = g.catalog
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = g.logLevel
	}
	if flags.Changed("dev") {
		cfg.Logging.Development = g.dev
	}

	g.cfg = cfg
	return nil
}
