package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/GriffinCanCode/RetreatCatalog/backend/internal/infrastructure/server"
)

func serveCmd(g *globals) *cobra.Command {
	var port, host string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the catalog HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("port") {
				g.cfg.Server.Port = port
			}
			if cmd.Flags().Changed("host") {
				g.cfg.Server.Host = host
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv, err := server.NewServer(ctx, g.cfg, nil)
			if err != nil {
				return err
			}
			defer func() { _ = srv.Close() }()

			return srv.Run(ctx)
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "8000", "listen port (overrides PORT)")
	cmd.Flags().StringVar(&host, "host", "0.0.0.0", "listen host (overrides HOST)")
	return cmd
}
