package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rshade/greencart/internal/config"
	"github.com/rshade/greencart/internal/httpapi"
	"github.com/rshade/greencart/internal/logging"
)

// NewServeCmd creates the serve command, which runs the storefront API until
// interrupted.
func NewServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the GreenCart HTTP API",
		Example: `  # Listen on the configured address
  greencart serve

  # Listen on an explicit address with simulated latency disabled
  GREENCART_NO_LATENCY=true greencart serve --addr 127.0.0.1:9000`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.GetGlobalConfig()
			if addr != "" {
				cfg.Server.Addr = addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			log := logging.FromContext(ctx)
			log.Info().
				Str("addr", cfg.Server.Addr).
				Bool("seed", cfg.Store.Seed).
				Dur("query_latency", cfg.Store.QueryLatency).
				Msg("starting server")

			srv := newAPIServer(cfg, baseLogger)
			err := srv.Run(ctx, httpapi.Options{
				Addr:            cfg.Server.Addr,
				ReadTimeout:     cfg.Server.ReadTimeout,
				WriteTimeout:    cfg.Server.WriteTimeout,
				ShutdownTimeout: cfg.Server.ShutdownTimeout,
			}, func(bound string) {
				fmt.Fprintf(cmd.OutOrStdout(), "GreenCart API listening on http://%s\n", bound)
			})
			if err != nil {
				return fmt.Errorf("serve: %w", err)
			}
			log.Info().Msg("server stopped")
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides server.addr)")
	return cmd
}
