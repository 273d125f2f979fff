package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/dwikikusuma/storefront/internal/gateway"
	"github.com/dwikikusuma/storefront/pkg/config"
	"github.com/dwikikusuma/storefront/pkg/logger"
	"github.com/dwikikusuma/storefront/pkg/shutdown"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func serveCmd() *cobra.Command {
	var port int
	var catalogPath string

	c := &cobra.Command{
		Use:   "serve",
		Short: "Serve the storefront API over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Load()
			if port != 0 {
				cfg.HTTPPort = port
			}
			if catalogPath != "" {
				cfg.CatalogPath = catalogPath
			}

			log := logger.New(logger.Options{
				Service:   "storefront-api",
				Env:       cfg.AppEnv,
				Level:     cfg.LogLevel,
				AddSource: true,
			})

			core, err := buildCore(cfg.CatalogPath, cfg.PaymentDelay, log)
			if err != nil {
				return err
			}

			srv := gateway.New(core.catalog, core.cart, core.checkout, core.orders, log)

			addr := fmt.Sprintf(":%d", cfg.HTTPPort)
			server := &http.Server{
				Addr:              addr,
				Handler:           srv.Handler(),
				ReadHeaderTimeout: 5 * time.Second,
				ReadTimeout:       15 * time.Second,
				WriteTimeout:      15 * time.Second,
				IdleTimeout:       60 * time.Second,
			}

			ctx, cancel := shutdown.WithSignals(cmd.Context())
			defer cancel()

			g, ctx := errgroup.WithContext(ctx)

			g.Go(func() error {
				log.Info("http server starting", slog.String("addr", addr))
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			})

			g.Go(func() error {
				<-ctx.Done()
				log.Info("shutdown requested")

				shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer shutdownCancel()
				return server.Shutdown(shutdownCtx)
			})

			if err := g.Wait(); err != nil {
				log.Error("server error", slog.Any("err", err))
				return err
			}
			log.Info("bye")
			return nil
		},
	}

	c.Flags().IntVar(&port, "port", 0, "HTTP port (overrides HTTP_PORT)")
	c.Flags().StringVar(&catalogPath, "catalog", "", "path to a catalog YAML file")
	return c
}
