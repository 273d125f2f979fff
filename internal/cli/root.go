package cli

import (
	"io"
	"os"

	"github.com/dwikikusuma/storefront/internal/tui"
	"github.com/dwikikusuma/storefront/pkg/config"
	"github.com/dwikikusuma/storefront/pkg/logger"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var catalogPath string
	var loginName string
	var loginEmail string
	var debugLog string

	cmd := &cobra.Command{
		Use:          "storefront",
		Short:        "Browse products, fill a cart, check out",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg := config.Load()
			if catalogPath != "" {
				cfg.CatalogPath = catalogPath
			}

			// The TUI owns the terminal, so logs go to a file or
			// nowhere at all.
			var w io.Writer = io.Discard
			if debugLog != "" {
				f, err := os.OpenFile(debugLog, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			log := logger.New(logger.Options{
				Service: "storefront",
				Env:     cfg.AppEnv,
				Level:   cfg.LogLevel,
				Writer:  w,
			})

			c, err := buildCore(cfg.CatalogPath, cfg.PaymentDelay, log)
			if err != nil {
				return err
			}

			if loginName != "" {
				c.auth.Login(loginName, loginEmail)
			}

			return tui.Run(tui.Deps{
				Catalog:   c.catalog,
				Cart:      c.cart,
				Checkout:  c.checkout,
				Orders:    c.orders,
				Auth:      c.auth,
				SessionID: uuid.NewString(),
				Log:       log,
			})
		},
	}

	cmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "path to a catalog YAML file (defaults to the built-in demo catalog)")
	cmd.Flags().StringVar(&loginName, "name", "", "sign in with this display name (prefills checkout)")
	cmd.Flags().StringVar(&loginEmail, "email", "", "sign in with this email (prefills checkout)")
	cmd.Flags().StringVar(&debugLog, "log-file", "", "write logs to this file")

	cmd.AddCommand(serveCmd())
	return cmd
}
