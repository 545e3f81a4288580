package main

//
//  @title           dashpulse API
//  @version         1.0
//  @description     Synthetic market data and graph interaction service for the trading dashboard.
//  @termsOfService  https://github.com/guttosm/dashpulse
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/dashpulse
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        series
//  @tag.description Cached mock time series
//
//  @tag.name        graphs
//  @tag.description Advanced graph sessions: zoom, pan, view and load lifecycle
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/guttosm/dashpulse/internal/logger"
)

// version is stamped at build time with -ldflags "-X main.version=...".
var version = "dev"

// newRootCmd assembles the dashpulse command tree.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "dashpulse",
		Short: "dashpulse - synthetic market data for the trading dashboard",
		Long: `dashpulse serves cached mock time series, a live ticker, a watchlist,
portfolio cards, user settings and advanced graph sessions over HTTP.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// A missing .env is normal outside local development.
			_ = godotenv.Load()
			logger.Init()
			return nil
		},
	}

	root.AddCommand(newServeCmd())
	root.AddCommand(newSeriesCmd())
	root.AddCommand(newVersionCmd())

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("dashpulse %s\n", version)
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
