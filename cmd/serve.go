package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/guttosm/dashpulse/config"
	_ "github.com/guttosm/dashpulse/docs" // swagger docs
	"github.com/guttosm/dashpulse/internal/app"
	"github.com/guttosm/dashpulse/internal/logger"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Long: `Start the REST API and the ticker websocket stream.
Configuration comes from the environment or a .env file; --port overrides SERVER_PORT.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config.LoadConfig()
			cfg := config.AppConfig
			if port, _ := cmd.Flags().GetString("port"); port != "" {
				cfg.Server.Port = port
			}
			return runServer(cmd.Context(), cfg)
		},
	}
	cmd.Flags().String("port", "", "Port for the API server (default: SERVER_PORT)")
	return cmd
}

func runServer(ctx context.Context, cfg config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	logger.L().Info().Msg("starting_api_server")

	router, cleanup, err := app.InitializeApp(ctx, cfg)
	if err != nil {
		logger.L().Error().Err(err).Msg("app_init_failed")
		return err
	}

	server := startServer(router, cfg.Server.Port)
	gracefulShutdown(ctx, server, cleanup)
	return nil
}

// startServer starts the HTTP server in a separate goroutine.
//
// Parameters:
//   - router (http.Handler): The HTTP router (Gin Engine) configured with all routes.
//   - port (string): The port where the server will listen for incoming requests.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server_starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server_failed_to_start")
		}
	}()

	return server
}

// gracefulShutdown waits for SIGINT or SIGTERM, drains the HTTP server and then
// runs cleanup (graph sessions closed, ticker stopped).
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(quit)

	<-quit
	logger.L().Info().Msg("shutting_down_server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Error().Err(err).Msg("server_forced_to_shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server_exited_gracefully")
}
