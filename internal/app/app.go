package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/dashpulse/config"
	"github.com/guttosm/dashpulse/internal/api"
	"github.com/guttosm/dashpulse/internal/logger"
)

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Loads the market catalog and wires components via NewComponents().
//   - Warms the series cache for the featured symbol.
//   - Starts the ticker refresh scheduler.
//   - Configures the Gin router with all API routes.
//   - Registers health and readiness probes.
//   - Provides a cleanup function that closes graph sessions and stops the ticker.
func InitializeApp(ctx context.Context, cfg config.Config) (*gin.Engine, func(), error) {
	c, err := NewComponents(cfg)
	if err != nil {
		return nil, nil, err
	}

	if err := c.Warm(ctx, cfg.Market.FeaturedSymbol); err != nil {
		return nil, nil, err
	}

	c.Board.Start()

	handler := api.NewHandler(c.Service)
	router := api.NewRouter(handler, api.RouterConfig{
		RateLimitPerMinute: cfg.Server.RateLimitPerMinute,
		RequestTimeout:     cfg.Server.RequestTimeout,
	})

	api.NewHealthHandler(map[string]api.ReadinessCheck{
		"ticker": func() error {
			if len(c.Board.Quotes()) == 0 {
				return errors.New("ticker board is empty")
			}
			return nil
		},
		"series_cache": func() error {
			if c.Cache.Len() == 0 {
				return fmt.Errorf("series cache is cold")
			}
			return nil
		},
	}).Register(router)

	logger.L().Info().
		Int("symbols", len(c.Catalog.Quotes)).
		Str("featured", cfg.Market.FeaturedSymbol).
		Str("refresh", string(c.Board.RefreshRate())).
		Msg("app_initialized")

	cleanup := func() {
		c.Graphs.CloseAll()
		c.Board.Stop()
	}

	return router, cleanup, nil
}
