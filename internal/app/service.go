package app

import (
	"context"
	"fmt"

	"github.com/guttosm/dashpulse/config"
	"github.com/guttosm/dashpulse/internal/catalog"
	"github.com/guttosm/dashpulse/internal/domain/models"
	"github.com/guttosm/dashpulse/internal/graph"
	"github.com/guttosm/dashpulse/internal/logger"
	"github.com/guttosm/dashpulse/internal/market"
	"github.com/guttosm/dashpulse/internal/mockdata"
	"github.com/guttosm/dashpulse/internal/service"
	"github.com/guttosm/dashpulse/internal/settings"
	"github.com/guttosm/dashpulse/internal/storage"
)

// catalogLoader is an indirection for unit testing; defaults to catalog.Load.
var catalogLoader = catalog.Load

// Components are the long-lived objects behind the HTTP surface.
type Components struct {
	Catalog  *catalog.Catalog
	Board    *market.Board
	Cache    *mockdata.SeriesCache
	Settings *settings.Store
	Graphs   *graph.Registry
	Service  service.DashboardService
}

// NewComponents builds and wires every component from cfg. Nothing is started.
//
// The ticker refresh follows the data refresh preference: TICKER_REFRESH seeds it and
// later preference updates reschedule the board.
func NewComponents(cfg config.Config) (*Components, error) {
	cat, err := catalogLoader(cfg.Market.SeedFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	board := market.NewBoard(cat.Quotes)

	seed := make([]storage.WatchlistEntry, 0, len(cat.Watchlist))
	for _, w := range cat.Watchlist {
		seed = append(seed, storage.WatchlistEntry{Symbol: w.Symbol, Name: w.Name})
	}
	repo, err := storage.NewWatchlistRepository(seed...)
	if err != nil {
		return nil, fmt.Errorf("failed to seed watchlist: %w", err)
	}

	store := settings.NewStore()
	prefs, err := store.UpdatePreferences(models.Preferences{DataRefreshRate: models.RefreshRate(cfg.Market.TickerRefresh)})
	if err != nil {
		return nil, fmt.Errorf("ticker refresh: %w", err)
	}
	if err := board.SetRefreshRate(prefs.DataRefreshRate); err != nil {
		return nil, fmt.Errorf("ticker refresh: %w", err)
	}
	store.OnPreferencesChange(func(prev, next models.Preferences) {
		if prev.DataRefreshRate == next.DataRefreshRate {
			return
		}
		if err := board.SetRefreshRate(next.DataRefreshRate); err != nil {
			logger.L().Error().Err(err).Str("rate", string(next.DataRefreshRate)).Msg("ticker_reschedule_failed")
		}
	})

	cache := mockdata.NewSeriesCache(mockdata.NewGenerator())
	graphs := graph.NewRegistry(cache, cfg.Graph.MaxGraphs, graph.WithLoadDelay(cfg.Graph.LoadDelay))

	svc := service.NewDashboardService(service.Deps{
		Cache:          cache,
		Board:          board,
		Watchlist:      market.NewWatchlist(repo, board),
		Portfolio:      market.NewPortfolio(cat.Holdings, cat.Featured, board),
		Settings:       store,
		Graphs:         graphs,
		FeaturedSymbol: cfg.Market.FeaturedSymbol,
	})

	return &Components{
		Catalog:  cat,
		Board:    board,
		Cache:    cache,
		Settings: store,
		Graphs:   graphs,
		Service:  svc,
	}, nil
}

// FeaturedKeys lists the featured symbol in every visualization type.
func FeaturedKeys(symbol string) []models.CacheKey {
	keys := make([]models.CacheKey, 0, len(models.VisualizationTypes))
	for _, vt := range models.VisualizationTypes {
		keys = append(keys, models.CacheKey{Symbol: service.NormalizeSymbol(symbol), Type: vt})
	}
	return keys
}

// Warm pre-generates the featured series so the first dashboard request is a cache hit.
func (c *Components) Warm(ctx context.Context, featured string) error {
	keys := FeaturedKeys(featured)
	if err := c.Cache.Warm(ctx, keys, len(keys)); err != nil {
		return fmt.Errorf("failed to warm series cache: %w", err)
	}
	return nil
}
