package service

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/guttosm/dashpulse/internal/domain/models"
	"github.com/guttosm/dashpulse/internal/graph"
	"github.com/guttosm/dashpulse/internal/market"
	"github.com/guttosm/dashpulse/internal/mockdata"
	"github.com/guttosm/dashpulse/internal/settings"
)

// Dashboard is the composite payload of the dashboard page.
type Dashboard struct {
	Cards     []models.PortfolioCard
	Quotes    []models.Quote
	Watchlist []models.WatchlistItem
	Featured  *models.Series
}

// DashboardService is the business API consumed by the HTTP handlers and the CLI.
type DashboardService interface {
	Series(ctx context.Context, symbol, vt string) (*models.Series, error)
	Dashboard(ctx context.Context) (*Dashboard, error)

	Ticker() []models.Quote
	RefreshTicker() []models.Quote
	SubscribeTicker(buffer int) (<-chan []models.Quote, func())
	Portfolio() []models.PortfolioCard

	Watchlist() []models.WatchlistItem
	AddToWatchlist(symbol, name string) (models.WatchlistItem, error)
	RemoveFromWatchlist(symbol string) error

	Settings() models.Settings
	UpdatePreferences(p models.Preferences) (models.Preferences, error)
	UpdateNotifications(n models.Notifications) models.Notifications
	UpdateProfile(p models.Profile) (models.Profile, error)

	OpenGraph(symbol, vt string) (graph.State, error)
	Graph(id string) (graph.State, error)
	CloseGraph(id string) error
	ZoomGraph(id string, in bool) (graph.State, error)
	PanGraph(id, direction string) (graph.State, error)
	ResetGraph(id string) (graph.State, error)
	RetryGraph(id string) (graph.State, error)
	SetGraphView(id, symbol, vt string) (graph.State, error)
}

// Deps are the components a DashboardService composes.
type Deps struct {
	Cache          *mockdata.SeriesCache
	Board          *market.Board
	Watchlist      *market.Watchlist
	Portfolio      *market.Portfolio
	Settings       *settings.Store
	Graphs         *graph.Registry
	FeaturedSymbol string
}

type dashboardService struct {
	cache     *mockdata.SeriesCache
	board     *market.Board
	watchlist *market.Watchlist
	portfolio *market.Portfolio
	settings  *settings.Store
	graphs    *graph.Registry
	featured  string
}

// NewDashboardService wires the service over d.
func NewDashboardService(d Deps) DashboardService {
	return &dashboardService{
		cache:     d.Cache,
		board:     d.Board,
		watchlist: d.Watchlist,
		portfolio: d.Portfolio,
		settings:  d.Settings,
		graphs:    d.Graphs,
		featured:  NormalizeSymbol(d.FeaturedSymbol),
	}
}

// NormalizeSymbol trims and upper-cases a ticker symbol.
func NormalizeSymbol(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// resolveType parses vt, falling back to the default graph type setting when blank.
func (s *dashboardService) resolveType(vt string) (models.VisualizationType, error) {
	if strings.TrimSpace(vt) == "" {
		return s.settings.Preferences().DefaultGraphType, nil
	}
	return models.ParseVisualizationType(vt)
}

func (s *dashboardService) Series(ctx context.Context, symbol, vt string) (*models.Series, error) {
	t, err := s.resolveType(vt)
	if err != nil {
		return nil, err
	}
	return s.cache.Get(ctx, NormalizeSymbol(symbol), t)
}

// Dashboard gathers cards, ticker, watchlist and the featured series concurrently.
// Any failure fails the whole payload.
func (s *dashboardService) Dashboard(ctx context.Context) (*Dashboard, error) {
	var d Dashboard
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		d.Cards = s.portfolio.Cards()
		return nil
	})
	g.Go(func() error {
		d.Quotes = s.board.Quotes()
		return nil
	})
	g.Go(func() error {
		d.Watchlist = s.watchlist.Items()
		return nil
	})
	g.Go(func() error {
		series, err := s.Series(gctx, s.featured, "")
		if err != nil {
			return fmt.Errorf("featured series: %w", err)
		}
		d.Featured = series
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *dashboardService) Ticker() []models.Quote { return s.board.Quotes() }

// RefreshTicker advances the board once, independent of the refresh schedule.
func (s *dashboardService) RefreshTicker() []models.Quote { return s.board.Tick() }

func (s *dashboardService) SubscribeTicker(buffer int) (<-chan []models.Quote, func()) {
	return s.board.Subscribe(buffer)
}

func (s *dashboardService) Portfolio() []models.PortfolioCard { return s.portfolio.Cards() }

func (s *dashboardService) Watchlist() []models.WatchlistItem { return s.watchlist.Items() }

func (s *dashboardService) AddToWatchlist(symbol, name string) (models.WatchlistItem, error) {
	return s.watchlist.Add(symbol, strings.TrimSpace(name))
}

func (s *dashboardService) RemoveFromWatchlist(symbol string) error {
	return s.watchlist.Remove(NormalizeSymbol(symbol))
}

func (s *dashboardService) Settings() models.Settings { return s.settings.Get() }

func (s *dashboardService) UpdatePreferences(p models.Preferences) (models.Preferences, error) {
	return s.settings.UpdatePreferences(p)
}

func (s *dashboardService) UpdateNotifications(n models.Notifications) models.Notifications {
	return s.settings.UpdateNotifications(n)
}

func (s *dashboardService) UpdateProfile(p models.Profile) (models.Profile, error) {
	return s.settings.UpdateProfile(p)
}
