package dto

import (
	"github.com/guttosm/dashpulse/internal/domain/models"
	"github.com/guttosm/dashpulse/internal/graph"
)

// WatchlistItemResponse is a watchlist row with its rendered trend.
type WatchlistItemResponse struct {
	models.WatchlistItem
	Trend     models.Direction `json:"trend" example:"up"`
	Sparkline string           `json:"sparkline" example:"0,30 10,20 20,25 30,15 40,10 50,18 60,8 70,12 80,5"`
}

// NewWatchlistItemResponse decorates it with trend and sparkline.
func NewWatchlistItemResponse(it models.WatchlistItem) WatchlistItemResponse {
	return WatchlistItemResponse{WatchlistItem: it, Trend: it.Trend(), Sparkline: it.Sparkline()}
}

// NewWatchlistResponse decorates every item.
func NewWatchlistResponse(items []models.WatchlistItem) []WatchlistItemResponse {
	out := make([]WatchlistItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, NewWatchlistItemResponse(it))
	}
	return out
}

// QuoteResponse is a ticker entry with its display direction.
type QuoteResponse struct {
	models.Quote
	Direction models.Direction `json:"direction" example:"up"`
}

// NewTickerResponse decorates a quote snapshot.
func NewTickerResponse(quotes []models.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, QuoteResponse{Quote: q, Direction: models.DirectionOf(q.ChangePercent)})
	}
	return out
}

// OffsetResponse is a pan offset in pixels.
type OffsetResponse struct {
	X float64 `json:"x" example:"-25"`
	Y float64 `json:"y" example:"0"`
}

// GraphResponse is the observable state of a graph session.
type GraphResponse struct {
	ID         string         `json:"id" example:"0b6f1c9e-3f0e-4a55-8d6a-5c8e2c4f7a10"`
	Symbol     string         `json:"symbol" example:"AAPL"`
	Type       string         `json:"type" example:"trend-line"`
	Status     string         `json:"status" example:"ready"`
	Zoom       float64        `json:"zoom" example:"1.2"`
	Pan        OffsetResponse `json:"pan"`
	Series     *models.Series `json:"series,omitempty" swaggertype:"object"`
	Error      string         `json:"error,omitempty" example:"Failed to fetch graph data. Please try again."`
	Retryable  bool           `json:"retryable"`
	Generation uint64         `json:"generation" example:"1"`
}

// NewGraphResponse converts a graph snapshot.
func NewGraphResponse(s graph.State) GraphResponse {
	return GraphResponse{
		ID:         s.ID,
		Symbol:     s.Symbol,
		Type:       string(s.Type),
		Status:     string(s.Status),
		Zoom:       s.Zoom,
		Pan:        OffsetResponse{X: s.Pan.X, Y: s.Pan.Y},
		Series:     s.Series,
		Error:      s.Error,
		Retryable:  s.Retryable,
		Generation: s.Generation,
	}
}

// DashboardResponse is the composite payload of the dashboard page.
type DashboardResponse struct {
	Cards     []models.PortfolioCard  `json:"cards"`
	Ticker    []QuoteResponse         `json:"ticker"`
	Watchlist []WatchlistItemResponse `json:"watchlist"`
	Featured  *models.Series          `json:"featured" swaggertype:"object"`
}

// HealthResponse is returned by /healthz and /readyz.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}
