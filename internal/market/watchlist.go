package market

import (
	"fmt"
	"strings"

	"github.com/guttosm/dashpulse/internal/domain/models"
	"github.com/guttosm/dashpulse/internal/storage"
)

// Watchlist joins stored watchlist entries with live board quotes.
type Watchlist struct {
	repo   storage.WatchlistRepository
	quotes QuoteSource
}

// NewWatchlist creates a Watchlist over repo, priced by quotes.
func NewWatchlist(repo storage.WatchlistRepository, quotes QuoteSource) *Watchlist {
	return &Watchlist{repo: repo, quotes: quotes}
}

// Items returns the watchlist with current prices. Entries whose symbol lost its quote
// are returned with zero prices.
func (w *Watchlist) Items() []models.WatchlistItem {
	entries := w.repo.List()
	items := make([]models.WatchlistItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, w.item(e))
	}
	return items
}

// Add tracks symbol. Only symbols quoted on the board can be added.
func (w *Watchlist) Add(symbol, name string) (models.WatchlistItem, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if _, ok := w.quotes.Quote(symbol); !ok {
		return models.WatchlistItem{}, fmt.Errorf("no quote for symbol %q: %w", symbol, models.ErrInvalidArgument)
	}
	e, err := w.repo.Add(symbol, name)
	if err != nil {
		return models.WatchlistItem{}, err
	}
	return w.item(e), nil
}

// Remove stops tracking symbol.
func (w *Watchlist) Remove(symbol string) error {
	return w.repo.Remove(symbol)
}

func (w *Watchlist) item(e storage.WatchlistEntry) models.WatchlistItem {
	it := models.WatchlistItem{ID: e.ID, Symbol: e.Symbol, Name: e.Name}
	if q, ok := w.quotes.Quote(e.Symbol); ok {
		it.Price = q.Price
		it.Change = q.Change
		it.ChangePercent = q.ChangePercent
	}
	return it
}
