package storage

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/guttosm/dashpulse/internal/domain/models"
)

// WatchlistEntry is a stored watchlist row.
type WatchlistEntry struct {
	ID      string
	Symbol  string
	Name    string
	AddedAt time.Time
}

// WatchlistRepository defines the contract for watchlist storage.
type WatchlistRepository interface {
	List() []WatchlistEntry
	Get(symbol string) (WatchlistEntry, error)
	Add(symbol, name string) (WatchlistEntry, error)
	Remove(symbol string) error
}

// idGen and clock are indirections for tests.
var (
	idGen = uuid.NewString
	clock = time.Now
)

type watchlistRepository struct {
	mu      sync.RWMutex
	entries []WatchlistEntry
}

// NewWatchlistRepository returns an in-memory repository preloaded with seed entries
// (symbol, name pairs). Invalid or duplicate seeds are reported as an error.
func NewWatchlistRepository(seed ...WatchlistEntry) (WatchlistRepository, error) {
	r := &watchlistRepository{}
	for _, e := range seed {
		if _, err := r.Add(e.Symbol, e.Name); err != nil {
			return nil, fmt.Errorf("seed watchlist: %w", err)
		}
	}
	return r, nil
}

// List returns entries in insertion order.
func (r *watchlistRepository) List() []WatchlistEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]WatchlistEntry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Get returns the entry for symbol (case-insensitive).
func (r *watchlistRepository) Get(symbol string) (WatchlistEntry, error) {
	symbol = normalize(symbol)
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i := r.indexLocked(symbol); i >= 0 {
		return r.entries[i], nil
	}
	return WatchlistEntry{}, fmt.Errorf("watchlist symbol %q: %w", symbol, models.ErrNotFound)
}

// Add appends a new entry. Blank or duplicate symbols are rejected.
func (r *watchlistRepository) Add(symbol, name string) (WatchlistEntry, error) {
	symbol = normalize(symbol)
	if symbol == "" {
		return WatchlistEntry{}, fmt.Errorf("symbol is required: %w", models.ErrInvalidArgument)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = symbol
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.indexLocked(symbol) >= 0 {
		return WatchlistEntry{}, fmt.Errorf("symbol %q already on watchlist: %w", symbol, models.ErrInvalidArgument)
	}
	e := WatchlistEntry{ID: idGen(), Symbol: symbol, Name: name, AddedAt: clock().UTC()}
	r.entries = append(r.entries, e)
	return e, nil
}

// Remove deletes the entry for symbol.
func (r *watchlistRepository) Remove(symbol string) error {
	symbol = normalize(symbol)
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexLocked(symbol)
	if i < 0 {
		return fmt.Errorf("watchlist symbol %q: %w", symbol, models.ErrNotFound)
	}
	r.entries = append(r.entries[:i], r.entries[i+1:]...)
	return nil
}

func (r *watchlistRepository) indexLocked(symbol string) int {
	for i, e := range r.entries {
		if e.Symbol == symbol {
			return i
		}
	}
	return -1
}

func normalize(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}
