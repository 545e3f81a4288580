package graph

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/guttosm/dashpulse/internal/domain/models"
	"github.com/guttosm/dashpulse/internal/logger"
)

// ErrTooManyGraphs is returned by Create when the registry is full.
var ErrTooManyGraphs = errors.New("too many open graphs")

// DefaultMaxGraphs caps the number of concurrently open graph sessions.
const DefaultMaxGraphs = 1000

// newID is an indirection for tests.
var newID = uuid.NewString

// Registry tracks open graph sessions by id. It is safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	graphs map[string]*Graph
	loader Loader
	opts   []Option
	max    int
}

// NewRegistry creates a registry whose graphs load through loader and share opts.
// limit <= 0 selects DefaultMaxGraphs.
func NewRegistry(loader Loader, limit int, opts ...Option) *Registry {
	if limit <= 0 {
		limit = DefaultMaxGraphs
	}
	return &Registry{
		graphs: make(map[string]*Graph),
		loader: loader,
		opts:   opts,
		max:    limit,
	}
}

// Create registers a new graph and starts its first load.
func (r *Registry) Create(symbol string, vt models.VisualizationType) (*Graph, error) {
	r.mu.Lock()
	if len(r.graphs) >= r.max {
		r.mu.Unlock()
		return nil, fmt.Errorf("%d graphs open: %w", r.max, ErrTooManyGraphs)
	}
	g := New(newID(), symbol, vt, r.loader, r.opts...)
	r.graphs[g.ID()] = g
	r.mu.Unlock()

	g.Open()
	logger.L().Info().Str("graph_id", g.ID()).Str("symbol", symbol).Str("type", vt.String()).Msg("graph_opened")
	return g, nil
}

// Get returns the graph with id or ErrNotFound.
func (r *Registry) Get(id string) (*Graph, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.graphs[id]
	if !ok {
		return nil, fmt.Errorf("graph %q: %w", id, models.ErrNotFound)
	}
	return g, nil
}

// Delete closes and removes the graph with id.
func (r *Registry) Delete(id string) error {
	r.mu.Lock()
	g, ok := r.graphs[id]
	delete(r.graphs, id)
	r.mu.Unlock()

	if !ok {
		return fmt.Errorf("graph %q: %w", id, models.ErrNotFound)
	}
	g.Close()
	logger.L().Info().Str("graph_id", id).Msg("graph_closed")
	return nil
}

// Len returns the number of open graphs.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.graphs)
}

// CloseAll closes every graph and empties the registry.
func (r *Registry) CloseAll() {
	r.mu.Lock()
	graphs := r.graphs
	r.graphs = make(map[string]*Graph)
	r.mu.Unlock()

	for _, g := range graphs {
		g.Close()
	}
}
