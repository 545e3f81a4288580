package graph

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/guttosm/dashpulse/internal/domain/models"
	"github.com/guttosm/dashpulse/internal/logger"
)

const (
	MinZoom    = 0.5
	MaxZoom    = 5.0
	ZoomFactor = 1.2

	// PanStep is the on-screen pan distance; the offset moves by PanStep / zoom.
	PanStep = 50.0

	// DefaultLoadDelay is the simulated latency before a series is resolved.
	DefaultLoadDelay = 1500 * time.Millisecond

	loadFailedMessage = "Failed to fetch graph data. Please try again."
)

// Status is the load lifecycle of a graph.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
	StatusError   Status = "error"
)

// Direction is a pan direction.
type Direction string

const (
	PanLeft  Direction = "left"
	PanRight Direction = "right"
	PanUp    Direction = "up"
	PanDown  Direction = "down"
)

// Loader returns the series for a symbol and visualization type. *mockdata.SeriesCache implements it.
type Loader interface {
	Get(ctx context.Context, symbol string, vt models.VisualizationType) (*models.Series, error)
}

// Scheduler runs f once after d and returns a function that prevents the run if it has not started.
type Scheduler func(d time.Duration, f func()) (stop func() bool)

func timerScheduler(d time.Duration, f func()) func() bool {
	return time.AfterFunc(d, f).Stop
}

// Offset is the pan offset on both axes.
type Offset struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// State is an immutable snapshot of a graph.
type State struct {
	ID         string                   `json:"id"`
	Symbol     string                   `json:"symbol"`
	Type       models.VisualizationType `json:"type"`
	Status     Status                   `json:"status"`
	Zoom       float64                  `json:"zoom"`
	Pan        Offset                   `json:"pan"`
	Series     *models.Series           `json:"series,omitempty"`
	Error      string                   `json:"error,omitempty"`
	Detail     string                   `json:"detail,omitempty"`
	Retryable  bool                     `json:"retryable"`
	Generation uint64                   `json:"generation"`
}

// Option customizes a Graph.
type Option func(*Graph)

// WithLoadDelay sets the simulated load latency.
func WithLoadDelay(d time.Duration) Option {
	return func(g *Graph) { g.delay = d }
}

// WithScheduler replaces the timer used to resolve loads.
func WithScheduler(s Scheduler) Option {
	return func(g *Graph) { g.schedule = s }
}

// pending is an in-flight load that can be cancelled.
type pending struct {
	stop   func() bool
	cancel context.CancelFunc
}

// Graph holds the interaction state of one advanced graph widget.
//
// Behavior:
//   - Open moves idle -> loading; the load resolves to ready or error after the load delay.
//   - Changing symbol or type while loading, ready or in error starts a new load.
//   - Starting a load cancels the previous one and bumps the generation; late results
//     from older generations are discarded.
//   - Zoom and pan are independent of the load status.
type Graph struct {
	mu       sync.Mutex
	id       string
	loader   Loader
	delay    time.Duration
	schedule Scheduler

	symbol  string
	vt      models.VisualizationType
	status  Status
	zoom    float64
	pan     Offset
	series  *models.Series
	err     error
	gen     uint64
	pending *pending
	closed  bool
}

// New creates an idle graph. Call Open to start the first load.
func New(id, symbol string, vt models.VisualizationType, loader Loader, opts ...Option) *Graph {
	g := &Graph{
		id:       id,
		loader:   loader,
		delay:    DefaultLoadDelay,
		schedule: timerScheduler,
		symbol:   symbol,
		vt:       vt,
		status:   StatusIdle,
		zoom:     1,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the graph identifier.
func (g *Graph) ID() string { return g.id }

// Open starts the initial load. It is a no-op unless the graph is idle.
func (g *Graph) Open() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.status == StatusIdle {
		g.startLoadLocked()
	}
	return g.snapshotLocked()
}

// SetView switches symbol and/or visualization type. Empty arguments keep the current value.
// Any actual change on a non-idle graph re-enters loading. A closed graph is left unchanged.
func (g *Graph) SetView(symbol string, vt models.VisualizationType) State {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return g.snapshotLocked()
	}

	changed := false
	if symbol != "" && symbol != g.symbol {
		g.symbol = symbol
		changed = true
	}
	if vt != "" && vt != g.vt {
		g.vt = vt
		changed = true
	}
	if changed && g.status != StatusIdle {
		g.startLoadLocked()
	}
	return g.snapshotLocked()
}

// Retry reloads a graph that is in the error state.
func (g *Graph) Retry() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.status == StatusError {
		g.startLoadLocked()
	}
	return g.snapshotLocked()
}

// ZoomIn multiplies the zoom by ZoomFactor, clamped to MaxZoom.
func (g *Graph) ZoomIn() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.zoom = clampZoom(g.zoom * ZoomFactor)
	return g.snapshotLocked()
}

// ZoomOut divides the zoom by ZoomFactor, clamped to MinZoom.
func (g *Graph) ZoomOut() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.zoom = clampZoom(g.zoom / ZoomFactor)
	return g.snapshotLocked()
}

// Pan moves the offset by PanStep / zoom in the given direction.
func (g *Graph) Pan(dir Direction) (State, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	step := PanStep / g.zoom
	switch dir {
	case PanLeft:
		g.pan.X -= step
	case PanRight:
		g.pan.X += step
	case PanUp:
		g.pan.Y -= step
	case PanDown:
		g.pan.Y += step
	default:
		return g.snapshotLocked(), fmt.Errorf("pan direction %q: %w", dir, models.ErrInvalidArgument)
	}
	return g.snapshotLocked(), nil
}

// ResetView restores zoom 1.0 and a zero pan offset.
func (g *Graph) ResetView() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.zoom = 1
	g.pan = Offset{}
	return g.snapshotLocked()
}

// Snapshot returns the current state.
func (g *Graph) Snapshot() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snapshotLocked()
}

// Close cancels any pending load. A closed graph never starts another load.
func (g *Graph) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.cancelPendingLocked()
	g.closed = true
}

func (g *Graph) startLoadLocked() {
	if g.closed {
		return
	}
	g.cancelPendingLocked()

	g.gen++
	gen, symbol, vt := g.gen, g.symbol, g.vt
	g.status = StatusLoading
	g.series = nil
	g.err = nil

	ctx, cancel := context.WithCancel(context.Background())
	stop := g.schedule(g.delay, func() { g.resolve(ctx, gen, symbol, vt) })
	g.pending = &pending{stop: stop, cancel: cancel}

	logger.L().Debug().Str("graph_id", g.id).Str("symbol", symbol).Str("type", vt.String()).Uint64("generation", gen).Msg("graph_load_scheduled")
}

func (g *Graph) cancelPendingLocked() {
	if g.pending == nil {
		return
	}
	g.pending.stop()
	g.pending.cancel()
	g.pending = nil
}

func (g *Graph) resolve(ctx context.Context, gen uint64, symbol string, vt models.VisualizationType) {
	if ctx.Err() != nil {
		return
	}
	series, err := g.loader.Get(ctx, symbol, vt)

	g.mu.Lock()
	defer g.mu.Unlock()

	if gen != g.gen || g.closed {
		logger.L().Debug().Str("graph_id", g.id).Uint64("generation", gen).Uint64("current", g.gen).Msg("graph_stale_load_discarded")
		return
	}
	if g.pending != nil {
		g.pending.cancel()
		g.pending = nil
	}

	if err != nil {
		g.status = StatusError
		g.err = err
		logger.L().Warn().Err(err).Str("graph_id", g.id).Str("symbol", symbol).Str("type", vt.String()).Msg("graph_load_failed")
		return
	}
	g.status = StatusReady
	g.series = series
	logger.L().Info().Str("graph_id", g.id).Str("symbol", symbol).Str("type", vt.String()).Msg("graph_loaded")
}

func (g *Graph) snapshotLocked() State {
	st := State{
		ID:         g.id,
		Symbol:     g.symbol,
		Type:       g.vt,
		Status:     g.status,
		Zoom:       g.zoom,
		Pan:        g.pan,
		Series:     g.series,
		Generation: g.gen,
	}
	if g.status == StatusError && g.err != nil {
		st.Error = loadFailedMessage
		st.Detail = g.err.Error()
		st.Retryable = true
	}
	return st
}

func clampZoom(z float64) float64 {
	return math.Min(MaxZoom, math.Max(MinZoom, z))
}
