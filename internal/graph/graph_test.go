package graph

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/guttosm/dashpulse/internal/domain/models"
)

// manualScheduler records scheduled loads; tests fire them explicitly.
type manualScheduler struct {
	mu    sync.Mutex
	tasks []*manualTask
}

type manualTask struct {
	f       func()
	delay   time.Duration
	stopped bool
	fired   bool
}

func (m *manualScheduler) schedule(d time.Duration, f func()) func() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	t := &manualTask{f: f, delay: d}
	m.tasks = append(m.tasks, t)
	return func() bool {
		m.mu.Lock()
		defer m.mu.Unlock()
		if t.fired || t.stopped {
			return false
		}
		t.stopped = true
		return true
	}
}

// fire runs task i unless it was stopped. It reports whether the task ran.
func (m *manualScheduler) fire(i int) bool {
	m.mu.Lock()
	t := m.tasks[i]
	if t.stopped || t.fired {
		m.mu.Unlock()
		return false
	}
	t.fired = true
	m.mu.Unlock()
	t.f()
	return true
}

// forceFire runs task i even if stopped, simulating a timer that fired before Stop.
func (m *manualScheduler) forceFire(i int) {
	m.mu.Lock()
	t := m.tasks[i]
	m.mu.Unlock()
	t.f()
}

func (m *manualScheduler) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tasks)
}

type stubLoader struct {
	mu    sync.Mutex
	err   error
	calls []models.CacheKey
}

func (s *stubLoader) Get(_ context.Context, symbol string, vt models.VisualizationType) (*models.Series, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, models.CacheKey{Symbol: symbol, Type: vt})
	if s.err != nil {
		return nil, s.err
	}
	return models.NewSeries(models.CacheKey{Symbol: symbol, Type: vt}, time.Time{}, nil), nil
}

func newTestGraph(loader Loader) (*Graph, *manualScheduler) {
	sched := &manualScheduler{}
	g := New("g1", "AAPL", models.TrendLine, loader, WithScheduler(sched.schedule), WithLoadDelay(time.Second))
	return g, sched
}

func TestGraph_LoadLifecycle(t *testing.T) {
	g, sched := newTestGraph(&stubLoader{})

	if st := g.Snapshot(); st.Status != StatusIdle {
		t.Fatalf("initial status %s, want idle", st.Status)
	}
	if st := g.Open(); st.Status != StatusLoading {
		t.Fatalf("after open status %s, want loading", st.Status)
	}
	if sched.count() != 1 || sched.tasks[0].delay != time.Second {
		t.Fatalf("expected one load scheduled with the configured delay")
	}
	// Open again is a no-op
	g.Open()
	if sched.count() != 1 {
		t.Fatalf("second open scheduled another load")
	}

	sched.fire(0)
	st := g.Snapshot()
	if st.Status != StatusReady || st.Series == nil || st.Series.Symbol() != "AAPL" {
		t.Fatalf("unexpected state after load: %+v", st)
	}
}

func TestGraph_LoadFailureAndRetry(t *testing.T) {
	loader := &stubLoader{err: models.ErrGenerationFailure}
	g, sched := newTestGraph(loader)
	g.Open()
	sched.fire(0)

	st := g.Snapshot()
	if st.Status != StatusError || !st.Retryable || st.Error == "" || st.Series != nil {
		t.Fatalf("unexpected error state: %+v", st)
	}

	loader.mu.Lock()
	loader.err = nil
	loader.mu.Unlock()

	if st := g.Retry(); st.Status != StatusLoading {
		t.Fatalf("retry status %s, want loading", st.Status)
	}
	sched.fire(1)
	if st := g.Snapshot(); st.Status != StatusReady || st.Error != "" {
		t.Fatalf("unexpected state after retry: %+v", st)
	}

	// Retry on a ready graph does nothing
	g.Retry()
	if sched.count() != 2 {
		t.Fatalf("retry on ready graph scheduled a load")
	}
}

func TestGraph_SetViewSupersedesPendingLoad(t *testing.T) {
	loader := &stubLoader{}
	g, sched := newTestGraph(loader)
	g.Open()

	st := g.SetView("", models.DynamicHeatmap)
	if st.Status != StatusLoading || st.Type != models.DynamicHeatmap || st.Generation != 2 {
		t.Fatalf("unexpected state: %+v", st)
	}
	if sched.fire(0) {
		t.Fatalf("superseded load was not cancelled")
	}

	// A stale timer that fires anyway must not overwrite the newer view.
	sched.forceFire(0)
	if st := g.Snapshot(); st.Status != StatusLoading {
		t.Fatalf("stale load changed status to %s", st.Status)
	}

	sched.fire(1)
	st = g.Snapshot()
	if st.Status != StatusReady || st.Series.Type() != models.DynamicHeatmap {
		t.Fatalf("unexpected state: %+v", st)
	}
}

func TestGraph_StaleResolutionAfterNewerReady(t *testing.T) {
	loader := &stubLoader{}
	g, sched := newTestGraph(loader)
	g.Open()
	g.SetView("MSFT", "")
	sched.fire(1)
	sched.forceFire(0)

	st := g.Snapshot()
	if st.Status != StatusReady || st.Series.Symbol() != "MSFT" {
		t.Fatalf("stale response overwrote newer series: %+v", st)
	}
}

func TestGraph_SetViewTransitions(t *testing.T) {
	g, sched := newTestGraph(&stubLoader{})

	// idle: fields change, nothing loads
	g.SetView("TSLA", models.BarChart3D)
	if st := g.Snapshot(); st.Status != StatusIdle || st.Symbol != "TSLA" || st.Type != models.BarChart3D {
		t.Fatalf("unexpected idle state: %+v", st)
	}
	if sched.count() != 0 {
		t.Fatalf("idle SetView scheduled a load")
	}

	g.Open()
	sched.fire(0)
	// unchanged view on ready: no reload
	g.SetView("TSLA", models.BarChart3D)
	if sched.count() != 1 {
		t.Fatalf("unchanged view triggered reload")
	}
	// changed view on ready: reload
	if st := g.SetView("TSLA", models.TrendLine); st.Status != StatusLoading {
		t.Fatalf("status %s, want loading", st.Status)
	}
}

func TestGraph_ZoomClamp(t *testing.T) {
	g, _ := newTestGraph(&stubLoader{})

	for i := 0; i < 20; i++ {
		g.ZoomIn()
	}
	if z := g.Snapshot().Zoom; z != MaxZoom {
		t.Fatalf("zoom after 20 ins = %v, want exactly %v", z, MaxZoom)
	}
	for i := 0; i < 50; i++ {
		g.ZoomOut()
	}
	if z := g.Snapshot().Zoom; z != MinZoom {
		t.Fatalf("zoom after 50 outs = %v, want exactly %v", z, MinZoom)
	}
}

func TestGraph_ZoomRoundTrip(t *testing.T) {
	g, _ := newTestGraph(&stubLoader{})
	for i := 0; i < 3; i++ {
		g.ZoomIn()
	}
	for i := 0; i < 3; i++ {
		g.ZoomOut()
	}
	if z := g.Snapshot().Zoom; math.Abs(z-1) > 1e-9 {
		t.Fatalf("zoom = %v, want ~1.0", z)
	}
}

func TestGraph_Pan(t *testing.T) {
	cases := []struct {
		name  string
		zoom  float64
		dir   Direction
		wantX float64
		wantY float64
	}{
		{name: "left at 2x", zoom: 2, dir: PanLeft, wantX: -25},
		{name: "right at 1x", zoom: 1, dir: PanRight, wantX: 50},
		{name: "up at 0.5x", zoom: 0.5, dir: PanUp, wantY: -100},
		{name: "down at 5x", zoom: 5, dir: PanDown, wantY: 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, _ := newTestGraph(&stubLoader{})
			g.zoom = tc.zoom
			st, err := g.Pan(tc.dir)
			if err != nil {
				t.Fatalf("pan: %v", err)
			}
			if st.Pan.X != tc.wantX || st.Pan.Y != tc.wantY {
				t.Fatalf("pan=%+v, want x=%v y=%v", st.Pan, tc.wantX, tc.wantY)
			}
		})
	}

	g, _ := newTestGraph(&stubLoader{})
	if _, err := g.Pan("diagonal"); !errors.Is(err, models.ErrInvalidArgument) {
		t.Fatalf("want ErrInvalidArgument, got %v", err)
	}
}

func TestGraph_ResetView(t *testing.T) {
	g, _ := newTestGraph(&stubLoader{})
	g.ZoomIn()
	_, _ = g.Pan(PanLeft)
	st := g.ResetView()
	if st.Zoom != 1 || st.Pan != (Offset{}) {
		t.Fatalf("unexpected state after reset: %+v", st)
	}
}

func TestGraph_CloseCancelsPending(t *testing.T) {
	g, sched := newTestGraph(&stubLoader{})
	g.Open()
	g.Close()
	if sched.fire(0) {
		t.Fatalf("pending load still ran after close")
	}
	sched.forceFire(0)
	if st := g.Snapshot(); st.Status != StatusLoading {
		t.Fatalf("closed graph changed status to %s", st.Status)
	}
	before := g.Snapshot()
	st := g.SetView("MSFT", models.BarChart3D)
	if sched.count() != 1 {
		t.Fatalf("closed graph scheduled a new load")
	}
	if st.Symbol != before.Symbol || st.Type != before.Type {
		t.Fatalf("closed graph view changed to %s/%s", st.Symbol, st.Type)
	}
}

func TestGraph_RealTimer(t *testing.T) {
	g := New("real", "SPY", models.TrendLine, &stubLoader{}, WithLoadDelay(5*time.Millisecond))
	g.Open()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if g.Snapshot().Status == StatusReady {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("graph did not become ready, status=%s", g.Snapshot().Status)
}
