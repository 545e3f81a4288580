package graph

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/guttosm/dashpulse/internal/domain/models"
)

func TestRegistry_CreateGetDelete(t *testing.T) {
	sched := &manualScheduler{}
	r := NewRegistry(&stubLoader{}, 0, WithScheduler(sched.schedule))

	g, err := r.Create("AAPL", models.TrendLine)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if g.Snapshot().Status != StatusLoading {
		t.Fatalf("created graph should be loading")
	}
	if r.Len() != 1 {
		t.Fatalf("len=%d", r.Len())
	}

	got, err := r.Get(g.ID())
	if err != nil || got != g {
		t.Fatalf("get: got=%v err=%v", got, err)
	}

	if err := r.Delete(g.ID()); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if sched.fire(0) {
		t.Fatalf("deleted graph load still ran")
	}
	if _, err := r.Get(g.ID()); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
	if err := r.Delete(g.ID()); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("want ErrNotFound on second delete, got %v", err)
	}
}

func TestRegistry_Limit(t *testing.T) {
	n := 0
	old := newID
	newID = func() string { n++; return fmt.Sprintf("id-%d", n) }
	t.Cleanup(func() { newID = old })

	sched := &manualScheduler{}
	r := NewRegistry(&stubLoader{}, 2, WithScheduler(sched.schedule))
	for i := 0; i < 2; i++ {
		if _, err := r.Create("SPY", models.TrendLine); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}
	if _, err := r.Create("SPY", models.TrendLine); !errors.Is(err, ErrTooManyGraphs) {
		t.Fatalf("want ErrTooManyGraphs, got %v", err)
	}
	if _, err := r.Get("id-2"); err != nil {
		t.Fatalf("get id-2: %v", err)
	}

	r.CloseAll()
	if r.Len() != 0 {
		t.Fatalf("len after CloseAll=%d", r.Len())
	}
}

func TestRegistry_SharedOptions(t *testing.T) {
	r := NewRegistry(&stubLoader{}, 10, WithLoadDelay(time.Millisecond))
	g, err := r.Create("QQQ", models.BarChart3D)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer r.CloseAll()
	if g.delay != time.Millisecond {
		t.Fatalf("delay=%v", g.delay)
	}
}
