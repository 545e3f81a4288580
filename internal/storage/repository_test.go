package storage

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/guttosm/dashpulse/internal/domain/models"
)

func withFixedIDs(t *testing.T) {
	t.Helper()
	n := 0
	oldID, oldClock := idGen, clock
	idGen = func() string { n++; return fmt.Sprintf("id-%d", n) }
	clock = func() time.Time { return time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { idGen, clock = oldID, oldClock })
}

func TestWatchlistRepository_SeedAndList(t *testing.T) {
	withFixedIDs(t)
	repo, err := NewWatchlistRepository(
		WatchlistEntry{Symbol: "aapl", Name: "Apple Inc."},
		WatchlistEntry{Symbol: "MSFT", Name: " Microsoft Corp. "},
	)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	got := repo.List()
	if len(got) != 2 {
		t.Fatalf("len=%d", len(got))
	}
	if got[0].ID != "id-1" || got[0].Symbol != "AAPL" || got[1].Name != "Microsoft Corp." {
		t.Fatalf("unexpected entries: %+v", got)
	}

	// List returns a copy
	got[0].Symbol = "XXX"
	if repo.List()[0].Symbol != "AAPL" {
		t.Fatalf("List exposed internal slice")
	}
}

func TestWatchlistRepository_SeedDuplicate(t *testing.T) {
	_, err := NewWatchlistRepository(WatchlistEntry{Symbol: "A"}, WatchlistEntry{Symbol: "a"})
	if !errors.Is(err, models.ErrInvalidArgument) {
		t.Fatalf("want ErrInvalidArgument, got %v", err)
	}
}

func TestWatchlistRepository_TableDriven(t *testing.T) {
	withFixedIDs(t)
	repo, _ := NewWatchlistRepository(WatchlistEntry{Symbol: "TSLA", Name: "Tesla Inc."})

	cases := []struct {
		name    string
		op      func() error
		wantErr error
	}{
		{name: "add new", op: func() error { _, err := repo.Add("nvda", ""); return err }},
		{name: "add duplicate", op: func() error { _, err := repo.Add(" tsla ", "x"); return err }, wantErr: models.ErrInvalidArgument},
		{name: "add blank", op: func() error { _, err := repo.Add("  ", "x"); return err }, wantErr: models.ErrInvalidArgument},
		{name: "get existing", op: func() error { _, err := repo.Get("Nvda"); return err }},
		{name: "get missing", op: func() error { _, err := repo.Get("AMZN"); return err }, wantErr: models.ErrNotFound},
		{name: "remove existing", op: func() error { return repo.Remove("tsla") }},
		{name: "remove missing", op: func() error { return repo.Remove("tsla") }, wantErr: models.ErrNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.op()
			if tc.wantErr == nil && err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if tc.wantErr != nil && !errors.Is(err, tc.wantErr) {
				t.Fatalf("want %v, got %v", tc.wantErr, err)
			}
		})
	}

	list := repo.List()
	if len(list) != 1 || list[0].Symbol != "NVDA" || list[0].Name != "NVDA" {
		t.Fatalf("unexpected final list: %+v", list)
	}
	if !list[0].AddedAt.Equal(time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)) {
		t.Fatalf("added_at=%v", list[0].AddedAt)
	}
}
