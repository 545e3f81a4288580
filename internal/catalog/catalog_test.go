package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/guttosm/dashpulse/internal/domain/models"
)

func TestDefault(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("default catalog invalid: %v", err)
	}
	if len(c.Quotes) != 10 || len(c.Watchlist) != 6 || len(c.Holdings) == 0 {
		t.Fatalf("unexpected sizes: quotes=%d watchlist=%d holdings=%d", len(c.Quotes), len(c.Watchlist), len(c.Holdings))
	}
	if c.Featured != "MSFT" {
		t.Fatalf("featured=%q", c.Featured)
	}
}

func TestParse_TableDriven(t *testing.T) {
	cases := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name: "normalizes symbols",
			yaml: "featured: ' aapl '\nquotes:\n  - {symbol: aapl, price: 1, open: 1}\nwatchlist:\n  - {symbol: Aapl, name: ' Apple '}\n",
		},
		{name: "no quotes", yaml: "featured: ''\nquotes: []\n", wantErr: "no quotes"},
		{name: "duplicate quote", yaml: "quotes:\n  - {symbol: A, price: 1, open: 1}\n  - {symbol: a, price: 2, open: 2}\n", wantErr: "duplicate symbol A"},
		{name: "non-positive price", yaml: "quotes:\n  - {symbol: A, price: 0, open: 1}\n", wantErr: "must be positive"},
		{name: "watchlist without quote", yaml: "quotes:\n  - {symbol: A, price: 1, open: 1}\nwatchlist:\n  - {symbol: B, name: Bee}\n", wantErr: `"B" has no quote`},
		{name: "bad holding", yaml: "quotes:\n  - {symbol: A, price: 1, open: 1}\nholdings:\n  - {symbol: A, quantity: -1}\n", wantErr: "quantity must be positive"},
		{name: "featured without quote", yaml: "featured: Z\nquotes:\n  - {symbol: A, price: 1, open: 1}\n", wantErr: `featured "Z"`},
		{name: "unknown field", yaml: "quotes:\n  - {symbol: A, price: 1, open: 1, color: red}\n", wantErr: "parse catalog"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := Parse([]byte(tc.yaml))
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected err: %v", err)
				}
				if c.Featured != "AAPL" || c.Quotes[0].Symbol != "AAPL" || c.Watchlist[0].Symbol != "AAPL" || c.Watchlist[0].Name != "Apple" {
					t.Fatalf("not normalized: %+v", c)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("want error containing %q, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestValidate_WrapsInvalidArgument(t *testing.T) {
	c := &Catalog{}
	if err := c.Validate(); !errors.Is(err, models.ErrInvalidArgument) {
		t.Fatalf("want ErrInvalidArgument, got %v", err)
	}
}

func TestLoad(t *testing.T) {
	c, err := Load("")
	if err != nil || c == nil {
		t.Fatalf("load embedded: %v", err)
	}

	p := filepath.Join(t.TempDir(), "seed.yaml")
	if err := os.WriteFile(p, []byte("quotes:\n  - {symbol: X, price: 2, open: 1}\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	c, err = Load(p)
	if err != nil || len(c.Quotes) != 1 {
		t.Fatalf("load file: c=%+v err=%v", c, err)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
