package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/guttosm/dashpulse/internal/domain/models"
)

//go:embed seed.yaml
var defaultSeed []byte

// QuoteSeed is the starting point of a ticker quote.
type QuoteSeed struct {
	Symbol string  `yaml:"symbol"`
	Price  float64 `yaml:"price"`
	Open   float64 `yaml:"open"`
}

// WatchSeed is an initial watchlist entry.
type WatchSeed struct {
	Symbol string `yaml:"symbol"`
	Name   string `yaml:"name"`
}

// Catalog is the synthetic market the service starts from.
type Catalog struct {
	Featured  string           `yaml:"featured"`
	Quotes    []QuoteSeed      `yaml:"quotes"`
	Watchlist []WatchSeed      `yaml:"watchlist"`
	Holdings  []models.Holding `yaml:"holdings"`
}

// Default returns the embedded catalog.
func Default() (*Catalog, error) {
	return Parse(defaultSeed)
}

// Load reads a catalog from path, or returns the embedded one when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML catalog. Unknown fields are rejected.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	c.normalize()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Catalog) normalize() {
	c.Featured = normalizeSymbol(c.Featured)
	for i := range c.Quotes {
		c.Quotes[i].Symbol = normalizeSymbol(c.Quotes[i].Symbol)
	}
	for i := range c.Watchlist {
		c.Watchlist[i].Symbol = normalizeSymbol(c.Watchlist[i].Symbol)
		c.Watchlist[i].Name = strings.TrimSpace(c.Watchlist[i].Name)
	}
	for i := range c.Holdings {
		c.Holdings[i].Symbol = normalizeSymbol(c.Holdings[i].Symbol)
	}
}

// Validate checks the catalog invariants:
//   - at least one quote; symbols unique and non-empty; prices and opens positive.
//   - watchlist and holdings reference quoted symbols, without duplicates.
//   - holdings quantities positive; featured symbol (if set) is quoted.
func (c *Catalog) Validate() error {
	var problems []string

	if len(c.Quotes) == 0 {
		problems = append(problems, "no quotes")
	}
	quoted := make(map[string]struct{}, len(c.Quotes))
	for i, q := range c.Quotes {
		switch {
		case q.Symbol == "":
			problems = append(problems, fmt.Sprintf("quotes[%d]: empty symbol", i))
			continue
		case q.Price <= 0 || q.Open <= 0:
			problems = append(problems, fmt.Sprintf("quotes[%d] %s: price and open must be positive", i, q.Symbol))
		}
		if _, dup := quoted[q.Symbol]; dup {
			problems = append(problems, fmt.Sprintf("quotes[%d]: duplicate symbol %s", i, q.Symbol))
		}
		quoted[q.Symbol] = struct{}{}
	}

	seen := map[string]struct{}{}
	for i, w := range c.Watchlist {
		if _, ok := quoted[w.Symbol]; !ok {
			problems = append(problems, fmt.Sprintf("watchlist[%d]: %q has no quote", i, w.Symbol))
		}
		if _, dup := seen[w.Symbol]; dup {
			problems = append(problems, fmt.Sprintf("watchlist[%d]: duplicate symbol %s", i, w.Symbol))
		}
		seen[w.Symbol] = struct{}{}
	}

	seen = map[string]struct{}{}
	for i, h := range c.Holdings {
		if _, ok := quoted[h.Symbol]; !ok {
			problems = append(problems, fmt.Sprintf("holdings[%d]: %q has no quote", i, h.Symbol))
		}
		if h.Quantity <= 0 {
			problems = append(problems, fmt.Sprintf("holdings[%d] %s: quantity must be positive", i, h.Symbol))
		}
		if _, dup := seen[h.Symbol]; dup {
			problems = append(problems, fmt.Sprintf("holdings[%d]: duplicate symbol %s", i, h.Symbol))
		}
		seen[h.Symbol] = struct{}{}
	}

	if c.Featured != "" {
		if _, ok := quoted[c.Featured]; !ok {
			problems = append(problems, fmt.Sprintf("featured %q has no quote", c.Featured))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid catalog: %s: %w", strings.Join(problems, "; "), models.ErrInvalidArgument)
	}
	return nil
}

func normalizeSymbol(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
