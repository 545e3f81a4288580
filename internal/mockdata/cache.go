package mockdata

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/guttosm/dashpulse/internal/domain/models"
	"github.com/guttosm/dashpulse/internal/logger"
)

// SeriesCache holds generated series for the lifetime of the process.
//
// Behavior:
//   - The first successful generation for a key wins; later calls return the same *Series.
//   - Concurrent misses on one key share a single generation (singleflight).
//   - Failed generations are not stored, so a later call may succeed.
//   - There is no expiry and no eviction.
type SeriesCache struct {
	gen     SeriesGenerator
	mu      sync.RWMutex
	entries map[models.CacheKey]*models.Series
	group   singleflight.Group
}

// NewSeriesCache creates an empty cache backed by gen.
func NewSeriesCache(gen SeriesGenerator) *SeriesCache {
	return &SeriesCache{
		gen:     gen,
		entries: make(map[models.CacheKey]*models.Series),
	}
}

// Get returns the series for (symbol, vt), generating it on first request.
//
// Returns:
//   - ErrInvalidArgument if symbol is blank or vt is unknown.
//   - ErrGenerationFailure if the generator faulted.
//   - ctx.Err() if ctx is done before a shared generation completes.
func (c *SeriesCache) Get(ctx context.Context, symbol string, vt models.VisualizationType) (*models.Series, error) {
	key, err := NewKey(symbol, vt)
	if err != nil {
		return nil, err
	}
	if s, ok := c.Peek(key); ok {
		return s, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ch := c.group.DoChan(key.String(), func() (any, error) {
		if s, ok := c.Peek(key); ok {
			return s, nil
		}
		s, err := c.gen.Generate(key)
		if err != nil {
			logger.L().Error().Err(err).Str("symbol", key.Symbol).Str("type", key.Type.String()).Msg("series_generation_failed")
			return nil, err
		}
		return c.store(key, s), nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*models.Series), nil
	}
}

// store inserts s unless an entry already exists, and returns the entry that won.
func (c *SeriesCache) store(key models.CacheKey, s *models.Series) *models.Series {
	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.entries[key]; ok {
		return existing
	}
	c.entries[key] = s
	logger.L().Debug().Str("symbol", key.Symbol).Str("type", key.Type.String()).Int("entries", len(c.entries)).Msg("series_cached")
	return s
}

// Peek returns a cached series without generating.
func (c *SeriesCache) Peek(key models.CacheKey) (*models.Series, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.entries[key]
	return s, ok
}

// Len returns the number of cached series.
func (c *SeriesCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Keys returns the cached keys sorted by symbol then type.
func (c *SeriesCache) Keys() []models.CacheKey {
	c.mu.RLock()
	keys := make([]models.CacheKey, 0, len(c.entries))
	for k := range c.entries {
		keys = append(keys, k)
	}
	c.mu.RUnlock()

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Symbol != keys[j].Symbol {
			return keys[i].Symbol < keys[j].Symbol
		}
		return keys[i].Type < keys[j].Type
	})
	return keys
}

// Warm generates every key with at most parallel concurrent generations (<= 0 means unbounded).
// The first error cancels the remaining work and is returned.
func (c *SeriesCache) Warm(ctx context.Context, keys []models.CacheKey, parallel int) error {
	g, gctx := errgroup.WithContext(ctx)
	if parallel > 0 {
		g.SetLimit(parallel)
	}
	for _, k := range keys {
		g.Go(func() error {
			if _, err := c.Get(gctx, k.Symbol, k.Type); err != nil {
				return fmt.Errorf("warm %s: %w", k, err)
			}
			return nil
		})
	}
	return g.Wait()
}
