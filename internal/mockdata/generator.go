package mockdata

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/guttosm/dashpulse/internal/domain/models"
)

const (
	// SeriesLength is the number of daily points in every series: today and the 30 days before it.
	SeriesLength = 31

	dayLayout = "2006-01-02"
)

// SeriesGenerator builds a fresh series for a key. Implementations must be safe for concurrent use.
type SeriesGenerator interface {
	Generate(key models.CacheKey) (*models.Series, error)
}

// Generator produces synthetic daily series. Randomness is not reproducible across runs;
// stability comes from SeriesCache, not from seeding.
type Generator struct {
	mu  sync.Mutex // guards rng
	rng *rand.Rand
	now func() time.Time
	loc *time.Location
}

// GeneratorOption customizes a Generator.
type GeneratorOption func(*Generator)

// WithClock overrides the clock used to determine "today".
func WithClock(now func() time.Time) GeneratorOption {
	return func(g *Generator) { g.now = now }
}

// WithRand overrides the random source.
func WithRand(r *rand.Rand) GeneratorOption {
	return func(g *Generator) { g.rng = r }
}

// WithLocation sets the time zone calendar days are computed in (default UTC).
func WithLocation(loc *time.Location) GeneratorOption {
	return func(g *Generator) { g.loc = loc }
}

// NewGenerator returns a Generator seeded from the runtime's random source.
func NewGenerator(opts ...GeneratorOption) *Generator {
	g := &Generator{
		rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		now: time.Now,
		loc: time.UTC,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// NewKey validates and normalizes a (symbol, type) pair.
// The symbol is trimmed but otherwise kept as given.
func NewKey(symbol string, vt models.VisualizationType) (models.CacheKey, error) {
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		return models.CacheKey{}, fmt.Errorf("symbol is required: %w", models.ErrInvalidArgument)
	}
	if !vt.Valid() {
		return models.CacheKey{}, fmt.Errorf("visualization type %q: %w", vt, models.ErrInvalidArgument)
	}
	return models.CacheKey{Symbol: symbol, Type: vt}, nil
}

// Generate builds a 31-point series for key, oldest day first, ending today.
//
// Shapes per visualization type (i is the day offset, 30 down to 0):
//   - trend-line:      price = 150 + U[0,100) + 20*sin(i/5), volume in [500000, 1500000)
//   - dynamic-heatmap: value = U[0,10), category_x = i mod 5, bucket_y = i / 5
//   - 3d-bar-chart:    price = 100 + U[0,50), volume in [0, 100000), position_x = i
//
// Decimal fields are rounded half-up to 2 places.
func (g *Generator) Generate(key models.CacheKey) (s *models.Series, err error) {
	key, err = NewKey(key.Symbol, key.Type)
	if err != nil {
		return nil, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	defer func() {
		if r := recover(); r != nil {
			s = nil
			err = fmt.Errorf("generate %s: %v: %w", key, r, models.ErrGenerationFailure)
		}
	}()

	now := g.now().In(g.loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, g.loc)

	points := make([]models.Point, 0, SeriesLength)
	for i := SeriesLength - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i).Format(dayLayout)
		points = append(points, g.point(key.Type, i, day))
	}

	return models.NewSeries(key, now, points), nil
}

func (g *Generator) point(vt models.VisualizationType, i int, day string) models.Point {
	switch vt {
	case models.TrendLine:
		return models.TrendPoint{
			Date:   day,
			Price:  models.Round2(g.rng.Float64()*100 + 150 + math.Sin(float64(i)/5)*20),
			Volume: 500_000 + g.rng.Int64N(1_000_000),
		}
	case models.DynamicHeatmap:
		return models.HeatmapPoint{
			Date:      day,
			Value:     models.Round2(g.rng.Float64() * 10),
			CategoryX: i % 5,
			BucketY:   i / 5,
		}
	case models.BarChart3D:
		return models.BarPoint{
			Date:      day,
			Price:     models.Round2(g.rng.Float64()*50 + 100),
			Volume:    g.rng.Int64N(100_000),
			PositionX: i,
		}
	default:
		panic(fmt.Sprintf("unhandled visualization type %q", vt))
	}
}
