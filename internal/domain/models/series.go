package models

import (
	"encoding/json"
	"time"
)

// Point is one synthetic daily observation. The concrete type is one of
// TrendPoint, HeatmapPoint or BarPoint and always matches the series type.
type Point interface {
	Day() string
	Type() VisualizationType
	point()
}

// TrendPoint is a trend-line observation.
type TrendPoint struct {
	Date   string  `json:"date" example:"2025-09-01"`
	Price  float64 `json:"price" example:"172.45"`
	Volume int64   `json:"volume" example:"812334"`
}

// HeatmapPoint is a dynamic-heatmap cell.
type HeatmapPoint struct {
	Date      string  `json:"date" example:"2025-09-01"`
	Value     float64 `json:"value" example:"7.31"`
	CategoryX int     `json:"category_x" example:"3"`
	BucketY   int     `json:"bucket_y" example:"1"`
}

// BarPoint is a 3d-bar-chart bar.
type BarPoint struct {
	Date      string  `json:"date" example:"2025-09-01"`
	Price     float64 `json:"price" example:"121.09"`
	Volume    int64   `json:"volume" example:"40211"`
	PositionX int     `json:"position_x" example:"12"`
}

func (p TrendPoint) Day() string { return p.Date }
func (p TrendPoint) Type() VisualizationType { return TrendLine }
func (TrendPoint) point() {}
func (p HeatmapPoint) Day() string { return p.Date }
func (p HeatmapPoint) Type() VisualizationType { return DynamicHeatmap }
func (HeatmapPoint) point() {}
func (p BarPoint) Day() string { return p.Date }
func (p BarPoint) Type() VisualizationType { return BarChart3D }
func (BarPoint) point() {}

// Series is an immutable, ordered (oldest first) set of points for one CacheKey.
// It is safe to share between goroutines; Points returns a copy.
type Series struct {
	key         CacheKey
	generatedAt time.Time
	points      []Point
}

// NewSeries builds a Series. The points slice is owned by the Series afterwards.
func NewSeries(key CacheKey, generatedAt time.Time, points []Point) *Series {
	return &Series{key: key, generatedAt: generatedAt, points: points}
}

func (s *Series) Key() CacheKey { return s.key }
func (s *Series) Symbol() string { return s.key.Symbol }
func (s *Series) Type() VisualizationType { return s.key.Type }
func (s *Series) GeneratedAt() time.Time { return s.generatedAt }
func (s *Series) Len() int { return len(s.points) }
func (s *Series) At(i int) Point { return s.points[i] }

// Points returns a copy of the points so callers cannot mutate the cached entry.
func (s *Series) Points() []Point {
	out := make([]Point, len(s.points))
	copy(out, s.points)
	return out
}

// MarshalJSON renders the series with its points in order.
func (s *Series) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Symbol      string            `json:"symbol"`
		Type        VisualizationType `json:"type"`
		GeneratedAt time.Time         `json:"generated_at"`
		Points      []Point           `json:"points"`
	}{
		Symbol:      s.key.Symbol,
		Type:        s.key.Type,
		GeneratedAt: s.generatedAt,
		Points:      s.points,
	})
}
