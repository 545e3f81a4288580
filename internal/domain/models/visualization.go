package models

import (
	"fmt"
	"strings"
)

// VisualizationType selects both the data shape of a series and how the graph renders it.
type VisualizationType string

const (
	TrendLine      VisualizationType = "trend-line"
	DynamicHeatmap VisualizationType = "dynamic-heatmap"
	BarChart3D     VisualizationType = "3d-bar-chart"
)

// VisualizationTypes lists every supported type in display order.
var VisualizationTypes = []VisualizationType{TrendLine, DynamicHeatmap, BarChart3D}

// Valid reports whether v is one of the supported visualization types.
func (v VisualizationType) Valid() bool {
	switch v {
	case TrendLine, DynamicHeatmap, BarChart3D:
		return true
	}
	return false
}

func (v VisualizationType) String() string { return string(v) }

// ParseVisualizationType converts user input into a VisualizationType.
// Input is trimmed and lower-cased; unknown values yield ErrInvalidArgument.
func ParseVisualizationType(s string) (VisualizationType, error) {
	v := VisualizationType(strings.ToLower(strings.TrimSpace(s)))
	if !v.Valid() {
		return "", fmt.Errorf("visualization type %q: %w", s, ErrInvalidArgument)
	}
	return v, nil
}

// CacheKey identifies one mock series.
type CacheKey struct {
	Symbol string            `json:"symbol"`
	Type   VisualizationType `json:"type"`
}

func (k CacheKey) String() string { return k.Symbol + "/" + string(k.Type) }
