package service

import (
	"fmt"
	"strings"

	"github.com/guttosm/dashpulse/internal/domain/models"
	"github.com/guttosm/dashpulse/internal/graph"
)

func (s *dashboardService) OpenGraph(symbol, vt string) (graph.State, error) {
	symbol = NormalizeSymbol(symbol)
	if symbol == "" {
		return graph.State{}, fmt.Errorf("symbol is required: %w", models.ErrInvalidArgument)
	}
	t, err := s.resolveType(vt)
	if err != nil {
		return graph.State{}, err
	}
	g, err := s.graphs.Create(symbol, t)
	if err != nil {
		return graph.State{}, err
	}
	return g.Snapshot(), nil
}

func (s *dashboardService) Graph(id string) (graph.State, error) {
	g, err := s.graphs.Get(id)
	if err != nil {
		return graph.State{}, err
	}
	return g.Snapshot(), nil
}

func (s *dashboardService) CloseGraph(id string) error {
	return s.graphs.Delete(id)
}

func (s *dashboardService) ZoomGraph(id string, in bool) (graph.State, error) {
	g, err := s.graphs.Get(id)
	if err != nil {
		return graph.State{}, err
	}
	if in {
		return g.ZoomIn(), nil
	}
	return g.ZoomOut(), nil
}

func (s *dashboardService) PanGraph(id, direction string) (graph.State, error) {
	g, err := s.graphs.Get(id)
	if err != nil {
		return graph.State{}, err
	}
	return g.Pan(graph.Direction(strings.ToLower(strings.TrimSpace(direction))))
}

func (s *dashboardService) ResetGraph(id string) (graph.State, error) {
	g, err := s.graphs.Get(id)
	if err != nil {
		return graph.State{}, err
	}
	return g.ResetView(), nil
}

func (s *dashboardService) RetryGraph(id string) (graph.State, error) {
	g, err := s.graphs.Get(id)
	if err != nil {
		return graph.State{}, err
	}
	return g.Retry(), nil
}

// SetGraphView changes symbol and/or type. Blank values keep the current ones.
func (s *dashboardService) SetGraphView(id, symbol, vt string) (graph.State, error) {
	g, err := s.graphs.Get(id)
	if err != nil {
		return graph.State{}, err
	}
	var t models.VisualizationType
	if strings.TrimSpace(vt) != "" {
		if t, err = models.ParseVisualizationType(vt); err != nil {
			return graph.State{}, err
		}
	}
	return g.SetView(NormalizeSymbol(symbol), t), nil
}
