package dto

// SeriesQuery binds GET /api/v1/series.
type SeriesQuery struct {
	Symbol string `form:"symbol" binding:"required" example:"AAPL"`
	Type   string `form:"type" example:"trend-line"`
}

// CreateGraphRequest opens a graph session. An empty type falls back to the default graph type setting.
type CreateGraphRequest struct {
	Symbol string `json:"symbol" binding:"required" example:"AAPL"`
	Type   string `json:"type" example:"dynamic-heatmap"`
}

// GraphViewRequest changes the symbol and/or type of a graph. Empty fields keep the current value.
type GraphViewRequest struct {
	Symbol string `json:"symbol" example:"MSFT"`
	Type   string `json:"type" example:"3d-bar-chart"`
}

// ZoomRequest zooms a graph in or out by one step.
type ZoomRequest struct {
	Direction string `json:"direction" binding:"required,oneof=in out" example:"in"`
}

// PanRequest moves a graph by one step.
type PanRequest struct {
	Direction string `json:"direction" binding:"required" example:"left"`
}

// AddWatchlistRequest adds a symbol to the watchlist.
type AddWatchlistRequest struct {
	Symbol string `json:"symbol" binding:"required" example:"NVDA"`
	Name   string `json:"name" example:"NVIDIA Corp."`
}

// PreferencesRequest updates display preferences. Empty fields keep the current value.
type PreferencesRequest struct {
	Theme            string `json:"theme" example:"light"`
	DefaultGraphType string `json:"default_graph_type" example:"dynamic-heatmap"`
	DataRefreshRate  string `json:"data_refresh_rate" example:"15s"`
}
