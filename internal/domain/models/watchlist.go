package models

// WatchlistItem is a tracked symbol with its current synthetic quote.
type WatchlistItem struct {
	ID            string  `json:"id" example:"4f8c0f7e-2b0a-4f43-9f6a-0d2b8b1b5f0e"`
	Symbol        string  `json:"symbol" example:"AAPL"`
	Name          string  `json:"name" example:"Apple Inc."`
	Price         float64 `json:"price" example:"170.34"`
	Change        float64 `json:"change" example:"2.12"`
	ChangePercent float64 `json:"change_percent" example:"1.26"`
}

// Sparkline polylines drawn in an 80x40 box, picked by the sign of the day's change.
const (
	sparklineUp   = "0,30 10,20 20,25 30,15 40,10 50,18 60,8 70,12 80,5"
	sparklineDown = "0,10 10,20 20,15 30,25 40,30 50,22 60,32 70,28 80,35"
	sparklineFlat = "0,20 80,20"
)

// Trend returns the display direction of the item.
func (w WatchlistItem) Trend() Direction { return DirectionOf(w.ChangePercent) }

// Sparkline returns the polyline points for the item's mini chart.
func (w WatchlistItem) Sparkline() string {
	switch w.Trend() {
	case DirectionUp:
		return sparklineUp
	case DirectionDown:
		return sparklineDown
	default:
		return sparklineFlat
	}
}
