package models

// Quote represents one entry of the scrolling ticker.
//
// Fields:
//   - Symbol: ticker symbol (e.g., "AAPL").
//   - Price: last synthetic price.
//   - Open: reference price the change is measured against.
//   - Change: Price - Open, rounded to 2 decimals.
//   - ChangePercent: Change / Open * 100, rounded to 2 decimals.
type Quote struct {
	Symbol        string  `json:"symbol" example:"AAPL"`
	Price         float64 `json:"price" example:"170.34"`
	Open          float64 `json:"open" example:"169.11"`
	Change        float64 `json:"change" example:"1.23"`
	ChangePercent float64 `json:"change_percent" example:"0.72"`
}

// Direction classifies a signed change for display.
type Direction string

const (
	DirectionUp      Direction = "up"
	DirectionDown    Direction = "down"
	DirectionNeutral Direction = "neutral"
)

// DirectionOf returns up, down or neutral for the sign of v.
func DirectionOf(v float64) Direction {
	switch {
	case v > 0:
		return DirectionUp
	case v < 0:
		return DirectionDown
	default:
		return DirectionNeutral
	}
}
