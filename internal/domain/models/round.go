package models

import "github.com/shopspring/decimal"

// Round2 rounds v half away from zero to 2 decimal places, the display precision of
// every price, change and heatmap value.
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
