package models

// Holding is a position in the synthetic portfolio.
type Holding struct {
	Symbol   string  `json:"symbol" yaml:"symbol"`
	Quantity float64 `json:"quantity" yaml:"quantity"`
}

// PortfolioCard is one summary tile of the dashboard, already formatted for display.
type PortfolioCard struct {
	Title            string    `json:"title" example:"Total Portfolio Value"`
	Value            string    `json:"value" example:"$275,430.88"`
	Change           string    `json:"change" example:"+$2,105.20 vs Yesterday"`
	ChangePercentage string    `json:"change_percentage" example:"+0.77%"`
	ChangeDirection  Direction `json:"change_direction" example:"up"`
}
