package market

import (
	"testing"

	"github.com/guttosm/dashpulse/internal/domain/models"
)

type mapQuotes map[string]models.Quote

func (m mapQuotes) Quote(symbol string) (models.Quote, bool) {
	q, ok := m[symbol]
	return q, ok
}

func TestPortfolio_Cards(t *testing.T) {
	quotes := mapQuotes{
		"AAPL": {Symbol: "AAPL", Price: 110, Open: 100, Change: 10, ChangePercent: 10},
		"MSFT": {Symbol: "MSFT", Price: 90, Open: 100, Change: -10, ChangePercent: -10},
	}
	holdings := []models.Holding{
		{Symbol: "AAPL", Quantity: 10},
		{Symbol: "MSFT", Quantity: 5},
		{Symbol: "GONE", Quantity: 1000},
	}
	p := NewPortfolio(holdings, "MSFT", quotes)

	cards := p.Cards()
	if len(cards) != 2 {
		t.Fatalf("cards=%d, want 2", len(cards))
	}
	want := []models.PortfolioCard{
		{Title: "Total Portfolio Value", Value: "$1,550.00", Change: "+$50.00 vs Yesterday", ChangePercentage: "+3.33%", ChangeDirection: models.DirectionUp},
		{Title: "Featured: MSFT", Value: "$90.00", Change: "-$10.00 Today", ChangePercentage: "-10.00%", ChangeDirection: models.DirectionDown},
	}
	for i := range want {
		if cards[i] != want[i] {
			t.Fatalf("card %d = %+v, want %+v", i, cards[i], want[i])
		}
	}
}

func TestPortfolio_EmptyAndNoFeatured(t *testing.T) {
	p := NewPortfolio(nil, "", mapQuotes{})
	cards := p.Cards()
	if len(cards) != 1 {
		t.Fatalf("cards=%d, want 1", len(cards))
	}
	c := cards[0]
	if c.Value != "$0.00" || c.ChangePercentage != "+0.00%" || c.ChangeDirection != models.DirectionNeutral {
		t.Fatalf("unexpected empty card: %+v", c)
	}
}

func TestPortfolio_LargeValuesUseThousandSeparators(t *testing.T) {
	quotes := mapQuotes{"BTC": {Symbol: "BTC", Price: 62050.99, Open: 62050.99}}
	p := NewPortfolio([]models.Holding{{Symbol: "BTC", Quantity: 4}}, "BTC", quotes)
	cards := p.Cards()
	if cards[0].Value != "$248,203.96" {
		t.Fatalf("value=%q", cards[0].Value)
	}
	if cards[1].Change != "$0.00 Today" || cards[1].ChangeDirection != models.DirectionNeutral {
		t.Fatalf("unexpected featured card: %+v", cards[1])
	}
}
