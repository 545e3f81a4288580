package market

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/guttosm/dashpulse/internal/domain/models"
)

// QuoteSource looks up the current quote of a symbol. *Board implements it.
type QuoteSource interface {
	Quote(symbol string) (models.Quote, bool)
}

// Portfolio values catalog holdings against live board quotes.
type Portfolio struct {
	holdings []models.Holding
	featured string
	quotes   QuoteSource
	currency string
}

// NewPortfolio creates a portfolio valued in USD. featured may be empty.
func NewPortfolio(holdings []models.Holding, featured string, quotes QuoteSource) *Portfolio {
	hs := make([]models.Holding, len(holdings))
	copy(hs, holdings)
	return &Portfolio{holdings: hs, featured: featured, quotes: quotes, currency: money.USD}
}

// Totals returns the market value and the change since open of all holdings.
// Holdings without a quote are skipped.
func (p *Portfolio) Totals() (value, change decimal.Decimal) {
	value, change = decimal.Zero, decimal.Zero
	for _, h := range p.holdings {
		q, ok := p.quotes.Quote(h.Symbol)
		if !ok {
			continue
		}
		qty := decimal.NewFromFloat(h.Quantity)
		price := decimal.NewFromFloat(q.Price)
		open := decimal.NewFromFloat(q.Open)
		value = value.Add(qty.Mul(price))
		change = change.Add(qty.Mul(price.Sub(open)))
	}
	return value, change
}

// Cards returns the dashboard summary cards: the total value and, when configured,
// the featured symbol.
func (p *Portfolio) Cards() []models.PortfolioCard {
	value, change := p.Totals()
	previous := value.Sub(change)
	pct := decimal.Zero
	if !previous.IsZero() {
		pct = change.Div(previous).Mul(decimal.NewFromInt(100))
	}

	cards := []models.PortfolioCard{{
		Title:            "Total Portfolio Value",
		Value:            p.display(value),
		Change:           p.signedDisplay(change) + " vs Yesterday",
		ChangePercentage: signedPercent(pct.Round(2).InexactFloat64()),
		ChangeDirection:  direction(change),
	}}

	if q, ok := p.quotes.Quote(p.featured); ok {
		ch := decimal.NewFromFloat(q.Change)
		cards = append(cards, models.PortfolioCard{
			Title:            "Featured: " + q.Symbol,
			Value:            p.display(decimal.NewFromFloat(q.Price)),
			Change:           p.signedDisplay(ch) + " Today",
			ChangePercentage: signedPercent(q.ChangePercent),
			ChangeDirection:  direction(ch),
		})
	}
	return cards
}

func (p *Portfolio) toMoney(amount decimal.Decimal) *money.Money {
	cents := amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	return money.New(cents, p.currency)
}

// display renders amount like "$275,430.88".
func (p *Portfolio) display(amount decimal.Decimal) string {
	return p.toMoney(amount).Display()
}

// signedDisplay renders amount like "+$2,105.20" or "-$500.10".
func (p *Portfolio) signedDisplay(amount decimal.Decimal) string {
	m := p.toMoney(amount)
	if m.IsPositive() {
		return "+" + m.Display()
	}
	return m.Display()
}

func signedPercent(v float64) string {
	return fmt.Sprintf("%+.2f%%", v)
}

func direction(d decimal.Decimal) models.Direction {
	return models.DirectionOf(float64(d.Sign()))
}
