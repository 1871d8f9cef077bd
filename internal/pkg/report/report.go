package report

import (
	"github.com/shopspring/decimal"
)

// Renderer turns salary results into downloadable documents.
type Renderer struct {
	currency string
}

func NewRenderer(currency string) *Renderer {
	if currency == "" {
		currency = "INR"
	}
	return &Renderer{currency: currency}
}

func (r *Renderer) Currency() string {
	return r.currency
}

// money formats an amount to two decimal places.
func money(v float64) string {
	return decimal.NewFromFloat(v).Round(2).StringFixed(2)
}

// round2 rounds for spreadsheet cells.
func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
