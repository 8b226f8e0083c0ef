package controller

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/MKhiriev/go-fin-simulator/internal/app"
)

var currencyPrinter = message.NewPrinter(language.MustParse("es-CO"))

// FormatCurrency renders amount as Colombian pesos with no decimals,
// e.g. "$ 1.500.001".
func FormatCurrency(amount decimal.Decimal) string {
	whole := amount.Round(0).IntPart()
	if whole < 0 {
		return "-$ " + currencyPrinter.Sprint(number.Decimal(-whole, number.MaxFractionDigits(0)))
	}
	return "$ " + currencyPrinter.Sprint(number.Decimal(whole, number.MaxFractionDigits(0)))
}

var hundred = decimal.NewFromInt(100)

// FormatRate renders a fractional rate as a percentage with two decimals,
// e.g. 0.12 as "12.00%".
func FormatRate(rate decimal.Decimal) string {
	return rate.Mul(hundred).StringFixed(2) + "%"
}

// EmptyState returns the title and hint shown when there are no
// simulations.
func EmptyState() (title, hint string) {
	return app.MsgEmptyStateTitle, app.MsgEmptyStateHint
}
