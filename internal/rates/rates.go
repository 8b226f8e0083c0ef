// Package rates holds the interest rate rules applied to simulations.
package rates

import (
	"github.com/shopspring/decimal"

	"github.com/MKhiriev/go-fin-simulator/models"
)

// RatePrecision is the number of decimal places stored for rate_applied.
const RatePrecision = 4

var (
	// SameYearAnnualRate applies when a simulation starts and ends in the
	// same calendar year.
	SameYearAnnualRate = decimal.RequireFromString("0.12")
	// MultiYearAnnualRate applies to simulations crossing a year boundary.
	MultiYearAnnualRate = decimal.RequireFromString("0.15")

	monthsPerYear = decimal.NewFromInt(12)
)

// AnnualRateForDates picks the annual rate for the simulation period.
func AnnualRateForDates(start, end models.Date) decimal.Decimal {
	if start.Year() == end.Year() {
		return SameYearAnnualRate
	}
	return MultiYearAnnualRate
}

// EffectiveRate converts an annual rate to the rate per payment period.
func EffectiveRate(term models.PaymentTerm, annual decimal.Decimal) decimal.Decimal {
	if term == models.TermMonthly {
		return annual.Div(monthsPerYear)
	}
	return annual
}

// RateFor returns the rate_applied of a simulation, rounded to
// [RatePrecision] places.
func RateFor(in models.SimulationInput) decimal.Decimal {
	annual := AnnualRateForDates(in.StartDate, in.EndDate)
	return EffectiveRate(in.Term, annual).Round(RatePrecision)
}
