package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Amounts and rates travel as JSON numbers, e.g. {"amount": 1500000.5}.
	decimal.MarshalJSONWithoutQuotes = true
}

// Simulation is one hypothetical savings/investment run owned by a user.
//
// ID and RateApplied are assigned by the server; RateApplied is a fraction
// (0.01 = 1%) recomputed on every create and update.
type Simulation struct {
	ID          int64           `json:"id"`
	UserID      int64           `json:"-"`
	Amount      decimal.Decimal `json:"amount"`
	Term        PaymentTerm     `json:"term"`
	StartDate   Date            `json:"start_date"`
	EndDate     Date            `json:"end_date"`
	RateApplied decimal.Decimal `json:"rate_applied"`
	CreatedAt   time.Time       `json:"-"`
}

// Input returns the four user-editable fields of s.
func (s Simulation) Input() SimulationInput {
	return SimulationInput{
		Amount:    s.Amount,
		Term:      s.Term,
		StartDate: s.StartDate,
		EndDate:   s.EndDate,
	}
}

// SimulationInput is the body of POST /simulations and PUT /simulations/{id}.
// It never carries id or rate_applied.
type SimulationInput struct {
	Amount    decimal.Decimal `json:"amount"`
	Term      PaymentTerm     `json:"term"`
	StartDate Date            `json:"start_date"`
	EndDate   Date            `json:"end_date"`
}
