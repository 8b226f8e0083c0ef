package controller

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-fin-simulator/internal/logger"
	"github.com/MKhiriev/go-fin-simulator/internal/mock"
	"github.com/MKhiriev/go-fin-simulator/models"
)

type testDeps struct {
	auth        *mock.MockClientAuthService
	simulations *mock.MockClientSimulationService
}

func newTestDeps(t *testing.T) testDeps {
	t.Helper()
	ctrl := gomock.NewController(t)
	return testDeps{
		auth:        mock.NewMockClientAuthService(ctrl),
		simulations: mock.NewMockClientSimulationService(ctrl),
	}
}

func newTestPage(t *testing.T, authenticated bool) (*SimulatorPage, testDeps) {
	t.Helper()
	deps := newTestDeps(t)
	return NewSimulatorPage(NewGuard(staticAuth(authenticated)), deps.auth, deps.simulations, logger.Nop()), deps
}

func testSimulation(id int64) models.Simulation {
	return models.Simulation{
		ID:          id,
		Amount:      decimal.NewFromInt(1_500_000),
		Term:        models.TermAnnual,
		StartDate:   models.NewDate(2025, time.January, 1),
		EndDate:     models.NewDate(2026, time.June, 30),
		RateApplied: decimal.RequireFromString("0.15"),
	}
}

func validFields() FormFields {
	return FormFields{Amount: "1500000", Term: models.TermMonthly, StartDate: "2025-01-01", EndDate: "2025-12-31"}
}
