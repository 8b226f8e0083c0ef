// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client's transport to the simulator API.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// services from REST details. The package ships an HTTP implementation
// ([NewHTTPServerAdapter]) built on resty.
//
// Non-2xx responses are mapped by mapHTTPError to sentinel values so callers
// can use [errors.Is] (e.g. [ErrUnauthorized] for 401), and to an [*APIError]
// carrying the decoded "detail" payload, reachable with [errors.As].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-fin-simulator/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the simulator API.
// Implementations attach the session credential to every simulation call
// and map transport-level errors to the sentinel values of this package.
type ServerAdapter interface {
	// Register creates an account. No credential is returned.
	Register(ctx context.Context, credentials models.Credentials) error

	// Login exchanges credentials for a bearer credential. The adapter does
	// not store it; holding it is the caller's decision.
	Login(ctx context.Context, credentials models.Credentials) (models.Credential, error)

	// ListSimulations returns every simulation of the session user in the
	// order sent by the server.
	ListSimulations(ctx context.Context) ([]models.Simulation, error)

	// CreateSimulation stores a new simulation and returns it with the
	// server-assigned id and rate_applied.
	CreateSimulation(ctx context.Context, input models.SimulationInput) (models.Simulation, error)

	// UpdateSimulation replaces the four editable fields of simulation id.
	UpdateSimulation(ctx context.Context, id int64, input models.SimulationInput) (models.Simulation, error)

	// DeleteSimulation removes simulation id. A missing id is reported as
	// [ErrNotFound].
	DeleteSimulation(ctx context.Context, id int64) error
}

// CredentialSource provides the credential attached to authenticated calls.
// The client session satisfies it.
type CredentialSource interface {
	Credential() (models.Credential, bool)
}
