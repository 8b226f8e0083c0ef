// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header carries a
	// scheme but no token value.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")

	// ErrInvalidSimulationID is returned when the {id} path segment is not a
	// positive integer.
	ErrInvalidSimulationID = errors.New("invalid simulation id")
)
