// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks simulator inputs against their business rules.
//
// Validators collect every failing field instead of stopping at the first
// one, so callers can report all problems at once. The result is a
// [ValidationErrors] that renders as the API's 422 detail list.
package validators

import "context"

// Validator validates a value, optionally restricted to the named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
