// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-fin-simulator/internal/adapter"
	"github.com/MKhiriev/go-fin-simulator/internal/app"
)

// toNotice converts an adapter error into a [*NoticeError]. The message is
// the server's detail when it sent one (list messages joined with ", "),
// otherwise fallback.
func toNotice(err error, fallback string) error {
	if err == nil {
		return nil
	}

	message := fallback
	var apiErr *adapter.APIError
	if errors.As(err, &apiErr) {
		if detail, ok := apiErr.Message(); ok {
			message = detail
		}
	}

	return &NoticeError{Message: message, Err: err}
}

// toProtectedNotice is toNotice for calls that need a held credential. A
// 401 means the session is no longer valid.
func toProtectedNotice(err error, fallback string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, adapter.ErrUnauthorized) {
		return &NoticeError{
			Message: app.MsgSessionExpired,
			Err:     fmt.Errorf("%w: %w", ErrSessionExpired, err),
		}
	}

	return toNotice(err, fallback)
}
