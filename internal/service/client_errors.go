// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// ErrSessionExpired marks a protected call rejected with 401. The client
// clears its session and returns to the login screen when it sees it.
var ErrSessionExpired = errors.New("session expired")

// NoticeError is a failure converted at the client service boundary.
// Message is safe to show to the user; Err keeps the cause for logging and
// errors.Is matching.
type NoticeError struct {
	Message string
	Err     error
}

func (e *NoticeError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *NoticeError) Unwrap() error {
	return e.Err
}

// NoticeMessage returns the displayable message of err, or fallback when
// err is not a [*NoticeError].
func NoticeMessage(err error, fallback string) string {
	var notice *NoticeError
	if errors.As(err, &notice) && notice.Message != "" {
		return notice.Message
	}
	return fallback
}
