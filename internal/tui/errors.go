// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"net"
	"strings"

	"github.com/MKhiriev/go-fin-simulator/internal/app"
	"github.com/MKhiriev/go-fin-simulator/internal/controller"
)

var ErrUserQuit = errors.New("user quit")

// outcomeText is the toast text for out. Transport failures get a hint that
// the server could not be reached.
func outcomeText(out controller.Outcome) string {
	text := out.Message()
	if text == "" || !isServerUnavailable(out.Err) {
		return text
	}
	return text + " (" + app.MsgServerUnavailable + ")"
}

func isServerUnavailable(err error) bool {
	if err == nil {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	s := strings.ToLower(err.Error())
	return strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded")
}
