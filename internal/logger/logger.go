// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog.Logger with the constructors and
// context helpers used by the simulator server and client.
//
// Request-scoped loggers are attached to a context with zerolog's
// WithContext and retrieved with FromContext or FromRequest.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ClientLogFileName is the file the client logger appends to. It lives next
// to the executable because the terminal UI owns stdout.
const ClientLogFileName = "logs"

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// NewLogger returns a JSON logger writing to stdout. Every entry carries the
// role, a timestamp and the calling function name in the "func" field.
func NewLogger(role string) *Logger {
	return newLogger(os.Stdout, role)
}

// NewClientLogger returns a logger appending to [ClientLogFileName] next to
// the executable, falling back to stdout if the file cannot be opened.
func NewClientLogger(role string) *Logger {
	var out io.Writer = os.Stdout

	execPath, err := os.Executable()
	if err == nil {
		logPath := filepath.Join(filepath.Dir(execPath), ClientLogFileName)
		if logFile, openErr := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644); openErr == nil {
			out = logFile
		}
	}

	return newLogger(out, role)
}

func newLogger(out io.Writer, role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	l := zerolog.New(out).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{l}
}

// Nop returns a *Logger that discards everything. Used in tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a copy of l that can be enriched without touching l.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// WithField returns a child logger carrying key=value on every entry.
func (l *Logger) WithField(key, value string) *Logger {
	return &Logger{l.With().Str(key, value).Logger()}
}

// FromRequest returns the logger stored in the request context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger stored in ctx. When none is stored zerolog
// hands back its disabled default logger, so the result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
