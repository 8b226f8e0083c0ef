// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-fin-simulator/internal/config"
	"github.com/MKhiriev/go-fin-simulator/internal/logger"
)

const defaultSessionCheckInterval = 30 * time.Second

// SessionWatcher clears the session once its credential expires and calls
// onExpired so the interface can return to the login screen.
type SessionWatcher struct {
	session   ExpiringSession
	interval  time.Duration
	onExpired func()
	logger    *logger.Logger
}

func NewSessionWatcher(session ExpiringSession, cfg config.ClientWorkers, onExpired func(), logger *logger.Logger) *SessionWatcher {
	interval := cfg.SessionCheckInterval
	if interval <= 0 {
		interval = defaultSessionCheckInterval
	}
	if onExpired == nil {
		onExpired = func() {}
	}

	return &SessionWatcher{
		session:   session,
		interval:  interval,
		onExpired: onExpired,
		logger:    logger,
	}
}

func (w *SessionWatcher) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.Debug().Dur("interval", w.interval).Msg("session watcher started")
	for {
		select {
		case <-ctx.Done():
			w.logger.Debug().Msg("session watcher stopped")
			return
		case <-ticker.C:
			w.check(ctx)
		}
	}
}

// check reports whether an expired credential was dropped.
func (w *SessionWatcher) check(ctx context.Context) bool {
	if !w.session.IsAuthenticated() || !w.session.Expired() {
		return false
	}

	if err := w.session.Clear(ctx); err != nil {
		w.logger.Err(err).Str("func", "SessionWatcher.check").Msg("error clearing expired session")
	}
	w.onExpired()
	return true
}
