// Package session owns the client's single bearer credential.
//
// A [Session] is created once by the client app and injected into the
// adapter, the client services, the controllers and the terminal UI. It is
// the only writer of the persisted credential.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-fin-simulator/internal/logger"
	"github.com/MKhiriev/go-fin-simulator/internal/store"
	"github.com/MKhiriev/go-fin-simulator/internal/utils"
	"github.com/MKhiriev/go-fin-simulator/models"
)

var ErrEmptyCredential = errors.New("credential has no access token")

// Session holds at most one credential. Its lifecycle is
// empty → held (Hold) → empty (Clear or expiry).
type Session struct {
	mu         sync.RWMutex
	credential models.Credential

	// store persists the credential across restarts; nil keeps it in memory.
	store store.CredentialStore
	now   func() time.Time

	logger *logger.Logger
}

func New(credentials store.CredentialStore, logger *logger.Logger) *Session {
	return &Session{
		store:  credentials,
		now:    time.Now,
		logger: logger,
	}
}

// Hold replaces the current credential. The credential is held even when
// persisting it fails; the persistence error is returned for logging.
func (s *Session) Hold(ctx context.Context, credential models.Credential) error {
	if credential.IsZero() {
		return ErrEmptyCredential
	}
	if credential.TokenType == "" {
		credential.TokenType = models.TokenTypeBearer
	}

	s.mu.Lock()
	s.credential = credential
	s.mu.Unlock()

	if s.store == nil {
		return nil
	}
	if err := s.store.Save(ctx, credential); err != nil {
		return fmt.Errorf("error persisting credential: %w", err)
	}
	return nil
}

// Credential returns the held credential. ok is false when none is held.
func (s *Session) Credential() (models.Credential, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.credential, !s.credential.IsZero()
}

// IsAuthenticated reports whether a credential is held.
func (s *Session) IsAuthenticated() bool {
	_, ok := s.Credential()
	return ok
}

// Clear drops the held credential and its persisted copy.
func (s *Session) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.credential = models.Credential{}
	s.mu.Unlock()

	if s.store == nil {
		return nil
	}
	if err := s.store.Delete(ctx); err != nil {
		return fmt.Errorf("error deleting persisted credential: %w", err)
	}
	return nil
}

// Restore loads the persisted credential. An expired one is deleted instead
// of held. It reports whether a credential is held afterwards.
func (s *Session) Restore(ctx context.Context) (bool, error) {
	if s.store == nil {
		return s.IsAuthenticated(), nil
	}

	credential, err := s.store.Load(ctx)
	if errors.Is(err, store.ErrCredentialNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("error loading persisted credential: %w", err)
	}

	if s.expired(credential) {
		s.logger.Info().Msg("persisted credential has expired, discarding it")
		return false, s.store.Delete(ctx)
	}

	s.mu.Lock()
	s.credential = credential
	s.mu.Unlock()

	return true, nil
}

// Expired reports whether the held credential carries an exp claim in the
// past. Opaque tokens, tokens without exp and an empty session never expire
// here; the server stays the authority.
func (s *Session) Expired() bool {
	credential, ok := s.Credential()
	if !ok {
		return false
	}
	return s.expired(credential)
}

func (s *Session) expired(credential models.Credential) bool {
	exp, err := utils.TokenExpiry(credential.AccessToken)
	if err != nil || exp.IsZero() {
		return false
	}
	return !s.now().Before(exp)
}
