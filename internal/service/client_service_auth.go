package service

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/go-fin-simulator/internal/adapter"
	"github.com/MKhiriev/go-fin-simulator/internal/app"
	"github.com/MKhiriev/go-fin-simulator/internal/logger"
	"github.com/MKhiriev/go-fin-simulator/internal/session"
	"github.com/MKhiriev/go-fin-simulator/models"
)

type clientAuthService struct {
	adapter adapter.ServerAdapter
	session *session.Session

	logger *logger.Logger
}

func NewClientAuthService(serverAdapter adapter.ServerAdapter, sess *session.Session, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		adapter: serverAdapter,
		session: sess,
		logger:  logger,
	}
}

func (s *clientAuthService) Login(ctx context.Context, email, password string) (models.Credential, error) {
	credential, err := s.adapter.Login(ctx, models.Credentials{
		Email:    strings.TrimSpace(email),
		Password: password,
	})
	if err != nil {
		s.logger.Info().Err(err).Msg("login failed")
		return models.Credential{}, toNotice(err, app.MsgLoginFailed)
	}

	err = s.session.Hold(ctx, credential)
	switch {
	case errors.Is(err, session.ErrEmptyCredential):
		return models.Credential{}, &NoticeError{Message: app.MsgLoginFailed, Err: err}
	case err != nil:
		// held in memory, only persisting failed
		s.logger.Err(err).Msg("credential was not persisted")
	}

	s.logger.Debug().Msg("login succeeded, credential held")
	return credential, nil
}

func (s *clientAuthService) Register(ctx context.Context, email, password string) error {
	err := s.adapter.Register(ctx, models.Credentials{
		Email:    strings.TrimSpace(email),
		Password: password,
	})
	if err != nil {
		s.logger.Info().Err(err).Msg("registration failed")
		return toNotice(err, app.MsgRegisterFailed)
	}

	return nil
}

// Logout always drops the in-memory credential. A failure to remove the
// persisted copy is only logged.
func (s *clientAuthService) Logout(ctx context.Context) error {
	if err := s.session.Clear(ctx); err != nil {
		s.logger.Err(err).Msg("persisted credential was not removed")
	}
	return nil
}
