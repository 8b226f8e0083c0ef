package controller

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-fin-simulator/internal/app"
	"github.com/MKhiriev/go-fin-simulator/internal/logger"
	"github.com/MKhiriev/go-fin-simulator/internal/service"
	"github.com/MKhiriev/go-fin-simulator/internal/validators"
	"github.com/MKhiriev/go-fin-simulator/models"
)

func TestAuthController_Login(t *testing.T) {
	deps := newTestDeps(t)
	auth := NewAuthController(deps.auth, logger.Nop())
	ctx := context.Background()

	deps.auth.EXPECT().Login(ctx, "a@b.co", "secret1").Return(models.Credential{AccessToken: "t"}, nil)
	out := auth.Login(ctx, "a@b.co", "secret1")
	assert.True(t, out.OK())
	assert.Equal(t, RouteSimulator, out.Redirect)
	assert.Equal(t, app.MsgLoginSucceeded, out.Message())

	failure := &service.NoticeError{Message: app.MsgInvalidCredentials, Err: errors.New("401")}
	deps.auth.EXPECT().Login(ctx, "a@b.co", "wrong-pass").Return(models.Credential{}, failure)
	out = auth.Login(ctx, "a@b.co", "wrong-pass")
	assert.Equal(t, app.MsgInvalidCredentials, out.Message())
	assert.Empty(t, out.Redirect)
}

func TestAuthController_LoginInvalidMakesNoCall(t *testing.T) {
	auth := NewAuthController(newTestDeps(t).auth, logger.Nop())

	out := auth.Login(context.Background(), "nope", "123")

	assert.ErrorIs(t, out.Err, ErrInvalidForm)
	assert.Contains(t, out.FieldErrors, validators.FieldEmail)
	assert.Contains(t, out.FieldErrors, validators.FieldPassword)
}

func TestAuthController_Register(t *testing.T) {
	deps := newTestDeps(t)
	auth := NewAuthController(deps.auth, logger.Nop())
	ctx := context.Background()

	out := auth.Register(ctx, "a@b.co", "secret1", "secret2")
	assert.ErrorIs(t, out.Err, ErrInvalidForm, "mismatched confirmation never reaches the server")
	assert.Equal(t, app.MsgPasswordsDoNotMatch, out.FieldErrors[FieldPasswordConfirm])

	deps.auth.EXPECT().Register(ctx, "a@b.co", "secret1").Return(nil)
	out = auth.Register(ctx, "a@b.co", "secret1", "secret1")
	assert.True(t, out.OK())
	assert.Equal(t, RouteLogin, out.Redirect)
	assert.Equal(t, app.MsgRegisterSucceeded, out.Notice)

	taken := &service.NoticeError{Message: app.MsgEmailAlreadyRegistered}
	deps.auth.EXPECT().Register(ctx, "a@b.co", "secret1").Return(taken)
	out = auth.Register(ctx, "a@b.co", "secret1", "secret1")
	assert.Equal(t, app.MsgEmailAlreadyRegistered, out.Message())
}

func TestAuthController_Logout(t *testing.T) {
	deps := newTestDeps(t)
	auth := NewAuthController(deps.auth, logger.Nop())

	deps.auth.EXPECT().Logout(gomock.Any()).Return(errors.New("disk full"))
	out := auth.Logout(context.Background())

	assert.True(t, out.OK())
	assert.Equal(t, RouteLogin, out.Redirect)
	assert.Equal(t, app.MsgLogoutSucceeded, out.Message())
}
