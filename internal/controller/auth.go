package controller

import (
	"context"

	"github.com/MKhiriev/go-fin-simulator/internal/app"
	"github.com/MKhiriev/go-fin-simulator/internal/logger"
	"github.com/MKhiriev/go-fin-simulator/internal/service"
)

// AuthController backs the login and register screens. Both validate
// before calling the server.
type AuthController struct {
	auth   service.ClientAuthService
	logger *logger.Logger
}

func NewAuthController(auth service.ClientAuthService, logger *logger.Logger) *AuthController {
	return &AuthController{auth: auth, logger: logger}
}

// Login authenticates and redirects to the simulator.
func (a *AuthController) Login(ctx context.Context, email, password string) Outcome {
	if errs := ValidateLogin(email, password); !errs.Empty() {
		return invalid(errs)
	}

	if _, err := a.auth.Login(ctx, email, password); err != nil {
		return failed(err)
	}
	return Outcome{Notice: app.MsgLoginSucceeded, Redirect: RouteSimulator}
}

// Register creates the account and redirects to the login screen. The user
// is not logged in.
func (a *AuthController) Register(ctx context.Context, email, password, confirm string) Outcome {
	if errs := ValidateRegister(email, password, confirm); !errs.Empty() {
		return invalid(errs)
	}

	if err := a.auth.Register(ctx, email, password); err != nil {
		return failed(err)
	}
	return Outcome{Notice: app.MsgRegisterSucceeded, Redirect: RouteLogin}
}

// Logout drops the session and redirects to the login screen.
func (a *AuthController) Logout(ctx context.Context) Outcome {
	if err := a.auth.Logout(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("logout failed")
	}
	return Outcome{Notice: app.MsgLogoutSucceeded, Redirect: RouteLogin}
}
