package controller

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-fin-simulator/internal/app"
	"github.com/MKhiriev/go-fin-simulator/internal/logger"
	"github.com/MKhiriev/go-fin-simulator/internal/service"
)

// SimulatorPage composes the form and the list of the simulator screen.
type SimulatorPage struct {
	guard  Guard
	auth   service.ClientAuthService
	Form   *FormController
	List   *ListController
	logger *logger.Logger
}

func NewSimulatorPage(guard Guard, auth service.ClientAuthService, simulations service.ClientSimulationService, logger *logger.Logger) *SimulatorPage {
	form := NewFormController(simulations, logger)
	return &SimulatorPage{
		guard:  guard,
		auth:   auth,
		Form:   form,
		List:   NewListController(simulations, form, logger),
		logger: logger,
	}
}

// Mount loads the collection, or redirects when there is no session.
func (p *SimulatorPage) Mount(ctx context.Context) Outcome {
	if route := p.guard.Resolve(RouteSimulator); route != RouteSimulator {
		return Outcome{Redirect: route}
	}
	return p.expire(ctx, Outcome{Err: p.List.Refresh(ctx)})
}

// Submit saves the form and, on success, reloads the collection.
func (p *SimulatorPage) Submit(ctx context.Context) Outcome {
	out := p.Form.Submit(ctx)
	if out.OK() {
		out.Err = p.List.Refresh(ctx)
	}
	return p.expire(ctx, out)
}

// Edit puts the simulation with id into the form.
func (p *SimulatorPage) Edit(id int64) bool {
	sim, ok := p.List.Find(id)
	if ok {
		p.List.RequestEdit(sim)
	}
	return ok
}

func (p *SimulatorPage) ConfirmDelete(ctx context.Context) Outcome {
	return p.expire(ctx, p.List.ConfirmDelete(ctx))
}

// Logout drops the session and resets the screen state.
func (p *SimulatorPage) Logout(ctx context.Context) Outcome {
	p.Reset()
	if err := p.auth.Logout(ctx); err != nil {
		p.logger.Warn().Err(err).Msg("logout failed")
	}
	return Outcome{Notice: app.MsgLogoutSucceeded, Redirect: RouteLogin}
}

// expire turns a session-expired failure into a logout with a redirect.
func (p *SimulatorPage) expire(ctx context.Context, out Outcome) Outcome {
	if !errors.Is(out.Err, service.ErrSessionExpired) {
		return out
	}

	p.Reset()
	if err := p.auth.Logout(ctx); err != nil {
		p.logger.Warn().Err(err).Msg("clearing expired session failed")
	}
	out.Notice = ""
	out.Redirect = RouteLogin
	return out
}

// Reset clears the form and the loaded collection.
func (p *SimulatorPage) Reset() {
	p.Form.Cancel()
	p.List.Reset()
}
