// Package tui is the terminal interface of the simulator client, built on
// Bubble Tea. A [RootModel] routes between the login, register and
// simulator screens; all screen logic lives in the controller package.
package tui

import (
	"context"
	"errors"
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-fin-simulator/internal/controller"
	"github.com/MKhiriev/go-fin-simulator/internal/logger"
	"github.com/MKhiriev/go-fin-simulator/internal/service"
	"github.com/MKhiriev/go-fin-simulator/models"
)

type TUI struct {
	guard     controller.Guard
	auth      *controller.AuthController
	simulator *controller.SimulatorPage
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	mu      sync.Mutex
	program *tea.Program

	programOptions []tea.ProgramOption
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil || services.Session == nil {
		return nil, errors.New("client services with a session are required")
	}

	guard := controller.NewGuard(services.Session)
	return &TUI{
		guard:          guard,
		auth:           controller.NewAuthController(services.AuthService, logger),
		simulator:      controller.NewSimulatorPage(guard, services.AuthService, services.SimulationService, logger),
		buildInfo:      buildInfo,
		logger:         logger,
		programOptions: []tea.ProgramOption{tea.WithAltScreen()},
	}, nil
}

// Run shows the interface and blocks until the user quits or ctx is
// cancelled. Commands still in flight see a cancelled context and their
// results are dropped.
func (t *TUI) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	pages := map[controller.Route]page{
		controller.RouteLogin:     NewLoginModel(ctx, t.auth),
		controller.RouteRegister:  NewRegisterModel(ctx, t.auth),
		controller.RouteSimulator: NewSimulatorModel(ctx, t.simulator),
	}
	root := NewRootModel(t.guard, pages, controller.RouteSimulator, t.buildInfo)

	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, t.programOptions...)
	program := tea.NewProgram(root, opts...)

	t.mu.Lock()
	t.program = program
	t.mu.Unlock()
	defer func() {
		t.mu.Lock()
		t.program = nil
		t.mu.Unlock()
	}()

	finalModel, err := program.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("error running terminal ui: %w", err)
	}

	if result, ok := finalModel.(RootModel); ok && result.quitByUser {
		return ErrUserQuit
	}
	return nil
}

// SessionExpired tells a running interface that the credential expired.
// It is safe to call from any goroutine and does nothing when the
// interface is not running.
func (t *TUI) SessionExpired() {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program == nil {
		return
	}
	t.logger.Info().Msg("session expired, returning to login")
	go program.Send(SessionExpiredMsg{})
}
