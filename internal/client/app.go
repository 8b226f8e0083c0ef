package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/go-fin-simulator/internal/config"
	"github.com/MKhiriev/go-fin-simulator/internal/logger"
	"github.com/MKhiriev/go-fin-simulator/internal/service"
	"github.com/MKhiriev/go-fin-simulator/internal/tui"
	"github.com/MKhiriev/go-fin-simulator/internal/workers"
)

var errMissingDependency = errors.New("client services and ui are required")

type App struct {
	services *service.ClientServices
	ui       UI
	workers  *workers.Workers
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, cfg config.ClientWorkers, logger *logger.Logger) (*App, error) {
	if services == nil || services.Session == nil || ui == nil {
		return nil, errMissingDependency
	}

	watcher := workers.NewSessionWatcher(services.Session, cfg, ui.SessionExpired, logger)
	return &App{
		services: services,
		ui:       ui,
		workers:  workers.NewWorkers(watcher),
		logger:   logger,
	}, nil
}

// Run restores the session, then runs the UI until the user quits or the
// process is signalled. Background workers stop before Run returns.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	restored, err := a.services.Session.Restore(ctx)
	if err != nil {
		a.logger.Warn().Err(err).Msg("could not restore session, starting logged out")
	}
	a.logger.Info().Bool("restored", restored).Msg("client starting")

	workersCtx, cancelWorkers := context.WithCancel(ctx)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		a.workers.Run(workersCtx)
	}()

	err = a.ui.Run(ctx)

	cancelWorkers()
	wg.Wait()

	switch {
	case err == nil, errors.Is(err, tui.ErrUserQuit):
		a.logger.Info().Msg("client stopped")
		return nil
	default:
		return fmt.Errorf("client ui error: %w", err)
	}
}
