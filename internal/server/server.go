package server

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-fin-simulator/internal/config"
	"github.com/MKhiriev/go-fin-simulator/internal/handler"
	"github.com/MKhiriev/go-fin-simulator/internal/logger"
)

// shutdownTimeout bounds how long in-flight requests may drain.
const shutdownTimeout = 10 * time.Second

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		logger:     logger,
	}, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	s.run(ctx, s.httpServer.RunServer)
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}

// run starts serve in the background and blocks until ctx is done and the
// server has drained.
func (s *server) run(ctx context.Context, serve func()) {
	served := make(chan struct{})

	s.logger.Info().Msg("Launching HTTP server")
	go func() {
		defer close(served)
		serve()
	}()

	select {
	case <-ctx.Done():
		s.Shutdown()
		<-served
		s.logger.Info().Msg("server Shutdown gracefully")
	case <-served:
		s.logger.Warn().Msg("HTTP server stopped unexpectedly")
	}
}
