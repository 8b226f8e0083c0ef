package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/go-fin-simulator/internal/config"
	"github.com/MKhiriev/go-fin-simulator/internal/logger"
)

const (
	readHeaderTimeout = 5 * time.Second
	idleTimeout       = 60 * time.Second
)

type httpServer struct {
	server *http.Server
	logger *logger.Logger
}

func newHTTPServer(handler http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	return &httpServer{
		server: &http.Server{
			Addr:              cfg.HTTPAddress,
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
			IdleTimeout:       idleTimeout,
		},
		logger: logger,
	}
}

// RunServer listens on the configured address and serves until Shutdown.
func (h *httpServer) RunServer() {
	ln, err := net.Listen("tcp", h.server.Addr)
	if err != nil {
		h.logger.Error().Err(err).Str("address", h.server.Addr).Msg("HTTP server Listen")
		return
	}
	h.serve(ln)
}

func (h *httpServer) serve(ln net.Listener) {
	h.logger.Info().Str("address", ln.Addr().String()).Msg("HTTP server listening")
	if err := h.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		h.logger.Error().Err(err).Msg("HTTP server Serve")
	}
}

func (h *httpServer) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := h.server.Shutdown(ctx); err != nil {
		h.logger.Error().Err(err).Msg("HTTP server Shutdown")
	}
}
