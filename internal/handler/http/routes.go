package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-fin-simulator/internal/utils"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Route("/auth", func(r chi.Router) {
		r.Use(h.withRateLimit)
		r.Post("/register", h.register)
		r.Post("/login", h.login)
	})

	router.Route("/simulations", func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/", h.listSimulations)
		r.Post("/", h.createSimulation)
		r.Put("/{id}", h.updateSimulation)
		r.Delete("/{id}", h.deleteSimulation)
	})

	router.Get("/version", h.getServerVersion)

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteDetail(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
