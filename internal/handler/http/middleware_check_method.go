// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-fin-simulator/internal/utils"
)

// CheckHTTPMethod returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// Chi answers 405 whenever a path exists but the method is not handled.
// This handler answers 404 with a JSON detail instead, so callers using an
// unsupported method cannot tell the route exists. Nested routers are
// resolved with [chi.Mux.Match]; if the method does match (for example after
// a trailing-slash redirect) the request is served normally.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if !router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			utils.WriteDetail(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}
