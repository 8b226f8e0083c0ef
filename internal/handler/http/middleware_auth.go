// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Authentication, logging, tracing, compression and
// rate limiting are handled at this layer before requests are forwarded to
// the service layer.
package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-fin-simulator/internal/app"
	"github.com/MKhiriev/go-fin-simulator/internal/logger"
	"github.com/MKhiriev/go-fin-simulator/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// validates it via [service.AuthService.ParseToken], and on success stores
// the authenticated user's ID in the request context (see [utils.WithUserID])
// before delegating to the next handler.
//
// Rejections answer 401 with a JSON detail:
//   - "No autorizado" when the header is absent.
//   - "Token inválido" when the header cannot be parsed or the token is
//     expired, badly signed or otherwise invalid.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if strings.TrimSpace(authHeader) == "" {
			log.Info().Err(ErrEmptyAuthorizationHeader).Send()
			unauthorized(w, app.MsgUnauthorized)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Info().Err(err).Send()
			unauthorized(w, app.MsgInvalidToken)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Info().Err(err).Msg("error occurred during parsing token")
			unauthorized(w, app.MsgInvalidToken)
			return
		}

		// Store the authenticated user's ID in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = utils.WithUserID(ctx, token.UserID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func unauthorized(w http.ResponseWriter, detail string) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	utils.WriteDetail(w, detail, http.StatusUnauthorized)
}

// getTokenFromAuthHeader extracts the token from a raw "Authorization"
// header value. Both "Bearer <token>" and a bare "<token>" are accepted.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Fields(authHeader)
	switch len(parts) {
	case 0:
		return "", ErrEmptyToken
	case 1:
		if strings.EqualFold(parts[0], "Bearer") {
			return "", ErrEmptyToken
		}
		return parts[0], nil
	default:
		return utils.ParseBearerToken(authHeader)
	}
}
