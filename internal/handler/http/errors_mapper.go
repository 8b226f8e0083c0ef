package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-fin-simulator/internal/app"
	"github.com/MKhiriev/go-fin-simulator/internal/logger"
	"github.com/MKhiriev/go-fin-simulator/internal/service"
	"github.com/MKhiriev/go-fin-simulator/internal/store"
	"github.com/MKhiriev/go-fin-simulator/internal/utils"
	"github.com/MKhiriev/go-fin-simulator/internal/validators"
	"github.com/MKhiriev/go-fin-simulator/models"
)

var errorStatusMap = map[error]int{
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrNoUserIDInContext:       http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	store.ErrEmailAlreadyExists: http.StatusBadRequest,
	store.ErrSimulationNotFound: http.StatusNotFound,
	store.ErrNoUserWasFound:     http.StatusUnauthorized,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

// errorDetailMap holds the "detail" string returned for a mapped error.
// Errors absent here answer with a generic message.
var errorDetailMap = map[error]string{
	service.ErrWrongPassword:           app.MsgInvalidCredentials,
	service.ErrTokenIsExpiredOrInvalid: app.MsgInvalidToken,
	service.ErrNoUserIDInContext:       app.MsgUnauthorized,
	store.ErrEmailAlreadyExists:        app.MsgEmailAlreadyRegistered,
	store.ErrSimulationNotFound:        app.MsgSimulationNotFound,
	store.ErrNoUserWasFound:            app.MsgUnauthorized,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func detailFromError(err error) string {
	for target, detail := range errorDetailMap {
		if errors.Is(err, target) {
			return detail
		}
	}
	return app.MsgInternalServerError
}

// writeError answers with the status and detail mapped from err. Validation
// failures become a 422 with one entry per invalid field.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	var validationErrs validators.ValidationErrors
	if errors.As(err, &validationErrs) {
		log.Debug().Err(err).Msg("validation failed")
		utils.WriteDetail(w, validationErrs.Details(), http.StatusUnprocessableEntity)
		return
	}

	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Msg("request failed")
	} else {
		log.Info().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteDetail(w, detailFromError(err), status)
}

// writeInvalidJSON answers a body that could not be decoded.
func writeInvalidJSON(w http.ResponseWriter, r *http.Request, err error) {
	logger.FromRequest(r).Debug().Err(err).Msg("invalid JSON was passed")
	utils.WriteDetail(w, []models.ErrorDetail{{
		Loc:  []string{"body"},
		Msg:  app.MsgInvalidJSON,
		Type: validators.TypeJSONInvalid,
	}}, http.StatusUnprocessableEntity)
}
