package http

import (
	"encoding/json"
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

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		writeInvalidJSON(w, r, err)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, credentials.User())
	if err != nil {
		var validationErrs validators.ValidationErrors
		switch {
		case errors.As(err, &validationErrs):
			log.Debug().Err(err).Msg("invalid data provided")
			utils.WriteDetail(w, validationErrs.Details(), http.StatusUnprocessableEntity)
			return
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Info().Msg("email already exists")
			utils.WriteDetail(w, app.MsgEmailAlreadyRegistered, http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			utils.WriteDetail(w, app.MsgInternalServerError, http.StatusInternalServerError)
			return
		}
	}

	log.Info().Int64("id", registeredUser.UserID).Msg("user registered")
	utils.WriteJSON(w, models.OKResponse{OK: true}, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		writeInvalidJSON(w, r, err)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, credentials.User())
	if err != nil {
		var validationErrs validators.ValidationErrors
		switch {
		case errors.As(err, &validationErrs):
			log.Debug().Err(err).Msg("invalid data provided")
			utils.WriteDetail(w, validationErrs.Details(), http.StatusUnprocessableEntity)
			return
		case errors.Is(err, service.ErrWrongPassword):
			log.Info().Msg("no user was found/wrong password")
			utils.WriteDetail(w, app.MsgInvalidCredentials, http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			utils.WriteDetail(w, app.MsgInternalServerError, http.StatusInternalServerError)
			return
		}
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteDetail(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")
	utils.WriteJSON(w, models.Credential{AccessToken: token.SignedString, TokenType: models.TokenTypeBearer}, http.StatusOK)
}
