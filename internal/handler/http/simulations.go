package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-fin-simulator/internal/app"
	"github.com/MKhiriev/go-fin-simulator/internal/logger"
	"github.com/MKhiriev/go-fin-simulator/internal/utils"
	"github.com/MKhiriev/go-fin-simulator/models"
)

func (h *Handler) listSimulations(w http.ResponseWriter, r *http.Request) {
	simulations, err := h.services.SimulationService.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if simulations == nil {
		simulations = []models.Simulation{}
	}

	utils.WriteJSON(w, simulations, http.StatusOK)
}

func (h *Handler) createSimulation(w http.ResponseWriter, r *http.Request) {
	var input models.SimulationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeInvalidJSON(w, r, err)
		return
	}

	created, err := h.services.SimulationService.Create(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Int64("simulation_id", created.ID).Msg("simulation created")
	utils.WriteJSON(w, created, http.StatusOK)
}

func (h *Handler) updateSimulation(w http.ResponseWriter, r *http.Request) {
	simulationID, ok := simulationIDFromPath(w, r)
	if !ok {
		return
	}

	var input models.SimulationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeInvalidJSON(w, r, err)
		return
	}

	updated, err := h.services.SimulationService.Update(r.Context(), simulationID, input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteSimulation(w http.ResponseWriter, r *http.Request) {
	simulationID, ok := simulationIDFromPath(w, r)
	if !ok {
		return
	}

	if err := h.services.SimulationService.Delete(r.Context(), simulationID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// simulationIDFromPath parses {id}. On failure it writes a 422 and returns
// false.
func simulationIDFromPath(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		logger.FromRequest(r).Debug().Str("id", raw).Err(ErrInvalidSimulationID).Send()
		utils.WriteDetail(w, []models.ErrorDetail{{
			Loc:  []string{"path", "id"},
			Msg:  app.MsgInvalidSimulationID,
			Type: "int_parsing",
		}}, http.StatusUnprocessableEntity)
		return 0, false
	}
	return id, true
}
