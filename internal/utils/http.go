package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-fin-simulator/models"
)

// WriteJSON serializes data and writes it with the given status code and an
// application/json content type.
//
// If marshaling fails it responds with 500 and returns a wrapped error.
// It returns the number of body bytes written.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteDetail writes the API error body {"detail": detail}. detail is a
// message string or a list of [models.ErrorDetail].
func WriteDetail(w http.ResponseWriter, detail any, statusCode int) (int, error) {
	return WriteJSON(w, models.ErrorResponse{Detail: detail}, statusCode)
}
