// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-fin-simulator/internal/config"
	"github.com/MKhiriev/go-fin-simulator/internal/logger"
	"github.com/MKhiriev/go-fin-simulator/models"
)

type staticCredential struct {
	cred models.Credential
}

func (s staticCredential) Credential() (models.Credential, bool) {
	return s.cred, !s.cred.IsZero()
}

var heldToken = staticCredential{cred: models.Credential{AccessToken: "tok123", TokenType: "bearer"}}

// newTestAdapter creates an httpServerAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string, creds CredentialSource) *httpServerAdapter {
	t.Helper()
	a, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}, creds, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

// ── normalizeBaseURL ────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "localhost:8080", want: "http://localhost:8080"},
		{in: "https://api.example.com/", want: "https://api.example.com"},
		{in: "  http://127.0.0.1:8000  ", want: "http://127.0.0.1:8000"},
		{in: "", wantErr: true},
		{in: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPServerAdapter_EmptyAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{}, heldToken, logger.Nop())
	assert.ErrorIs(t, err, ErrEmptyAddress)
}

// ── Login ───────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		var body models.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, models.Credentials{Email: "a@b.com", Password: "secret"}, body)

		writeJSON(w, http.StatusOK, `{"access_token":"tok123","token_type":"bearer"}`)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, staticCredential{})
	got, err := a.Login(context.Background(), models.Credentials{Email: "a@b.com", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, models.Credential{AccessToken: "tok123", TokenType: "bearer"}, got)
}

func TestLogin_StringDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, `{"detail":"Credenciales inválidas"}`)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, staticCredential{})
	_, err := a.Login(context.Background(), models.Credentials{Email: "a@b.com", Password: "nope"})

	require.ErrorIs(t, err, ErrUnauthorized)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	msg, ok := apiErr.Message()
	assert.True(t, ok)
	assert.Equal(t, "Credenciales inválidas", msg)
}

func TestLogin_ListDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnprocessableEntity,
			`{"detail":[{"loc":["body","email"],"msg":"Correo electrónico inválido","type":"value_error"},{"loc":["body","password"],"msg":"La contraseña es requerida","type":"missing"}]}`)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, staticCredential{})
	_, err := a.Login(context.Background(), models.Credentials{})

	require.ErrorIs(t, err, ErrUnprocessable)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	msg, ok := apiErr.Message()
	assert.True(t, ok)
	assert.Equal(t, "Correo electrónico inválido, La contraseña es requerida", msg)
}

func TestLogin_EmptyToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{}`)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, staticCredential{})
	_, err := a.Login(context.Background(), models.Credentials{Email: "a@b.com", Password: "secret"})

	assert.ErrorIs(t, err, ErrNoCredential)
}

func TestLogin_ServerUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	a := newTestAdapter(t, url, staticCredential{})
	_, err := a.Login(context.Background(), models.Credentials{Email: "a@b.com", Password: "secret"})

	require.Error(t, err)
	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}

// ── Register ────────────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/register", r.URL.Path)
		writeJSON(w, http.StatusOK, `{"ok":true}`)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, staticCredential{})
	assert.NoError(t, a.Register(context.Background(), models.Credentials{Email: "a@b.com", Password: "secret"}))
}

func TestRegister_EmailTaken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, `{"detail":"Email ya registrado"}`)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, staticCredential{})
	err := a.Register(context.Background(), models.Credentials{Email: "a@b.com", Password: "secret"})

	require.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "Email ya registrado")
}

// ── Simulations ─────────────────────────────────────────────────────────────

func TestListSimulations(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/simulations", r.URL.Path)
		assert.Equal(t, "Bearer tok123", r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, `[{"id":2,"amount":500,"term":"Anual","start_date":"2025-01-01","end_date":"2026-01-01","rate_applied":0.15},{"id":1,"amount":100,"term":"Mensual","start_date":"2025-02-01","end_date":"2025-03-01","rate_applied":0.01}]`)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, heldToken)
	got, err := a.ListSimulations(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(2), got[0].ID)
	assert.Equal(t, models.TermAnnual, got[0].Term)
	assert.True(t, got[0].RateApplied.Equal(decimal.RequireFromString("0.15")))
	assert.Equal(t, int64(1), got[1].ID)
}

func TestListSimulations_Empty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `[]`)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, heldToken)
	got, err := a.ListSimulations(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestListSimulations_NoCredential(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, staticCredential{})
	_, err := a.ListSimulations(context.Background())

	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.ErrorIs(t, err, ErrNoCredential)
	assert.False(t, called)
}

func TestListSimulations_TokenRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, `{"detail":"Token inválido"}`)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, heldToken)
	_, err := a.ListSimulations(context.Background())

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestCreateSimulation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer tok123", r.Header.Get("Authorization"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.NotContains(t, body, "rate_applied")
		assert.NotContains(t, body, "id")
		assert.Equal(t, "Mensual", body["term"])

		writeJSON(w, http.StatusOK, `{"id":9,"amount":1000,"term":"Mensual","start_date":"2025-01-01","end_date":"2025-06-01","rate_applied":0.01}`)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, heldToken)
	got, err := a.CreateSimulation(context.Background(), models.SimulationInput{
		Amount:    decimal.NewFromInt(1000),
		Term:      models.TermMonthly,
		StartDate: models.NewDate(2025, time.January, 1),
		EndDate:   models.NewDate(2025, time.June, 1),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(9), got.ID)
	assert.Equal(t, "0.01", got.RateApplied.String())
}

func TestUpdateSimulation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/simulations/9", r.URL.Path)
		writeJSON(w, http.StatusOK, `{"id":9,"amount":2000,"term":"Anual","start_date":"2025-01-01","end_date":"2025-06-01","rate_applied":0.12}`)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, heldToken)
	got, err := a.UpdateSimulation(context.Background(), 9, models.SimulationInput{
		Amount: decimal.NewFromInt(2000),
		Term:   models.TermAnnual,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(9), got.ID)
	assert.Equal(t, models.TermAnnual, got.Term)
}

func TestUpdateSimulation_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, `{"detail":"No encontrada"}`)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, heldToken)
	_, err := a.UpdateSimulation(context.Background(), 404, models.SimulationInput{})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteSimulation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/simulations/3", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, heldToken)
	assert.NoError(t, a.DeleteSimulation(context.Background(), 3))
}

func TestDeleteSimulation_Twice(t *testing.T) {
	deleted := map[string]bool{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if deleted[r.URL.Path] {
			writeJSON(w, http.StatusNotFound, `{"detail":"No encontrada"}`)
			return
		}
		deleted[r.URL.Path] = true
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, heldToken)
	require.NoError(t, a.DeleteSimulation(context.Background(), 3))
	assert.ErrorIs(t, a.DeleteSimulation(context.Background(), 3), ErrNotFound)
}

// ── mapHTTPError / parseDetail ──────────────────────────────────────────────

func TestMapHTTPError_Statuses(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusConflict, ErrConflict},
		{http.StatusUnprocessableEntity, ErrUnprocessable},
		{http.StatusTooManyRequests, ErrTooManyRequests},
		{http.StatusBadGateway, ErrBadGateway},
		{http.StatusInternalServerError, ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL, heldToken)
			err := a.DeleteSimulation(context.Background(), 1)

			assert.ErrorIs(t, err, tt.want)
			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			_, ok := apiErr.Message()
			assert.False(t, ok)
		})
	}
}

func TestMapHTTPError_UnmappedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, heldToken)
	err := a.DeleteSimulation(context.Background(), 1)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusTeapot, apiErr.Status)
	assert.Equal(t, "http 418: short and stout", err.Error())
}

func TestParseDetail(t *testing.T) {
	assert.Equal(t, []string{"x"}, parseDetail([]byte(`{"detail":"x"}`)))
	assert.Equal(t, []string{"a", "b"}, parseDetail([]byte(`{"detail":[{"msg":"a"},{"msg":""},{"msg":"b"}]}`)))
	assert.Nil(t, parseDetail([]byte(`{"detail":""}`)))
	assert.Nil(t, parseDetail([]byte(`{"detail":[]}`)))
	assert.Nil(t, parseDetail([]byte(`{"detail":42}`)))
	assert.Nil(t, parseDetail([]byte(`<html>oops</html>`)))
	assert.Nil(t, parseDetail(nil))
}
