package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-fin-simulator/internal/config"
	"github.com/MKhiriev/go-fin-simulator/internal/logger"
	"github.com/MKhiriev/go-fin-simulator/internal/mock"
	"github.com/MKhiriev/go-fin-simulator/internal/service"
	"github.com/MKhiriev/go-fin-simulator/models"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

type testServices struct {
	auth        *mock.MockAuthService
	simulations *mock.MockSimulationService
	appInfo     *mock.MockAppInfoService
}

// newTestHandler wires gomock services into a Handler with rate limiting
// disabled.
func newTestHandler(t *testing.T) (*Handler, testServices) {
	t.Helper()
	ctrl := gomock.NewController(t)

	mocks := testServices{
		auth:        mock.NewMockAuthService(ctrl),
		simulations: mock.NewMockSimulationService(ctrl),
		appInfo:     mock.NewMockAppInfoService(ctrl),
	}

	h := NewHandler(&service.Services{
		AuthService:       mocks.auth,
		SimulationService: mocks.simulations,
		AppInfoService:    mocks.appInfo,
	}, config.Server{RequestTimeout: time.Second}, logger.Nop())

	return h, mocks
}

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	return r.WithContext(nop.Logger.WithContext(r.Context()))
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func serve(h http.Handler, method, path string, body io.Reader, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// decodeDetail returns the "detail" field of an error body.
func decodeDetail(t *testing.T, rec *httptest.ResponseRecorder) any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), "body: %s", rec.Body.String())
	return body["detail"]
}

// decodeDetailList decodes a 422 body.
func decodeDetailList(t *testing.T, rec *httptest.ResponseRecorder) []models.ErrorDetail {
	t.Helper()
	var body struct {
		Detail []models.ErrorDetail `json:"detail"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), "body: %s", rec.Body.String())
	return body.Detail
}

var bearer = map[string]string{"Authorization": "Bearer good-token"}

func expectValidToken(m *mock.MockAuthService, userID int64) {
	m.EXPECT().ParseToken(gomock.Any(), "good-token").Return(models.Token{UserID: userID}, nil).AnyTimes()
}

// ─────────────────────────────────────────────
// Init: route registration
// ─────────────────────────────────────────────

func TestInit_ProtectedRoutes_RequireAuth(t *testing.T) {
	h, _ := newTestHandler(t)
	router := h.Init()

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/simulations"},
		{http.MethodPost, "/simulations"},
		{http.MethodPut, "/simulations/1"},
		{http.MethodDelete, "/simulations/1"},
	} {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := serve(router, tc.method, tc.path, nil, nil)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "No autorizado", decodeDetail(t, rec))
		})
	}
}

func TestInit_ListViaRouter(t *testing.T) {
	h, m := newTestHandler(t)
	expectValidToken(m.auth, 3)
	m.simulations.EXPECT().List(gomock.Any()).Return(nil, nil)

	rec := serve(h.Init(), http.MethodGet, "/simulations", nil, bearer)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestInit_UnknownRouteReturns404(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := serve(h.Init(), http.MethodGet, "/nonexistent", nil, nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Not Found", decodeDetail(t, rec))
}

func TestInit_WrongMethodReturns404(t *testing.T) {
	h, _ := newTestHandler(t)
	router := h.Init()

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/auth/login"},
		{http.MethodDelete, "/auth/register"},
		{http.MethodPost, "/version"},
	} {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := serve(router, tc.method, tc.path, nil, nil)
			assert.Equal(t, http.StatusNotFound, rec.Code)
		})
	}
}

func TestInit_TraceIDHeader(t *testing.T) {
	h, m := newTestHandler(t)
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.0.0").Times(2)
	router := h.Init()

	rec := serve(router, http.MethodGet, "/version", nil, nil)
	_, err := uuid.Parse(rec.Header().Get(traceIDHeader))
	assert.NoError(t, err)

	rec = serve(router, http.MethodGet, "/version", nil, map[string]string{traceIDHeader: "trace-1"})
	assert.Equal(t, "trace-1", rec.Header().Get(traceIDHeader))
}

func TestGetServerVersion(t *testing.T) {
	h, m := newTestHandler(t)
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.3")

	rec := serve(h.Init(), http.MethodGet, "/version", nil, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1.2.3", rec.Body.String())
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
}

func TestInit_RequestTimeoutApplied(t *testing.T) {
	h, m := newTestHandler(t)
	expectValidToken(m.auth, 3)
	m.simulations.EXPECT().List(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]models.Simulation, error) {
		deadline, ok := ctx.Deadline()
		assert.True(t, ok)
		assert.WithinDuration(t, time.Now().Add(time.Second), deadline, time.Second)
		return []models.Simulation{}, nil
	})

	rec := serve(h.Init(), http.MethodGet, "/simulations", nil, bearer)
	assert.Equal(t, http.StatusOK, rec.Code)
}
