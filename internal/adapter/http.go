package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-fin-simulator/internal/config"
	"github.com/MKhiriev/go-fin-simulator/internal/logger"
	"github.com/MKhiriev/go-fin-simulator/internal/utils"
	"github.com/MKhiriev/go-fin-simulator/models"
)

type httpServerAdapter struct {
	client      *utils.HTTPClient
	credentials CredentialSource

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP/REST implementation of
// [ServerAdapter]. It normalises the base URL from cfg.HTTPAddress and
// configures the resty client with it and the request timeout.
//
// credentials is consulted on every simulation call; the adapter never
// stores a token itself.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(cfg config.ClientAdapter, credentials CredentialSource, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client:      utils.NewAPIClient(baseURL, cfg.RequestTimeout),
		credentials: credentials,
		logger:      logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Register implements [ServerAdapter] with POST /auth/register.
func (h *httpServerAdapter) Register(ctx context.Context, credentials models.Credentials) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		Post("/auth/register")
	if err != nil {
		return fmt.Errorf("register request: %w", err)
	}

	return mapHTTPError(resp)
}

// Login implements [ServerAdapter] with POST /auth/login. A 2xx answer
// without an access_token is treated as an error.
func (h *httpServerAdapter) Login(ctx context.Context, credentials models.Credentials) (models.Credential, error) {
	var credential models.Credential

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		SetResult(&credential).
		Post("/auth/login")
	if err != nil {
		return models.Credential{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Credential{}, err
	}
	if credential.IsZero() {
		return models.Credential{}, fmt.Errorf("login response: %w", ErrNoCredential)
	}

	return credential, nil
}

// ListSimulations implements [ServerAdapter] with GET /simulations.
func (h *httpServerAdapter) ListSimulations(ctx context.Context) ([]models.Simulation, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	var simulations []models.Simulation
	resp, err := req.SetResult(&simulations).Get("/simulations")
	if err != nil {
		return nil, fmt.Errorf("list simulations request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if simulations == nil {
		simulations = []models.Simulation{}
	}
	return simulations, nil
}

// CreateSimulation implements [ServerAdapter] with POST /simulations.
func (h *httpServerAdapter) CreateSimulation(ctx context.Context, input models.SimulationInput) (models.Simulation, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Simulation{}, err
	}

	var created models.Simulation
	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(input).
		SetResult(&created).
		Post("/simulations")
	if err != nil {
		return models.Simulation{}, fmt.Errorf("create simulation request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Simulation{}, err
	}

	return created, nil
}

// UpdateSimulation implements [ServerAdapter] with PUT /simulations/{id}.
func (h *httpServerAdapter) UpdateSimulation(ctx context.Context, id int64, input models.SimulationInput) (models.Simulation, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Simulation{}, err
	}

	var updated models.Simulation
	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetBody(input).
		SetResult(&updated).
		Put("/simulations/{id}")
	if err != nil {
		return models.Simulation{}, fmt.Errorf("update simulation request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Simulation{}, err
	}

	return updated, nil
}

// DeleteSimulation implements [ServerAdapter] with DELETE /simulations/{id}.
func (h *httpServerAdapter) DeleteSimulation(ctx context.Context, id int64) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Delete("/simulations/{id}")
	if err != nil {
		return fmt.Errorf("delete simulation request: %w", err)
	}

	return mapHTTPError(resp)
}

// authedRequest attaches the held credential. Without one the call is not
// sent and the error matches [ErrUnauthorized].
func (h *httpServerAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	credential, ok := h.credentials.Credential()
	if !ok {
		h.logger.Debug().Msg("no credential held, request not sent")
		return nil, fmt.Errorf("%w: %w", ErrUnauthorized, ErrNoCredential)
	}

	return h.client.R().
		SetContext(ctx).
		SetHeader("Authorization", credential.AuthorizationHeader()), nil
}
