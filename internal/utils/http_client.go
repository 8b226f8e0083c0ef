package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient embeds *resty.Client so callers use the resty API directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client with its own connection pool.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}

// NewAPIClient returns a client preconfigured for the simulator JSON API:
// base URL, per-request timeout and JSON accept header.
func NewAPIClient(baseURL string, timeout time.Duration) *HTTPClient {
	c := NewHTTPClient()
	c.SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	return c
}
