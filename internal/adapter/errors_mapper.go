package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusUnprocessableEntity: ErrUnprocessable,
	http.StatusTooManyRequests:     ErrTooManyRequests,
	http.StatusBadGateway:          ErrBadGateway,
	http.StatusInternalServerError: ErrInternalServerError,
}

// mapHTTPError returns nil for 2xx. Any other status yields an [*APIError],
// wrapped in the status sentinel when one is defined.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	apiErr := &APIError{
		Status: resp.StatusCode(),
		Detail: parseDetail(resp.Body()),
		Body:   strings.TrimSpace(string(resp.Body())),
	}

	if sentinel, ok := statusErrors[resp.StatusCode()]; ok {
		return fmt.Errorf("%w: %w", sentinel, apiErr)
	}
	return apiErr
}
