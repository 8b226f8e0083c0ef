package adapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrUnprocessable       = errors.New("unprocessable entity")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")

	ErrNoCredential = errors.New("no credential held")
	ErrEmptyAddress = errors.New("empty address")
)

// APIError is a non-2xx answer of the API.
//
// Detail holds the messages found in the body's "detail" field: one entry
// for a string detail, one per item for a list of {msg, ...} objects, none
// when the body is missing or unstructured.
type APIError struct {
	Status int
	Detail []string
	Body   string
}

func (e *APIError) Error() string {
	if len(e.Detail) > 0 {
		return fmt.Sprintf("http %d: %s", e.Status, strings.Join(e.Detail, ", "))
	}
	if e.Body != "" {
		return fmt.Sprintf("http %d: %s", e.Status, e.Body)
	}
	return fmt.Sprintf("http %d: %s", e.Status, http.StatusText(e.Status))
}

// Message returns the detail messages joined with ", ". ok is false when the
// server sent no structured detail.
func (e *APIError) Message() (string, bool) {
	if len(e.Detail) == 0 {
		return "", false
	}
	return strings.Join(e.Detail, ", "), true
}

type errorBody struct {
	Detail json.RawMessage `json:"detail"`
}

type errorItem struct {
	Msg string `json:"msg"`
}

// parseDetail extracts detail messages from an error body. Empty messages
// are skipped.
func parseDetail(body []byte) []string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil || len(eb.Detail) == 0 {
		return nil
	}

	var single string
	if err := json.Unmarshal(eb.Detail, &single); err == nil {
		if strings.TrimSpace(single) == "" {
			return nil
		}
		return []string{single}
	}

	var items []errorItem
	if err := json.Unmarshal(eb.Detail, &items); err != nil {
		return nil
	}

	msgs := make([]string, 0, len(items))
	for _, item := range items {
		if strings.TrimSpace(item.Msg) != "" {
			msgs = append(msgs, item.Msg)
		}
	}
	if len(msgs) == 0 {
		return nil
	}
	return msgs
}
