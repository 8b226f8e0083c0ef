package models

// OKResponse is returned by endpoints that have no payload of their own.
type OKResponse struct {
	OK bool `json:"ok"`
}

// ErrorDetail is a single structured validation problem. Loc points at the
// offending value, e.g. ["body", "amount"].
type ErrorDetail struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// ErrorResponse is the error body of every API failure. Detail is either a
// plain string or a list of [ErrorDetail].
type ErrorResponse struct {
	Detail any `json:"detail"`
}
