// Package utils holds small helpers shared by the simulator server and
// client: request context keys, password hashing, JSON responses, the resty
// HTTP client, JWT handling and ID generation.
package utils

import (
	"context"
)

// contextKey keeps values stored by this package from colliding with
// string keys set elsewhere.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey stores the authenticated user's ID on the request context.
var UserIDCtxKey = contextKey("userID")

// WithUserID returns a copy of ctx carrying userID.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, UserIDCtxKey, userID)
}

// GetUserIDFromContext returns the user ID stored by the auth middleware.
// ok is false when the value is missing or has the wrong type.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}
