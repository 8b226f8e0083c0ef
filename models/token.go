package models

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTypeBearer is the only token type issued by the API.
const TokenTypeBearer = "bearer"

// Token wraps a signed JWT on the server side.
//
// SignedString holds the compact header.payload.signature form returned to
// clients; UserID is the parsed "sub" claim.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	SignedString string `json:"-"`
	UserID       int64  `json:"-"`
}

// GetUserID parses the "sub" claim as a base-10 int64.
func (t *Token) GetUserID() (int64, error) {
	userIDString, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// String returns the compact JWS serialization.
func (t *Token) String() string {
	return t.SignedString
}

// Credential is the bearer credential returned by POST /auth/login and held
// by the client session. AccessToken is opaque to the client.
type Credential struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// IsZero reports whether no token is present.
func (c Credential) IsZero() bool {
	return strings.TrimSpace(c.AccessToken) == ""
}

// AuthorizationHeader renders the value of the Authorization header,
// e.g. "Bearer eyJhbGciOi...". The scheme defaults to Bearer.
func (c Credential) AuthorizationHeader() string {
	scheme := "Bearer"
	if t := strings.TrimSpace(c.TokenType); t != "" && !strings.EqualFold(t, TokenTypeBearer) {
		scheme = t
	}
	return scheme + " " + c.AccessToken
}
