package models

import "time"

// User is a registered account. Email is unique across users.
type User struct {
	// UserID is the server-assigned identifier. It is carried in the JWT
	// "sub" claim and never serialized.
	UserID int64 `json:"-"`

	Email string `json:"email"`

	// Password is the plain-text password received on register/login.
	// It is never persisted and never written back to clients.
	Password string `json:"password,omitempty"`

	// PasswordHash is the pbkdf2-sha256 digest stored in the users table.
	PasswordHash string `json:"-"`

	IsActive  bool      `json:"-"`
	CreatedAt time.Time `json:"-"`
}

// Credentials is the request body of POST /auth/register and POST /auth/login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// User converts the request body into a [User] model.
func (c Credentials) User() User {
	return User{Email: c.Email, Password: c.Password}
}
