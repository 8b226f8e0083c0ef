package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

// Password hashes are stored in the modular crypt format
//
//	$pbkdf2-sha256$<iterations>$<salt>$<checksum>
//
// where salt and checksum use the "adapted base64" alphabet ('.' in place
// of '+', no padding). Hashes written by other PBKDF2-SHA256 implementations
// using the same format verify unchanged.
const (
	passwordHashScheme  = "pbkdf2-sha256"
	passwordSaltLength  = 16
	passwordKeyLength   = 32
	passwordHashMinIter = 1
)

// ErrMalformedPasswordHash is returned when a stored hash cannot be parsed.
var ErrMalformedPasswordHash = errors.New("malformed password hash")

var adaptedBase64 = base64.NewEncoding(
	"ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789./",
).WithPadding(base64.NoPadding)

// HashPassword derives a salted PBKDF2-SHA256 hash of password.
func HashPassword(password string, iterations int) (string, error) {
	if iterations < passwordHashMinIter {
		return "", fmt.Errorf("invalid iteration count %d", iterations)
	}

	salt := make([]byte, passwordSaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("error generating salt: %w", err)
	}

	checksum := pbkdf2.Key([]byte(password), salt, iterations, passwordKeyLength, sha256.New)

	return fmt.Sprintf("$%s$%d$%s$%s",
		passwordHashScheme,
		iterations,
		adaptedBase64.EncodeToString(salt),
		adaptedBase64.EncodeToString(checksum),
	), nil
}

// VerifyPassword reports whether password matches encoded. The comparison
// runs in constant time.
func VerifyPassword(password, encoded string) (bool, error) {
	iterations, salt, checksum, err := parsePasswordHash(encoded)
	if err != nil {
		return false, err
	}

	derived := pbkdf2.Key([]byte(password), salt, iterations, len(checksum), sha256.New)

	return subtle.ConstantTimeCompare(derived, checksum) == 1, nil
}

func parsePasswordHash(encoded string) (int, []byte, []byte, error) {
	// "", scheme, iterations, salt, checksum
	parts := strings.Split(encoded, "$")
	if len(parts) != 5 || parts[0] != "" || parts[1] != passwordHashScheme {
		return 0, nil, nil, ErrMalformedPasswordHash
	}

	iterations, err := strconv.Atoi(parts[2])
	if err != nil || iterations < passwordHashMinIter {
		return 0, nil, nil, ErrMalformedPasswordHash
	}

	salt, err := adaptedBase64.DecodeString(parts[3])
	if err != nil {
		return 0, nil, nil, fmt.Errorf("%w: salt: %w", ErrMalformedPasswordHash, err)
	}

	checksum, err := adaptedBase64.DecodeString(parts[4])
	if err != nil || len(checksum) == 0 {
		return 0, nil, nil, ErrMalformedPasswordHash
	}

	return iterations, salt, checksum, nil
}
