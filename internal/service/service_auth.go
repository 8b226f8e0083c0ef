package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-fin-simulator/internal/config"
	"github.com/MKhiriev/go-fin-simulator/internal/logger"
	"github.com/MKhiriev/go-fin-simulator/internal/store"
	"github.com/MKhiriev/go-fin-simulator/internal/utils"
	"github.com/MKhiriev/go-fin-simulator/internal/validators"
	"github.com/MKhiriev/go-fin-simulator/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and PBKDF2-SHA256 for
// password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// validator checks the email shape and password length of incoming
	// credentials.
	validator validators.Validator

	// hashIterations is the PBKDF2 round count used for new password hashes.
	// Existing hashes carry their own count and verify regardless.
	hashIterations int

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		validator:      validators.NewCredentialsValidator(),
		hashIterations: cfg.PasswordHashIterations,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// The email must have the local@domain.tld shape and the password must be at
// least 6 characters long. The password is stored as a PBKDF2-SHA256 hash.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided wrapping validators.ValidationErrors.
//   - store.ErrEmailAlreadyExists if the email is taken.
//   - A wrapped storage error for any other repository failure.
func (a *authService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.Email = strings.TrimSpace(user.Email)
	if err := a.validator.Validate(ctx, user); err != nil {
		log.Debug().Err(err).Str("email", user.Email).Msg("invalid user data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	hash, err := utils.HashPassword(user.Password, a.hashIterations)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}
	user.PasswordHash = hash
	user.Password = ""

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// Unknown emails, inactive accounts and password mismatches all return
// ErrWrongPassword, so a caller cannot probe which emails are registered.
func (a *authService) Login(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.Email = strings.TrimSpace(user.Email)
	if err := a.validator.Validate(ctx, user, validators.FieldEmail, validators.FieldPasswordPresent); err != nil {
		log.Debug().Err(err).Str("email", user.Email).Msg("invalid user data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, user.Email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Info().Str("email", user.Email).Msg("login for unknown email")
		return models.User{}, ErrWrongPassword
	}
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	ok, err := utils.VerifyPassword(user.Password, foundUser.PasswordHash)
	if err != nil {
		log.Err(err).Int64("id", foundUser.UserID).Msg("stored password hash is unreadable")
		return models.User{}, ErrWrongPassword
	}
	if !ok || !foundUser.IsActive {
		log.Info().Int64("id", foundUser.UserID).Bool("active", foundUser.IsActive).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed, bad signature) is
// normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
