package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrNoUserIDInContext    = errors.New("no user ID in context")
	ErrSimulationValidation = errors.New("simulation validation failed")
)
