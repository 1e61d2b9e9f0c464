// internal/domain/errors.go
package domain

import "errors"

var (
	// General errors
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrForbidden    = errors.New("access denied")

	// User-related errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")

	// Survey-related errors
	ErrSurveyNotFound           = errors.New("survey not found")
	ErrResponseAlreadySubmitted = errors.New("response already submitted")

	// Training-related errors
	ErrApplicationNotFound   = errors.New("application not found")
	ErrApplicationNotPending = errors.New("cannot delete application that is not pending")

	// Storage errors
	ErrDuplicateKey = errors.New("duplicate key")
)
