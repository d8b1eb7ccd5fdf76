// Package common defines shared sentinel errors used across the repository.
// Callers should use errors.Is to match these values; most of them are
// wrapped with additional context on the way up.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Data-access classification.
	ErrConnectionRefused = errors.New("connection refused")
	ErrFetch             = errors.New("error fetching user from db")

	// Login / registration errors.
	ErrUserNotFound     = errors.New("user not found")
	ErrPasswordMismatch = errors.New("password didn't match")
	ErrValidationFailed = errors.New("user validation failed")
	ErrValidation       = errors.New("validation error")
	ErrHash             = errors.New("error creating password hash")
	ErrDuplicateUser    = errors.New("user with such parameters already exists")
	ErrWrite            = errors.New("error writing user to database")
	ErrSessionStore     = errors.New("error storing session")

	// Token lifecycle errors.
	ErrTokenIssue        = errors.New("error signing token")
	ErrMalformedToken    = errors.New("malformed token")
	ErrTokenExpired      = errors.New("token expired")
	ErrTokenInvalid      = errors.New("token invalid")
	ErrTokenNotYetValid  = errors.New("token is not active yet")
	ErrTokenVerification = errors.New("token verification failed")

	// External-facing error for protocols that must not distinguish
	// an unknown login from a wrong password.
	ErrorUnauthorized = errors.New("unauthorized")
)

// Public collapses error reasons that could be used to enumerate valid
// logins into a single ErrorUnauthorized. Everything else passes through
// unchanged; use it at the protocol boundary, never for logging.
func Public(err error) error {
	if errors.Is(err, ErrUserNotFound) || errors.Is(err, ErrPasswordMismatch) {
		return ErrorUnauthorized
	}
	return err
}
