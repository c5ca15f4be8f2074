// Package common defines shared constants and sentinel errors used across
// the questionboard auth service. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Credential flow errors.
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrUsernameTaken       = errors.New("username already taken")
	ErrInvalidRefreshToken = errors.New("refresh token is not valid")

	// Access token errors. Validation failures of any kind collapse to
	// ErrInvalidToken before leaving the auth package.
	ErrInvalidToken = errors.New("invalid token")
)
