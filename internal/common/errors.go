// Package common defines shared sentinel errors and the API error type used
// across client and server layers of techcards. Callers should use errors.Is
// to match sentinel values and errors.As to extract *Error.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
)
