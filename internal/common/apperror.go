package common

import "fmt"

// Kind classifies an API failure. The set is closed: every error that crosses
// the transport boundary is one of these, so handlers can switch exhaustively.
type Kind int

const (
	// KindValidation marks malformed or missing input (caller's fault).
	KindValidation Kind = iota
	// KindUnauthorized marks a missing or invalid credential.
	KindUnauthorized
	// KindNotFound marks an identifier that does not resolve.
	KindNotFound
	// KindInternal marks an unexpected server-side failure.
	KindInternal
)

// Error is the uniform error carried between services and the transport.
// Code is the machine-readable value rendered in the `{error, code}` envelope.
type Error struct {
	Kind    Kind
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// NewValidation builds a caller-fault error with the VALIDATION_ERROR code.
func NewValidation(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Code: "VALIDATION_ERROR", Message: fmt.Sprintf(format, args...)}
}

// NewUnauthorized builds a credential error with the AUTH_ERROR code.
func NewUnauthorized(msg string) *Error {
	return &Error{Kind: KindUnauthorized, Code: "AUTH_ERROR", Message: msg}
}

// NewNotFound builds a missing-resource error with the NOT_FOUND code.
func NewNotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Code: "NOT_FOUND", Message: msg}
}

// NewInternal builds a server-fault error. The code lets related failures
// keep distinct machine-readable identities (FETCH_ERROR, CREATE_ERROR, ...)
// while sharing the internal kind.
func NewInternal(code, msg string) *Error {
	return &Error{Kind: KindInternal, Code: code, Message: msg}
}
