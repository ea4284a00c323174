package domain

import (
	"errors"
	"strings"
)

// ErrorKind classifies an Error for callers that need to branch on the
// failure mode (the HTTP layer maps kinds to status codes).
type ErrorKind string

const (
	KindInvalidInput      ErrorKind = "invalid_input"
	KindInvalidCredential ErrorKind = "invalid_credential"
	KindUnauthorized      ErrorKind = "unauthorized"
	KindForbidden         ErrorKind = "forbidden"
	KindNotFound          ErrorKind = "not_found"
	KindValidationFailed  ErrorKind = "validation_failed"
	KindConfig            ErrorKind = "config"
	KindExternal          ErrorKind = "external"
)

// Error is the structured error returned by the core services. It carries a
// machine-checkable kind, a human-readable message, and an optional list of
// field-level details when several validations fail in one call.
type Error struct {
	Kind    ErrorKind
	Message string
	Details []string
	cause   error
}

func (e *Error) Error() string {
	if len(e.Details) > 0 {
		return e.Message + ": " + strings.Join(e.Details, "; ")
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// NewError builds an Error with the given kind and message.
func NewError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// ValidationError aggregates multiple field violations into one error.
func ValidationError(details []string) *Error {
	return &Error{Kind: KindValidationFailed, Message: "validation failed", Details: details}
}

// ExternalError wraps a failure from an external backend (identity provider,
// team directory, submission store) so callers can tell "try again later"
// apart from "fix your input".
func ExternalError(backend string, err error) *Error {
	return &Error{Kind: KindExternal, Message: backend + " unavailable", cause: err}
}

// IsKind reports whether err is (or wraps) a *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// Port-level sentinels. Repositories and clients return these; the services
// translate them into *Error values from the taxonomy above.
var (
	ErrIdentityNotFound   = errors.New("identity not found")
	ErrTeamNotFound       = errors.New("team not found")
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrSubmissionExists   = errors.New("submission already exists")
)
