package service

import "errors"

// Errors surfaced by the service layer. Handlers translate these into HTTP
// responses; nothing here is retried internally.
var (
	// ErrUnauthorized covers a missing, invalid, or expired token. It is
	// deliberately uniform: a revoked token and a never-issued one are not
	// distinguishable by the caller.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidCredentials covers a failed login, regardless of whether the
	// email or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrInvalidKind     = errors.New("invalid kind")
	ErrMissingPayload  = errors.New("missing payload")
	ErrParentNotFound  = errors.New("parent not found")
	ErrParentNotFolder = errors.New("parent is not a folder")
)

// MissingFieldError reports a required request field that was absent.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return "missing field: " + e.Field
}
