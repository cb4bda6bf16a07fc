package api

import (
	"errors"
	"net/http"

	"filebox/internal/service"
	"filebox/internal/storage"
	"filebox/internal/store"
)

// APIError represents a structured error response to be sent to the client
// It implements the standard `error` interface.
type APIError struct {
	// Status is the HTTP status code that corresponds to this error.
	Status int `json:"status"`
	// Message is the user-friendly error message
	Message string `json:"error"`
}

// Error implements the error interface, allowing APIError to be used as a standard error
func (e *APIError) Error() string {
	return e.Message
}

// --- Error Constructors ---

// NewBadRequestError creates an error representing a 400 Bad Request
// Useful for validation failures or malformed requests
func NewBadRequestError(message string) *APIError {
	return &APIError{
		Status:  http.StatusBadRequest,
		Message: message,
	}
}

// NewUnauthorizedError creates an error representing a 401 Unauthorized
func NewUnauthorizedError() *APIError {
	return &APIError{
		Status:  http.StatusUnauthorized,
		Message: "Unauthorized",
	}
}

// NewNotFoundError creates an error representing a 404 Not Found.
func NewNotFoundError() *APIError {
	return &APIError{
		Status:  http.StatusNotFound,
		Message: "Not found",
	}
}

// NewInternalServerError creates an error representing a 500 Internal Server Error
// This should be used for unexpected server-side issues
func NewInternalServerError() *APIError {
	return &APIError{
		Status:  http.StatusInternalServerError,
		Message: "An unexpected error occured. Please try again later.",
	}
}

// --- Error Translation ---

// FromServiceError translates errors from the service/store layer into
// specific APIError types. This allows the HTTP handlers to be decoupled from
// the underlying store implementation details
func FromServiceError(err error) *APIError {
	var missing *service.MissingFieldError
	if errors.As(err, &missing) {
		return NewBadRequestError("Missing " + missing.Field)
	}

	switch {
	case errors.Is(err, service.ErrUnauthorized), errors.Is(err, service.ErrInvalidCredentials):
		return NewUnauthorizedError()
	case errors.Is(err, service.ErrInvalidKind):
		return NewBadRequestError("Invalid type")
	case errors.Is(err, service.ErrMissingPayload):
		return NewBadRequestError("Missing data")
	case errors.Is(err, service.ErrParentNotFound):
		return NewBadRequestError("Parent not found")
	case errors.Is(err, service.ErrParentNotFolder):
		return NewBadRequestError("Parent is not a folder")
	case errors.Is(err, store.ErrConflict):
		return NewBadRequestError("Already exist")
	case errors.Is(err, store.ErrNotFound):
		return NewNotFoundError()
	case errors.Is(err, storage.ErrUnavailable):
		return &APIError{Status: http.StatusInternalServerError, Message: "Storage unavailable"}
	}

	// For any other untranslatable error, return a generic internal server
	// error to avoid leaking implementation details to the client
	return NewInternalServerError()
}
