// Package apierror provides the standardized error type for the API.
// All errors returned to clients go through this package to ensure consistency
// and to prevent leaking internal details (stack traces, DB errors, etc.).
package apierror

import (
	"errors"
	"net/http"
)

// APIError carries the HTTP status alongside the Spanish-language message
// shown to the client. Services return *APIError for every expected failure;
// anything else reaching a handler is treated as a 500.
type APIError struct {
	Status  int
	Mensaje string
}

func (e *APIError) Error() string { return e.Mensaje }

// Validation: missing or malformed field (400).
func Validation(msg string) *APIError { return &APIError{Status: http.StatusBadRequest, Mensaje: msg} }

// Duplicate: natural key already taken (400).
func Duplicate(msg string) *APIError { return &APIError{Status: http.StatusBadRequest, Mensaje: msg} }

// Reference: payload references a row that does not exist (400).
func Reference(msg string) *APIError { return &APIError{Status: http.StatusBadRequest, Mensaje: msg} }

// Unauthorized: missing or invalid credentials/token (401).
func Unauthorized(msg string) *APIError {
	return &APIError{Status: http.StatusUnauthorized, Mensaje: msg}
}

// Forbidden: role or ownership check failed (403).
func Forbidden(msg string) *APIError { return &APIError{Status: http.StatusForbidden, Mensaje: msg} }

// NotFound (404). Also used to avoid leaking existence of rows the caller
// does not own.
func NotFound(msg string) *APIError { return &APIError{Status: http.StatusNotFound, Mensaje: msg} }

// Internal (500). The generic message is returned to the client; details go
// to the server log only.
func Internal() *APIError {
	return &APIError{Status: http.StatusInternalServerError, Mensaje: "Error interno del servidor"}
}

// From extracts an *APIError from err, or wraps it as a 500.
func From(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return Internal()
}
