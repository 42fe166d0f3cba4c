// Package apperrors defines the error taxonomy surfaced to API clients.
// Expected conditions (not found, duplicate, bad input) are plain values;
// backend failures wrap their cause, which is logged but never sent to the
// client outside development.
package apperrors

import (
	"errors"
	"net/http"
)

type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
	Status  int    `json:"-"`

	cause error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

// Cause returns the wrapped backend error, if any.
func (e *Error) Cause() error { return e.cause }

func (e *Error) WithDetails(details string) *Error {
	e.Details = details
	return e
}

func Validation(msg string) *Error {
	return &Error{Code: "VALIDATION_ERROR", Message: msg, Status: http.StatusBadRequest}
}

func Unauthorized(msg string) *Error {
	return &Error{Code: "UNAUTHORIZED", Message: msg, Status: http.StatusUnauthorized}
}

func Forbidden(msg string) *Error {
	return &Error{Code: "FORBIDDEN", Message: msg, Status: http.StatusForbidden}
}

func NotFound(msg string) *Error {
	return &Error{Code: "NOT_FOUND", Message: msg, Status: http.StatusNotFound}
}

// AlreadyExists maps to 400: the register endpoint treats a duplicate email
// as a bad request, not a conflict.
func AlreadyExists(msg string) *Error {
	return &Error{Code: "ALREADY_EXISTS", Message: msg, Status: http.StatusBadRequest}
}

func PayloadTooLarge(msg string) *Error {
	return &Error{Code: "PAYLOAD_TOO_LARGE", Message: msg, Status: http.StatusRequestEntityTooLarge}
}

func Internal(msg string, cause error) *Error {
	return &Error{Code: "INTERNAL_SERVER_ERROR", Message: msg, Status: http.StatusInternalServerError, cause: cause}
}

// FromError normalizes any error for the HTTP boundary. Unclassified errors
// become generic 500s with no leaked internals.
func FromError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Internal("an unexpected error occurred", err)
}
