// internal/app/system/apperr/apperr.go
package apperr

import (
	"errors"
	"net/http"
)

// Error is the single domain error type. Every business failure carries
// a human-readable message and the HTTP status it maps to; the JSON
// layer renders it as {"message", "statusCode"}.
type Error struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

// New builds an Error with an explicit status code.
func New(status int, message string) *Error {
	return &Error{StatusCode: status, Message: message}
}

// Invalid is a 400 for missing or malformed input.
func Invalid(message string) *Error {
	return New(http.StatusBadRequest, message)
}

// Conflict is a 400 for duplicate-resource collisions. Duplicates are
// reported as 400, not 409; clients depend on that status.
func Conflict(message string) *Error {
	return New(http.StatusBadRequest, message)
}

// NotFound is a 404 for an absent feature, comment, or user.
func NotFound(message string) *Error {
	return New(http.StatusNotFound, message)
}

// Forbidden is a 403 for ownership or role mismatches.
func Forbidden(message string) *Error {
	return New(http.StatusForbidden, message)
}

// Unauthorized is a 401 for missing or invalid credentials.
func Unauthorized(message string) *Error {
	return New(http.StatusUnauthorized, message)
}

// From extracts an *Error from err, if it is one.
func From(err error) (*Error, bool) {
	var ae *Error
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}