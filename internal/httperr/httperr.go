// Package httperr defines the error taxonomy exposed by the API. Every
// failure a client can see is one of these categories, serialized with
// the shared {error, message, status_code} envelope.
package httperr

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Error is an HTTP-mappable error. Name is the standard status text
// (e.g. "Conflict"), Message the human-readable detail.
type Error struct {
	Name       string `json:"error"`
	Message    string `json:"message"`
	StatusCode int    `json:"status_code"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (%d): %s", e.Name, e.StatusCode, e.Message)
}

// New builds an Error for an arbitrary status code.
func New(status int, message string) *Error {
	return &Error{
		Name:       http.StatusText(status),
		Message:    message,
		StatusCode: status,
	}
}

// BadRequest reports malformed or missing client input.
func BadRequest(message string) *Error {
	return New(http.StatusBadRequest, message)
}

// Unauthorized reports missing, invalid or expired credentials.
func Unauthorized(message string) *Error {
	return New(http.StatusUnauthorized, message)
}

// NotFound reports an absent entity.
func NotFound(message string) *Error {
	return New(http.StatusNotFound, message)
}

// Conflict reports a uniqueness violation.
func Conflict(message string) *Error {
	return New(http.StatusConflict, message)
}

// Internal reports an unexpected failure. The message should be generic;
// detail belongs in the server log.
func Internal(message string) *Error {
	return New(http.StatusInternalServerError, message)
}

// Write serializes the error envelope onto the response.
func Write(w http.ResponseWriter, e *Error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	json.NewEncoder(w).Encode(e)
}
