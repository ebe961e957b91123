// Package httperr defines the API error taxonomy and its JSON rendering.
//
// Five kinds cover every failure the API can report: validation (400),
// unauthenticated (401), forbidden (403), not found (404) and internal (500).
// All error responses share the shape {"message": "..."}.
package httperr

import (
	"encoding/json"
	"net/http"
)

// Error is an API-visible error with its HTTP status.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// ValidationFailed reports a request payload that failed validation.
// The message is surfaced verbatim to the client.
func ValidationFailed(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message}
}

// Unauthenticated reports missing or incorrect credentials.
func Unauthenticated(message string) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: message}
}

// Forbidden reports a valid identity that is not allowed the operation,
// either by role or by resource ownership.
func Forbidden(message string) *Error {
	return &Error{Status: http.StatusForbidden, Message: message}
}

// NotFound reports an unresolved resource id.
func NotFound(message string) *Error {
	return &Error{Status: http.StatusNotFound, Message: message}
}

// Internal reports an unexpected fault. The detail belongs in the server
// log; the client sees only the generic message.
func Internal(message string) *Error {
	return &Error{Status: http.StatusInternalServerError, Message: message}
}

// Write renders apiErr as a JSON error response. Mapping arbitrary errors
// onto the taxonomy (and logging their real cause) is the caller's job.
func Write(w http.ResponseWriter, apiErr *Error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(apiErr.Status)
	json.NewEncoder(w).Encode(map[string]string{"message": apiErr.Message})
}
