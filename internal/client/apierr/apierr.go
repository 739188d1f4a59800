// Package apierr defines the structured error shape every failure in the
// client slice surfaces as: a message, the HTTP status (0 for transport
// failures) and an optional field-level detail map.
package apierr

import (
	"encoding/json"
	"errors"
	"net/http"
)

// Error is the uniform client-side error.
type Error struct {
	Message string            `json:"message"`
	Status  int               `json:"status"`
	Details map[string]string `json:"details,omitempty"`
}

func (e *Error) Error() string { return e.Message }

// New builds an Error with the given status and message.
func New(status int, message string) *Error {
	return &Error{Message: message, Status: status}
}

// Transport wraps a network-level failure; status 0 marks it as such.
func Transport(err error) *Error {
	return &Error{Message: err.Error(), Status: 0}
}

// IsAuthorization reports whether the error is a 401.
func (e *Error) IsAuthorization() bool {
	return e.Status == http.StatusUnauthorized
}

// From extracts the structured error from err: a direct *Error is returned
// as is, a JSON-encoded {message, status, details} message is unwrapped,
// anything else becomes a transport-shaped error with the raw message.
func From(err error) *Error {
	if err == nil {
		return nil
	}

	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}

	var decoded Error
	if jsonErr := json.Unmarshal([]byte(err.Error()), &decoded); jsonErr == nil && decoded.Message != "" {
		return &decoded
	}

	return &Error{Message: err.Error(), Status: 0}
}
