// Package httpx contains small HTTP plumbing shared by handlers: an error
// type carrying a status code and user-facing message, a handler adapter
// that translates returned errors into JSON responses, and JSON respond
// helpers.
package httpx

import (
	"errors"
	"net/http"
)

const (
	msgBadRequest     = "Bad Request"
	msgUnauthorized   = "Unauthorized"
	msgForbidden      = "Forbidden"
	msgNotFound       = "Resource not found"
	msgInternalServer = "Internal Server Error"
)

// HTTPError is an error with an associated HTTP status code and a
// user-facing message. The cause, if any, is for server-side logs only.
type HTTPError struct {
	cause   error
	Code    int
	Message string
}

// Error returns the Message, which is intended for the HTTP response.
func (he HTTPError) Error() string {
	return he.Message
}

// Unwrap provides compatibility for errors.Is and errors.As.
func (he HTTPError) Unwrap() error {
	return he.cause
}

func defaultMessageIfEmpty(message, defaultVal string) string {
	if message == "" {
		return defaultVal
	}
	return message
}

// NewHTTPError creates an HTTPError with a code and message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{
		cause:   errors.New(message),
		Code:    code,
		Message: message,
	}
}

// NewHTTPErrorWrap creates an HTTPError that keeps cause for logging while
// exposing only message to the client.
func NewHTTPErrorWrap(code int, message string, cause error) *HTTPError {
	return &HTTPError{
		cause:   cause,
		Code:    code,
		Message: message,
	}
}

func ErrBadRequest(message string) *HTTPError {
	return NewHTTPError(http.StatusBadRequest, defaultMessageIfEmpty(message, msgBadRequest))
}

func ErrUnauthorized(message string) *HTTPError {
	return NewHTTPError(http.StatusUnauthorized, defaultMessageIfEmpty(message, msgUnauthorized))
}

func ErrForbidden(message string) *HTTPError {
	return NewHTTPError(http.StatusForbidden, defaultMessageIfEmpty(message, msgForbidden))
}

func ErrNotFound(message string) *HTTPError {
	return NewHTTPError(http.StatusNotFound, defaultMessageIfEmpty(message, msgNotFound))
}

func ErrInternalServerWrap(cause error) *HTTPError {
	return NewHTTPErrorWrap(http.StatusInternalServerError, msgInternalServer, cause)
}
