package common

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrCORSNotAllowed is raised by the CORS middleware for a rejected origin.
var ErrCORSNotAllowed = errors.New("not allowed by CORS")

type APIError struct {
	Status  int    `json:"-"`
	Kind    string `json:"error"`
	Message string `json:"message"`
}

func (e APIError) Error() string {
	return e.Kind + ": " + e.Message
}

func Errf(status int, kind, format string, args ...any) APIError {
	return APIError{Status: status, Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// NewAPIError creates an APIError with status, error kind and client-facing message
func NewAPIError(status int, kind, message string) APIError {
	return APIError{
		Status:  status,
		Kind:    kind,
		Message: message,
	}
}

func ValidationError() APIError {
	return NewAPIError(http.StatusBadRequest, "Validation Error", "Please fill in all required fields correctly")
}

func ConfigurationError() APIError {
	return NewAPIError(http.StatusInternalServerError, "Server Configuration Error",
		"SMTP credentials are not configured. Please contact the administrator.")
}

func CORSError() APIError {
	return NewAPIError(http.StatusForbidden, "CORS Error", "Origin not allowed")
}

func NotFoundError(path string) APIError {
	return Errf(http.StatusNotFound, "Route not found", "The requested route %s does not exist.", path)
}

func InternalError(message string) APIError {
	return NewAPIError(http.StatusInternalServerError, "Internal Server Error", message)
}
