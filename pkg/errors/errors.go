package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType represents different categories of errors
type ErrorType string

const (
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeNotFound   ErrorType = "not_found"
	ErrorTypeInternal   ErrorType = "internal"
	ErrorTypeTransport  ErrorType = "transport"
	ErrorTypeServer     ErrorType = "server"
)

// AppError represents a structured application error.
// Callers that only report failures use Error(), which is the single
// human-readable message; Type is kept for logging.
type AppError struct {
	Type       ErrorType `json:"type"`
	Message    string    `json:"message"`
	StatusCode int       `json:"-"`
	Cause      error     `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	return e.Message
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a new validation error
func NewValidationError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeNotFound,
		Message:    message,
		StatusCode: http.StatusNotFound,
	}
}

// NewInternalError creates a new internal error
func NewInternalError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeInternal,
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// NewTransportError wraps a failure where no response was received.
// The message is the transport's own diagnostic text.
func NewTransportError(cause error) *AppError {
	msg := "request failed"
	if cause != nil {
		msg = cause.Error()
	}
	return &AppError{
		Type:       ErrorTypeTransport,
		Message:    msg,
		StatusCode: http.StatusBadGateway,
		Cause:      cause,
	}
}

// NewServerError creates an error for a non-success response.
// serverMessage is the error text supplied by the server, if any.
func NewServerError(statusCode int, serverMessage string) *AppError {
	msg := fmt.Sprintf("server returned status %d", statusCode)
	if serverMessage != "" {
		msg = fmt.Sprintf("%s: %s", msg, serverMessage)
	}
	return &AppError{
		Type:       ErrorTypeServer,
		Message:    msg,
		StatusCode: statusCode,
	}
}

// IsType checks if the error is of a specific type
func IsType(err error, errorType ErrorType) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == errorType
	}
	return false
}

// GetStatusCode returns the HTTP status code for an error
func GetStatusCode(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}
