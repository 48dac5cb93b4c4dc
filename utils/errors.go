package utils

import (
	"errors"
	"fmt"
	"net/http"
)

// Stable error kinds surfaced to callers. Handlers map these to HTTP
// statuses; services never speak HTTP.
const (
	CodeValidation          = "VALIDATION_ERROR"
	CodeNotFound            = "NOT_FOUND"
	CodeForbidden           = "FORBIDDEN"
	CodeConflict            = "CONFLICT"
	CodeInvalidState        = "INVALID_STATE"
	CodeInsufficientBalance = "INSUFFICIENT_BALANCE"
	CodeInvalidPin          = "INVALID_PIN"
	CodeInvalidCredentials  = "INVALID_CREDENTIALS"
	CodeUnauthorized        = "UNAUTHORIZED"
	CodeInternal            = "INTERNAL"
)

// AppError is a caller-visible failure with a stable kind.
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

// E builds an AppError with the given kind and message.
func E(code, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Ef builds an AppError with a formatted message.
func Ef(code, format string, args ...any) *AppError {
	return &AppError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a kind and message to an underlying error.
func Wrap(code, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// CodeOf extracts the kind from an error chain. Unknown errors are Internal.
func CodeOf(err error) string {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Code
	}
	return CodeInternal
}

// MessageOf extracts the human-readable message from an error chain.
func MessageOf(err error) string {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Message
	}
	return "an unexpected error occurred"
}

// HTTPStatus maps an error kind to its HTTP status.
func HTTPStatus(code string) int {
	switch code {
	case CodeValidation, CodeInvalidPin:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeForbidden:
		return http.StatusForbidden
	case CodeConflict, CodeInvalidState:
		return http.StatusConflict
	case CodeInsufficientBalance:
		return http.StatusUnprocessableEntity
	case CodeInvalidCredentials, CodeUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
