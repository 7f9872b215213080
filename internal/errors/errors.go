package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a category of application error.
type ErrorCode string

const (
	// ErrCodeInvalidCredential indicates a bad keyword submission.
	ErrCodeInvalidCredential ErrorCode = "invalid_credential"
	// ErrCodeUnauthorized indicates no or insufficient session state.
	ErrCodeUnauthorized ErrorCode = "unauthorized"
	// ErrCodeUpstreamExchange indicates the OAuth token or profile fetch
	// failed or timed out.
	ErrCodeUpstreamExchange ErrorCode = "upstream_exchange"
	// ErrCodeMalformedCallback indicates a callback without an authorization code.
	ErrCodeMalformedCallback ErrorCode = "malformed_callback"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal ErrorCode = "internal"
)

// AppError is a structured application error with a code, message, and
// optional cause. It supports errors.Is and errors.As via Unwrap.
type AppError struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause, enabling errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// InvalidCredential creates a new InvalidCredential error.
func InvalidCredential(message string) *AppError {
	return &AppError{Code: ErrCodeInvalidCredential, Message: message}
}

// Unauthorized creates a new Unauthorized error.
func Unauthorized(message string) *AppError {
	return &AppError{Code: ErrCodeUnauthorized, Message: message}
}

// MalformedCallback creates a new MalformedCallback error.
func MalformedCallback(message string) *AppError {
	return &AppError{Code: ErrCodeMalformedCallback, Message: message}
}

// UpstreamExchange creates a new UpstreamExchange error.
func UpstreamExchange(message string) *AppError {
	return &AppError{Code: ErrCodeUpstreamExchange, Message: message}
}

// Internal creates a new Internal error.
func Internal(message string) *AppError {
	return &AppError{Code: ErrCodeInternal, Message: message}
}

// Wrap wraps an existing error with an AppError, preserving the cause.
func Wrap(err error, code ErrorCode, message string) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{Code: code, Message: message, Cause: err}
}

// Wrapf wraps an existing error with an AppError and formatted message.
func Wrapf(err error, code ErrorCode, format string, args ...any) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{Code: code, Message: fmt.Sprintf(format, args...), Cause: err}
}

// isCode checks if an error has a specific error code.
func isCode(err error, code ErrorCode) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// IsInvalidCredential checks if an error is an InvalidCredential error.
func IsInvalidCredential(err error) bool {
	return isCode(err, ErrCodeInvalidCredential)
}

// IsUnauthorized checks if an error is an Unauthorized error.
func IsUnauthorized(err error) bool {
	return isCode(err, ErrCodeUnauthorized)
}

// IsMalformedCallback checks if an error is a MalformedCallback error.
func IsMalformedCallback(err error) bool {
	return isCode(err, ErrCodeMalformedCallback)
}

// IsUpstreamExchange checks if an error is an UpstreamExchange error.
func IsUpstreamExchange(err error) bool {
	return isCode(err, ErrCodeUpstreamExchange)
}

// IsInternal checks if an error is an Internal error.
func IsInternal(err error) bool {
	return isCode(err, ErrCodeInternal)
}

// GetCode returns the ErrorCode from an error, or empty string if not an AppError.
func GetCode(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}
