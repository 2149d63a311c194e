package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrThemeLoad   ErrorCode = "THEME_LOAD"

	// Rendering errors
	ErrUnknownStyle ErrorCode = "UNKNOWN_STYLE"

	// Output errors
	ErrEncoding ErrorCode = "ENCODING"
	ErrIO       ErrorCode = "IO"

	// Prompt errors
	ErrInterrupted   ErrorCode = "INTERRUPTED"
	ErrInvalidChoice ErrorCode = "INVALID_CHOICE"
)

// TermsayError represents a structured error with code and details
type TermsayError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *TermsayError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *TermsayError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface. Two errors match when their codes match.
func (e *TermsayError) Is(target error) bool {
	var targetErr *TermsayError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new TermsayError with the given code and message
func New(code ErrorCode, message string) *TermsayError {
	return &TermsayError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new TermsayError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *TermsayError {
	return &TermsayError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a TermsayError
func Wrap(err error, code ErrorCode, message string) *TermsayError {
	if err == nil {
		return nil
	}
	return &TermsayError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *TermsayError {
	if err == nil {
		return nil
	}
	return &TermsayError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *TermsayError) WithDetail(key string, value interface{}) *TermsayError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code anywhere in its chain
func IsErrorCode(err error, code ErrorCode) bool {
	for err != nil {
		var tsErr *TermsayError
		if !errors.As(err, &tsErr) {
			return false
		}
		if tsErr.Code == code {
			return true
		}
		err = tsErr.Wrapped
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a TermsayError
func GetErrorCode(err error) ErrorCode {
	var tsErr *TermsayError
	if errors.As(err, &tsErr) {
		return tsErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a TermsayError
func GetErrorDetails(err error) map[string]interface{} {
	var tsErr *TermsayError
	if errors.As(err, &tsErr) {
		return tsErr.Details
	}
	return nil
}
