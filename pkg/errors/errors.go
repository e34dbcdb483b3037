// Package errors defines the coded error shared by every unitool package.
//
// Callers and tests branch on the Code, never on the message text. Details
// carry machine readable context, such as the element path of a malformed
// report or the file that could not be read.
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

	// Report errors
	ErrIO              ErrorCode = "IO_ERROR"
	ErrMalformedReport ErrorCode = "MALFORMED_REPORT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Runner errors
	ErrEditorNotFound ErrorCode = "EDITOR_NOT_FOUND"
	ErrRunnerExecute  ErrorCode = "RUNNER_EXECUTE"
	ErrCompileFailed  ErrorCode = "COMPILE_FAILED"
	ErrTestsFailed    ErrorCode = "TESTS_FAILED"
)

// UnitoolError represents a structured error with code and details
type UnitoolError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *UnitoolError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *UnitoolError) Unwrap() error {
	return e.Wrapped
}

// Is matches any UnitoolError carrying the same code
func (e *UnitoolError) Is(target error) bool {
	var targetErr *UnitoolError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new UnitoolError with the given code and message
func New(code ErrorCode, message string) *UnitoolError {
	return &UnitoolError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new UnitoolError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *UnitoolError {
	return &UnitoolError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a UnitoolError
func Wrap(err error, code ErrorCode, message string) *UnitoolError {
	if err == nil {
		return nil
	}
	return &UnitoolError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *UnitoolError {
	if err == nil {
		return nil
	}
	return &UnitoolError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *UnitoolError) WithDetail(key string, value interface{}) *UnitoolError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var unitoolErr *UnitoolError
	if errors.As(err, &unitoolErr) {
		return unitoolErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a UnitoolError
func GetErrorCode(err error) ErrorCode {
	var unitoolErr *UnitoolError
	if errors.As(err, &unitoolErr) {
		return unitoolErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a UnitoolError
func GetErrorDetails(err error) map[string]interface{} {
	var unitoolErr *UnitoolError
	if errors.As(err, &unitoolErr) {
		return unitoolErr.Details
	}
	return nil
}
