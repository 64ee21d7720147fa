// Package apperror provides structured error handling for increment operations.
// Every rejected input is reported as an AppError so callers can branch on Code.
package apperror

import (
	"errors"
	"fmt"
)

// Error codes
const (
	// Options errors
	CodeInvalidOption = "INVALID_OPTION"
	CodeInvalidType   = "INVALID_TYPE"

	// Value errors
	CodeTypeMismatch    = "TYPE_MISMATCH"
	CodeInvalidValue    = "INVALID_VALUE"
	CodeInvalidPadValue = "INVALID_PAD_VALUE"
)

// Sentinels for errors.Is. Matching is done on Code only, so
// errors.Is(err, ErrInvalidValue) holds for any INVALID_VALUE error.
var (
	ErrInvalidOption   = &AppError{Code: CodeInvalidOption}
	ErrInvalidType     = &AppError{Code: CodeInvalidType}
	ErrTypeMismatch    = &AppError{Code: CodeTypeMismatch}
	ErrInvalidValue    = &AppError{Code: CodeInvalidValue}
	ErrInvalidPadValue = &AppError{Code: CodeInvalidPadValue}
)

// AppError is the standard error type of the module.
type AppError struct {
	// Code is a machine-readable error identifier
	Code string `json:"code"`

	// Message is a human-readable error description
	Message string `json:"message"`

	// Details contains additional context (offending option, value, etc.)
	Details map[string]any `json:"details,omitempty"`

	// Err is the underlying error (not exposed in JSON)
	Err error `json:"-"`
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is reports whether target is an AppError with the same Code.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// WithDetail adds a key-value pair to error details
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithCause sets the underlying error
func (e *AppError) WithCause(err error) *AppError {
	e.Err = err
	return e
}

// --- Factory functions ---

// NewInvalidOption reports a malformed option (e.g. leftPadLength).
func NewInvalidOption(option, message string) *AppError {
	return &AppError{
		Code:    CodeInvalidOption,
		Message: message,
		Details: map[string]any{"option": option},
	}
}

// NewInvalidType reports an unknown incrementor type.
func NewInvalidType(typ string) *AppError {
	return &AppError{
		Code:    CodeInvalidType,
		Message: fmt.Sprintf("Invalid type: %s", typ),
		Details: map[string]any{"type": typ},
	}
}

// NewTypeMismatch reports a value whose Go type does not fit the incrementor type.
func NewTypeMismatch(typ string, value any) *AppError {
	return &AppError{
		Code:    CodeTypeMismatch,
		Message: fmt.Sprintf("value with type '%s' must be a number, got %T", typ, value),
		Details: map[string]any{"type": typ},
	}
}

// NewInvalidValue reports a value that does not match the pattern of its type.
func NewInvalidValue(message string, value any) *AppError {
	return &AppError{
		Code:    CodeInvalidValue,
		Message: message,
		Details: map[string]any{"value": value},
	}
}

// NewInvalidPadValue reports a non-numeric left pad value.
func NewInvalidPadValue(pad string) *AppError {
	return &AppError{
		Code:    CodeInvalidPadValue,
		Message: "leftPadValue must only contain digits",
		Details: map[string]any{"leftPadValue": pad},
	}
}

// --- Helper functions ---

// AsAppError extracts AppError from error chain
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// CodeOf returns the Code of the first AppError in the chain, or "".
func CodeOf(err error) string {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return ""
}
