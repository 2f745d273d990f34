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

	// State errors: not failures, no-op signals
	ErrAlreadyArchived ErrorCode = "ALREADY_ARCHIVED"
	ErrNotArchived     ErrorCode = "NOT_ARCHIVED"

	// Conflict errors
	ErrConflictCancelled ErrorCode = "CONFLICT_CANCELLED"

	// Storage errors
	ErrStorageFailure ErrorCode = "STORAGE_FAILURE"
	ErrMoveFailed     ErrorCode = "MOVE_FAILED"
	ErrTrashFailed    ErrorCode = "TRASH_FAILED"
	ErrFolderCreate   ErrorCode = "FOLDER_CREATE"

	// Rule errors
	ErrInvalidCondition ErrorCode = "INVALID_CONDITION"
	ErrRuleNotFound     ErrorCode = "RULE_NOT_FOUND"

	// Settings errors
	ErrInvalidArchiveRoot ErrorCode = "INVALID_ARCHIVE_ROOT"
	ErrSettingsLoad       ErrorCode = "SETTINGS_LOAD"
	ErrSettingsSave       ErrorCode = "SETTINGS_SAVE"
)

// ArcaError represents a structured error with code and details
type ArcaError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ArcaError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ArcaError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *ArcaError) Is(target error) bool {
	var targetErr *ArcaError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ArcaError with the given code and message
func New(code ErrorCode, message string) *ArcaError {
	return &ArcaError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ArcaError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ArcaError {
	return &ArcaError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an ArcaError
func Wrap(err error, code ErrorCode, message string) *ArcaError {
	if err == nil {
		return nil
	}
	return &ArcaError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ArcaError {
	if err == nil {
		return nil
	}
	return &ArcaError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ArcaError) WithDetail(key string, value interface{}) *ArcaError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var arcaErr *ArcaError
	if errors.As(err, &arcaErr) {
		return arcaErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if
// it is not an ArcaError
func GetErrorCode(err error) ErrorCode {
	var arcaErr *ArcaError
	if errors.As(err, &arcaErr) {
		return arcaErr.Code
	}
	return ErrUnknown
}
