package errors

import (
	"context"
	"errors"
	"fmt"
)

// NewValidationError creates a new validation error
func NewValidationError(message string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: message,
		Code:    "VALIDATION_FAILED",
		Cause:   cause,
	}
}

// NewDatabaseError creates a new database error. A context deadline in the
// cause is reported as a timeout instead.
func NewDatabaseError(operation string, cause error) *AppError {
	if errors.Is(cause, context.DeadlineExceeded) {
		err := NewTimeoutError(operation)
		err.Cause = cause
		return err
	}
	return &AppError{
		Type:      ErrorTypeDatabase,
		Message:   fmt.Sprintf("database operation failed: %s", operation),
		Code:      "DATABASE_ERROR",
		Cause:     cause,
		Operation: operation,
	}
}

// NewInvalidInputError creates a new invalid input error
func NewInvalidInputError(field string, value interface{}, reason string) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidInput,
		Message: fmt.Sprintf("invalid input for %s: %s", field, reason),
		Code:    "INVALID_INPUT",
		Field:   field,
		Value:   value,
	}
}

// NewTimeoutError creates a new timeout error
func NewTimeoutError(operation string) *AppError {
	return &AppError{
		Type:      ErrorTypeTimeout,
		Message:   fmt.Sprintf("operation timed out: %s", operation),
		Code:      "TIMEOUT",
		Operation: operation,
	}
}

// AsAppError converts an error to an AppError if possible
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsErrorType checks if the error is of the specified type
func IsErrorType(err error, errorType ErrorType) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.IsType(errorType)
	}
	return false
}

// WithTodo tags an AppError in err with the todo id. Other errors pass
// through unchanged.
func WithTodo(err error, id int64) error {
	if appErr, ok := AsAppError(err); ok {
		appErr.ForTodo(id)
	}
	return err
}

// WithDate tags an AppError in err with the calendar date.
func WithDate(err error, date string) error {
	if appErr, ok := AsAppError(err); ok {
		appErr.OnDate(date)
	}
	return err
}

// LogFields returns the structured fields to log alongside err.
func LogFields(err error) map[string]interface{} {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Fields()
	}
	return map[string]interface{}{"code": GetErrorCode(err)}
}

// GetUserMessage returns the text shown to the user in a warning.
// Storage failures keep the driver's description so the user can act on it
// (disk full, read-only file, permissions).
func GetUserMessage(err error) string {
	appErr, ok := AsAppError(err)
	if !ok {
		return err.Error()
	}
	switch {
	case appErr.Type.UserFixable():
		return appErr.Message
	case appErr.Type == ErrorTypeDatabase && appErr.Cause != nil:
		return fmt.Sprintf("Could not save to the database:\n%v", appErr.Cause)
	case appErr.Type == ErrorTypeDatabase:
		return "Could not save to the database."
	case appErr.Type == ErrorTypeTimeout:
		return "The database did not respond in time. Please try again."
	default:
		return "An unexpected error occurred. Please try again."
	}
}

// GetErrorCode returns the error code for the error
func GetErrorCode(err error) string {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return "UNKNOWN_ERROR"
}

// ShouldLogError reports whether err is a system failure rather than a user mistake.
func ShouldLogError(err error) bool {
	if appErr, ok := AsAppError(err); ok {
		return !appErr.Type.UserFixable()
	}
	return true
}
