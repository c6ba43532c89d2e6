package errors

import (
	"fmt"
)

// ErrorType separates mistakes the user can correct from store failures.
type ErrorType int

const (
	ErrorTypeValidation ErrorType = iota
	ErrorTypeInvalidInput
	ErrorTypeDatabase
	ErrorTypeTimeout
)

var errorTypeNames = map[ErrorType]string{
	ErrorTypeValidation:   "validation",
	ErrorTypeInvalidInput: "invalid_input",
	ErrorTypeDatabase:     "database",
	ErrorTypeTimeout:      "timeout",
}

func (et ErrorType) String() string {
	if name, ok := errorTypeNames[et]; ok {
		return name
	}
	return "unknown"
}

// UserFixable reports whether the user can resolve the error by changing
// what they typed.
func (et ErrorType) UserFixable() bool {
	return et == ErrorTypeValidation || et == ErrorTypeInvalidInput
}

// AppError is the structured error returned by the store, services and
// controller. Operation, TodoID and Date name the store call and the
// record it touched; they are empty when unknown.
type AppError struct {
	Type      ErrorType
	Message   string
	Code      string
	Cause     error
	Operation string
	TodoID    int64
	Date      string
	Field     string
	Value     interface{}
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is matches another AppError with the same type and code.
func (e *AppError) Is(target error) bool {
	if appErr, ok := target.(*AppError); ok {
		return e.Type == appErr.Type && e.Code == appErr.Code
	}
	return false
}

func (e *AppError) IsType(errorType ErrorType) bool {
	return e.Type == errorType
}

// ForTodo records the todo the failed operation was about.
func (e *AppError) ForTodo(id int64) *AppError {
	e.TodoID = id
	return e
}

// OnDate records the calendar date the failed operation was about.
func (e *AppError) OnDate(date string) *AppError {
	e.Date = date
	return e
}

// Fields returns the error as structured log fields. Unset parts are left out.
func (e *AppError) Fields() map[string]interface{} {
	fields := map[string]interface{}{
		"type": e.Type.String(),
		"code": e.Code,
	}
	if e.Operation != "" {
		fields["operation"] = e.Operation
	}
	if e.TodoID != 0 {
		fields["todo_id"] = e.TodoID
	}
	if e.Date != "" {
		fields["date"] = e.Date
	}
	if e.Field != "" {
		fields["field"] = e.Field
	}
	return fields
}
