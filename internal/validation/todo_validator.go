package validation

import (
	"strings"

	"daily-todo/internal/domain"
)

// TodoValidator validates input for todo operations.
type TodoValidator struct {
	validator *Validator
}

// NewTodoValidator creates a todo validator without a content limit.
func NewTodoValidator() *TodoValidator {
	return &TodoValidator{validator: NewValidator()}
}

// NewTodoValidatorWithMaxLength creates a todo validator with a content limit.
func NewTodoValidatorWithMaxLength(maxLength int) *TodoValidator {
	return &TodoValidator{validator: NewValidatorWithMaxLength(maxLength)}
}

// ValidateContent validates text typed into the input field. Only empty or
// whitespace-only text is rejected, plus text over a configured limit.
func (tv *TodoValidator) ValidateContent(content string) error {
	trimmed := tv.validator.TrimContent(content)

	if !tv.validator.IsNonEmptyString(trimmed) {
		validationError := NewValidationError()
		validationError.AddRequiredError("content")
		return validationError
	}

	if !tv.validator.IsValidContentLength(trimmed) {
		validationError := NewValidationError()
		validationError.AddInvalidLengthError("content", trimmed, 1, tv.validator.ContentMaxLength())
		return validationError
	}
	return nil
}

// GetValidContent returns the trimmed content if it is valid.
func (tv *TodoValidator) GetValidContent(content string) (string, error) {
	if err := tv.ValidateContent(content); err != nil {
		return "", err
	}
	return tv.validator.TrimContent(content), nil
}

// ValidateDate validates a YYYY-MM-DD date string.
func (tv *TodoValidator) ValidateDate(date string) error {
	if !tv.validator.IsValidDate(strings.TrimSpace(date)) {
		validationError := NewValidationError()
		validationError.AddInvalidFormatError("date", date, "YYYY-MM-DD")
		return validationError
	}
	return nil
}

// GetValidDate parses a YYYY-MM-DD date string.
func (tv *TodoValidator) GetValidDate(date string) (domain.Date, error) {
	if err := tv.ValidateDate(date); err != nil {
		return domain.Date{}, err
	}
	return domain.ParseDate(strings.TrimSpace(date))
}

// ValidateTodoID validates a todo ID
func (tv *TodoValidator) ValidateTodoID(id int64) error {
	if !tv.validator.IsValidTodoID(id) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("todo_id", id, "must be a positive integer")
		return validationError
	}
	return nil
}
