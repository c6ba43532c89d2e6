package validation

import (
	"strings"
	"unicode/utf8"

	"daily-todo/internal/domain"
)

// Validator provides common validation utilities
type Validator struct {
	contentMaxLength int
}

// NewValidator creates a validator that accepts content of any length.
func NewValidator() *Validator {
	return &Validator{}
}

// NewValidatorWithMaxLength creates a validator that rejects content longer
// than maxLength characters. Zero or less means no limit.
func NewValidatorWithMaxLength(maxLength int) *Validator {
	if maxLength < 0 {
		maxLength = 0
	}
	return &Validator{contentMaxLength: maxLength}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidContentLength checks content against the configured limit.
func (v *Validator) IsValidContentLength(s string) bool {
	if v.contentMaxLength == 0 {
		return true
	}
	return utf8.RuneCountInString(s) <= v.contentMaxLength
}

// TrimContent strips surrounding whitespace. Everything between is stored
// exactly as typed.
func (v *Validator) TrimContent(s string) string {
	return strings.TrimSpace(s)
}

// IsValidDate checks a YYYY-MM-DD string.
func (v *Validator) IsValidDate(s string) bool {
	_, err := domain.ParseDate(s)
	return err == nil
}

// IsValidTodoID checks if a todo ID is valid (positive)
func (v *Validator) IsValidTodoID(id int64) bool {
	return id > 0
}

// ContentMaxLength returns the configured content limit, zero when unlimited.
func (v *Validator) ContentMaxLength() int {
	return v.contentMaxLength
}
