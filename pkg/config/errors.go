package config

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRulePattern indicates a masking rule regex failed to compile.
	// Fatal at startup: the service must never run with a partial rule table.
	ErrInvalidRulePattern = errors.New("invalid rule pattern")

	// ErrMissingRequiredField indicates a required setting is missing
	ErrMissingRequiredField = errors.New("missing required field")

	// ErrInvalidValue indicates a setting has an invalid value
	ErrInvalidValue = errors.New("invalid field value")
)

// ValidationError wraps configuration validation errors with context
type ValidationError struct {
	Component string // Component being validated (rule, server, database)
	ID        string // ID of the component (e.g. rule name)
	Field     string // Field name (optional)
	Err       error  // Underlying error
}

// Error returns formatted error message
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s '%s': field '%s': %v", e.Component, e.ID, e.Field, e.Err)
	}
	return fmt.Sprintf("%s '%s': %v", e.Component, e.ID, e.Err)
}

// Unwrap returns the underlying error
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a new validation error
func NewValidationError(component, id, field string, err error) *ValidationError {
	return &ValidationError{
		Component: component,
		ID:        id,
		Field:     field,
		Err:       err,
	}
}
