package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ConflictError represents an error when a request conflicts with the
// current state of an entity
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrProductionNotFound   = &NotFoundError{Entity: "production"}
	ErrScheduleItemNotFound = &NotFoundError{Entity: "schedule item"}
	ErrTemplateNotFound     = &NotFoundError{Entity: "schedule template"}
	ErrLookNotFound         = &NotFoundError{Entity: "look"}
	ErrCrewMemberNotFound   = &NotFoundError{Entity: "crew member"}
)

// Business Logic Errors. The invalid-input sentinels are ValidationErrors
// so handlers map them to 400 through IsValidation.
var (
	ErrScheduleNotEmpty = &ConflictError{Message: "production schedule is not empty; confirm replacement to apply a template"}
	ErrInvalidDirection = &ValidationError{Field: "direction", Message: "must be \"up\" or \"down\""}
	ErrInvalidCategory  = &ValidationError{Field: "category", Message: "unknown schedule category"}
	ErrInvalidTimeRange = &ValidationError{Field: "end_time", Message: "must not precede start time"}
	ErrEmptyTemplate    = &ValidationError{Field: "template_id", Message: "template has no blueprints"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
