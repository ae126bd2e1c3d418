package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "look"}
		assert.Equal(t, "look not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "look"}
		err2 := &NotFoundError{Entity: "look"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "look"}
		err2 := &NotFoundError{Entity: "production"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrProductionNotFound, ErrProductionNotFound))
		assert.False(t, errors.Is(ErrProductionNotFound, ErrLookNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrScheduleItemNotFound))
		assert.False(t, IsNotFound(ErrInvalidDirection))
	})

	t.Run("IsNotFound through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("failed to get look: %w", ErrLookNotFound)
		assert.True(t, IsNotFound(wrapped))
		assert.True(t, errors.Is(wrapped, ErrLookNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "start_time", Message: "must be HH:MM"}
		assert.Equal(t, "validation error: start_time - must be HH:MM", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "bad request"}
		assert.Equal(t, "validation error: bad request", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(NewValidationError("name", "required")))
		assert.False(t, IsValidation(ErrLookNotFound))
	})

	t.Run("Business sentinels are validation errors", func(t *testing.T) {
		assert.True(t, IsValidation(ErrInvalidDirection))
		assert.True(t, IsValidation(ErrInvalidCategory))
		assert.True(t, IsValidation(ErrInvalidTimeRange))
		assert.True(t, IsValidation(ErrEmptyTemplate))
	})

	t.Run("Sentinels keep identity through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("move look: %w", ErrInvalidDirection)
		assert.True(t, errors.Is(wrapped, ErrInvalidDirection))
		assert.True(t, IsValidation(wrapped))
	})
}

func TestConflictError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		assert.Contains(t, ErrScheduleNotEmpty.Error(), "confirm replacement")
	})

	t.Run("IsConflict helper", func(t *testing.T) {
		assert.True(t, IsConflict(ErrScheduleNotEmpty))
		assert.False(t, IsConflict(ErrProductionNotFound))
	})

	t.Run("IsConflict through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("apply template: %w", ErrScheduleNotEmpty)
		assert.True(t, IsConflict(wrapped))
	})
}

func TestConstructors(t *testing.T) {
	assert.Equal(t, "call sheet not found", NewNotFoundError("call sheet").Error())
	assert.Equal(t, "bad config", NewConfigurationError("bad config").Error())
}
