package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorPredicates(t *testing.T) {
	t.Run("Success - NotFound", func(t *testing.T) {
		err := NewNotFoundError("experiment")
		assert.True(t, IsNotFound(err))
		assert.False(t, IsValidation(err))
		assert.Equal(t, "NOT_FOUND: experiment not found", err.Error())
	})

	t.Run("Success - Validation", func(t *testing.T) {
		err := NewValidationError("either userId or sessionId must be provided")
		assert.True(t, IsValidation(err))
		assert.Equal(t, ErrCodeValidation, GetErrorCode(err))
	})

	t.Run("Success - PreconditionFailed", func(t *testing.T) {
		err := NewPreconditionFailedError("experiment is not running")
		assert.True(t, IsPreconditionFailed(err))
		assert.False(t, IsConflict(err))
	})

	t.Run("Success - Conflict", func(t *testing.T) {
		err := NewConflictError("assignment already exists")
		assert.True(t, IsConflict(err))
	})

	t.Run("Success - DependencyUnavailable wraps cause", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := NewDependencyUnavailableError("store", cause)
		assert.True(t, IsDependencyUnavailable(err))
		assert.ErrorIs(t, err, cause)
	})

	t.Run("Success - Unknown error maps to internal code", func(t *testing.T) {
		assert.Equal(t, ErrCodeInternal, GetErrorCode(errors.New("boom")))
	})
}
