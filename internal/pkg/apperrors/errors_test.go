package apperrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError_FirstMessagePerFieldWins(t *testing.T) {
	verr := NewValidationError()
	verr.Add("name", "name is required")
	verr.Add("name", "name must be at most 100 characters")

	assert.Equal(t, "name is required", verr.Fields["name"])
}

func TestValidationError_ErrOrNil(t *testing.T) {
	verr := NewValidationError()
	require.NoError(t, verr.ErrOrNil())

	verr.Add("reason", "reason is required")
	err := verr.ErrOrNil()
	require.Error(t, err)

	var got *ValidationError
	assert.ErrorAs(t, err, &got)
}

func TestValidationError_ErrorSortsFields(t *testing.T) {
	verr := NewValidationError()
	verr.Add("name", "name is required")
	verr.Add("abbreviation", "abbreviation is too long")

	assert.Equal(t, "validation failed: abbreviation: abbreviation is too long; name: name is required", verr.Error())
}

func TestSentinelWrapping(t *testing.T) {
	assert.True(t, errors.Is(ErrFacultyNotFound, ErrNotFound))
	assert.True(t, errors.Is(ErrClearanceNotFound, ErrNotFound))
	assert.True(t, errors.Is(ErrFacultyHasMajors, ErrConflict))
	assert.True(t, errors.Is(ErrMajorHasMembers, ErrConflict))
	assert.False(t, errors.Is(ErrFacultyHasMajors, ErrNotFound))
}
