package apperrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityErrorsCarryTheirKind(t *testing.T) {
	assert.True(t, errors.Is(ErrStudentNotFound, ErrNotFound))
	assert.True(t, errors.Is(ErrFacultyNotFound, ErrNotFound))
	assert.True(t, errors.Is(ErrCourseNotFound, ErrNotFound))
	assert.True(t, errors.Is(ErrStudentOrCourseNotFound, ErrNotFound))
	assert.True(t, errors.Is(ErrFacultyOrCourseNotFound, ErrNotFound))

	assert.True(t, errors.Is(ErrMissingFields, ErrValidationFailed))
	assert.True(t, errors.Is(ErrEmailExists, ErrValidationFailed))
	assert.True(t, errors.Is(ErrCourseCodeExists, ErrValidationFailed))

	assert.False(t, errors.Is(ErrStudentNotFound, ErrValidationFailed))
}

func TestEntityErrorMessages(t *testing.T) {
	assert.Equal(t, "Student not found", ErrStudentNotFound.Error())
	assert.Equal(t, "Faculty not found", ErrFacultyNotFound.Error())
	assert.Equal(t, "Course not found", ErrCourseNotFound.Error())
	assert.Equal(t, "Student or Course not found", ErrStudentOrCourseNotFound.Error())
	assert.Equal(t, "Faculty or Course not found", ErrFacultyOrCourseNotFound.Error())
	assert.Equal(t, "Please add all fields", ErrMissingFields.Error())
	assert.Equal(t, "Email already exists", ErrEmailExists.Error())
	assert.Equal(t, "Course code already exists", ErrCourseCodeExists.Error())
}

func TestStoreErrorWrapsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewStoreError(cause, "error querying students")

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrStoreFailure))
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, "error querying students", err.Error())
}

func TestCustomErrorFallbacks(t *testing.T) {
	withoutMessage := &CustomError{Err: ErrNotFound}
	assert.Equal(t, ErrNotFound.Error(), withoutMessage.Error())

	empty := &CustomError{}
	assert.Equal(t, "unknown error", empty.Error())
}
