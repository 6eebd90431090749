package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ozank/academix/internal/app/models"
	"github.com/ozank/academix/internal/pkg/apperrors"
)

func TestCreateCourse(t *testing.T) {
	svc := NewCourseService(newFakeCourseRepo())

	course, err := svc.CreateCourse(context.Background(), &models.Course{
		Name:    "Algorithms",
		Code:    "CS201",
		Credits: 4,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, course.ID)
	assert.Nil(t, course.Faculty)
	assert.Empty(t, course.EnrolledStudents)
}

func TestCreateCourseMissingFields(t *testing.T) {
	svc := NewCourseService(newFakeCourseRepo())

	_, err := svc.CreateCourse(context.Background(), &models.Course{Name: "Algorithms", Code: "CS201"})
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Equal(t, "Please add all fields", err.Error())

	_, err = svc.CreateCourse(context.Background(), &models.Course{Name: "Algorithms", Credits: 4})
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestCreateCourseDuplicateCode(t *testing.T) {
	svc := NewCourseService(newFakeCourseRepo())

	_, err := svc.CreateCourse(context.Background(), &models.Course{Name: "Algorithms", Code: "CS201", Credits: 4})
	require.NoError(t, err)

	_, err = svc.CreateCourse(context.Background(), &models.Course{Name: "Algorithms II", Code: "CS201", Credits: 3})
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Equal(t, "Course code already exists", err.Error())
}

func TestUpdateCourse(t *testing.T) {
	svc := NewCourseService(newFakeCourseRepo())

	created, err := svc.CreateCourse(context.Background(), &models.Course{Name: "Algorithms", Code: "CS201", Credits: 4})
	require.NoError(t, err)

	updated, err := svc.UpdateCourse(context.Background(), created.ID, models.CourseUpdate{Credits: intPtr(3)})
	require.NoError(t, err)
	assert.Equal(t, 3, updated.Credits)
	assert.Equal(t, "CS201", updated.Code)
}

func TestUpdateCourseToTakenCode(t *testing.T) {
	svc := NewCourseService(newFakeCourseRepo())

	_, err := svc.CreateCourse(context.Background(), &models.Course{Name: "Algorithms", Code: "CS201", Credits: 4})
	require.NoError(t, err)
	second, err := svc.CreateCourse(context.Background(), &models.Course{Name: "Databases", Code: "CS301", Credits: 3})
	require.NoError(t, err)

	_, err = svc.UpdateCourse(context.Background(), second.ID, models.CourseUpdate{Code: strPtr("CS201")})
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Equal(t, "Course code already exists", err.Error())
}

func TestUpdateCourseRejectsNonPositiveCredits(t *testing.T) {
	svc := NewCourseService(newFakeCourseRepo())

	created, err := svc.CreateCourse(context.Background(), &models.Course{Name: "Algorithms", Code: "CS201", Credits: 4})
	require.NoError(t, err)

	_, err = svc.UpdateCourse(context.Background(), created.ID, models.CourseUpdate{Credits: intPtr(0)})
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestDeleteCourseNotFound(t *testing.T) {
	svc := NewCourseService(newFakeCourseRepo())

	err := svc.DeleteCourse(context.Background(), "missing")
	require.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Equal(t, "Course not found", err.Error())
}
