package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ozank/academix/internal/app/models"
	"github.com/ozank/academix/internal/pkg/apperrors"
)

func TestCreateStudent(t *testing.T) {
	repo := newFakeStudentRepo()
	svc := NewStudentService(repo)

	student, err := svc.CreateStudent(context.Background(), &models.Student{
		Name:  "Ada Lovelace",
		Email: "ada@example.com",
		Phone: "555-0100",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, student.ID)
	assert.Equal(t, "Ada Lovelace", student.Name)
	assert.Empty(t, student.EnrolledCourses)
}

func TestCreateStudentMissingFields(t *testing.T) {
	svc := NewStudentService(newFakeStudentRepo())

	_, err := svc.CreateStudent(context.Background(), &models.Student{Email: "ada@example.com"})
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Equal(t, "Please add all fields", err.Error())

	_, err = svc.CreateStudent(context.Background(), &models.Student{Name: "Ada Lovelace"})
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestCreateStudentDuplicateEmail(t *testing.T) {
	repo := newFakeStudentRepo()
	svc := NewStudentService(repo)

	_, err := svc.CreateStudent(context.Background(), &models.Student{Name: "Ada", Email: "ada@example.com"})
	require.NoError(t, err)

	_, err = svc.CreateStudent(context.Background(), &models.Student{Name: "Other Ada", Email: "ada@example.com"})
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Equal(t, "Email already exists", err.Error())
}

func TestUpdateStudentKeepingOwnEmail(t *testing.T) {
	repo := newFakeStudentRepo()
	svc := NewStudentService(repo)

	created, err := svc.CreateStudent(context.Background(), &models.Student{Name: "Ada", Email: "ada@example.com"})
	require.NoError(t, err)

	// Re-submitting the current email alongside a name change must not
	// trip the uniqueness check against the student's own record.
	updated, err := svc.UpdateStudent(context.Background(), created.ID, models.StudentUpdate{
		Name:  strPtr("Ada L."),
		Email: strPtr("ada@example.com"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Ada L.", updated.Name)
}

func TestUpdateStudentToTakenEmail(t *testing.T) {
	repo := newFakeStudentRepo()
	svc := NewStudentService(repo)

	_, err := svc.CreateStudent(context.Background(), &models.Student{Name: "Ada", Email: "ada@example.com"})
	require.NoError(t, err)
	second, err := svc.CreateStudent(context.Background(), &models.Student{Name: "Grace", Email: "grace@example.com"})
	require.NoError(t, err)

	_, err = svc.UpdateStudent(context.Background(), second.ID, models.StudentUpdate{Email: strPtr("ada@example.com")})
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Equal(t, "Email already exists", err.Error())
}

func TestUpdateStudentNotFound(t *testing.T) {
	svc := NewStudentService(newFakeStudentRepo())

	_, err := svc.UpdateStudent(context.Background(), "missing", models.StudentUpdate{Name: strPtr("Ada")})
	require.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Equal(t, "Student not found", err.Error())
}

func TestDeleteStudent(t *testing.T) {
	repo := newFakeStudentRepo()
	svc := NewStudentService(repo)

	created, err := svc.CreateStudent(context.Background(), &models.Student{Name: "Ada", Email: "ada@example.com"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteStudent(context.Background(), created.ID))

	err = svc.DeleteStudent(context.Background(), created.ID)
	require.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Equal(t, "Student not found", err.Error())
}

func TestEnrollStudent(t *testing.T) {
	repo := newFakeStudentRepo()
	repo.courses["course-1"] = models.CourseSummary{ID: "course-1", Name: "Algorithms", Code: "CS201"}
	svc := NewStudentService(repo)

	created, err := svc.CreateStudent(context.Background(), &models.Student{Name: "Ada", Email: "ada@example.com"})
	require.NoError(t, err)

	student, err := svc.EnrollStudent(context.Background(), created.ID, "course-1")
	require.NoError(t, err)
	require.Len(t, student.EnrolledCourses, 1)
	assert.Equal(t, "CS201", student.EnrolledCourses[0].Code)

	// Enrolling again is a no-op, not an error.
	student, err = svc.EnrollStudent(context.Background(), created.ID, "course-1")
	require.NoError(t, err)
	assert.Len(t, student.EnrolledCourses, 1)
}

func TestEnrollStudentUnknownCourse(t *testing.T) {
	repo := newFakeStudentRepo()
	svc := NewStudentService(repo)

	created, err := svc.CreateStudent(context.Background(), &models.Student{Name: "Ada", Email: "ada@example.com"})
	require.NoError(t, err)

	_, err = svc.EnrollStudent(context.Background(), created.ID, "missing")
	require.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Equal(t, "Student or Course not found", err.Error())
}
