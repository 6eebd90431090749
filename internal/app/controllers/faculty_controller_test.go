package controllers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ozank/academix/internal/app/models"
	"github.com/ozank/academix/internal/pkg/apperrors"
)

func testFacultyMember() *models.Faculty {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return &models.Faculty{
		ID:         "faculty-1",
		Name:       "Grace Hopper",
		Email:      "grace@example.com",
		Department: "Computer Science",
		AssignedCourses: []models.CourseSummary{
			{ID: "course-1", Name: "Algorithms", Code: "CS201"},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestGetFacultyMember(t *testing.T) {
	router := newTestRouter(
		&stubStudentService{},
		&stubFacultyService{member: testFacultyMember()},
		&stubCourseService{},
	)

	recorder := performRequest(t, router, http.MethodGet, "/api/faculty/faculty-1", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	body := decodeBody(t, recorder)
	assert.Equal(t, "faculty-1", body["_id"])
	assert.Equal(t, "faculty-1", body["id"])
	assert.Equal(t, "Computer Science", body["department"])
}

func TestGetFacultyMemberNotFound(t *testing.T) {
	router := newTestRouter(
		&stubStudentService{},
		&stubFacultyService{err: apperrors.ErrFacultyNotFound},
		&stubCourseService{},
	)

	recorder := performRequest(t, router, http.MethodGet, "/api/faculty/missing", nil)
	require.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "Faculty not found", decodeBody(t, recorder)["message"])
}

func TestCreateFacultyMemberMissingDepartment(t *testing.T) {
	router := newTestRouter(&stubStudentService{}, &stubFacultyService{}, &stubCourseService{})

	recorder := performRequest(t, router, http.MethodPost, "/api/faculty", map[string]any{
		"name":  "Grace Hopper",
		"email": "grace@example.com",
	})
	require.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "Please add all fields", decodeBody(t, recorder)["message"])
}

func TestCreateFacultyMember(t *testing.T) {
	router := newTestRouter(
		&stubStudentService{},
		&stubFacultyService{member: testFacultyMember()},
		&stubCourseService{},
	)

	recorder := performRequest(t, router, http.MethodPost, "/api/faculty", map[string]any{
		"name":       "Grace Hopper",
		"email":      "grace@example.com",
		"department": "Computer Science",
	})
	require.Equal(t, http.StatusCreated, recorder.Code)
	assert.Equal(t, "faculty-1", decodeBody(t, recorder)["id"])
}

func TestAssignCourse(t *testing.T) {
	router := newTestRouter(
		&stubStudentService{},
		&stubFacultyService{member: testFacultyMember()},
		&stubCourseService{},
	)

	recorder := performRequest(t, router, http.MethodPost, "/api/faculty/faculty-1/assign", map[string]any{
		"courseId": "course-1",
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	body := decodeBody(t, recorder)
	courses, ok := body["assignedCourses"].([]any)
	require.True(t, ok)
	assert.Len(t, courses, 1)
}

func TestAssignCourseUnknownPair(t *testing.T) {
	router := newTestRouter(
		&stubStudentService{},
		&stubFacultyService{err: apperrors.ErrFacultyOrCourseNotFound},
		&stubCourseService{},
	)

	recorder := performRequest(t, router, http.MethodPost, "/api/faculty/missing/assign", map[string]any{
		"courseId": "course-1",
	})
	require.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "Faculty or Course not found", decodeBody(t, recorder)["message"])
}

func TestDeleteFacultyMember(t *testing.T) {
	router := newTestRouter(&stubStudentService{}, &stubFacultyService{}, &stubCourseService{})

	recorder := performRequest(t, router, http.MethodDelete, "/api/faculty/faculty-1", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "faculty-1", decodeBody(t, recorder)["id"])
}
