package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ozank/academix/internal/app/models"
	"github.com/ozank/academix/internal/pkg/apperrors"
)

func TestGetStudents(t *testing.T) {
	router := newTestRouter(
		&stubStudentService{students: []*models.Student{testStudent()}},
		&stubFacultyService{}, &stubCourseService{},
	)

	recorder := performRequest(t, router, http.MethodGet, "/api/students", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var body []map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.Len(t, body, 1)

	// Both id keys are present and carry the same value.
	assert.Equal(t, "student-1", body[0]["_id"])
	assert.Equal(t, "student-1", body[0]["id"])

	courses, ok := body[0]["enrolledCourses"].([]any)
	require.True(t, ok)
	require.Len(t, courses, 1)
	course := courses[0].(map[string]any)
	assert.Equal(t, "course-1", course["_id"])
	assert.Equal(t, "course-1", course["id"])
}

func TestGetStudentNotFound(t *testing.T) {
	router := newTestRouter(
		&stubStudentService{err: apperrors.ErrStudentNotFound},
		&stubFacultyService{}, &stubCourseService{},
	)

	recorder := performRequest(t, router, http.MethodGet, "/api/students/missing", nil)
	require.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "Student not found", decodeBody(t, recorder)["message"])
}

func TestCreateStudent(t *testing.T) {
	router := newTestRouter(
		&stubStudentService{student: testStudent()},
		&stubFacultyService{}, &stubCourseService{},
	)

	recorder := performRequest(t, router, http.MethodPost, "/api/students", map[string]any{
		"name":  "Ada Lovelace",
		"email": "ada@example.com",
	})
	require.Equal(t, http.StatusCreated, recorder.Code)

	body := decodeBody(t, recorder)
	assert.Equal(t, "student-1", body["_id"])
	assert.Equal(t, "Ada Lovelace", body["name"])
}

func TestCreateStudentMissingFields(t *testing.T) {
	router := newTestRouter(&stubStudentService{}, &stubFacultyService{}, &stubCourseService{})

	recorder := performRequest(t, router, http.MethodPost, "/api/students", map[string]any{
		"email": "ada@example.com",
	})
	require.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "Please add all fields", decodeBody(t, recorder)["message"])
}

func TestCreateStudentDuplicateEmail(t *testing.T) {
	router := newTestRouter(
		&stubStudentService{err: apperrors.ErrEmailExists},
		&stubFacultyService{}, &stubCourseService{},
	)

	recorder := performRequest(t, router, http.MethodPost, "/api/students", map[string]any{
		"name":  "Ada Lovelace",
		"email": "ada@example.com",
	})
	require.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "Email already exists", decodeBody(t, recorder)["message"])
}

func TestDeleteStudent(t *testing.T) {
	router := newTestRouter(&stubStudentService{}, &stubFacultyService{}, &stubCourseService{})

	recorder := performRequest(t, router, http.MethodDelete, "/api/students/student-1", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "student-1", decodeBody(t, recorder)["id"])
}

func TestEnrollStudent(t *testing.T) {
	router := newTestRouter(
		&stubStudentService{student: testStudent()},
		&stubFacultyService{}, &stubCourseService{},
	)

	recorder := performRequest(t, router, http.MethodPost, "/api/students/student-1/enroll", map[string]any{
		"courseId": "course-1",
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	body := decodeBody(t, recorder)
	courses, ok := body["enrolledCourses"].([]any)
	require.True(t, ok)
	assert.Len(t, courses, 1)
}

func TestEnrollStudentMissingCourseID(t *testing.T) {
	router := newTestRouter(&stubStudentService{}, &stubFacultyService{}, &stubCourseService{})

	recorder := performRequest(t, router, http.MethodPost, "/api/students/student-1/enroll", map[string]any{})
	require.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "Please add all fields", decodeBody(t, recorder)["message"])
}

func TestEnrollStudentUnknownPair(t *testing.T) {
	router := newTestRouter(
		&stubStudentService{err: apperrors.ErrStudentOrCourseNotFound},
		&stubFacultyService{}, &stubCourseService{},
	)

	recorder := performRequest(t, router, http.MethodPost, "/api/students/missing/enroll", map[string]any{
		"courseId": "course-1",
	})
	require.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "Student or Course not found", decodeBody(t, recorder)["message"])
}
