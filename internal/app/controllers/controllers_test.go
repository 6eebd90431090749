package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/ozank/academix/internal/app/controllers"
	"github.com/ozank/academix/internal/app/models"
	"github.com/ozank/academix/internal/app/routes"
)

// Service stubs returning canned values; controller tests only exercise
// binding, status codes and response shapes.

type stubStudentService struct {
	students []*models.Student
	student  *models.Student
	err      error
}

func (s *stubStudentService) GetStudents(ctx context.Context) ([]*models.Student, error) {
	return s.students, s.err
}

func (s *stubStudentService) GetStudent(ctx context.Context, id string) (*models.Student, error) {
	return s.student, s.err
}

func (s *stubStudentService) CreateStudent(ctx context.Context, student *models.Student) (*models.Student, error) {
	return s.student, s.err
}

func (s *stubStudentService) UpdateStudent(ctx context.Context, id string, update models.StudentUpdate) (*models.Student, error) {
	return s.student, s.err
}

func (s *stubStudentService) DeleteStudent(ctx context.Context, id string) error {
	return s.err
}

func (s *stubStudentService) EnrollStudent(ctx context.Context, studentID, courseID string) (*models.Student, error) {
	return s.student, s.err
}

type stubFacultyService struct {
	faculty []*models.Faculty
	member  *models.Faculty
	err     error
}

func (s *stubFacultyService) GetFaculty(ctx context.Context) ([]*models.Faculty, error) {
	return s.faculty, s.err
}

func (s *stubFacultyService) GetFacultyMember(ctx context.Context, id string) (*models.Faculty, error) {
	return s.member, s.err
}

func (s *stubFacultyService) CreateFacultyMember(ctx context.Context, faculty *models.Faculty) (*models.Faculty, error) {
	return s.member, s.err
}

func (s *stubFacultyService) UpdateFacultyMember(ctx context.Context, id string, update models.FacultyUpdate) (*models.Faculty, error) {
	return s.member, s.err
}

func (s *stubFacultyService) DeleteFacultyMember(ctx context.Context, id string) error {
	return s.err
}

func (s *stubFacultyService) AssignCourse(ctx context.Context, facultyID, courseID string) (*models.Faculty, error) {
	return s.member, s.err
}

type stubCourseService struct {
	courses []*models.Course
	course  *models.Course
	err     error
}

func (s *stubCourseService) GetCourses(ctx context.Context) ([]*models.Course, error) {
	return s.courses, s.err
}

func (s *stubCourseService) GetCourse(ctx context.Context, id string) (*models.Course, error) {
	return s.course, s.err
}

func (s *stubCourseService) CreateCourse(ctx context.Context, course *models.Course) (*models.Course, error) {
	return s.course, s.err
}

func (s *stubCourseService) UpdateCourse(ctx context.Context, id string, update models.CourseUpdate) (*models.Course, error) {
	return s.course, s.err
}

func (s *stubCourseService) DeleteCourse(ctx context.Context, id string) error {
	return s.err
}

func newTestRouter(students *stubStudentService, faculty *stubFacultyService, courses *stubCourseService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	routes.SetupRouter(router,
		controllers.NewStudentController(students),
		controllers.NewFacultyController(faculty),
		controllers.NewCourseController(courses),
	)
	return router
}

func performRequest(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body
}

func testStudent() *models.Student {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return &models.Student{
		ID:    "student-1",
		Name:  "Ada Lovelace",
		Email: "ada@example.com",
		EnrolledCourses: []models.CourseSummary{
			{ID: "course-1", Name: "Algorithms", Code: "CS201"},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}
