package services

import (
	"context"

	"github.com/ozank/academix/internal/app/models"
	"github.com/ozank/academix/internal/app/repositories"
)

// StudentService handles student-related operations.
type StudentService interface {
	GetStudents(ctx context.Context) ([]*models.Student, error)
	GetStudent(ctx context.Context, id string) (*models.Student, error)
	CreateStudent(ctx context.Context, student *models.Student) (*models.Student, error)
	UpdateStudent(ctx context.Context, id string, update models.StudentUpdate) (*models.Student, error)
	DeleteStudent(ctx context.Context, id string) error
	EnrollStudent(ctx context.Context, studentID, courseID string) (*models.Student, error)
}

// FacultyService handles faculty-related operations.
type FacultyService interface {
	GetFaculty(ctx context.Context) ([]*models.Faculty, error)
	GetFacultyMember(ctx context.Context, id string) (*models.Faculty, error)
	CreateFacultyMember(ctx context.Context, faculty *models.Faculty) (*models.Faculty, error)
	UpdateFacultyMember(ctx context.Context, id string, update models.FacultyUpdate) (*models.Faculty, error)
	DeleteFacultyMember(ctx context.Context, id string) error
	AssignCourse(ctx context.Context, facultyID, courseID string) (*models.Faculty, error)
}

// CourseService handles course-related operations.
type CourseService interface {
	GetCourses(ctx context.Context) ([]*models.Course, error)
	GetCourse(ctx context.Context, id string) (*models.Course, error)
	CreateCourse(ctx context.Context, course *models.Course) (*models.Course, error)
	UpdateCourse(ctx context.Context, id string, update models.CourseUpdate) (*models.Course, error)
	DeleteCourse(ctx context.Context, id string) error
}

// Services holds the service instances wired to the active store.
type Services struct {
	StudentService StudentService
	FacultyService FacultyService
	CourseService  CourseService
}

// NewServices creates the service layer on top of the given repositories.
func NewServices(repos *repositories.Repositories) *Services {
	return &Services{
		StudentService: NewStudentService(repos.StudentRepository),
		FacultyService: NewFacultyService(repos.FacultyRepository),
		CourseService:  NewCourseService(repos.CourseRepository),
	}
}
