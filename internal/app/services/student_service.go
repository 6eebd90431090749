package services

import (
	"context"
	"strings"

	"github.com/ozank/academix/internal/app/models"
	"github.com/ozank/academix/internal/app/repositories"
	"github.com/ozank/academix/internal/pkg/apperrors"
	"github.com/ozank/academix/internal/pkg/logger"
)

// studentService is the default StudentService implementation.
type studentService struct {
	studentRepo repositories.StudentRepository
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo repositories.StudentRepository) StudentService {
	return &studentService{studentRepo: studentRepo}
}

// GetStudents returns all students, most-recently-created first.
func (s *studentService) GetStudents(ctx context.Context) ([]*models.Student, error) {
	return s.studentRepo.GetAll(ctx)
}

// GetStudent returns a single student by identifier.
func (s *studentService) GetStudent(ctx context.Context, id string) (*models.Student, error) {
	return s.studentRepo.GetByID(ctx, id)
}

// CreateStudent validates required fields and email uniqueness, then
// creates the student. The store's unique index backs the pre-check.
func (s *studentService) CreateStudent(ctx context.Context, student *models.Student) (*models.Student, error) {
	if strings.TrimSpace(student.Name) == "" || strings.TrimSpace(student.Email) == "" {
		return nil, apperrors.ErrMissingFields
	}

	exists, err := s.studentRepo.EmailExists(ctx, student.Email, "")
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrEmailExists
	}

	created, err := s.studentRepo.Create(ctx, student)
	if err != nil {
		return nil, err
	}
	logger.Info().Str("studentID", created.ID).Msg("Student created")
	return created, nil
}

// UpdateStudent applies a partial update. Email uniqueness is re-checked
// only when the email is actually being changed.
func (s *studentService) UpdateStudent(ctx context.Context, id string, update models.StudentUpdate) (*models.Student, error) {
	if update.Email != nil {
		exists, err := s.studentRepo.EmailExists(ctx, *update.Email, id)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, apperrors.ErrEmailExists
		}
	}
	return s.studentRepo.Update(ctx, id, update)
}

// DeleteStudent removes the student record.
func (s *studentService) DeleteStudent(ctx context.Context, id string) error {
	deleted, err := s.studentRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.ErrStudentNotFound
	}
	logger.Info().Str("studentID", id).Msg("Student deleted")
	return nil
}

// EnrollStudent records the student-course enrollment and returns the
// refreshed student. Enrolling twice is a no-op.
func (s *studentService) EnrollStudent(ctx context.Context, studentID, courseID string) (*models.Student, error) {
	student, err := s.studentRepo.Enroll(ctx, studentID, courseID)
	if err != nil {
		return nil, err
	}
	logger.Info().Str("studentID", studentID).Str("courseID", courseID).Msg("Student enrolled in course")
	return student, nil
}
