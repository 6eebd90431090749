package services

import (
	"context"
	"strings"

	"github.com/ozank/academix/internal/app/models"
	"github.com/ozank/academix/internal/app/repositories"
	"github.com/ozank/academix/internal/pkg/apperrors"
	"github.com/ozank/academix/internal/pkg/logger"
)

// facultyService is the default FacultyService implementation.
type facultyService struct {
	facultyRepo repositories.FacultyRepository
}

// NewFacultyService creates a new faculty service instance
func NewFacultyService(facultyRepo repositories.FacultyRepository) FacultyService {
	return &facultyService{facultyRepo: facultyRepo}
}

// GetFaculty returns all faculty members, most-recently-created first.
func (s *facultyService) GetFaculty(ctx context.Context) ([]*models.Faculty, error) {
	return s.facultyRepo.GetAll(ctx)
}

// GetFacultyMember returns a single faculty member by identifier.
func (s *facultyService) GetFacultyMember(ctx context.Context, id string) (*models.Faculty, error) {
	return s.facultyRepo.GetByID(ctx, id)
}

// CreateFacultyMember validates required fields and email uniqueness, then
// creates the faculty member.
func (s *facultyService) CreateFacultyMember(ctx context.Context, faculty *models.Faculty) (*models.Faculty, error) {
	if strings.TrimSpace(faculty.Name) == "" ||
		strings.TrimSpace(faculty.Email) == "" ||
		strings.TrimSpace(faculty.Department) == "" {
		return nil, apperrors.ErrMissingFields
	}

	exists, err := s.facultyRepo.EmailExists(ctx, faculty.Email, "")
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrEmailExists
	}

	created, err := s.facultyRepo.Create(ctx, faculty)
	if err != nil {
		return nil, err
	}
	logger.Info().Str("facultyID", created.ID).Msg("Faculty member created")
	return created, nil
}

// UpdateFacultyMember applies a partial update. Email uniqueness is
// re-checked only when the email is actually being changed.
func (s *facultyService) UpdateFacultyMember(ctx context.Context, id string, update models.FacultyUpdate) (*models.Faculty, error) {
	if update.Email != nil {
		exists, err := s.facultyRepo.EmailExists(ctx, *update.Email, id)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, apperrors.ErrEmailExists
		}
	}
	return s.facultyRepo.Update(ctx, id, update)
}

// DeleteFacultyMember removes the faculty record.
func (s *facultyService) DeleteFacultyMember(ctx context.Context, id string) error {
	deleted, err := s.facultyRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.ErrFacultyNotFound
	}
	logger.Info().Str("facultyID", id).Msg("Faculty member deleted")
	return nil
}

// AssignCourse records the faculty-course assignment and returns the
// refreshed faculty member. Reassigning an already-assigned course to the
// same faculty member is a no-op; assigning it to a different one moves
// the course's teaching reference.
func (s *facultyService) AssignCourse(ctx context.Context, facultyID, courseID string) (*models.Faculty, error) {
	faculty, err := s.facultyRepo.Assign(ctx, facultyID, courseID)
	if err != nil {
		return nil, err
	}
	logger.Info().Str("facultyID", facultyID).Str("courseID", courseID).Msg("Course assigned to faculty member")
	return faculty, nil
}
