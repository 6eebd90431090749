package services

import (
	"context"
	"strings"

	"github.com/ozank/academix/internal/app/models"
	"github.com/ozank/academix/internal/app/repositories"
	"github.com/ozank/academix/internal/pkg/apperrors"
	"github.com/ozank/academix/internal/pkg/logger"
)

// courseService is the default CourseService implementation.
type courseService struct {
	courseRepo repositories.CourseRepository
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo repositories.CourseRepository) CourseService {
	return &courseService{courseRepo: courseRepo}
}

// GetCourses returns all courses, most-recently-created first.
func (s *courseService) GetCourses(ctx context.Context) ([]*models.Course, error) {
	return s.courseRepo.GetAll(ctx)
}

// GetCourse returns a single course by identifier.
func (s *courseService) GetCourse(ctx context.Context, id string) (*models.Course, error) {
	return s.courseRepo.GetByID(ctx, id)
}

// CreateCourse validates required fields and code uniqueness, then creates
// the course with no faculty and an empty enrollment set.
func (s *courseService) CreateCourse(ctx context.Context, course *models.Course) (*models.Course, error) {
	if strings.TrimSpace(course.Name) == "" ||
		strings.TrimSpace(course.Code) == "" ||
		course.Credits <= 0 {
		return nil, apperrors.ErrMissingFields
	}

	exists, err := s.courseRepo.CodeExists(ctx, course.Code, "")
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrCourseCodeExists
	}

	created, err := s.courseRepo.Create(ctx, course)
	if err != nil {
		return nil, err
	}
	logger.Info().Str("courseID", created.ID).Str("code", created.Code).Msg("Course created")
	return created, nil
}

// UpdateCourse applies a partial update. Code uniqueness is re-checked
// only when the code is actually being changed.
func (s *courseService) UpdateCourse(ctx context.Context, id string, update models.CourseUpdate) (*models.Course, error) {
	if update.Credits != nil && *update.Credits <= 0 {
		return nil, apperrors.ErrMissingFields
	}
	if update.Code != nil {
		exists, err := s.courseRepo.CodeExists(ctx, *update.Code, id)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, apperrors.ErrCourseCodeExists
		}
	}
	return s.courseRepo.Update(ctx, id, update)
}

// DeleteCourse removes the course record. Enrollment and assignment
// references held by other entities are left to the store's semantics.
func (s *courseService) DeleteCourse(ctx context.Context, id string) error {
	deleted, err := s.courseRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.ErrCourseNotFound
	}
	logger.Info().Str("courseID", id).Msg("Course deleted")
	return nil
}
