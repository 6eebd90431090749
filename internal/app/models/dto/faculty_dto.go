package dto

import (
	"time"

	"github.com/ozank/academix/internal/app/models"
)

// FacultyResponse is the wire shape of a faculty member.
type FacultyResponse struct {
	DocID           string          `json:"_id"`
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Email           string          `json:"email"`
	Department      string          `json:"department"`
	AssignedCourses []CourseSummary `json:"assignedCourses"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// CreateFacultyRequest represents faculty creation data
type CreateFacultyRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Department string `json:"department" binding:"required"`
}

// UpdateFacultyRequest represents a partial faculty update; only supplied
// fields are modified.
type UpdateFacultyRequest struct {
	Name       *string `json:"name"`
	Email      *string `json:"email" binding:"omitempty,email"`
	Department *string `json:"department"`
}

// AssignRequest carries the course to assign to a faculty member.
type AssignRequest struct {
	CourseID string `json:"courseId" binding:"required"`
}

// NewFacultyResponse maps a populated faculty model to its wire shape.
func NewFacultyResponse(f *models.Faculty) FacultyResponse {
	return FacultyResponse{
		DocID:           f.ID,
		ID:              f.ID,
		Name:            f.Name,
		Email:           f.Email,
		Department:      f.Department,
		AssignedCourses: NewCourseSummaries(f.AssignedCourses),
		CreatedAt:       f.CreatedAt,
		UpdatedAt:       f.UpdatedAt,
	}
}

// NewFacultyListResponse maps a list of faculty to their wire shape.
func NewFacultyListResponse(faculty []*models.Faculty) []FacultyResponse {
	out := make([]FacultyResponse, 0, len(faculty))
	for _, f := range faculty {
		out = append(out, NewFacultyResponse(f))
	}
	return out
}

// FacultySummary is the related-entity view of a faculty member on a course.
type FacultySummary struct {
	DocID      string `json:"_id"`
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

// NewFacultySummary maps a faculty summary; nil stays nil so the course
// serializes facultyId as JSON null.
func NewFacultySummary(f *models.FacultySummary) *FacultySummary {
	if f == nil {
		return nil
	}
	return &FacultySummary{DocID: f.ID, ID: f.ID, Name: f.Name, Email: f.Email, Department: f.Department}
}
