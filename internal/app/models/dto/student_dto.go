package dto

import (
	"time"

	"github.com/ozank/academix/internal/app/models"
)

// StudentResponse is the wire shape of a student. Both "_id" and "id"
// carry the same identifier; the front end reads either key depending on
// the backend it was originally written against.
type StudentResponse struct {
	DocID           string          `json:"_id"`
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Email           string          `json:"email"`
	Phone           string          `json:"phone,omitempty"`
	EnrolledCourses []CourseSummary `json:"enrolledCourses"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// CreateStudentRequest represents student creation data
type CreateStudentRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone"`
}

// UpdateStudentRequest represents a partial student update; only supplied
// fields are modified.
type UpdateStudentRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email" binding:"omitempty,email"`
	Phone *string `json:"phone"`
}

// EnrollRequest carries the course to enroll a student in.
type EnrollRequest struct {
	CourseID string `json:"courseId" binding:"required"`
}

// NewStudentResponse maps a populated student model to its wire shape.
func NewStudentResponse(s *models.Student) StudentResponse {
	return StudentResponse{
		DocID:           s.ID,
		ID:              s.ID,
		Name:            s.Name,
		Email:           s.Email,
		Phone:           s.Phone,
		EnrolledCourses: NewCourseSummaries(s.EnrolledCourses),
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

// NewStudentListResponse maps a list of students to their wire shape.
func NewStudentListResponse(students []*models.Student) []StudentResponse {
	out := make([]StudentResponse, 0, len(students))
	for _, s := range students {
		out = append(out, NewStudentResponse(s))
	}
	return out
}

// StudentSummary is the related-entity view of a student on a course.
type StudentSummary struct {
	DocID string `json:"_id"`
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// NewStudentSummaries maps student summaries to their wire shape.
func NewStudentSummaries(students []models.StudentSummary) []StudentSummary {
	out := make([]StudentSummary, 0, len(students))
	for _, s := range students {
		out = append(out, StudentSummary{DocID: s.ID, ID: s.ID, Name: s.Name, Email: s.Email})
	}
	return out
}
