package dto

import (
	"time"

	"github.com/ozank/academix/internal/app/models"
)

// CourseResponse is the wire shape of a course. FacultyID is the single
// most-recently-assigned faculty member, or JSON null when unassigned.
type CourseResponse struct {
	DocID            string           `json:"_id"`
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Code             string           `json:"code"`
	Credits          int              `json:"credits"`
	FacultyID        *FacultySummary  `json:"facultyId"`
	EnrolledStudents []StudentSummary `json:"enrolledStudents"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
}

// CreateCourseRequest represents course creation data
type CreateCourseRequest struct {
	Name    string `json:"name" binding:"required"`
	Code    string `json:"code" binding:"required"`
	Credits int    `json:"credits" binding:"required,gt=0"`
}

// UpdateCourseRequest represents a partial course update; only supplied
// fields are modified.
type UpdateCourseRequest struct {
	Name    *string `json:"name"`
	Code    *string `json:"code"`
	Credits *int    `json:"credits" binding:"omitempty,gt=0"`
}

// NewCourseResponse maps a populated course model to its wire shape.
func NewCourseResponse(c *models.Course) CourseResponse {
	return CourseResponse{
		DocID:            c.ID,
		ID:               c.ID,
		Name:             c.Name,
		Code:             c.Code,
		Credits:          c.Credits,
		FacultyID:        NewFacultySummary(c.Faculty),
		EnrolledStudents: NewStudentSummaries(c.EnrolledStudents),
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

// NewCourseListResponse maps a list of courses to their wire shape.
func NewCourseListResponse(courses []*models.Course) []CourseResponse {
	out := make([]CourseResponse, 0, len(courses))
	for _, c := range courses {
		out = append(out, NewCourseResponse(c))
	}
	return out
}

// CourseSummary is the related-entity view of a course on a student or
// faculty record (name and code only).
type CourseSummary struct {
	DocID string `json:"_id"`
	ID    string `json:"id"`
	Name  string `json:"name"`
	Code  string `json:"code"`
}

// NewCourseSummaries maps course summaries to their wire shape.
func NewCourseSummaries(courses []models.CourseSummary) []CourseSummary {
	out := make([]CourseSummary, 0, len(courses))
	for _, c := range courses {
		out = append(out, CourseSummary{DocID: c.ID, ID: c.ID, Name: c.Name, Code: c.Code})
	}
	return out
}
