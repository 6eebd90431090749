package models

import "time"

// Student represents a student and the courses they are enrolled in.
// EnrolledCourses holds populated summaries, not full course records.
type Student struct {
	ID              string
	Name            string
	Email           string
	Phone           string
	EnrolledCourses []CourseSummary
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// StudentUpdate describes a partial update; nil fields are left untouched.
type StudentUpdate struct {
	Name  *string
	Email *string
	Phone *string
}

// StudentSummary is the related-entity view of a student as seen from a course.
type StudentSummary struct {
	ID    string
	Name  string
	Email string
}
