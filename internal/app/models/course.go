package models

import "time"

// Course represents a course, the single most-recently-assigned faculty
// member teaching it, and the students enrolled in it.
//
// Faculty is a single reference while Faculty.AssignedCourses is a list;
// the asymmetry is inherited behavior (last assignment wins on the course
// side) and is preserved deliberately.
type Course struct {
	ID               string
	Name             string
	Code             string
	Credits          int
	Faculty          *FacultySummary
	EnrolledStudents []StudentSummary
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// CourseUpdate describes a partial update; nil fields are left untouched.
type CourseUpdate struct {
	Name    *string
	Code    *string
	Credits *int
}

// CourseSummary is the related-entity view of a course as seen from a
// student or faculty record.
type CourseSummary struct {
	ID   string
	Name string
	Code string
}
