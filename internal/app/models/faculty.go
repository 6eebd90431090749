package models

import "time"

// Faculty represents a faculty member and the courses assigned to them.
type Faculty struct {
	ID              string
	Name            string
	Email           string
	Department      string
	AssignedCourses []CourseSummary
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// FacultyUpdate describes a partial update; nil fields are left untouched.
type FacultyUpdate struct {
	Name       *string
	Email      *string
	Department *string
}

// FacultySummary is the related-entity view of a faculty member as seen
// from a course.
type FacultySummary struct {
	ID         string
	Name       string
	Email      string
	Department string
}
