package repositories

import (
	"context"

	"github.com/ozank/academix/internal/app/models"
)

// The entity store contract. Two implementations exist, selected by
// configuration and never combined at runtime: the document variant
// (MongoDB, embedded reference-id arrays) and the graph variant (Neo4j,
// explicit ENROLLED_IN / TEACHES relationships). Both satisfy the same
// operation contract but differ in atomicity guarantees; the differences
// are documented on the implementations.
//
// List operations return entities most-recently-created first, populated
// with related-entity summaries. Get returns ErrNotFound-kind errors for
// unresolvable identifiers. Delete reports whether a record existed.

// StudentRepository is the entity store surface for students.
type StudentRepository interface {
	GetAll(ctx context.Context) ([]*models.Student, error)
	GetByID(ctx context.Context, id string) (*models.Student, error)
	Create(ctx context.Context, student *models.Student) (*models.Student, error)
	Update(ctx context.Context, id string, update models.StudentUpdate) (*models.Student, error)
	Delete(ctx context.Context, id string) (bool, error)
	// Enroll records the student-course enrollment. Idempotent: enrolling
	// an already-enrolled pair is a no-op that returns current state.
	Enroll(ctx context.Context, studentID, courseID string) (*models.Student, error)
	// EmailExists reports whether another student already uses the email.
	// excludeID may be empty (no exclusion).
	EmailExists(ctx context.Context, email, excludeID string) (bool, error)
}

// FacultyRepository is the entity store surface for faculty members.
type FacultyRepository interface {
	GetAll(ctx context.Context) ([]*models.Faculty, error)
	GetByID(ctx context.Context, id string) (*models.Faculty, error)
	Create(ctx context.Context, faculty *models.Faculty) (*models.Faculty, error)
	Update(ctx context.Context, id string, update models.FacultyUpdate) (*models.Faculty, error)
	Delete(ctx context.Context, id string) (bool, error)
	// Assign records the faculty-course assignment. Idempotent on the
	// faculty side; the course side single teaching reference is
	// overwritten unconditionally (last writer wins).
	Assign(ctx context.Context, facultyID, courseID string) (*models.Faculty, error)
	EmailExists(ctx context.Context, email, excludeID string) (bool, error)
}

// CourseRepository is the entity store surface for courses.
type CourseRepository interface {
	GetAll(ctx context.Context) ([]*models.Course, error)
	GetByID(ctx context.Context, id string) (*models.Course, error)
	Create(ctx context.Context, course *models.Course) (*models.Course, error)
	Update(ctx context.Context, id string, update models.CourseUpdate) (*models.Course, error)
	Delete(ctx context.Context, id string) (bool, error)
	// CodeExists reports whether another course already uses the code.
	CodeExists(ctx context.Context, code, excludeID string) (bool, error)
}

// Repositories holds the repository instances of the active backend.
type Repositories struct {
	StudentRepository StudentRepository
	FacultyRepository FacultyRepository
	CourseRepository  CourseRepository
}
