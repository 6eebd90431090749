// Package migrate implements the one-shot copy of the document store into
// the graph store. The source's embedded reference-id arrays become
// explicit relationships; dangling references (left behind by deletes,
// which never cascade) are skipped rather than carried over.
package migrate

import (
	"context"
	"fmt"
	"time"

	"github.com/ozank/academix/internal/pkg/logger"
)

// SourceStudent is a student record as read from the source store,
// relationship references still in raw id form.
type SourceStudent struct {
	ID              string
	Name            string
	Email           string
	Phone           string
	EnrolledCourses []string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// SourceFaculty is a faculty record as read from the source store.
type SourceFaculty struct {
	ID              string
	Name            string
	Email           string
	Department      string
	AssignedCourses []string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// SourceCourse is a course record as read from the source store.
type SourceCourse struct {
	ID               string
	Name             string
	Code             string
	Credits          int
	FacultyID        string
	EnrolledStudents []string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Counts summarizes what landed in the target.
type Counts struct {
	Students    int64
	Faculty     int64
	Courses     int64
	Enrollments int64
	Teachings   int64
}

// Source reads the full entity sets out of the store being migrated from.
type Source interface {
	Students(ctx context.Context) ([]SourceStudent, error)
	Faculty(ctx context.Context) ([]SourceFaculty, error)
	Courses(ctx context.Context) ([]SourceCourse, error)
}

// Target receives the migrated data. Clear empties it first: the migration
// is a full replace, never an incremental merge.
type Target interface {
	Clear(ctx context.Context) error
	EnsureConstraints(ctx context.Context) error
	CreateStudents(ctx context.Context, students []SourceStudent) error
	CreateFaculty(ctx context.Context, faculty []SourceFaculty) error
	CreateCourses(ctx context.Context, courses []SourceCourse) error
	// CreateRelationships derives edges from the source reference arrays:
	// one enrollment edge per student-course pair and one teaching edge per
	// course with a faculty reference. It reports how many of each were
	// created; dangling references create nothing.
	CreateRelationships(ctx context.Context, students []SourceStudent, courses []SourceCourse) (enrollments, teachings int64, err error)
	Counts(ctx context.Context) (Counts, error)
}

// Migrator copies everything from Source into Target.
type Migrator struct {
	source Source
	target Target
}

// NewMigrator creates a new Migrator
func NewMigrator(source Source, target Target) *Migrator {
	return &Migrator{source: source, target: target}
}

// Run executes the migration stages in order and fails fast on the first
// error; a partially migrated target is left as-is for inspection.
func (m *Migrator) Run(ctx context.Context) (Counts, error) {
	logger.Info().Msg("Clearing target store...")
	if err := m.target.Clear(ctx); err != nil {
		return Counts{}, fmt.Errorf("failed to clear target: %w", err)
	}

	logger.Info().Msg("Ensuring target constraints...")
	if err := m.target.EnsureConstraints(ctx); err != nil {
		return Counts{}, fmt.Errorf("failed to ensure constraints: %w", err)
	}

	students, err := m.source.Students(ctx)
	if err != nil {
		return Counts{}, fmt.Errorf("failed to read students: %w", err)
	}
	logger.Info().Int("count", len(students)).Msg("Migrating students...")
	if err := m.target.CreateStudents(ctx, students); err != nil {
		return Counts{}, fmt.Errorf("failed to migrate students: %w", err)
	}

	faculty, err := m.source.Faculty(ctx)
	if err != nil {
		return Counts{}, fmt.Errorf("failed to read faculty: %w", err)
	}
	logger.Info().Int("count", len(faculty)).Msg("Migrating faculty...")
	if err := m.target.CreateFaculty(ctx, faculty); err != nil {
		return Counts{}, fmt.Errorf("failed to migrate faculty: %w", err)
	}

	courses, err := m.source.Courses(ctx)
	if err != nil {
		return Counts{}, fmt.Errorf("failed to read courses: %w", err)
	}
	logger.Info().Int("count", len(courses)).Msg("Migrating courses...")
	if err := m.target.CreateCourses(ctx, courses); err != nil {
		return Counts{}, fmt.Errorf("failed to migrate courses: %w", err)
	}

	logger.Info().Msg("Migrating relationships...")
	enrollments, teachings, err := m.target.CreateRelationships(ctx, students, courses)
	if err != nil {
		return Counts{}, fmt.Errorf("failed to migrate relationships: %w", err)
	}

	counts, err := m.target.Counts(ctx)
	if err != nil {
		return Counts{}, fmt.Errorf("failed to count target records: %w", err)
	}

	if counts.Students != int64(len(students)) ||
		counts.Faculty != int64(len(faculty)) ||
		counts.Courses != int64(len(courses)) {
		return counts, fmt.Errorf("verification failed: target holds %d/%d/%d records, source holds %d/%d/%d",
			counts.Students, counts.Faculty, counts.Courses,
			len(students), len(faculty), len(courses))
	}

	logger.Info().
		Int64("students", counts.Students).
		Int64("faculty", counts.Faculty).
		Int64("courses", counts.Courses).
		Int64("enrollments", enrollments).
		Int64("teachings", teachings).
		Msg("Migration complete")

	return counts, nil
}
