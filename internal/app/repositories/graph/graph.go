// Package graph implements the entity store on Neo4j: one node label per
// entity type and explicit ENROLLED_IN / TEACHES relationships. A
// relationship is a single stored fact, so the two sides of an
// association can never diverge, and MERGE makes relationship creation
// naturally idempotent. Uniqueness of student/faculty emails and course
// codes is enforced by declared constraints at the storage layer.
package graph

import (
	"errors"
	"strings"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/ozank/academix/internal/app/models"
	"github.com/ozank/academix/internal/app/repositories"
)

// NewRepositories builds the graph-variant entity store on the given driver.
func NewRepositories(driver neo4j.DriverWithContext) *repositories.Repositories {
	return &repositories.Repositories{
		StudentRepository: NewStudentRepository(driver),
		FacultyRepository: NewFacultyRepository(driver),
		CourseRepository:  NewCourseRepository(driver),
	}
}

// isConstraintError reports whether the error is a uniqueness constraint
// violation raised by the database.
func isConstraintError(err error) bool {
	var neoErr *neo4j.Neo4jError
	return errors.As(err, &neoErr) && strings.Contains(neoErr.Code, "ConstraintValidationFailed")
}

// joinClauses joins dynamically built SET fragments for partial updates.
func joinClauses(clauses []string) string {
	return strings.Join(clauses, ", ")
}

func stringProp(props map[string]any, key string) string {
	if v, ok := props[key].(string); ok {
		return v
	}
	return ""
}

func intProp(props map[string]any, key string) int {
	if v, ok := props[key].(int64); ok {
		return int(v)
	}
	return 0
}

func timeProp(props map[string]any, key string) time.Time {
	if v, ok := props[key].(time.Time); ok {
		return v
	}
	return time.Time{}
}

// courseSummaries converts a collect(DISTINCT {...}) aggregate into course
// summaries, dropping the null placeholder produced by OPTIONAL MATCH when
// the entity has no relationships.
func courseSummaries(value any) []models.CourseSummary {
	items, ok := value.([]any)
	if !ok {
		return nil
	}
	out := make([]models.CourseSummary, 0, len(items))
	for _, item := range items {
		props, ok := item.(map[string]any)
		if !ok || props["id"] == nil {
			continue
		}
		out = append(out, models.CourseSummary{
			ID:   stringProp(props, "id"),
			Name: stringProp(props, "name"),
			Code: stringProp(props, "code"),
		})
	}
	return out
}

// studentSummaries converts a collect(DISTINCT {...}) aggregate into
// student summaries, dropping null placeholders.
func studentSummaries(value any) []models.StudentSummary {
	items, ok := value.([]any)
	if !ok {
		return nil
	}
	out := make([]models.StudentSummary, 0, len(items))
	for _, item := range items {
		props, ok := item.(map[string]any)
		if !ok || props["id"] == nil {
			continue
		}
		out = append(out, models.StudentSummary{
			ID:    stringProp(props, "id"),
			Name:  stringProp(props, "name"),
			Email: stringProp(props, "email"),
		})
	}
	return out
}

// facultySummary converts a single {...} projection into a faculty
// summary, or nil when the OPTIONAL MATCH found nothing.
func facultySummary(value any) *models.FacultySummary {
	props, ok := value.(map[string]any)
	if !ok || props["id"] == nil {
		return nil
	}
	return &models.FacultySummary{
		ID:         stringProp(props, "id"),
		Name:       stringProp(props, "name"),
		Email:      stringProp(props, "email"),
		Department: stringProp(props, "department"),
	}
}
