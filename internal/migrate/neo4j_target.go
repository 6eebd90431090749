package migrate

import (
	"context"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/ozank/academix/internal/pkg/logger"
)

// Neo4jTarget writes migrated records into the graph store. Node ids keep
// the source's identifier values so relationship references resolve
// without a translation table. This deliberately replaces the earlier
// mint-new-ids-and-remap approach: since the target is cleared first,
// identity mapping yields the same graph and makes reruns reproducible.
type Neo4jTarget struct {
	driver neo4j.DriverWithContext
}

// NewNeo4jTarget creates a new Neo4jTarget
func NewNeo4jTarget(driver neo4j.DriverWithContext) *Neo4jTarget {
	return &Neo4jTarget{driver: driver}
}

// Clear removes every node and relationship from the target.
func (t *Neo4jTarget) Clear(ctx context.Context) error {
	session := t.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	_, err := session.Run(ctx, `MATCH (n) DETACH DELETE n`, nil)
	return err
}

// EnsureConstraints declares the uniqueness constraints before any data
// lands, so duplicate source records fail the migration instead of
// silently merging.
func (t *Neo4jTarget) EnsureConstraints(ctx context.Context) error {
	session := t.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	constraints := []string{
		`CREATE CONSTRAINT student_id_unique IF NOT EXISTS FOR (s:Student) REQUIRE s.id IS UNIQUE`,
		`CREATE CONSTRAINT student_email_unique IF NOT EXISTS FOR (s:Student) REQUIRE s.email IS UNIQUE`,
		`CREATE CONSTRAINT faculty_id_unique IF NOT EXISTS FOR (f:Faculty) REQUIRE f.id IS UNIQUE`,
		`CREATE CONSTRAINT faculty_email_unique IF NOT EXISTS FOR (f:Faculty) REQUIRE f.email IS UNIQUE`,
		`CREATE CONSTRAINT course_id_unique IF NOT EXISTS FOR (c:Course) REQUIRE c.id IS UNIQUE`,
		`CREATE CONSTRAINT course_code_unique IF NOT EXISTS FOR (c:Course) REQUIRE c.code IS UNIQUE`,
	}

	for _, stmt := range constraints {
		if _, err := session.Run(ctx, stmt, nil); err != nil {
			return err
		}
	}
	return nil
}

// CreateStudents creates one Student node per source record.
func (t *Neo4jTarget) CreateStudents(ctx context.Context, students []SourceStudent) error {
	session := t.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	for _, s := range students {
		_, err := session.Run(ctx, `
			CREATE (s:Student {
				id: $id,
				name: $name,
				email: $email,
				phone: $phone,
				createdAt: datetime($createdAt),
				updatedAt: datetime($updatedAt)
			})
		`, map[string]any{
			"id":        s.ID,
			"name":      s.Name,
			"email":     s.Email,
			"phone":     s.Phone,
			"createdAt": s.CreatedAt.UTC().Format(time.RFC3339),
			"updatedAt": s.UpdatedAt.UTC().Format(time.RFC3339),
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// CreateFaculty creates one Faculty node per source record.
func (t *Neo4jTarget) CreateFaculty(ctx context.Context, faculty []SourceFaculty) error {
	session := t.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	for _, f := range faculty {
		_, err := session.Run(ctx, `
			CREATE (f:Faculty {
				id: $id,
				name: $name,
				email: $email,
				department: $department,
				createdAt: datetime($createdAt),
				updatedAt: datetime($updatedAt)
			})
		`, map[string]any{
			"id":         f.ID,
			"name":       f.Name,
			"email":      f.Email,
			"department": f.Department,
			"createdAt":  f.CreatedAt.UTC().Format(time.RFC3339),
			"updatedAt":  f.UpdatedAt.UTC().Format(time.RFC3339),
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// CreateCourses creates one Course node per source record.
func (t *Neo4jTarget) CreateCourses(ctx context.Context, courses []SourceCourse) error {
	session := t.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	for _, c := range courses {
		_, err := session.Run(ctx, `
			CREATE (c:Course {
				id: $id,
				name: $name,
				code: $code,
				credits: $credits,
				createdAt: datetime($createdAt),
				updatedAt: datetime($updatedAt)
			})
		`, map[string]any{
			"id":        c.ID,
			"name":      c.Name,
			"code":      c.Code,
			"credits":   c.Credits,
			"createdAt": c.CreatedAt.UTC().Format(time.RFC3339),
			"updatedAt": c.UpdatedAt.UTC().Format(time.RFC3339),
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// CreateRelationships derives ENROLLED_IN edges from the students'
// enrollment arrays and TEACHES edges from the courses' faculty
// references. MATCH + MERGE means a dangling reference simply creates no
// edge, and a reference recorded on both sides creates only one.
func (t *Neo4jTarget) CreateRelationships(ctx context.Context, students []SourceStudent, courses []SourceCourse) (int64, int64, error) {
	session := t.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	var enrollments int64
	for _, s := range students {
		for _, courseID := range s.EnrolledCourses {
			result, err := session.Run(ctx, `
				MATCH (s:Student {id: $studentId})
				MATCH (c:Course {id: $courseId})
				MERGE (s)-[r:ENROLLED_IN]->(c)
				RETURN count(r) AS created
			`, map[string]any{"studentId": s.ID, "courseId": courseID})
			if err != nil {
				return enrollments, 0, err
			}
			if result.Next(ctx) {
				if created, ok := result.Record().Get("created"); ok {
					if n, ok := created.(int64); ok && n > 0 {
						enrollments++
						continue
					}
				}
			}
			logger.Warn().Str("studentID", s.ID).Str("courseID", courseID).Msg("Skipping dangling enrollment reference")
		}
	}

	var teachings int64
	for _, c := range courses {
		if c.FacultyID == "" {
			continue
		}
		result, err := session.Run(ctx, `
			MATCH (f:Faculty {id: $facultyId})
			MATCH (c:Course {id: $courseId})
			MERGE (f)-[r:TEACHES]->(c)
			RETURN count(r) AS created
		`, map[string]any{"facultyId": c.FacultyID, "courseId": c.ID})
		if err != nil {
			return enrollments, teachings, err
		}
		if result.Next(ctx) {
			if created, ok := result.Record().Get("created"); ok {
				if n, ok := created.(int64); ok && n > 0 {
					teachings++
					continue
				}
			}
		}
		logger.Warn().Str("facultyID", c.FacultyID).Str("courseID", c.ID).Msg("Skipping dangling teaching reference")
	}

	return enrollments, teachings, nil
}

// Counts reports what the target holds after migration.
func (t *Neo4jTarget) Counts(ctx context.Context) (Counts, error) {
	var counts Counts
	queries := []struct {
		query string
		dest  *int64
	}{
		{`MATCH (s:Student) RETURN count(s) AS n`, &counts.Students},
		{`MATCH (f:Faculty) RETURN count(f) AS n`, &counts.Faculty},
		{`MATCH (c:Course) RETURN count(c) AS n`, &counts.Courses},
		{`MATCH ()-[r:ENROLLED_IN]->() RETURN count(r) AS n`, &counts.Enrollments},
		{`MATCH ()-[r:TEACHES]->() RETURN count(r) AS n`, &counts.Teachings},
	}

	session := t.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	for _, q := range queries {
		result, err := session.Run(ctx, q.query, nil)
		if err != nil {
			return Counts{}, err
		}
		if result.Next(ctx) {
			if v, ok := result.Record().Get("n"); ok {
				*q.dest, _ = v.(int64)
			}
		}
		if err := result.Err(); err != nil {
			return Counts{}, err
		}
	}
	return counts, nil
}
