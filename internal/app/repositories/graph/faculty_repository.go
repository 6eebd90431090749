package graph

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/ozank/academix/internal/app/models"
	"github.com/ozank/academix/internal/pkg/apperrors"
	"github.com/ozank/academix/internal/pkg/logger"
)

// FacultyRepository handles Faculty nodes and their TEACHES edges.
type FacultyRepository struct {
	driver neo4j.DriverWithContext
}

// NewFacultyRepository creates a new FacultyRepository
func NewFacultyRepository(driver neo4j.DriverWithContext) *FacultyRepository {
	return &FacultyRepository{driver: driver}
}

func facultyFromNode(node neo4j.Node, assigned []models.CourseSummary) *models.Faculty {
	props := node.Props
	return &models.Faculty{
		ID:              stringProp(props, "id"),
		Name:            stringProp(props, "name"),
		Email:           stringProp(props, "email"),
		Department:      stringProp(props, "department"),
		AssignedCourses: assigned,
		CreatedAt:       timeProp(props, "createdAt"),
		UpdatedAt:       timeProp(props, "updatedAt"),
	}
}

// GetAll retrieves all faculty members, most-recently-created first, with
// assigned course summaries collected over TEACHES edges.
func (r *FacultyRepository) GetAll(ctx context.Context) ([]*models.Faculty, error) {
	session := r.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	result, err := session.Run(ctx, `
		MATCH (f:Faculty)
		OPTIONAL MATCH (f)-[:TEACHES]->(c:Course)
		RETURN f, collect(DISTINCT {id: c.id, name: c.name, code: c.code}) AS assignedCourses
		ORDER BY f.createdAt DESC
	`, nil)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying faculty")
		return nil, apperrors.NewStoreError(err, "error querying faculty")
	}

	var faculty []*models.Faculty
	for result.Next(ctx) {
		record := result.Record()
		node, ok := record.Get("f")
		if !ok {
			continue
		}
		courses, _ := record.Get("assignedCourses")
		faculty = append(faculty, facultyFromNode(node.(neo4j.Node), courseSummaries(courses)))
	}
	if err := result.Err(); err != nil {
		return nil, apperrors.NewStoreError(err, "error iterating faculty")
	}

	if faculty == nil {
		faculty = []*models.Faculty{}
	}
	return faculty, nil
}

// GetByID retrieves a single faculty member with assigned course summaries.
func (r *FacultyRepository) GetByID(ctx context.Context, id string) (*models.Faculty, error) {
	session := r.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	result, err := session.Run(ctx, `
		MATCH (f:Faculty {id: $id})
		OPTIONAL MATCH (f)-[:TEACHES]->(c:Course)
		RETURN f, collect(DISTINCT {id: c.id, name: c.name, code: c.code}) AS assignedCourses
	`, map[string]any{"id": id})
	if err != nil {
		logger.Error().Err(err).Str("facultyID", id).Msg("Error fetching faculty")
		return nil, apperrors.NewStoreError(err, "error fetching faculty")
	}

	if result.Next(ctx) {
		record := result.Record()
		node, ok := record.Get("f")
		if !ok {
			return nil, apperrors.ErrFacultyNotFound
		}
		courses, _ := record.Get("assignedCourses")
		return facultyFromNode(node.(neo4j.Node), courseSummaries(courses)), nil
	}
	if err := result.Err(); err != nil {
		return nil, apperrors.NewStoreError(err, "error fetching faculty")
	}

	return nil, apperrors.ErrFacultyNotFound
}

// Create creates a Faculty node; the email uniqueness constraint rejects
// duplicates at the storage layer.
func (r *FacultyRepository) Create(ctx context.Context, faculty *models.Faculty) (*models.Faculty, error) {
	session := r.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	id := uuid.New().String()
	now := time.Now().UTC().Format(time.RFC3339)

	result, err := session.Run(ctx, `
		CREATE (f:Faculty {
			id: $id,
			name: $name,
			email: $email,
			department: $department,
			createdAt: datetime($now),
			updatedAt: datetime($now)
		})
		RETURN f
	`, map[string]any{
		"id":         id,
		"name":       faculty.Name,
		"email":      faculty.Email,
		"department": faculty.Department,
		"now":        now,
	})
	if err != nil {
		if isConstraintError(err) {
			return nil, apperrors.ErrEmailExists
		}
		logger.Error().Err(err).Msg("Error creating faculty node")
		return nil, apperrors.NewStoreError(err, "error creating faculty")
	}

	if result.Next(ctx) {
		node, ok := result.Record().Get("f")
		if ok {
			return facultyFromNode(node.(neo4j.Node), []models.CourseSummary{}), nil
		}
	}
	if err := result.Err(); err != nil {
		if isConstraintError(err) {
			return nil, apperrors.ErrEmailExists
		}
		return nil, apperrors.NewStoreError(err, "error creating faculty")
	}

	return nil, apperrors.NewStoreError(nil, "faculty creation returned no record")
}

// Update applies a partial update; only supplied fields are written.
func (r *FacultyRepository) Update(ctx context.Context, id string, update models.FacultyUpdate) (*models.Faculty, error) {
	session := r.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	setClauses := []string{"f.updatedAt = datetime($now)"}
	params := map[string]any{
		"id":  id,
		"now": time.Now().UTC().Format(time.RFC3339),
	}

	if update.Name != nil {
		setClauses = append(setClauses, "f.name = $name")
		params["name"] = *update.Name
	}
	if update.Email != nil {
		setClauses = append(setClauses, "f.email = $email")
		params["email"] = *update.Email
	}
	if update.Department != nil {
		setClauses = append(setClauses, "f.department = $department")
		params["department"] = *update.Department
	}

	query := "MATCH (f:Faculty {id: $id}) SET " + joinClauses(setClauses) + " RETURN f"
	result, err := session.Run(ctx, query, params)
	if err != nil {
		if isConstraintError(err) {
			return nil, apperrors.ErrEmailExists
		}
		logger.Error().Err(err).Str("facultyID", id).Msg("Error updating faculty node")
		return nil, apperrors.NewStoreError(err, "error updating faculty")
	}

	if !result.Next(ctx) {
		if err := result.Err(); err != nil {
			if isConstraintError(err) {
				return nil, apperrors.ErrEmailExists
			}
			return nil, apperrors.NewStoreError(err, "error updating faculty")
		}
		return nil, apperrors.ErrFacultyNotFound
	}

	return r.GetByID(ctx, id)
}

// Delete removes the node and detaches all of its relationships atomically.
func (r *FacultyRepository) Delete(ctx context.Context, id string) (bool, error) {
	session := r.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	result, err := session.Run(ctx, `
		MATCH (f:Faculty {id: $id})
		DETACH DELETE f
		RETURN count(f) AS deleted
	`, map[string]any{"id": id})
	if err != nil {
		logger.Error().Err(err).Str("facultyID", id).Msg("Error deleting faculty node")
		return false, apperrors.NewStoreError(err, "error deleting faculty")
	}

	if result.Next(ctx) {
		if deleted, ok := result.Record().Get("deleted"); ok {
			if count, ok := deleted.(int64); ok {
				return count > 0, nil
			}
		}
	}
	if err := result.Err(); err != nil {
		return false, apperrors.NewStoreError(err, "error deleting faculty")
	}
	return false, nil
}

// Assign creates the TEACHES edge with MERGE (idempotent on the faculty
// side) and removes any TEACHES edge into the course from a different
// faculty member, so the course keeps exactly one teaching reference
// (last assignment wins).
func (r *FacultyRepository) Assign(ctx context.Context, facultyID, courseID string) (*models.Faculty, error) {
	session := r.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	result, err := session.Run(ctx, `
		MATCH (f:Faculty {id: $facultyId})
		MATCH (c:Course {id: $courseId})
		OPTIONAL MATCH (prev:Faculty)-[old:TEACHES]->(c)
		WHERE prev.id <> $facultyId
		DELETE old
		MERGE (f)-[r:TEACHES]->(c)
		ON CREATE SET r.assignedAt = datetime($now)
		RETURN f.id AS id
	`, map[string]any{
		"facultyId": facultyID,
		"courseId":  courseID,
		"now":       time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		logger.Error().Err(err).Str("facultyID", facultyID).Str("courseID", courseID).Msg("Error assigning faculty")
		return nil, apperrors.NewStoreError(err, "error assigning faculty")
	}

	if !result.Next(ctx) {
		if err := result.Err(); err != nil {
			return nil, apperrors.NewStoreError(err, "error assigning faculty")
		}
		return nil, apperrors.ErrFacultyOrCourseNotFound
	}

	return r.GetByID(ctx, facultyID)
}

// EmailExists reports whether a faculty member other than excludeID uses
// the email.
func (r *FacultyRepository) EmailExists(ctx context.Context, email, excludeID string) (bool, error) {
	session := r.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	query := `MATCH (f:Faculty {email: $email}) RETURN count(f) AS count`
	params := map[string]any{"email": email}
	if excludeID != "" {
		query = `MATCH (f:Faculty {email: $email}) WHERE f.id <> $excludeId RETURN count(f) AS count`
		params["excludeId"] = excludeID
	}

	result, err := session.Run(ctx, query, params)
	if err != nil {
		return false, apperrors.NewStoreError(err, "error checking faculty email")
	}

	if result.Next(ctx) {
		if count, ok := result.Record().Get("count"); ok {
			if n, ok := count.(int64); ok {
				return n > 0, nil
			}
		}
	}
	if err := result.Err(); err != nil {
		return false, apperrors.NewStoreError(err, "error checking faculty email")
	}
	return false, nil
}
