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

// StudentRepository handles Student nodes and their ENROLLED_IN edges.
type StudentRepository struct {
	driver neo4j.DriverWithContext
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(driver neo4j.DriverWithContext) *StudentRepository {
	return &StudentRepository{driver: driver}
}

func studentFromNode(node neo4j.Node, enrolled []models.CourseSummary) *models.Student {
	props := node.Props
	return &models.Student{
		ID:              stringProp(props, "id"),
		Name:            stringProp(props, "name"),
		Email:           stringProp(props, "email"),
		Phone:           stringProp(props, "phone"),
		EnrolledCourses: enrolled,
		CreatedAt:       timeProp(props, "createdAt"),
		UpdatedAt:       timeProp(props, "updatedAt"),
	}
}

// GetAll retrieves all students, most-recently-created first, with their
// enrolled course summaries collected over ENROLLED_IN edges.
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	session := r.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	result, err := session.Run(ctx, `
		MATCH (s:Student)
		OPTIONAL MATCH (s)-[:ENROLLED_IN]->(c:Course)
		RETURN s, collect(DISTINCT {id: c.id, name: c.name, code: c.code}) AS enrolledCourses
		ORDER BY s.createdAt DESC
	`, nil)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying students")
		return nil, apperrors.NewStoreError(err, "error querying students")
	}

	var students []*models.Student
	for result.Next(ctx) {
		record := result.Record()
		node, ok := record.Get("s")
		if !ok {
			continue
		}
		courses, _ := record.Get("enrolledCourses")
		students = append(students, studentFromNode(node.(neo4j.Node), courseSummaries(courses)))
	}
	if err := result.Err(); err != nil {
		return nil, apperrors.NewStoreError(err, "error iterating students")
	}

	if students == nil {
		students = []*models.Student{}
	}
	return students, nil
}

// GetByID retrieves a single student with enrolled course summaries.
func (r *StudentRepository) GetByID(ctx context.Context, id string) (*models.Student, error) {
	session := r.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	result, err := session.Run(ctx, `
		MATCH (s:Student {id: $id})
		OPTIONAL MATCH (s)-[:ENROLLED_IN]->(c:Course)
		RETURN s, collect(DISTINCT {id: c.id, name: c.name, code: c.code}) AS enrolledCourses
	`, map[string]any{"id": id})
	if err != nil {
		logger.Error().Err(err).Str("studentID", id).Msg("Error fetching student")
		return nil, apperrors.NewStoreError(err, "error fetching student")
	}

	if result.Next(ctx) {
		record := result.Record()
		node, ok := record.Get("s")
		if !ok {
			return nil, apperrors.ErrStudentNotFound
		}
		courses, _ := record.Get("enrolledCourses")
		return studentFromNode(node.(neo4j.Node), courseSummaries(courses)), nil
	}
	if err := result.Err(); err != nil {
		return nil, apperrors.NewStoreError(err, "error fetching student")
	}

	return nil, apperrors.ErrStudentNotFound
}

// Create creates a Student node. The email uniqueness constraint rejects
// duplicates at the storage layer, so the check-then-write race of the
// document variant does not exist here.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) (*models.Student, error) {
	session := r.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	id := uuid.New().String()
	now := time.Now().UTC().Format(time.RFC3339)

	result, err := session.Run(ctx, `
		CREATE (s:Student {
			id: $id,
			name: $name,
			email: $email,
			phone: $phone,
			createdAt: datetime($now),
			updatedAt: datetime($now)
		})
		RETURN s
	`, map[string]any{
		"id":    id,
		"name":  student.Name,
		"email": student.Email,
		"phone": student.Phone,
		"now":   now,
	})
	if err != nil {
		if isConstraintError(err) {
			return nil, apperrors.ErrEmailExists
		}
		logger.Error().Err(err).Msg("Error creating student node")
		return nil, apperrors.NewStoreError(err, "error creating student")
	}

	if result.Next(ctx) {
		node, ok := result.Record().Get("s")
		if ok {
			return studentFromNode(node.(neo4j.Node), []models.CourseSummary{}), nil
		}
	}
	if err := result.Err(); err != nil {
		if isConstraintError(err) {
			return nil, apperrors.ErrEmailExists
		}
		return nil, apperrors.NewStoreError(err, "error creating student")
	}

	return nil, apperrors.NewStoreError(nil, "student creation returned no record")
}

// Update applies a partial update; only supplied fields are written.
func (r *StudentRepository) Update(ctx context.Context, id string, update models.StudentUpdate) (*models.Student, error) {
	session := r.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	setClauses := []string{"s.updatedAt = datetime($now)"}
	params := map[string]any{
		"id":  id,
		"now": time.Now().UTC().Format(time.RFC3339),
	}

	if update.Name != nil {
		setClauses = append(setClauses, "s.name = $name")
		params["name"] = *update.Name
	}
	if update.Email != nil {
		setClauses = append(setClauses, "s.email = $email")
		params["email"] = *update.Email
	}
	if update.Phone != nil {
		setClauses = append(setClauses, "s.phone = $phone")
		params["phone"] = *update.Phone
	}

	query := "MATCH (s:Student {id: $id}) SET " + joinClauses(setClauses) + " RETURN s"
	result, err := session.Run(ctx, query, params)
	if err != nil {
		if isConstraintError(err) {
			return nil, apperrors.ErrEmailExists
		}
		logger.Error().Err(err).Str("studentID", id).Msg("Error updating student node")
		return nil, apperrors.NewStoreError(err, "error updating student")
	}

	if !result.Next(ctx) {
		if err := result.Err(); err != nil {
			if isConstraintError(err) {
				return nil, apperrors.ErrEmailExists
			}
			return nil, apperrors.NewStoreError(err, "error updating student")
		}
		return nil, apperrors.ErrStudentNotFound
	}

	return r.GetByID(ctx, id)
}

// Delete removes the node and detaches all of its relationships in one
// atomic operation; no dangling references remain in this variant.
func (r *StudentRepository) Delete(ctx context.Context, id string) (bool, error) {
	session := r.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	result, err := session.Run(ctx, `
		MATCH (s:Student {id: $id})
		DETACH DELETE s
		RETURN count(s) AS deleted
	`, map[string]any{"id": id})
	if err != nil {
		logger.Error().Err(err).Str("studentID", id).Msg("Error deleting student node")
		return false, apperrors.NewStoreError(err, "error deleting student")
	}

	if result.Next(ctx) {
		if deleted, ok := result.Record().Get("deleted"); ok {
			if count, ok := deleted.(int64); ok {
				return count > 0, nil
			}
		}
	}
	if err := result.Err(); err != nil {
		return false, apperrors.NewStoreError(err, "error deleting student")
	}
	return false, nil
}

// Enroll creates the ENROLLED_IN edge with MERGE: a single conditional
// write that is idempotent and atomic with respect to both endpoints.
func (r *StudentRepository) Enroll(ctx context.Context, studentID, courseID string) (*models.Student, error) {
	session := r.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	result, err := session.Run(ctx, `
		MATCH (s:Student {id: $studentId})
		MATCH (c:Course {id: $courseId})
		MERGE (s)-[r:ENROLLED_IN]->(c)
		ON CREATE SET r.enrolledAt = datetime($now)
		RETURN s.id AS id
	`, map[string]any{
		"studentId": studentID,
		"courseId":  courseID,
		"now":       time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		logger.Error().Err(err).Str("studentID", studentID).Str("courseID", courseID).Msg("Error enrolling student")
		return nil, apperrors.NewStoreError(err, "error enrolling student")
	}

	if !result.Next(ctx) {
		if err := result.Err(); err != nil {
			return nil, apperrors.NewStoreError(err, "error enrolling student")
		}
		return nil, apperrors.ErrStudentOrCourseNotFound
	}

	return r.GetByID(ctx, studentID)
}

// EmailExists reports whether a student other than excludeID uses the email.
func (r *StudentRepository) EmailExists(ctx context.Context, email, excludeID string) (bool, error) {
	session := r.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	query := `MATCH (s:Student {email: $email}) RETURN count(s) AS count`
	params := map[string]any{"email": email}
	if excludeID != "" {
		query = `MATCH (s:Student {email: $email}) WHERE s.id <> $excludeId RETURN count(s) AS count`
		params["excludeId"] = excludeID
	}

	result, err := session.Run(ctx, query, params)
	if err != nil {
		return false, apperrors.NewStoreError(err, "error checking student email")
	}

	if result.Next(ctx) {
		if count, ok := result.Record().Get("count"); ok {
			if n, ok := count.(int64); ok {
				return n > 0, nil
			}
		}
	}
	if err := result.Err(); err != nil {
		return false, apperrors.NewStoreError(err, "error checking student email")
	}
	return false, nil
}
