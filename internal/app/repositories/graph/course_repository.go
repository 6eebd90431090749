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

// CourseRepository handles Course nodes; the teaching faculty and the
// enrolled students are read off incoming TEACHES / ENROLLED_IN edges.
type CourseRepository struct {
	driver neo4j.DriverWithContext
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(driver neo4j.DriverWithContext) *CourseRepository {
	return &CourseRepository{driver: driver}
}

func courseFromNode(node neo4j.Node, teaching *models.FacultySummary, enrolled []models.StudentSummary) *models.Course {
	props := node.Props
	return &models.Course{
		ID:               stringProp(props, "id"),
		Name:             stringProp(props, "name"),
		Code:             stringProp(props, "code"),
		Credits:          intProp(props, "credits"),
		Faculty:          teaching,
		EnrolledStudents: enrolled,
		CreatedAt:        timeProp(props, "createdAt"),
		UpdatedAt:        timeProp(props, "updatedAt"),
	}
}

// GetAll retrieves all courses, most-recently-created first. The teaching
// faculty comes off the single incoming TEACHES edge and the enrolled
// students off the incoming ENROLLED_IN edges.
func (r *CourseRepository) GetAll(ctx context.Context) ([]*models.Course, error) {
	session := r.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	result, err := session.Run(ctx, `
		MATCH (c:Course)
		OPTIONAL MATCH (f:Faculty)-[:TEACHES]->(c)
		OPTIONAL MATCH (s:Student)-[:ENROLLED_IN]->(c)
		RETURN c,
			head(collect(DISTINCT {id: f.id, name: f.name, email: f.email, department: f.department})) AS faculty,
			collect(DISTINCT {id: s.id, name: s.name, email: s.email}) AS enrolledStudents
		ORDER BY c.createdAt DESC
	`, nil)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying courses")
		return nil, apperrors.NewStoreError(err, "error querying courses")
	}

	var courses []*models.Course
	for result.Next(ctx) {
		record := result.Record()
		node, ok := record.Get("c")
		if !ok {
			continue
		}
		teaching, _ := record.Get("faculty")
		students, _ := record.Get("enrolledStudents")
		courses = append(courses, courseFromNode(node.(neo4j.Node), facultySummary(teaching), studentSummaries(students)))
	}
	if err := result.Err(); err != nil {
		return nil, apperrors.NewStoreError(err, "error iterating courses")
	}

	if courses == nil {
		courses = []*models.Course{}
	}
	return courses, nil
}

// GetByID retrieves a single course with its teaching faculty and enrolled
// student summaries.
func (r *CourseRepository) GetByID(ctx context.Context, id string) (*models.Course, error) {
	session := r.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	result, err := session.Run(ctx, `
		MATCH (c:Course {id: $id})
		OPTIONAL MATCH (f:Faculty)-[:TEACHES]->(c)
		OPTIONAL MATCH (s:Student)-[:ENROLLED_IN]->(c)
		RETURN c,
			head(collect(DISTINCT {id: f.id, name: f.name, email: f.email, department: f.department})) AS faculty,
			collect(DISTINCT {id: s.id, name: s.name, email: s.email}) AS enrolledStudents
	`, map[string]any{"id": id})
	if err != nil {
		logger.Error().Err(err).Str("courseID", id).Msg("Error fetching course")
		return nil, apperrors.NewStoreError(err, "error fetching course")
	}

	if result.Next(ctx) {
		record := result.Record()
		node, ok := record.Get("c")
		if !ok {
			return nil, apperrors.ErrCourseNotFound
		}
		teaching, _ := record.Get("faculty")
		students, _ := record.Get("enrolledStudents")
		return courseFromNode(node.(neo4j.Node), facultySummary(teaching), studentSummaries(students)), nil
	}
	if err := result.Err(); err != nil {
		return nil, apperrors.NewStoreError(err, "error fetching course")
	}

	return nil, apperrors.ErrCourseNotFound
}

// Create creates a Course node; the code uniqueness constraint rejects
// duplicates at the storage layer.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) (*models.Course, error) {
	session := r.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	id := uuid.New().String()
	now := time.Now().UTC().Format(time.RFC3339)

	result, err := session.Run(ctx, `
		CREATE (c:Course {
			id: $id,
			name: $name,
			code: $code,
			credits: $credits,
			createdAt: datetime($now),
			updatedAt: datetime($now)
		})
		RETURN c
	`, map[string]any{
		"id":      id,
		"name":    course.Name,
		"code":    course.Code,
		"credits": course.Credits,
		"now":     now,
	})
	if err != nil {
		if isConstraintError(err) {
			return nil, apperrors.ErrCourseCodeExists
		}
		logger.Error().Err(err).Msg("Error creating course node")
		return nil, apperrors.NewStoreError(err, "error creating course")
	}

	if result.Next(ctx) {
		node, ok := result.Record().Get("c")
		if ok {
			return courseFromNode(node.(neo4j.Node), nil, []models.StudentSummary{}), nil
		}
	}
	if err := result.Err(); err != nil {
		if isConstraintError(err) {
			return nil, apperrors.ErrCourseCodeExists
		}
		return nil, apperrors.NewStoreError(err, "error creating course")
	}

	return nil, apperrors.NewStoreError(nil, "course creation returned no record")
}

// Update applies a partial update; only supplied fields are written.
func (r *CourseRepository) Update(ctx context.Context, id string, update models.CourseUpdate) (*models.Course, error) {
	session := r.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	setClauses := []string{"c.updatedAt = datetime($now)"}
	params := map[string]any{
		"id":  id,
		"now": time.Now().UTC().Format(time.RFC3339),
	}

	if update.Name != nil {
		setClauses = append(setClauses, "c.name = $name")
		params["name"] = *update.Name
	}
	if update.Code != nil {
		setClauses = append(setClauses, "c.code = $code")
		params["code"] = *update.Code
	}
	if update.Credits != nil {
		setClauses = append(setClauses, "c.credits = $credits")
		params["credits"] = *update.Credits
	}

	query := "MATCH (c:Course {id: $id}) SET " + joinClauses(setClauses) + " RETURN c"
	result, err := session.Run(ctx, query, params)
	if err != nil {
		if isConstraintError(err) {
			return nil, apperrors.ErrCourseCodeExists
		}
		logger.Error().Err(err).Str("courseID", id).Msg("Error updating course node")
		return nil, apperrors.NewStoreError(err, "error updating course")
	}

	if !result.Next(ctx) {
		if err := result.Err(); err != nil {
			if isConstraintError(err) {
				return nil, apperrors.ErrCourseCodeExists
			}
			return nil, apperrors.NewStoreError(err, "error updating course")
		}
		return nil, apperrors.ErrCourseNotFound
	}

	return r.GetByID(ctx, id)
}

// Delete removes the node and detaches all of its relationships atomically.
func (r *CourseRepository) Delete(ctx context.Context, id string) (bool, error) {
	session := r.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	result, err := session.Run(ctx, `
		MATCH (c:Course {id: $id})
		DETACH DELETE c
		RETURN count(c) AS deleted
	`, map[string]any{"id": id})
	if err != nil {
		logger.Error().Err(err).Str("courseID", id).Msg("Error deleting course node")
		return false, apperrors.NewStoreError(err, "error deleting course")
	}

	if result.Next(ctx) {
		if deleted, ok := result.Record().Get("deleted"); ok {
			if count, ok := deleted.(int64); ok {
				return count > 0, nil
			}
		}
	}
	if err := result.Err(); err != nil {
		return false, apperrors.NewStoreError(err, "error deleting course")
	}
	return false, nil
}

// CodeExists reports whether a course other than excludeID uses the code.
func (r *CourseRepository) CodeExists(ctx context.Context, code, excludeID string) (bool, error) {
	session := r.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	query := `MATCH (c:Course {code: $code}) RETURN count(c) AS count`
	params := map[string]any{"code": code}
	if excludeID != "" {
		query = `MATCH (c:Course {code: $code}) WHERE c.id <> $excludeId RETURN count(c) AS count`
		params["excludeId"] = excludeID
	}

	result, err := session.Run(ctx, query, params)
	if err != nil {
		return false, apperrors.NewStoreError(err, "error checking course code")
	}

	if result.Next(ctx) {
		if count, ok := result.Record().Get("count"); ok {
			if n, ok := count.(int64); ok {
				return n > 0, nil
			}
		}
	}
	if err := result.Err(); err != nil {
		return false, apperrors.NewStoreError(err, "error checking course code")
	}
	return false, nil
}
