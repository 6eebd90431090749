package document

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ozank/academix/internal/app/models"
	"github.com/ozank/academix/internal/pkg/apperrors"
	"github.com/ozank/academix/internal/pkg/logger"
)

// FacultyRepository handles faculty documents and their assigned-course
// reference arrays.
type FacultyRepository struct {
	faculty *mongo.Collection
	courses *mongo.Collection
}

// NewFacultyRepository creates a new FacultyRepository
func NewFacultyRepository(db *mongo.Database) *FacultyRepository {
	return &FacultyRepository{
		faculty: db.Collection(facultyCollection),
		courses: db.Collection(courseCollection),
	}
}

type facultyDoc struct {
	ID              primitive.ObjectID   `bson:"_id,omitempty"`
	Name            string               `bson:"name"`
	Email           string               `bson:"email"`
	Department      string               `bson:"department"`
	AssignedCourses []primitive.ObjectID `bson:"assignedCourses"`
	CreatedAt       time.Time            `bson:"createdAt"`
	UpdatedAt       time.Time            `bson:"updatedAt"`
}

func (d *facultyDoc) toModel(courses map[primitive.ObjectID]models.CourseSummary) *models.Faculty {
	assigned := make([]models.CourseSummary, 0, len(d.AssignedCourses))
	for _, cid := range d.AssignedCourses {
		if summary, ok := courses[cid]; ok {
			assigned = append(assigned, summary)
		}
	}
	return &models.Faculty{
		ID:              d.ID.Hex(),
		Name:            d.Name,
		Email:           d.Email,
		Department:      d.Department,
		AssignedCourses: assigned,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

// GetAll retrieves all faculty members, most-recently-created first, with
// assigned course summaries populated.
func (r *FacultyRepository) GetAll(ctx context.Context) ([]*models.Faculty, error) {
	cursor, err := r.faculty.Find(ctx, bson.M{}, sortByCreatedDesc())
	if err != nil {
		logger.Error().Err(err).Msg("Error querying faculty")
		return nil, apperrors.NewStoreError(err, "error querying faculty")
	}
	defer cursor.Close(ctx)

	var docs []facultyDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, apperrors.NewStoreError(err, "error decoding faculty")
	}

	courseIDs := make([]primitive.ObjectID, 0)
	for _, doc := range docs {
		courseIDs = append(courseIDs, doc.AssignedCourses...)
	}

	summaries, err := fetchCourseSummaries(ctx, r.courses, courseIDs)
	if err != nil {
		return nil, apperrors.NewStoreError(err, "error populating assigned courses")
	}

	faculty := make([]*models.Faculty, 0, len(docs))
	for i := range docs {
		faculty = append(faculty, docs[i].toModel(summaries))
	}
	return faculty, nil
}

// GetByID retrieves a single faculty member with assigned course summaries.
func (r *FacultyRepository) GetByID(ctx context.Context, id string) (*models.Faculty, error) {
	oid, ok := parseObjectID(id)
	if !ok {
		return nil, apperrors.ErrFacultyNotFound
	}

	var doc facultyDoc
	err := r.faculty.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrFacultyNotFound
		}
		logger.Error().Err(err).Str("facultyID", id).Msg("Error fetching faculty")
		return nil, apperrors.NewStoreError(err, "error fetching faculty")
	}

	summaries, err := fetchCourseSummaries(ctx, r.courses, doc.AssignedCourses)
	if err != nil {
		return nil, apperrors.NewStoreError(err, "error populating assigned courses")
	}
	return doc.toModel(summaries), nil
}

// Create inserts a new faculty member with an empty assignment set.
func (r *FacultyRepository) Create(ctx context.Context, faculty *models.Faculty) (*models.Faculty, error) {
	now := time.Now().UTC()
	doc := facultyDoc{
		ID:              primitive.NewObjectID(),
		Name:            faculty.Name,
		Email:           faculty.Email,
		Department:      faculty.Department,
		AssignedCourses: []primitive.ObjectID{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if _, err := r.faculty.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperrors.ErrEmailExists
		}
		logger.Error().Err(err).Msg("Error inserting faculty")
		return nil, apperrors.NewStoreError(err, "error creating faculty")
	}

	return doc.toModel(nil), nil
}

// Update applies a partial update; only supplied fields are modified.
func (r *FacultyRepository) Update(ctx context.Context, id string, update models.FacultyUpdate) (*models.Faculty, error) {
	oid, ok := parseObjectID(id)
	if !ok {
		return nil, apperrors.ErrFacultyNotFound
	}

	set := bson.M{"updatedAt": time.Now().UTC()}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Email != nil {
		set["email"] = *update.Email
	}
	if update.Department != nil {
		set["department"] = *update.Department
	}

	var doc facultyDoc
	err := r.faculty.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrFacultyNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperrors.ErrEmailExists
		}
		logger.Error().Err(err).Str("facultyID", id).Msg("Error updating faculty")
		return nil, apperrors.NewStoreError(err, "error updating faculty")
	}

	summaries, err := fetchCourseSummaries(ctx, r.courses, doc.AssignedCourses)
	if err != nil {
		return nil, apperrors.NewStoreError(err, "error populating assigned courses")
	}
	return doc.toModel(summaries), nil
}

// Delete removes a faculty member. Courses keep their facultyId reference;
// orphaned references may remain, matching the inherited behavior.
func (r *FacultyRepository) Delete(ctx context.Context, id string) (bool, error) {
	oid, ok := parseObjectID(id)
	if !ok {
		return false, nil
	}

	result, err := r.faculty.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		logger.Error().Err(err).Str("facultyID", id).Msg("Error deleting faculty")
		return false, apperrors.NewStoreError(err, "error deleting faculty")
	}
	return result.DeletedCount > 0, nil
}

// Assign records the assignment with two writes: $addToSet on the faculty
// side (idempotent) and an unconditional $set of the course's single
// facultyId reference (last writer wins). Both documents are verified to
// exist before either write; like Enroll, the pair itself is not atomic.
func (r *FacultyRepository) Assign(ctx context.Context, facultyID, courseID string) (*models.Faculty, error) {
	fid, ok := parseObjectID(facultyID)
	if !ok {
		return nil, apperrors.ErrFacultyOrCourseNotFound
	}
	cid, ok := parseObjectID(courseID)
	if !ok {
		return nil, apperrors.ErrFacultyOrCourseNotFound
	}

	exists, err := docExists(ctx, r.faculty, fid)
	if err != nil {
		return nil, apperrors.NewStoreError(err, "error checking faculty before assignment")
	}
	if !exists {
		return nil, apperrors.ErrFacultyOrCourseNotFound
	}
	exists, err = docExists(ctx, r.courses, cid)
	if err != nil {
		return nil, apperrors.NewStoreError(err, "error checking course before assignment")
	}
	if !exists {
		return nil, apperrors.ErrFacultyOrCourseNotFound
	}

	now := time.Now().UTC()

	result, err := r.faculty.UpdateOne(ctx,
		bson.M{"_id": fid},
		bson.M{
			"$addToSet": bson.M{"assignedCourses": cid},
			"$set":      bson.M{"updatedAt": now},
		},
	)
	if err != nil {
		logger.Error().Err(err).Str("facultyID", facultyID).Str("courseID", courseID).Msg("Error assigning faculty")
		return nil, apperrors.NewStoreError(err, "error assigning faculty")
	}
	if result.MatchedCount == 0 {
		return nil, apperrors.ErrFacultyOrCourseNotFound
	}

	result, err = r.courses.UpdateOne(ctx,
		bson.M{"_id": cid},
		bson.M{"$set": bson.M{"facultyId": fid, "updatedAt": now}},
	)
	if err != nil {
		logger.Error().Err(err).Str("facultyID", facultyID).Str("courseID", courseID).Msg("Error recording assignment on course")
		return nil, apperrors.NewStoreError(err, "error recording assignment on course")
	}
	if result.MatchedCount == 0 {
		return nil, apperrors.ErrFacultyOrCourseNotFound
	}

	return r.GetByID(ctx, facultyID)
}

// EmailExists reports whether a faculty member other than excludeID uses
// the email.
func (r *FacultyRepository) EmailExists(ctx context.Context, email, excludeID string) (bool, error) {
	filter := bson.M{"email": email}
	if excludeID != "" {
		if oid, ok := parseObjectID(excludeID); ok {
			filter["_id"] = bson.M{"$ne": oid}
		}
	}

	count, err := r.faculty.CountDocuments(ctx, filter)
	if err != nil {
		return false, apperrors.NewStoreError(err, fmt.Sprintf("error checking faculty email %q", email))
	}
	return count > 0, nil
}
