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

// StudentRepository handles student documents and their enrollment
// reference arrays.
type StudentRepository struct {
	students *mongo.Collection
	courses  *mongo.Collection
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *mongo.Database) *StudentRepository {
	return &StudentRepository{
		students: db.Collection(studentCollection),
		courses:  db.Collection(courseCollection),
	}
}

type studentDoc struct {
	ID              primitive.ObjectID   `bson:"_id,omitempty"`
	Name            string               `bson:"name"`
	Email           string               `bson:"email"`
	Phone           string               `bson:"phone,omitempty"`
	EnrolledCourses []primitive.ObjectID `bson:"enrolledCourses"`
	CreatedAt       time.Time            `bson:"createdAt"`
	UpdatedAt       time.Time            `bson:"updatedAt"`
}

func (d *studentDoc) toModel(courses map[primitive.ObjectID]models.CourseSummary) *models.Student {
	enrolled := make([]models.CourseSummary, 0, len(d.EnrolledCourses))
	for _, cid := range d.EnrolledCourses {
		// Dangling references (deleted courses) are dropped from the view.
		if summary, ok := courses[cid]; ok {
			enrolled = append(enrolled, summary)
		}
	}
	return &models.Student{
		ID:              d.ID.Hex(),
		Name:            d.Name,
		Email:           d.Email,
		Phone:           d.Phone,
		EnrolledCourses: enrolled,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

// GetAll retrieves all students, most-recently-created first, with
// enrolled course summaries populated.
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	cursor, err := r.students.Find(ctx, bson.M{}, sortByCreatedDesc())
	if err != nil {
		logger.Error().Err(err).Msg("Error querying students")
		return nil, apperrors.NewStoreError(err, "error querying students")
	}
	defer cursor.Close(ctx)

	var docs []studentDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, apperrors.NewStoreError(err, "error decoding students")
	}

	courseIDs := make([]primitive.ObjectID, 0)
	for _, doc := range docs {
		courseIDs = append(courseIDs, doc.EnrolledCourses...)
	}

	summaries, err := fetchCourseSummaries(ctx, r.courses, courseIDs)
	if err != nil {
		return nil, apperrors.NewStoreError(err, "error populating enrolled courses")
	}

	students := make([]*models.Student, 0, len(docs))
	for i := range docs {
		students = append(students, docs[i].toModel(summaries))
	}
	return students, nil
}

// GetByID retrieves a single student with enrolled course summaries.
func (r *StudentRepository) GetByID(ctx context.Context, id string) (*models.Student, error) {
	oid, ok := parseObjectID(id)
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}

	var doc studentDoc
	err := r.students.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Str("studentID", id).Msg("Error fetching student")
		return nil, apperrors.NewStoreError(err, "error fetching student")
	}

	summaries, err := fetchCourseSummaries(ctx, r.courses, doc.EnrolledCourses)
	if err != nil {
		return nil, apperrors.NewStoreError(err, "error populating enrolled courses")
	}
	return doc.toModel(summaries), nil
}

// Create inserts a new student with an empty enrollment set. A duplicate
// email is rejected by the unique index even when two creates race past
// the service-level existence check.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) (*models.Student, error) {
	now := time.Now().UTC()
	doc := studentDoc{
		ID:              primitive.NewObjectID(),
		Name:            student.Name,
		Email:           student.Email,
		Phone:           student.Phone,
		EnrolledCourses: []primitive.ObjectID{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if _, err := r.students.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperrors.ErrEmailExists
		}
		logger.Error().Err(err).Msg("Error inserting student")
		return nil, apperrors.NewStoreError(err, "error creating student")
	}

	return doc.toModel(nil), nil
}

// Update applies a partial update; only supplied fields are modified.
func (r *StudentRepository) Update(ctx context.Context, id string, update models.StudentUpdate) (*models.Student, error) {
	oid, ok := parseObjectID(id)
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}

	set := bson.M{"updatedAt": time.Now().UTC()}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Email != nil {
		set["email"] = *update.Email
	}
	if update.Phone != nil {
		set["phone"] = *update.Phone
	}

	var doc studentDoc
	err := r.students.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrStudentNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperrors.ErrEmailExists
		}
		logger.Error().Err(err).Str("studentID", id).Msg("Error updating student")
		return nil, apperrors.NewStoreError(err, "error updating student")
	}

	summaries, err := fetchCourseSummaries(ctx, r.courses, doc.EnrolledCourses)
	if err != nil {
		return nil, apperrors.NewStoreError(err, "error populating enrolled courses")
	}
	return doc.toModel(summaries), nil
}

// Delete removes a student document. Course-side enrolledStudents arrays
// are left untouched: orphaned references may remain, matching the
// inherited behavior of this variant.
func (r *StudentRepository) Delete(ctx context.Context, id string) (bool, error) {
	oid, ok := parseObjectID(id)
	if !ok {
		return false, nil
	}

	result, err := r.students.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		logger.Error().Err(err).Str("studentID", id).Msg("Error deleting student")
		return false, apperrors.NewStoreError(err, "error deleting student")
	}
	return result.DeletedCount > 0, nil
}

// Enroll records the enrollment on both sides with two independent
// $addToSet writes. Both documents are verified to exist before either
// write, so a missing student or course returns not-found without
// persisting a dangling reference. Each side is individually idempotent,
// but the pair is not atomic: a store failure between the writes leaves
// the relationship one-sided, and a concurrent reader may observe that
// state.
func (r *StudentRepository) Enroll(ctx context.Context, studentID, courseID string) (*models.Student, error) {
	sid, ok := parseObjectID(studentID)
	if !ok {
		return nil, apperrors.ErrStudentOrCourseNotFound
	}
	cid, ok := parseObjectID(courseID)
	if !ok {
		return nil, apperrors.ErrStudentOrCourseNotFound
	}

	exists, err := docExists(ctx, r.students, sid)
	if err != nil {
		return nil, apperrors.NewStoreError(err, "error checking student before enrollment")
	}
	if !exists {
		return nil, apperrors.ErrStudentOrCourseNotFound
	}
	exists, err = docExists(ctx, r.courses, cid)
	if err != nil {
		return nil, apperrors.NewStoreError(err, "error checking course before enrollment")
	}
	if !exists {
		return nil, apperrors.ErrStudentOrCourseNotFound
	}

	now := time.Now().UTC()

	result, err := r.students.UpdateOne(ctx,
		bson.M{"_id": sid},
		bson.M{
			"$addToSet": bson.M{"enrolledCourses": cid},
			"$set":      bson.M{"updatedAt": now},
		},
	)
	if err != nil {
		logger.Error().Err(err).Str("studentID", studentID).Str("courseID", courseID).Msg("Error enrolling student")
		return nil, apperrors.NewStoreError(err, "error enrolling student")
	}
	if result.MatchedCount == 0 {
		return nil, apperrors.ErrStudentOrCourseNotFound
	}

	result, err = r.courses.UpdateOne(ctx,
		bson.M{"_id": cid},
		bson.M{
			"$addToSet": bson.M{"enrolledStudents": sid},
			"$set":      bson.M{"updatedAt": now},
		},
	)
	if err != nil {
		logger.Error().Err(err).Str("studentID", studentID).Str("courseID", courseID).Msg("Error recording enrollment on course")
		return nil, apperrors.NewStoreError(err, "error recording enrollment on course")
	}
	if result.MatchedCount == 0 {
		// The course was deleted between the existence check and this
		// write; the student-side entry becomes a dangling reference
		// dropped at read time, like any other post-delete orphan.
		return nil, apperrors.ErrStudentOrCourseNotFound
	}

	return r.GetByID(ctx, studentID)
}

// EmailExists reports whether a student other than excludeID uses the email.
func (r *StudentRepository) EmailExists(ctx context.Context, email, excludeID string) (bool, error) {
	filter := bson.M{"email": email}
	if excludeID != "" {
		if oid, ok := parseObjectID(excludeID); ok {
			filter["_id"] = bson.M{"$ne": oid}
		}
	}

	count, err := r.students.CountDocuments(ctx, filter)
	if err != nil {
		return false, apperrors.NewStoreError(err, fmt.Sprintf("error checking student email %q", email))
	}
	return count > 0, nil
}
