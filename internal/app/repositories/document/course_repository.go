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

// CourseRepository handles course documents: the single teaching-faculty
// reference and the enrolled-student reference array.
type CourseRepository struct {
	courses  *mongo.Collection
	students *mongo.Collection
	faculty  *mongo.Collection
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *mongo.Database) *CourseRepository {
	return &CourseRepository{
		courses:  db.Collection(courseCollection),
		students: db.Collection(studentCollection),
		faculty:  db.Collection(facultyCollection),
	}
}

type courseDoc struct {
	ID               primitive.ObjectID   `bson:"_id,omitempty"`
	Name             string               `bson:"name"`
	Code             string               `bson:"code"`
	Credits          int                  `bson:"credits"`
	FacultyID        *primitive.ObjectID  `bson:"facultyId,omitempty"`
	EnrolledStudents []primitive.ObjectID `bson:"enrolledStudents"`
	CreatedAt        time.Time            `bson:"createdAt"`
	UpdatedAt        time.Time            `bson:"updatedAt"`
}

func (d *courseDoc) toModel(students map[primitive.ObjectID]models.StudentSummary, faculty map[primitive.ObjectID]models.FacultySummary) *models.Course {
	enrolled := make([]models.StudentSummary, 0, len(d.EnrolledStudents))
	for _, sid := range d.EnrolledStudents {
		if summary, ok := students[sid]; ok {
			enrolled = append(enrolled, summary)
		}
	}

	var teaching *models.FacultySummary
	if d.FacultyID != nil {
		if summary, ok := faculty[*d.FacultyID]; ok {
			teaching = &summary
		}
	}

	return &models.Course{
		ID:               d.ID.Hex(),
		Name:             d.Name,
		Code:             d.Code,
		Credits:          d.Credits,
		Faculty:          teaching,
		EnrolledStudents: enrolled,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}

// GetAll retrieves all courses, most-recently-created first, with the
// teaching faculty and enrolled student summaries populated.
func (r *CourseRepository) GetAll(ctx context.Context) ([]*models.Course, error) {
	cursor, err := r.courses.Find(ctx, bson.M{}, sortByCreatedDesc())
	if err != nil {
		logger.Error().Err(err).Msg("Error querying courses")
		return nil, apperrors.NewStoreError(err, "error querying courses")
	}
	defer cursor.Close(ctx)

	var docs []courseDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, apperrors.NewStoreError(err, "error decoding courses")
	}

	studentIDs := make([]primitive.ObjectID, 0)
	facultyIDs := make([]primitive.ObjectID, 0)
	for _, doc := range docs {
		studentIDs = append(studentIDs, doc.EnrolledStudents...)
		if doc.FacultyID != nil {
			facultyIDs = append(facultyIDs, *doc.FacultyID)
		}
	}

	studentSummaries, err := fetchStudentSummaries(ctx, r.students, studentIDs)
	if err != nil {
		return nil, apperrors.NewStoreError(err, "error populating enrolled students")
	}
	facultySummaries, err := fetchFacultySummaries(ctx, r.faculty, facultyIDs)
	if err != nil {
		return nil, apperrors.NewStoreError(err, "error populating course faculty")
	}

	courses := make([]*models.Course, 0, len(docs))
	for i := range docs {
		courses = append(courses, docs[i].toModel(studentSummaries, facultySummaries))
	}
	return courses, nil
}

// GetByID retrieves a single course with related summaries populated.
func (r *CourseRepository) GetByID(ctx context.Context, id string) (*models.Course, error) {
	oid, ok := parseObjectID(id)
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}

	var doc courseDoc
	err := r.courses.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Str("courseID", id).Msg("Error fetching course")
		return nil, apperrors.NewStoreError(err, "error fetching course")
	}

	studentSummaries, err := fetchStudentSummaries(ctx, r.students, doc.EnrolledStudents)
	if err != nil {
		return nil, apperrors.NewStoreError(err, "error populating enrolled students")
	}

	facultySummaries := map[primitive.ObjectID]models.FacultySummary{}
	if doc.FacultyID != nil {
		facultySummaries, err = fetchFacultySummaries(ctx, r.faculty, []primitive.ObjectID{*doc.FacultyID})
		if err != nil {
			return nil, apperrors.NewStoreError(err, "error populating course faculty")
		}
	}

	return doc.toModel(studentSummaries, facultySummaries), nil
}

// Create inserts a new course with no faculty and an empty enrollment set.
// A duplicate code is rejected by the unique index.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) (*models.Course, error) {
	now := time.Now().UTC()
	doc := courseDoc{
		ID:               primitive.NewObjectID(),
		Name:             course.Name,
		Code:             course.Code,
		Credits:          course.Credits,
		EnrolledStudents: []primitive.ObjectID{},
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if _, err := r.courses.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperrors.ErrCourseCodeExists
		}
		logger.Error().Err(err).Msg("Error inserting course")
		return nil, apperrors.NewStoreError(err, "error creating course")
	}

	return doc.toModel(nil, nil), nil
}

// Update applies a partial update; only supplied fields are modified.
func (r *CourseRepository) Update(ctx context.Context, id string, update models.CourseUpdate) (*models.Course, error) {
	oid, ok := parseObjectID(id)
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}

	set := bson.M{"updatedAt": time.Now().UTC()}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Code != nil {
		set["code"] = *update.Code
	}
	if update.Credits != nil {
		set["credits"] = *update.Credits
	}

	var doc courseDoc
	err := r.courses.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrCourseNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperrors.ErrCourseCodeExists
		}
		logger.Error().Err(err).Str("courseID", id).Msg("Error updating course")
		return nil, apperrors.NewStoreError(err, "error updating course")
	}

	studentSummaries, err := fetchStudentSummaries(ctx, r.students, doc.EnrolledStudents)
	if err != nil {
		return nil, apperrors.NewStoreError(err, "error populating enrolled students")
	}

	facultySummaries := map[primitive.ObjectID]models.FacultySummary{}
	if doc.FacultyID != nil {
		facultySummaries, err = fetchFacultySummaries(ctx, r.faculty, []primitive.ObjectID{*doc.FacultyID})
		if err != nil {
			return nil, apperrors.NewStoreError(err, "error populating course faculty")
		}
	}

	return doc.toModel(studentSummaries, facultySummaries), nil
}

// Delete removes a course. Student and faculty reference arrays keep any
// ids pointing at it; orphaned references may remain.
func (r *CourseRepository) Delete(ctx context.Context, id string) (bool, error) {
	oid, ok := parseObjectID(id)
	if !ok {
		return false, nil
	}

	result, err := r.courses.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		logger.Error().Err(err).Str("courseID", id).Msg("Error deleting course")
		return false, apperrors.NewStoreError(err, "error deleting course")
	}
	return result.DeletedCount > 0, nil
}

// CodeExists reports whether a course other than excludeID uses the code.
func (r *CourseRepository) CodeExists(ctx context.Context, code, excludeID string) (bool, error) {
	filter := bson.M{"code": code}
	if excludeID != "" {
		if oid, ok := parseObjectID(excludeID); ok {
			filter["_id"] = bson.M{"$ne": oid}
		}
	}

	count, err := r.courses.CountDocuments(ctx, filter)
	if err != nil {
		return false, apperrors.NewStoreError(err, fmt.Sprintf("error checking course code %q", code))
	}
	return count > 0, nil
}
