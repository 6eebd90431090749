package migrate

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoSource reads the document store's raw records, reference-id arrays
// included, without going through the repository layer: the migration
// needs the stored ids, not populated summaries.
type MongoSource struct {
	db *mongo.Database
}

// NewMongoSource creates a new MongoSource
func NewMongoSource(db *mongo.Database) *MongoSource {
	return &MongoSource{db: db}
}

type sourceStudentDoc struct {
	ID              primitive.ObjectID   `bson:"_id"`
	Name            string               `bson:"name"`
	Email           string               `bson:"email"`
	Phone           string               `bson:"phone,omitempty"`
	EnrolledCourses []primitive.ObjectID `bson:"enrolledCourses"`
	CreatedAt       time.Time            `bson:"createdAt"`
	UpdatedAt       time.Time            `bson:"updatedAt"`
}

type sourceFacultyDoc struct {
	ID              primitive.ObjectID   `bson:"_id"`
	Name            string               `bson:"name"`
	Email           string               `bson:"email"`
	Department      string               `bson:"department"`
	AssignedCourses []primitive.ObjectID `bson:"assignedCourses"`
	CreatedAt       time.Time            `bson:"createdAt"`
	UpdatedAt       time.Time            `bson:"updatedAt"`
}

type sourceCourseDoc struct {
	ID               primitive.ObjectID   `bson:"_id"`
	Name             string               `bson:"name"`
	Code             string               `bson:"code"`
	Credits          int                  `bson:"credits"`
	FacultyID        *primitive.ObjectID  `bson:"facultyId,omitempty"`
	EnrolledStudents []primitive.ObjectID `bson:"enrolledStudents"`
	CreatedAt        time.Time            `bson:"createdAt"`
	UpdatedAt        time.Time            `bson:"updatedAt"`
}

func hexIDs(ids []primitive.ObjectID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.Hex())
	}
	return out
}

// Students reads all student documents.
func (s *MongoSource) Students(ctx context.Context) ([]SourceStudent, error) {
	cursor, err := s.db.Collection("students").Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []sourceStudentDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	students := make([]SourceStudent, 0, len(docs))
	for _, doc := range docs {
		students = append(students, SourceStudent{
			ID:              doc.ID.Hex(),
			Name:            doc.Name,
			Email:           doc.Email,
			Phone:           doc.Phone,
			EnrolledCourses: hexIDs(doc.EnrolledCourses),
			CreatedAt:       doc.CreatedAt,
			UpdatedAt:       doc.UpdatedAt,
		})
	}
	return students, nil
}

// Faculty reads all faculty documents.
func (s *MongoSource) Faculty(ctx context.Context) ([]SourceFaculty, error) {
	cursor, err := s.db.Collection("faculty").Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []sourceFacultyDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	faculty := make([]SourceFaculty, 0, len(docs))
	for _, doc := range docs {
		faculty = append(faculty, SourceFaculty{
			ID:              doc.ID.Hex(),
			Name:            doc.Name,
			Email:           doc.Email,
			Department:      doc.Department,
			AssignedCourses: hexIDs(doc.AssignedCourses),
			CreatedAt:       doc.CreatedAt,
			UpdatedAt:       doc.UpdatedAt,
		})
	}
	return faculty, nil
}

// Courses reads all course documents.
func (s *MongoSource) Courses(ctx context.Context) ([]SourceCourse, error) {
	cursor, err := s.db.Collection("courses").Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []sourceCourseDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	courses := make([]SourceCourse, 0, len(docs))
	for _, doc := range docs {
		course := SourceCourse{
			ID:               doc.ID.Hex(),
			Name:             doc.Name,
			Code:             doc.Code,
			Credits:          doc.Credits,
			EnrolledStudents: hexIDs(doc.EnrolledStudents),
			CreatedAt:        doc.CreatedAt,
			UpdatedAt:        doc.UpdatedAt,
		}
		if doc.FacultyID != nil {
			course.FacultyID = doc.FacultyID.Hex()
		}
		courses = append(courses, course)
	}
	return courses, nil
}
