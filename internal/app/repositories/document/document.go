// Package document implements the entity store on MongoDB: one collection
// per entity type, relationships held as embedded reference-id arrays on
// both sides. Keeping the two sides consistent takes two independent
// writes; there is no multi-document transaction, so a store failure
// between the writes leaves a one-sided relationship. That gap is
// inherited behavior and documented rather than papered over. Missing
// ids, by contrast, are rejected before any write: both endpoints are
// verified to exist first, so a resolvable-at-request-time 404 never
// persists a dangling reference.
package document

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ozank/academix/internal/app/models"
	"github.com/ozank/academix/internal/app/repositories"
)

// Collection names
const (
	studentCollection = "students"
	facultyCollection = "faculty"
	courseCollection  = "courses"
)

// NewRepositories builds the document-variant entity store on the given
// database handle.
func NewRepositories(db *mongo.Database) *repositories.Repositories {
	return &repositories.Repositories{
		StudentRepository: NewStudentRepository(db),
		FacultyRepository: NewFacultyRepository(db),
		CourseRepository:  NewCourseRepository(db),
	}
}

// parseObjectID converts a hex identifier. The ok result is false for
// identifiers that cannot possibly resolve, which callers treat as
// not-found rather than as a store failure.
func parseObjectID(id string) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return oid, true
}

type courseSummaryDoc struct {
	ID   primitive.ObjectID `bson:"_id"`
	Name string             `bson:"name"`
	Code string             `bson:"code"`
}

type studentSummaryDoc struct {
	ID    primitive.ObjectID `bson:"_id"`
	Name  string             `bson:"name"`
	Email string             `bson:"email"`
}

type facultySummaryDoc struct {
	ID         primitive.ObjectID `bson:"_id"`
	Name       string             `bson:"name"`
	Email      string             `bson:"email"`
	Department string             `bson:"department"`
}

// fetchCourseSummaries resolves course references to name/code summaries.
// References that no longer resolve (deleted courses) are simply absent
// from the result; callers drop them, mirroring how populate() behaves on
// dangling ids.
func fetchCourseSummaries(ctx context.Context, courses *mongo.Collection, ids []primitive.ObjectID) (map[primitive.ObjectID]models.CourseSummary, error) {
	out := make(map[primitive.ObjectID]models.CourseSummary, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	cursor, err := courses.Find(ctx,
		bson.M{"_id": bson.M{"$in": ids}},
		options.Find().SetProjection(bson.M{"name": 1, "code": 1}),
	)
	if err != nil {
		return nil, fmt.Errorf("error fetching course summaries: %w", err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var doc courseSummaryDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("error decoding course summary: %w", err)
		}
		out[doc.ID] = models.CourseSummary{ID: doc.ID.Hex(), Name: doc.Name, Code: doc.Code}
	}

	return out, cursor.Err()
}

// fetchStudentSummaries resolves student references to name/email summaries.
func fetchStudentSummaries(ctx context.Context, students *mongo.Collection, ids []primitive.ObjectID) (map[primitive.ObjectID]models.StudentSummary, error) {
	out := make(map[primitive.ObjectID]models.StudentSummary, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	cursor, err := students.Find(ctx,
		bson.M{"_id": bson.M{"$in": ids}},
		options.Find().SetProjection(bson.M{"name": 1, "email": 1}),
	)
	if err != nil {
		return nil, fmt.Errorf("error fetching student summaries: %w", err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var doc studentSummaryDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("error decoding student summary: %w", err)
		}
		out[doc.ID] = models.StudentSummary{ID: doc.ID.Hex(), Name: doc.Name, Email: doc.Email}
	}

	return out, cursor.Err()
}

// fetchFacultySummaries resolves faculty references to summaries.
func fetchFacultySummaries(ctx context.Context, faculty *mongo.Collection, ids []primitive.ObjectID) (map[primitive.ObjectID]models.FacultySummary, error) {
	out := make(map[primitive.ObjectID]models.FacultySummary, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	cursor, err := faculty.Find(ctx,
		bson.M{"_id": bson.M{"$in": ids}},
		options.Find().SetProjection(bson.M{"name": 1, "email": 1, "department": 1}),
	)
	if err != nil {
		return nil, fmt.Errorf("error fetching faculty summaries: %w", err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var doc facultySummaryDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("error decoding faculty summary: %w", err)
		}
		out[doc.ID] = models.FacultySummary{ID: doc.ID.Hex(), Name: doc.Name, Email: doc.Email, Department: doc.Department}
	}

	return out, cursor.Err()
}

// docExists reports whether a document with the given id exists. Enroll
// and Assign call it for both endpoints before writing anything, so a
// missing id is rejected without persisting a dangling reference.
func docExists(ctx context.Context, coll *mongo.Collection, oid primitive.ObjectID) (bool, error) {
	count, err := coll.CountDocuments(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// sortByCreatedDesc orders list results most-recently-created first.
func sortByCreatedDesc() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
}
