package document

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/ozank/academix/internal/pkg/apperrors"
)

// CountDocuments reads a single {n: <count>} document from the aggregate
// cursor; an empty first batch means zero.
func countResponse(ns string, n int32) bson.D {
	return mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{{Key: "n", Value: n}})
}

func emptyCountResponse(ns string) bson.D {
	return mtest.CreateCursorResponse(0, ns, mtest.FirstBatch)
}

func assertNoWrites(mt *mtest.T) {
	mt.Helper()
	for _, evt := range mt.GetAllStartedEvents() {
		assert.NotEqual(mt, "update", evt.CommandName,
			"a missing endpoint must be rejected before any write")
	}
}

func TestEnrollMissingCourseWritesNothing(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("course gone", func(mt *mtest.T) {
		repo := NewStudentRepository(mt.DB)
		mt.AddMockResponses(
			countResponse(mt.DB.Name()+".students", 1),
			emptyCountResponse(mt.DB.Name()+".courses"),
		)

		_, err := repo.Enroll(context.Background(),
			primitive.NewObjectID().Hex(), primitive.NewObjectID().Hex())
		require.ErrorIs(mt, err, apperrors.ErrStudentOrCourseNotFound)
		assertNoWrites(mt)
	})
}

func TestEnrollMissingStudentWritesNothing(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("student gone", func(mt *mtest.T) {
		repo := NewStudentRepository(mt.DB)
		mt.AddMockResponses(
			emptyCountResponse(mt.DB.Name() + ".students"),
		)

		_, err := repo.Enroll(context.Background(),
			primitive.NewObjectID().Hex(), primitive.NewObjectID().Hex())
		require.ErrorIs(mt, err, apperrors.ErrStudentOrCourseNotFound)
		assertNoWrites(mt)
	})
}

func TestAssignMissingCourseWritesNothing(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("course gone", func(mt *mtest.T) {
		repo := NewFacultyRepository(mt.DB)
		mt.AddMockResponses(
			countResponse(mt.DB.Name()+".faculty", 1),
			emptyCountResponse(mt.DB.Name()+".courses"),
		)

		_, err := repo.Assign(context.Background(),
			primitive.NewObjectID().Hex(), primitive.NewObjectID().Hex())
		require.ErrorIs(mt, err, apperrors.ErrFacultyOrCourseNotFound)
		assertNoWrites(mt)
	})
}

func TestAssignMissingFacultyWritesNothing(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("faculty gone", func(mt *mtest.T) {
		repo := NewFacultyRepository(mt.DB)
		mt.AddMockResponses(
			emptyCountResponse(mt.DB.Name() + ".faculty"),
		)

		_, err := repo.Assign(context.Background(),
			primitive.NewObjectID().Hex(), primitive.NewObjectID().Hex())
		require.ErrorIs(mt, err, apperrors.ErrFacultyOrCourseNotFound)
		assertNoWrites(mt)
	})
}
