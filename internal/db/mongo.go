package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/ozank/academix/internal/config"
	"github.com/ozank/academix/internal/pkg/logger"
)

// MongoDB database connection structure
type MongoDB struct {
	Client   *mongo.Client
	Database *mongo.Database
}

// NewMongoDB creates a new MongoDB client and verifies the connection
func NewMongoDB(cfg *config.Config) (*MongoDB, error) {
	// Create a context with timeout for connection
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOpts := options.Client().
		ApplyURI(cfg.Mongo.URI).
		SetServerSelectionTimeout(5 * time.Second)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to create database client: %w", err)
	}

	// Test connection with context
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to establish database connection: %w", err)
	}

	db := &MongoDB{
		Client:   client,
		Database: client.Database(cfg.Mongo.Database),
	}

	if err := db.EnsureIndexes(ctx); err != nil {
		return nil, err
	}

	return db, nil
}

// EnsureIndexes creates the unique indexes that back the application-level
// uniqueness checks: student emails, faculty emails and course codes. The
// index closes the window between the pre-insert check and the insert.
func (db *MongoDB) EnsureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)

	indexes := []struct {
		collection string
		keys       bson.D
	}{
		{"students", bson.D{{Key: "email", Value: 1}}},
		{"faculty", bson.D{{Key: "email", Value: 1}}},
		{"courses", bson.D{{Key: "code", Value: 1}}},
	}

	for _, idx := range indexes {
		_, err := db.Database.Collection(idx.collection).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    idx.keys,
			Options: unique,
		})
		if err != nil {
			return fmt.Errorf("failed to create unique index on %s: %w", idx.collection, err)
		}
	}

	logger.Debug().Msg("Unique indexes ensured")
	return nil
}

// Close closing method
func (db *MongoDB) Close(ctx context.Context) {
	if db.Client != nil {
		if err := db.Client.Disconnect(ctx); err != nil {
			logger.Warn().Err(err).Msg("Error disconnecting from MongoDB")
		}
	}
}
