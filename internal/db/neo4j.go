package db

import (
	"context"
	"fmt"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/ozank/academix/internal/config"
	"github.com/ozank/academix/internal/pkg/logger"
)

// Neo4jDB database connection structure
type Neo4jDB struct {
	Driver neo4j.DriverWithContext
}

// NewNeo4jDB creates a new Neo4j driver and verifies connectivity
func NewNeo4jDB(cfg *config.Config) (*Neo4jDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	driver, err := neo4j.NewDriverWithContext(
		cfg.Neo4j.URI,
		neo4j.BasicAuth(cfg.Neo4j.Username, cfg.Neo4j.Password, ""),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create database driver: %w", err)
	}

	// Test connection with context
	if err := driver.VerifyConnectivity(ctx); err != nil {
		return nil, fmt.Errorf("failed to establish database connection: %w", err)
	}

	db := &Neo4jDB{Driver: driver}

	if err := db.EnsureConstraints(ctx); err != nil {
		return nil, err
	}

	return db, nil
}

// EnsureConstraints declares the uniqueness constraints the graph store
// relies on: node ids, student/faculty emails and course codes.
func (db *Neo4jDB) EnsureConstraints(ctx context.Context) error {
	session := db.Driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	constraints := []string{
		`CREATE CONSTRAINT student_id_unique IF NOT EXISTS FOR (s:Student) REQUIRE s.id IS UNIQUE`,
		`CREATE CONSTRAINT student_email_unique IF NOT EXISTS FOR (s:Student) REQUIRE s.email IS UNIQUE`,
		`CREATE CONSTRAINT faculty_id_unique IF NOT EXISTS FOR (f:Faculty) REQUIRE f.id IS UNIQUE`,
		`CREATE CONSTRAINT faculty_email_unique IF NOT EXISTS FOR (f:Faculty) REQUIRE f.email IS UNIQUE`,
		`CREATE CONSTRAINT course_id_unique IF NOT EXISTS FOR (c:Course) REQUIRE c.id IS UNIQUE`,
		`CREATE CONSTRAINT course_code_unique IF NOT EXISTS FOR (c:Course) REQUIRE c.code IS UNIQUE`,
	}

	for _, stmt := range constraints {
		if _, err := session.Run(ctx, stmt, nil); err != nil {
			return fmt.Errorf("failed to create constraint: %w", err)
		}
	}

	logger.Debug().Msg("Uniqueness constraints ensured")
	return nil
}

// Close closing method
func (db *Neo4jDB) Close(ctx context.Context) {
	if db.Driver != nil {
		if err := db.Driver.Close(ctx); err != nil {
			logger.Warn().Err(err).Msg("Error closing Neo4j driver")
		}
	}
}
