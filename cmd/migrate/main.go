// Command migrate copies the document store's contents into the graph
// store in one shot: nodes first, then the relationships derived from the
// source's reference arrays. The target is cleared before anything lands.
package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/ozank/academix/internal/config"
	"github.com/ozank/academix/internal/db"
	"github.com/ozank/academix/internal/migrate"
	"github.com/ozank/academix/internal/pkg/logger"
)

func main() {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		os.Exit(1)
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(strings.ToLower(cfg.Logging.Level)),
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})
	lgr := log.Logger

	ctx := context.Background()

	lgr.Info().Str("uri", cfg.Mongo.URI).Msg("Connecting to source MongoDB...")
	mongoDB, err := db.NewMongoDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to source MongoDB")
		os.Exit(1)
	}
	defer mongoDB.Close(ctx)

	lgr.Info().Str("uri", cfg.Neo4j.URI).Msg("Connecting to target Neo4j...")
	neoDB, err := db.NewNeo4jDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to target Neo4j")
		os.Exit(1)
	}
	defer neoDB.Close(ctx)

	migrator := migrate.NewMigrator(
		migrate.NewMongoSource(mongoDB.Database),
		migrate.NewNeo4jTarget(neoDB.Driver),
	)

	counts, err := migrator.Run(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Migration failed")
		os.Exit(1)
	}

	lgr.Info().
		Int64("students", counts.Students).
		Int64("faculty", counts.Faculty).
		Int64("courses", counts.Courses).
		Int64("enrollments", counts.Enrollments).
		Int64("teachings", counts.Teachings).
		Msg("Migration finished successfully")
}
