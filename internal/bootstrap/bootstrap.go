package bootstrap

import (
	"context"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/ozank/academix/docs" // Import generated swagger docs
	appControllers "github.com/ozank/academix/internal/app/controllers"
	appRepos "github.com/ozank/academix/internal/app/repositories"
	"github.com/ozank/academix/internal/app/repositories/document"
	"github.com/ozank/academix/internal/app/repositories/graph"
	appRoutes "github.com/ozank/academix/internal/app/routes"
	appServices "github.com/ozank/academix/internal/app/services"
	"github.com/ozank/academix/internal/config"
	"github.com/ozank/academix/internal/db"
	appMiddleware "github.com/ozank/academix/internal/middleware"
	"github.com/ozank/academix/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Services          *appServices.Services
	StudentController *appControllers.StudentController
	FacultyController *appControllers.FacultyController
	CourseController  *appControllers.CourseController
	Repos             *appRepos.Repositories
	Logger            zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupStore connects the backend selected by configuration and returns
// its repositories plus a close function for shutdown.
func SetupStore(cfg *config.Config, lgr zerolog.Logger) (*appRepos.Repositories, func(context.Context), error) {
	switch strings.ToLower(cfg.Store.Backend) {
	case config.BackendNeo4j:
		lgr.Info().Str("uri", cfg.Neo4j.URI).Msg("Connecting to Neo4j...")
		database, err := db.NewNeo4jDB(cfg)
		if err != nil {
			lgr.Error().Err(err).Msg("Failed to connect to Neo4j")
			return nil, nil, err
		}
		lgr.Info().Msg("Neo4j connection successfully established.")
		return graph.NewRepositories(database.Driver), database.Close, nil
	default:
		lgr.Info().Str("uri", cfg.Mongo.URI).Str("database", cfg.Mongo.Database).Msg("Connecting to MongoDB...")
		database, err := db.NewMongoDB(cfg)
		if err != nil {
			lgr.Error().Err(err).Msg("Failed to connect to MongoDB")
			return nil, nil, err
		}
		lgr.Info().Msg("MongoDB connection successfully established.")
		return document.NewRepositories(database.Database), database.Close, nil
	}
}

// BuildDependencies initializes application services and controllers.
func BuildDependencies(cfg *config.Config, repos *appRepos.Repositories, lgr zerolog.Logger) *Dependencies {
	services := appServices.NewServices(repos)

	return &Dependencies{
		Services:          services,
		StudentController: appControllers.NewStudentController(services.StudentService),
		FacultyController: appControllers.NewFacultyController(services.FacultyService),
		CourseController:  appControllers.NewCourseController(services.CourseService),
		Repos:             repos,
		Logger:            lgr,
	}
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger())

	// The admin front end runs on a different origin in development.
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// Setup Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	// Setup API routes using the dependencies
	appRoutes.SetupRouter(router,
		deps.StudentController,
		deps.FacultyController,
		deps.CourseController,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
