// Package bootstrap wires configuration, the database, and the dependency
// graph together for the server.
package bootstrap

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/v2/mongo"

	appControllers "github.com/alumniconnect/backend/internal/app/controllers"
	appRepos "github.com/alumniconnect/backend/internal/app/repositories"
	appRoutes "github.com/alumniconnect/backend/internal/app/routes"
	appServices "github.com/alumniconnect/backend/internal/app/services"
	"github.com/alumniconnect/backend/internal/config"
	"github.com/alumniconnect/backend/internal/db"
	"github.com/alumniconnect/backend/internal/middleware"
	pkgAuth "github.com/alumniconnect/backend/internal/pkg/auth"
	"github.com/alumniconnect/backend/internal/pkg/logger"
	"github.com/alumniconnect/backend/internal/seed"
)

// Dependencies holds the wired application dependencies
type Dependencies struct {
	Repos      *appRepos.Repositories
	Services   *appServices.Services
	JWTService *pkgAuth.JWTService
	Logger     zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger
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

// SetupDatabase connects to MongoDB, ensures indexes, and seeds the default
// admin account.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*mongo.Client, *mongo.Database, error) {
	lgr.Info().Msg("Establishing database connection...")

	client, err := db.Connect(cfg.Mongo.URI)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, nil, err
	}

	database := client.Database(cfg.Mongo.Database)

	if err := db.EnsureIndexes(ctx, database); err != nil {
		lgr.Error().Err(err).Msg("Failed to ensure indexes")
		_ = client.Disconnect(ctx)
		return nil, nil, err
	}

	userRepo := appRepos.NewUserRepository(database)
	if err := seed.EnsureAdmin(ctx, userRepo, cfg.Seed.AdminEmail, cfg.Seed.AdminPassword); err != nil {
		lgr.Error().Err(err).Msg("Failed to seed admin account")
		_ = client.Disconnect(ctx)
		return nil, nil, err
	}

	return client, database, nil
}

// BuildDependencies constructs the repository and service graph
func BuildDependencies(cfg *config.Config, database *mongo.Database, lgr zerolog.Logger) *Dependencies {
	jwtService := pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    cfg.TokenExpiration(),
		TokenIssuer: cfg.JWT.Issuer,
	})

	repos := appRepos.NewRepositories(database)
	services := appServices.NewServices(repos, jwtService)

	return &Dependencies{
		Repos:      repos,
		Services:   services,
		JWTService: jwtService,
		Logger:     lgr,
	}
}

// SetupRouter builds the gin engine with the middleware chain and routes
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Metrics())
	router.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	ctrl := appRoutes.Controllers{
		Auth:       appControllers.NewAuthController(deps.Services.AuthService, lgr),
		User:       appControllers.NewUserController(deps.Services.UserService, lgr),
		Profile:    appControllers.NewProfileController(deps.Services.ProfileService, lgr),
		Job:        appControllers.NewJobController(deps.Services.JobService, lgr),
		Event:      appControllers.NewEventController(deps.Services.EventService, lgr),
		Mentorship: appControllers.NewMentorshipController(deps.Services.MentorshipService, lgr),
		Story:      appControllers.NewStoryController(deps.Services.StoryService, lgr),
		Admin:      appControllers.NewAdminController(deps.Services.AdminService, lgr),
	}

	appRoutes.SetupRouter(router, ctrl, deps.JWTService, deps.Repos.UserRepository)

	return router
}
