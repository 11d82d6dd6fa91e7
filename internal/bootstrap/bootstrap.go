package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/emre/staffhub/internal/app/controllers"
	appMigrations "github.com/emre/staffhub/internal/app/migrations"
	appRepos "github.com/emre/staffhub/internal/app/repositories"
	appRoutes "github.com/emre/staffhub/internal/app/routes"
	appServices "github.com/emre/staffhub/internal/app/services"
	"github.com/emre/staffhub/internal/config"
	"github.com/emre/staffhub/internal/db"
	appMiddleware "github.com/emre/staffhub/internal/middleware"
	pkgAuth "github.com/emre/staffhub/internal/pkg/auth"
	"github.com/emre/staffhub/internal/pkg/events"
	"github.com/emre/staffhub/internal/pkg/filestorage"
	"github.com/emre/staffhub/internal/pkg/logger"
	"github.com/emre/staffhub/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Database             *db.PostgresDB
	Repos                *appRepos.Repositories
	JWTService           *pkgAuth.JWTService
	FileStorage          *filestorage.LocalStorage
	EventHub             *events.Hub
	AuthService          appServices.AuthService
	MetricsService       appServices.MetricsService
	DepartmentService    appServices.DepartmentService
	EmployeeService      appServices.EmployeeService
	TaskService          appServices.TaskService
	TeamService          appServices.TeamService
	ReviewService        appServices.ReviewService
	CascadeService       appServices.CascadeService
	AdminController      *appControllers.AdminController
	DepartmentController *appControllers.DepartmentController
	EmployeeController   *appControllers.EmployeeController
	TaskController       *appControllers.TaskController
	TeamController       *appControllers.TeamController
	ReviewController     *appControllers.ReviewController
	EventsHandler        *events.Handler
	AuthMiddleware       *appMiddleware.AuthMiddleware
	Logger               zerolog.Logger
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

// SetupDatabase establishes the database connection, runs migrations and
// seeds the default admin account.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultAdmin(context.Background(), dbPool); err != nil {
		// seeding failure is not fatal, an admin can be created manually
		lgr.Error().Err(err).Msg("Failed to seed default admin, proceeding anyway...")
	}

	return database, nil
}

// BuildDependencies initializes repositories, services and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Database: database, Logger: lgr}
	dbPool := database.Pool

	deps.Repos = appRepos.NewRepositories(dbPool)

	fileStorage, err := filestorage.NewLocalStorage(cfg.Server.StoragePath, "/uploads")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}
	deps.FileStorage = fileStorage

	tokenExp, err := time.ParseDuration(cfg.JWT.TokenExpiration)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT token expiration: %w", err)
	}
	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    tokenExp,
		TokenIssuer: cfg.JWT.Issuer,
	})

	deps.EventHub = events.NewHub(lgr)
	deps.EventsHandler = events.NewHandler(deps.EventHub, lgr)

	repos := deps.Repos
	deps.AuthService = appServices.NewAuthService(repos.AdminRepository, deps.JWTService)
	deps.MetricsService = appServices.NewMetricsService(
		repos.EmployeeRepository,
		repos.DepartmentRepository,
		repos.TaskRepository,
		repos.LeaveRequestRepository,
	)
	deps.DepartmentService = appServices.NewDepartmentService(repos.DepartmentRepository)
	deps.EmployeeService = appServices.NewEmployeeService(repos.EmployeeRepository, fileStorage)
	deps.TaskService = appServices.NewTaskService(repos.TaskRepository, deps.EventHub)
	deps.TeamService = appServices.NewTeamService(repos.TeamRepository)
	deps.ReviewService = appServices.NewReviewService(repos.LeaveRequestRepository, repos.FeedbackRepository)
	deps.CascadeService = appServices.NewCascadeService(
		database,
		repos.DepartmentRepository,
		repos.EmployeeRepository,
		repos.FeedbackRepository,
		repos.TaskRepository,
		repos.LeaveRequestRepository,
	)

	deps.AdminController = appControllers.NewAdminController(deps.AuthService, deps.MetricsService)
	deps.DepartmentController = appControllers.NewDepartmentController(deps.DepartmentService, deps.CascadeService)
	deps.EmployeeController = appControllers.NewEmployeeController(deps.EmployeeService, deps.CascadeService)
	deps.TaskController = appControllers.NewTaskController(deps.TaskService)
	deps.TeamController = appControllers.NewTeamController(deps.TeamService)
	deps.ReviewController = appControllers.NewReviewController(deps.ReviewService)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	return deps, nil
}

// SetupRouter builds the gin engine with middleware and all routes attached.
func SetupRouter(cfg *config.Config, deps *Dependencies) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger())

	appRoutes.SetupRouter(
		router,
		deps.AdminController,
		deps.DepartmentController,
		deps.EmployeeController,
		deps.TaskController,
		deps.TeamController,
		deps.ReviewController,
		deps.EventsHandler,
		deps.AuthMiddleware,
	)

	return router
}
