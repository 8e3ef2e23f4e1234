package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/asadk/maktab/internal/app/controllers"
	appMigrations "github.com/asadk/maktab/internal/app/migrations"
	appRepos "github.com/asadk/maktab/internal/app/repositories"
	appRoutes "github.com/asadk/maktab/internal/app/routes"
	appServices "github.com/asadk/maktab/internal/app/services"
	"github.com/asadk/maktab/internal/config"
	"github.com/asadk/maktab/internal/db"
	appMiddleware "github.com/asadk/maktab/internal/middleware"
	pkgAuth "github.com/asadk/maktab/internal/pkg/auth"
	"github.com/asadk/maktab/internal/pkg/helpers"
	"github.com/asadk/maktab/internal/pkg/logger"
	"github.com/asadk/maktab/internal/seed"
)

// Dependencies holds all the application dependencies.
type Dependencies struct {
	AuthService         appServices.AuthService
	ProgramService      appServices.ProgramService
	FacultyService      appServices.FacultyService
	SubjectService      appServices.SubjectService
	StudentService      appServices.StudentService
	AttendanceService   appServices.AttendanceService
	FeeService          appServices.FeeService
	ExamService         appServices.ExamService
	TimetableService    appServices.TimetableService
	AnnouncementService appServices.AnnouncementService
	DashboardService    appServices.DashboardService

	AuthController         *appControllers.AuthController
	ProgramController      *appControllers.ProgramController
	FacultyController      *appControllers.FacultyController
	SubjectController      *appControllers.SubjectController
	StudentController      *appControllers.StudentController
	AttendanceController   *appControllers.AttendanceController
	FeeController          *appControllers.FeeController
	ExamController         *appControllers.ExamController
	TimetableController    *appControllers.TimetableController
	AnnouncementController *appControllers.AnnouncementController
	DashboardController    *appControllers.DashboardController

	AuthMiddleware *appMiddleware.AuthMiddleware
	Repos          *appRepos.Repositories
	JWTService     *pkgAuth.JWTService
	Logger         zerolog.Logger
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
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
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

	if err := seed.CreateDefaultAdmin(context.Background(), dbPool, cfg, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default admin, proceeding anyway...")
	}

	tokenRepo := appRepos.NewTokenRepository(dbPool)
	if deleted, err := tokenRepo.DeleteExpiredTokens(context.Background()); err != nil {
		lgr.Warn().Err(err).Msg("Failed to clear expired refresh tokens")
	} else if deleted > 0 {
		lgr.Info().Int64("deleted", deleted).Msg("Cleared expired refresh tokens")
	}

	return dbPool, nil
}

// BuildDependencies initializes repositories, services and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository, deps.Repos.TokenRepository, deps.JWTService)
	deps.ProgramService = appServices.NewProgramService(deps.Repos.ProgramRepository, deps.Repos.ClassRepository, deps.Repos.SectionRepository)
	deps.FacultyService = appServices.NewFacultyService(deps.Repos.FacultyRepository)
	deps.SubjectService = appServices.NewSubjectService(deps.Repos.SubjectRepository)
	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository)
	deps.AttendanceService = appServices.NewAttendanceService(deps.Repos.AttendanceRepository)
	deps.FeeService = appServices.NewFeeService(deps.Repos.FeeRepository)
	deps.ExamService = appServices.NewExamService(deps.Repos.ExamRepository)
	deps.TimetableService = appServices.NewTimetableService(deps.Repos.TimetableRepository)
	deps.AnnouncementService = appServices.NewAnnouncementService(deps.Repos.AnnouncementRepository)
	deps.DashboardService = appServices.NewDashboardService(deps.Repos.StudentRepository, deps.Repos.FacultyRepository, deps.Repos.FeeRepository)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.ProgramController = appControllers.NewProgramController(deps.ProgramService)
	deps.FacultyController = appControllers.NewFacultyController(deps.FacultyService)
	deps.SubjectController = appControllers.NewSubjectController(deps.SubjectService)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.AttendanceController = appControllers.NewAttendanceController(deps.AttendanceService)
	deps.FeeController = appControllers.NewFeeController(deps.FeeService)
	deps.ExamController = appControllers.NewExamController(deps.ExamService)
	deps.TimetableController = appControllers.NewTimetableController(deps.TimetableService)
	deps.AnnouncementController = appControllers.NewAnnouncementController(deps.AnnouncementService)
	deps.DashboardController = appControllers.NewDashboardController(deps.DashboardService)

	return deps, nil
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
	router.Use(appMiddleware.RequestLogger(), gin.Recovery())

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.ProgramController,
		deps.FacultyController,
		deps.SubjectController,
		deps.StudentController,
		deps.AttendanceController,
		deps.FeeController,
		deps.ExamController,
		deps.TimetableController,
		deps.AnnouncementController,
		deps.DashboardController,
		deps.AuthMiddleware,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
