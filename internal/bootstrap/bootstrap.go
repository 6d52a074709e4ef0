package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/Aisyah456/liblary-web/internal/app/controllers"
	appMigrations "github.com/Aisyah456/liblary-web/internal/app/migrations"
	appRepos "github.com/Aisyah456/liblary-web/internal/app/repositories"
	appRoutes "github.com/Aisyah456/liblary-web/internal/app/routes"
	appServices "github.com/Aisyah456/liblary-web/internal/app/services"
	"github.com/Aisyah456/liblary-web/internal/config"
	"github.com/Aisyah456/liblary-web/internal/db"
	appMiddleware "github.com/Aisyah456/liblary-web/internal/middleware"
	"github.com/Aisyah456/liblary-web/internal/pkg/logger"
	"github.com/Aisyah456/liblary-web/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	FacultyService      appServices.FacultyService
	MajorService        appServices.MajorService
	MemberService       appServices.MemberService
	ClearanceService    appServices.ClearanceService
	FacultyController   *appControllers.FacultyController
	MajorController     *appControllers.MajorController
	MemberController    *appControllers.MemberController
	ClearanceController *appControllers.ClearanceController
	Repos               *appRepos.Repositories
	Logger              zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	// A .env file is optional; real environments set variables directly.
	_ = godotenv.Load()

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
// seeds reference data.
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

	migrationsDir := cfg.Migrations.Path
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		dbPool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(context.Background(), migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if cfg.Seed.Enabled {
		if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
			// Seeding failures should not stop the service.
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.FacultyService = appServices.NewFacultyService(deps.Repos.FacultyRepository)
	deps.MajorService = appServices.NewMajorService(deps.Repos.MajorRepository, deps.Repos.FacultyRepository)
	deps.MemberService = appServices.NewMemberService(deps.Repos.MemberRepository)
	deps.ClearanceService = appServices.NewClearanceService(deps.Repos.ClearanceRepository, deps.Repos.MemberRepository)

	deps.FacultyController = appControllers.NewFacultyController(deps.FacultyService)
	deps.MajorController = appControllers.NewMajorController(deps.MajorService)
	deps.MemberController = appControllers.NewMemberController(deps.MemberService)
	deps.ClearanceController = appControllers.NewClearanceController(deps.ClearanceService)

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

	registerTagNameFunc()

	router := gin.New()
	router.Use(
		appMiddleware.RequestID(),
		appMiddleware.RequestLogger(),
		gin.Recovery(),
	)

	appRoutes.SetupSwagger(router)

	appRoutes.SetupRouter(router,
		deps.FacultyController,
		deps.MajorController,
		deps.MemberController,
		deps.ClearanceController,
	)

	return router
}

// registerTagNameFunc makes binding errors report json field names instead of
// Go struct field names.
func registerTagNameFunc() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}
