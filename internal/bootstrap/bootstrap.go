package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/cadastro/internal/app/controllers"
	appMigrations "github.com/yigit/cadastro/internal/app/migrations"
	appRepos "github.com/yigit/cadastro/internal/app/repositories"
	appRoutes "github.com/yigit/cadastro/internal/app/routes"
	appServices "github.com/yigit/cadastro/internal/app/services"
	"github.com/yigit/cadastro/internal/config"
	"github.com/yigit/cadastro/internal/db"
	appMiddleware "github.com/yigit/cadastro/internal/middleware"
	"github.com/yigit/cadastro/internal/pkg/flash"
	"github.com/yigit/cadastro/internal/pkg/helpers"
	"github.com/yigit/cadastro/internal/pkg/logger"
	"github.com/yigit/cadastro/internal/pkg/metrics"
	"github.com/yigit/cadastro/internal/seed"
	"github.com/yigit/cadastro/internal/web"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Services        *appServices.Services
	Flash           *flash.Store
	Metrics         *metrics.Metrics
	PageController  *appControllers.PageController
	AlunoController *appControllers.AlunoController
	APIController   *appControllers.APIController
	Logger          zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logger.Configure(logger.ConfigFrom(cfg.Logging.Level, cfg.Logging.Format))

	lgr := logger.Get()
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase connects to the database, applies the embedded migrations and
// seeds the configured disciplinas.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(ctx, cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool, lgr)
	if err := migrator.Migrate(ctx, appMigrations.Files, appMigrations.Dir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(ctx, dbPool, cfg.Seed.Disciplinas, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes repositories, services and controllers on top
// of the database pool.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) *Dependencies {
	repos := appRepos.NewRepositories(dbPool)
	return NewDependencies(cfg, appServices.NewServices(repos), lgr)
}

// NewDependencies wires the controllers to already constructed services
func NewDependencies(cfg *config.Config, services *appServices.Services, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{
		Services: services,
		Metrics:  metrics.New(),
		Logger:   lgr,
	}

	deps.Flash = flash.NewStore(flash.Config{
		Secret:     cfg.Server.SecretKey,
		CookieName: cfg.Session.CookieName,
		TTL:        helpers.ParseDuration(cfg.Session.FlashTTL, flash.DefaultTTL),
		Secure:     cfg.Session.Secure,
	})

	deps.PageController = appControllers.NewPageController()
	deps.AlunoController = appControllers.NewAlunoController(services.RegistrationService, deps.Flash, deps.Metrics)
	deps.APIController = appControllers.NewAPIController(services.DisciplinaService)

	return deps
}

// SetupRouter configures the Gin engine with templates, middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) (*gin.Engine, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	templates, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	router := gin.New()
	router.SetHTMLTemplate(templates)
	router.Use(
		appMiddleware.RequestID(),
		appMiddleware.RequestLogger(lgr, deps.Metrics),
		appMiddleware.Recovery(),
	)

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, deps.PageController, deps.AlunoController, deps.APIController)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Metrics.Registry, promhttp.HandlerOpts{})))

	return router, nil
}
