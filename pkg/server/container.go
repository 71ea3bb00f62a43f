package server

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/sirupsen/logrus"

	"outreach-api/internal/adapters/geocoder"
	"outreach-api/internal/config"
	"outreach-api/internal/database"
	"outreach-api/internal/repositories"
	"outreach-api/internal/repositories/postgres"
	"outreach-api/internal/repositories/sqlite"
	"outreach-api/internal/repositories/supabase"
	"outreach-api/internal/services"
)

// Container holds all application dependencies
type Container struct {
	Config            *config.Config
	Logger            *logrus.Logger
	GeocodeService    services.GeocodeService
	EngagementService services.EngagementService

	services *services.ServiceContainer
}

// NewContainer creates a new dependency injection container. Nothing here
// touches the tracking store: it is validated and built on the first
// engagement insert, so tracking problems never affect the geocode proxy.
// Without credentials the engagement service runs in skip mode.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	logger := NewLogger(cfg)

	if err := cfg.Tracking.Validate(); err != nil {
		logger.WithError(err).Warn("Tracking configuration is invalid, engagement inserts will fail")
	}

	var repo repositories.EngagementRepository
	if cfg.Tracking.Configured() {
		tracking := cfg.Tracking
		repo = repositories.NewLazyEngagementRepository(tracking.Table, func(ctx context.Context) (repositories.EngagementRepository, error) {
			if err := tracking.Validate(); err != nil {
				return nil, err
			}
			return newEngagementRepository(ctx, tracking, logger)
		})
	} else {
		logger.WithField("backend", cfg.Tracking.Backend).Info("Tracking store not configured, engagement events will be skipped")
	}

	serviceContainer, err := services.NewServiceContainer(&services.ServiceConfig{
		Geocoder:           geocoder.NewCensusClient(cfg.Geocoder, nil),
		EngagementRepo:     repo,
		TrackingConfigured: cfg.Tracking.Configured(),
		Logger:             logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create service container: %w", err)
	}

	serverless := config.GetServerlessConfig()
	logger.WithFields(logrus.Fields{
		"deployment_mode":  config.GetDeploymentMode(),
		"function_name":    serverless.FunctionName,
		"stage":            serverless.Stage,
		"region":           serverless.Region,
		"tracking_backend": cfg.Tracking.Backend,
		"tracking_enabled": cfg.Tracking.Configured(),
	}).Debug("Container initialized")

	return &Container{
		Config:            cfg,
		Logger:            logger,
		GeocodeService:    serviceContainer.GeocodeService,
		EngagementService: serviceContainer.EngagementService,
		services:          serviceContainer,
	}, nil
}

// Close cleans up all resources
func (c *Container) Close() error {
	if c.services != nil {
		if err := c.services.Close(); err != nil {
			return fmt.Errorf("failed to close services: %w", err)
		}
	}
	return nil
}

func newEngagementRepository(ctx context.Context, cfg config.TrackingConfig, logger *logrus.Logger) (repositories.EngagementRepository, error) {
	switch cfg.Backend {
	case config.BackendSupabase:
		return supabase.NewEngagementRepository(cfg.SupabaseURL, cfg.SupabaseKey, cfg.Table, &http.Client{}, logger)

	case config.BackendPostgres:
		repo, err := postgres.NewEngagementRepository(ctx, cfg.DatabaseURL, cfg.Table, logger)
		if err != nil {
			return nil, err
		}
		if cfg.EnsureSchema {
			if err := repo.EnsureSchema(ctx); err != nil {
				repo.Close()
				return nil, fmt.Errorf("failed to ensure schema: %w", err)
			}
		}
		return repo, nil

	case config.BackendSQLite:
		db, err := database.InitializeDatabase(cfg.SQLitePath, logger)
		if err != nil {
			return nil, err
		}
		return sqlite.NewEngagementRepository(db, cfg.Table, logger), nil

	default:
		return nil, fmt.Errorf("%w: %s", repositories.ErrUnsupported, cfg.Backend)
	}
}

// NewLogger builds the application logger: JSON in Lambda and production,
// text otherwise
func NewLogger(cfg *config.Config) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)

	if config.IsServerlessMode() || cfg.IsProduction() {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	return logger
}
