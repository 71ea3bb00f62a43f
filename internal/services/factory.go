package services

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"outreach-api/internal/adapters/geocoder"
	"outreach-api/internal/repositories"
)

// ServiceContainer holds all service instances
type ServiceContainer struct {
	GeocodeService    GeocodeService
	EngagementService EngagementService

	engagementRepo repositories.EngagementRepository
}

// ServiceConfig holds the collaborators services are built from
type ServiceConfig struct {
	Geocoder       geocoder.Geocoder
	EngagementRepo repositories.EngagementRepository
	// TrackingConfigured gates every engagement write
	TrackingConfigured bool
	Logger             *logrus.Logger
}

// NewServiceContainer creates a new service container with all services
func NewServiceContainer(config *ServiceConfig) (*ServiceContainer, error) {
	if config == nil {
		return nil, fmt.Errorf("service config cannot be nil")
	}
	if config.Geocoder == nil {
		return nil, fmt.Errorf("geocoder cannot be nil")
	}

	return &ServiceContainer{
		GeocodeService:    NewGeocodeService(config.Geocoder, config.Logger),
		EngagementService: NewEngagementService(config.EngagementRepo, config.TrackingConfigured, config.Logger),
		engagementRepo:    config.EngagementRepo,
	}, nil
}

// Close closes all services and their dependencies
func (sc *ServiceContainer) Close() error {
	if sc.engagementRepo != nil {
		if err := sc.engagementRepo.Close(); err != nil {
			return fmt.Errorf("failed to close engagement repository: %w", err)
		}
	}
	return nil
}
