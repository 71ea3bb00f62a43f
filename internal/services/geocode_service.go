package services

import (
	"context"
	"encoding/json"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"outreach-api/internal/adapters/geocoder"
	"outreach-api/internal/models"
)

// geocodeService implements the GeocodeService interface
type geocodeService struct {
	geocoder  geocoder.Geocoder
	validator *validator.Validate
	logger    *logrus.Logger
}

// NewGeocodeService creates a new geocode service instance
func NewGeocodeService(g geocoder.Geocoder, logger *logrus.Logger) GeocodeService {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &geocodeService{
		geocoder:  g,
		validator: validator.New(),
		logger:    logger,
	}
}

// Lookup resolves an address through the upstream geocoder
func (s *geocodeService) Lookup(ctx context.Context, address string) (json.RawMessage, error) {
	req := &models.GeocodeRequest{Address: address}
	if err := s.validator.Struct(req); err != nil {
		return nil, ErrMissingAddress
	}

	data, err := s.geocoder.Lookup(ctx, req.Address)
	if err != nil {
		s.logger.WithError(err).Error("Census geocoder request failed")
		return nil, err
	}

	return data, nil
}
