package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"outreach-api/internal/models"
	"outreach-api/internal/repositories"
)

// engagementService implements the EngagementService interface
type engagementService struct {
	repo       repositories.EngagementRepository
	configured bool
	logger     *logrus.Logger
}

// NewEngagementService creates a new engagement service. When configured is
// false every call is skipped and repo is never touched (it may be nil).
func NewEngagementService(repo repositories.EngagementRepository, configured bool, logger *logrus.Logger) EngagementService {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &engagementService{
		repo:       repo,
		configured: configured && repo != nil,
		logger:     logger,
	}
}

// Track records one engagement event. Parse and insert errors are returned
// as-is so callers can surface the underlying message.
func (s *engagementService) Track(ctx context.Context, body []byte) (TrackStatus, error) {
	if !s.configured {
		s.logger.Info("Tracking store not configured, skipping tracking")
		return TrackStatusSkipped, nil
	}

	event, err := models.ParseEngagementEvent(body)
	if err != nil {
		s.logger.WithError(err).Error("Tracking error")
		return "", err
	}

	row := event.ToRow()
	if err := s.repo.Insert(ctx, row); err != nil {
		s.logger.WithFields(logrus.Fields{
			"district":          row.District,
			"bill_number":       row.BillNumber,
			"store_unreachable": repositories.IsConnection(err),
		}).WithError(err).Error("Engagement insert failed")
		return "", err
	}

	s.logger.WithFields(logrus.Fields{
		"district":    row.District,
		"bill_number": row.BillNumber,
		"stance":      row.Stance,
	}).Debug("Engagement tracked")

	return TrackStatusTracked, nil
}
