package repositories

import (
	"context"

	"outreach-api/internal/models"
)

// EngagementRepository writes engagement rows to a table-backed store
type EngagementRepository interface {
	// Insert writes a single row. Implementations must not retry.
	Insert(ctx context.Context, row *models.EngagementRow) error

	// Close releases any connections held by the repository
	Close() error
}
