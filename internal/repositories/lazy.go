package repositories

import (
	"context"
	"sync"

	"outreach-api/internal/models"
)

// Factory builds the underlying repository
type Factory func(ctx context.Context) (EngagementRepository, error)

// LazyEngagementRepository defers building its store until the first
// Insert. A failed build is not cached; the next Insert tries again.
type LazyEngagementRepository struct {
	mu      sync.Mutex
	entity  string
	factory Factory
	repo    EngagementRepository
}

// NewLazyEngagementRepository wraps factory for the given table
func NewLazyEngagementRepository(entity string, factory Factory) *LazyEngagementRepository {
	return &LazyEngagementRepository{
		entity:  entity,
		factory: factory,
	}
}

// Insert builds the store if needed and writes one row. Build failures are
// reported with their own message.
func (l *LazyEngagementRepository) Insert(ctx context.Context, row *models.EngagementRow) error {
	repo, err := l.get(ctx)
	if err != nil {
		return InsertError(l.entity, err.Error(), err)
	}
	return repo.Insert(ctx, row)
}

func (l *LazyEngagementRepository) get(ctx context.Context) (EngagementRepository, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.repo != nil {
		return l.repo, nil
	}

	repo, err := l.factory(ctx)
	if err != nil {
		return nil, err
	}
	l.repo = repo
	return repo, nil
}

// Close closes the store if it was built
func (l *LazyEngagementRepository) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.repo == nil {
		return nil
	}
	err := l.repo.Close()
	l.repo = nil
	return err
}
