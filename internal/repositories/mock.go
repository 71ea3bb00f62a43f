package repositories

import (
	"context"
	"sync"

	"outreach-api/internal/models"
)

// MockEngagementRepository is an in-memory EngagementRepository for testing
type MockEngagementRepository struct {
	mu     sync.RWMutex
	rows   []models.EngagementRow
	calls  int
	closed bool

	// InsertErr, when set, is returned by every Insert call
	InsertErr error
}

// NewMockEngagementRepository creates a new MockEngagementRepository instance
func NewMockEngagementRepository() *MockEngagementRepository {
	return &MockEngagementRepository{}
}

// Insert implements EngagementRepository.Insert
func (m *MockEngagementRepository) Insert(ctx context.Context, row *models.EngagementRow) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls++
	if m.InsertErr != nil {
		return m.InsertErr
	}

	m.rows = append(m.rows, *row)
	return nil
}

// Close implements EngagementRepository.Close
func (m *MockEngagementRepository) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Rows returns a copy of the rows inserted so far
func (m *MockEngagementRepository) Rows() []models.EngagementRow {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]models.EngagementRow(nil), m.rows...)
}

// Calls returns how many times Insert was invoked, including failed calls
func (m *MockEngagementRepository) Calls() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.calls
}

// Closed reports whether Close was called
func (m *MockEngagementRepository) Closed() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.closed
}
