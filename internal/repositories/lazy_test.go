package repositories

import (
	"context"
	"errors"
	"testing"

	"outreach-api/internal/models"
)

func TestLazyEngagementRepository(t *testing.T) {
	ctx := context.Background()
	row := (&models.EngagementEvent{District: 2}).ToRow()

	t.Run("BuildsOnceOnFirstInsert", func(t *testing.T) {
		builds := 0
		mock := NewMockEngagementRepository()
		lazy := NewLazyEngagementRepository("sb36_engagement", func(ctx context.Context) (EngagementRepository, error) {
			builds++
			return mock, nil
		})

		if builds != 0 {
			t.Fatal("Store should not be built before the first insert")
		}

		for i := 0; i < 2; i++ {
			if err := lazy.Insert(ctx, row); err != nil {
				t.Fatalf("Insert failed: %v", err)
			}
		}
		if builds != 1 {
			t.Errorf("Expected one build, got %d", builds)
		}
		if mock.Calls() != 2 {
			t.Errorf("Expected 2 inserts, got %d", mock.Calls())
		}

		if err := lazy.Close(); err != nil {
			t.Errorf("Close failed: %v", err)
		}
		if !mock.Closed() {
			t.Error("Expected built store to be closed")
		}
	})

	t.Run("BuildErrorSurfacedAndRetried", func(t *testing.T) {
		builds := 0
		buildErr := ConnectionError(errors.New("dial tcp 127.0.0.1:1: connect: connection refused"))
		lazy := NewLazyEngagementRepository("sb36_engagement", func(ctx context.Context) (EngagementRepository, error) {
			builds++
			return nil, buildErr
		})

		err := lazy.Insert(ctx, row)
		if err == nil {
			t.Fatal("Expected build error")
		}
		if err.Error() != buildErr.Error() {
			t.Errorf("Expected build message %q, got %q", buildErr.Error(), err.Error())
		}
		if !IsConnection(err) {
			t.Error("Expected connection error to stay detectable")
		}

		lazy.Insert(ctx, row)
		if builds != 2 {
			t.Errorf("Expected failed build to be retried, got %d builds", builds)
		}
	})

	t.Run("CloseWithoutBuild", func(t *testing.T) {
		lazy := NewLazyEngagementRepository("sb36_engagement", func(ctx context.Context) (EngagementRepository, error) {
			t.Fatal("Close should not build the store")
			return nil, nil
		})
		if err := lazy.Close(); err != nil {
			t.Errorf("Close failed: %v", err)
		}
	})
}
