package postgres

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"outreach-api/internal/models"
	"outreach-api/internal/repositories"
)

func TestInsertStatement(t *testing.T) {
	row := (&models.EngagementEvent{}).ToRow()

	got := InsertStatement("sb36_engagement", row.Columns())
	want := `INSERT INTO "sb36_engagement" (district, bill_number, stance, template_name, action_type, legislator_name, legislator_chamber, contact_mode, agency) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	if got != want {
		t.Errorf("InsertStatement mismatch\n got: %s\nwant: %s", got, want)
	}
}

func TestInsertStatement_QuotesTable(t *testing.T) {
	got := InsertStatement(`odd"name`, []string{"district"})
	if got != `INSERT INTO "odd""name" (district) VALUES ($1)` {
		t.Errorf("Unexpected statement %s", got)
	}
}

func TestNewEngagementRepository_RequiresURL(t *testing.T) {
	_, err := NewEngagementRepository(context.Background(), "", "sb36_engagement", nil)
	if !errors.Is(err, repositories.ErrNotConfigured) {
		t.Errorf("Expected ErrNotConfigured, got %v", err)
	}
}

func TestNewEngagementRepository_InvalidURL(t *testing.T) {
	_, err := NewEngagementRepository(context.Background(), "not a connection string", "sb36_engagement", nil)
	if err == nil {
		t.Fatal("Expected error for invalid connection string")
	}
	if !repositories.IsConnection(err) {
		t.Errorf("Expected connection error, got %v", err)
	}
}

func TestEnsureSchema_RejectsCustomTable(t *testing.T) {
	repo := &EngagementRepository{table: "custom_events"}

	if err := repo.EnsureSchema(context.Background()); err == nil {
		t.Error("Expected error for non-default table")
	}
}

func TestEngagementRepository_InsertUnreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	repo, err := NewEngagementRepository(ctx, "postgres://u:p@127.0.0.1:1/db?connect_timeout=2", "sb36_engagement", nil)
	if err != nil {
		t.Fatalf("Constructor should not connect: %v", err)
	}
	defer repo.Close()

	err = repo.Insert(ctx, (&models.EngagementEvent{}).ToRow())
	if err == nil {
		t.Fatal("Expected insert against an unreachable database to fail")
	}
	if !strings.Contains(err.Error(), "connect") {
		t.Errorf("Expected the driver's connection message, got %q", err.Error())
	}
}
