package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"outreach-api/internal/config"
	"outreach-api/internal/database"
	"outreach-api/internal/repositories/postgres"
)

func main() {
	var (
		backend     = flag.String("backend", config.BackendSQLite, "Tracking backend to migrate: sqlite or postgres")
		dbPath      = flag.String("db", "./data/engagement.db", "SQLite database file path")
		databaseURL = flag.String("database-url", os.Getenv("DATABASE_URL"), "Postgres connection string")
		action      = flag.String("action", "up", "Migration action: up, down, status")
		verbose     = flag.Bool("verbose", false, "Enable verbose logging")
	)
	flag.Parse()

	logger := logrus.New()
	if *verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	var err error
	switch *backend {
	case config.BackendSQLite:
		err = migrateSQLite(logger, *dbPath, *action)
	case config.BackendPostgres:
		err = migratePostgres(logger, *databaseURL, *action)
	default:
		logger.WithField("backend", *backend).Fatal("Unknown backend. Use: sqlite, postgres")
	}

	if err != nil {
		logger.WithError(err).WithField("action", *action).Fatal("Migration failed")
	}

	logger.Info("Migration tool completed successfully")
}

func migrateSQLite(logger *logrus.Logger, dbPath, action string) error {
	absDBPath, err := filepath.Abs(dbPath)
	if err != nil {
		return fmt.Errorf("failed to get absolute database path: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"db_path": absDBPath,
		"action":  action,
	}).Info("Starting migration tool")

	if err := os.MkdirAll(filepath.Dir(absDBPath), 0755); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}

	migrationManager := database.NewMigrationManager(absDBPath, logger)

	switch action {
	case "up":
		return migrationManager.RunMigrations()
	case "down":
		return migrationManager.RollbackMigration()
	case "status":
		status, err := migrationManager.GetMigrationStatus()
		if err != nil {
			return err
		}
		fmt.Printf("Migration Status:\n")
		fmt.Printf("  Version: %d\n", status.Version)
		fmt.Printf("  Applied: %t\n", status.Applied)
		fmt.Printf("  Dirty: %t\n", status.Dirty)
		return nil
	default:
		return fmt.Errorf("unknown action %q, use: up, down, status", action)
	}
}

// migratePostgres only supports creating the engagement table; hosted
// Supabase projects manage their schema through the dashboard
func migratePostgres(logger *logrus.Logger, databaseURL, action string) error {
	if action != "up" {
		return fmt.Errorf("postgres backend only supports the up action")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	repo, err := postgres.NewEngagementRepository(ctx, databaseURL, config.DefaultTrackingTable, logger)
	if err != nil {
		return err
	}
	defer repo.Close()

	return repo.EnsureSchema(ctx)
}
