package postgres

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"outreach-api/internal/config"
	"outreach-api/internal/models"
	"outreach-api/internal/repositories"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

// schemaSQL bootstraps the default engagement table.
//
//go:embed schema.sql
var schemaSQL string

// EngagementRepository writes engagement rows directly to Postgres
// (including a Supabase project's database)
type EngagementRepository struct {
	pool   *pgxpool.Pool
	table  string
	logger *logrus.Logger
}

// NewEngagementRepository creates a connection pool. No connection is made
// until the first query, so an unreachable database surfaces from Insert.
func NewEngagementRepository(ctx context.Context, dbURL, table string, logger *logrus.Logger) (*EngagementRepository, error) {
	if dbURL == "" {
		return nil, repositories.ErrNotConfigured
	}
	if logger == nil {
		logger = logrus.New()
	}

	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		return nil, repositories.ConnectionError(err)
	}

	return &EngagementRepository{pool: pool, table: table, logger: logger}, nil
}

// EnsureSchema creates the default table if missing. Safe to run multiple times.
func (r *EngagementRepository) EnsureSchema(ctx context.Context) error {
	if r.table != config.DefaultTrackingTable {
		return fmt.Errorf("schema bootstrap only supports the default table, got %q", r.table)
	}
	_, err := r.pool.Exec(ctx, schemaSQL)
	return err
}

// Insert writes one row
func (r *EngagementRepository) Insert(ctx context.Context, row *models.EngagementRow) error {
	_, err := r.pool.Exec(ctx, InsertStatement(r.table, row.Columns()), row.Values()...)
	if err == nil {
		return nil
	}

	message := err.Error()

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		r.logger.WithField("table", r.table).WithError(err).Error("Postgres unreachable")
		return repositories.InsertError(r.table, message, repositories.ConnectionError(err))
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		message = pgErr.Message
		r.logger.WithFields(logrus.Fields{
			"table":      r.table,
			"code":       pgErr.Code,
			"constraint": pgErr.ConstraintName,
		}).Error("Postgres insert rejected")
	}

	return repositories.InsertError(r.table, message, err)
}

// Close shuts down the connection pool
func (r *EngagementRepository) Close() error {
	r.pool.Close()
	return nil
}

// InsertStatement builds a parameterised INSERT for the given table and columns
func InsertStatement(table string, columns []string) string {
	placeholders := make([]string, len(columns))
	for i := range columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	return fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		pgx.Identifier{table}.Sanitize(),
		strings.Join(columns, ", "),
		strings.Join(placeholders, ", "),
	)
}
