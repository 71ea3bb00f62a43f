package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"outreach-api/internal/models"
	"outreach-api/internal/repositories"

	"github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"
)

// EngagementRepository writes engagement rows to a local SQLite database.
// It is intended for development runs of the local server.
type EngagementRepository struct {
	db     *sql.DB
	table  string
	logger *logrus.Logger
}

// NewEngagementRepository creates a new SQLite engagement repository
func NewEngagementRepository(db *sql.DB, table string, logger *logrus.Logger) *EngagementRepository {
	if logger == nil {
		logger = logrus.New()
	}
	return &EngagementRepository{
		db:     db,
		table:  table,
		logger: logger,
	}
}

// Insert writes one row
func (r *EngagementRepository) Insert(ctx context.Context, row *models.EngagementRow) error {
	columns := row.Columns()
	query := fmt.Sprintf(
		`INSERT INTO %s (%s) VALUES (%s)`,
		quoteIdentifier(r.table),
		strings.Join(columns, ", "),
		strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", "),
	)

	if _, err := r.db.ExecContext(ctx, query, row.Values()...); err != nil {
		fields := logrus.Fields{"table": r.table}
		if sqliteErr, ok := err.(sqlite3.Error); ok {
			fields["code"] = sqliteErr.Code.Error()
		}
		r.logger.WithFields(fields).WithError(err).Error("SQLite insert failed")
		return repositories.InsertError(r.table, err.Error(), err)
	}

	return nil
}

// Close closes the underlying database
func (r *EngagementRepository) Close() error {
	return r.db.Close()
}

// quoteIdentifier quotes name as an SQL identifier, doubling embedded quotes
func quoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
