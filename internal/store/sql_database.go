package store

import (
	"context"
	"database/sql"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/invite-cards/internal/logger"
	"github.com/MKhiriev/invite-cards/migrations"
)

// SQL dialects understood by the document driver.
const (
	dialectPostgres = "postgres"
	dialectSQLite   = "sqlite3"
)

// DB is a database handle together with the dialect-specific pieces the
// document driver needs.
type DB struct {
	*sql.DB
	dialect            string
	placeholder        sq.PlaceholderFormat
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnectSQL opens the database named by dsn. postgres:// and
// postgresql:// URLs use pgx; anything else is treated as a sqlite path.
func NewConnectSQL(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	if isPostgresDSN(dsn) {
		return NewConnectPostgres(ctx, dsn, log)
	}
	return NewConnectSQLite(ctx, dsn, log)
}

// Migrate applies the embedded migrations for the handle's dialect.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, db.dialect)
}

func (db *DB) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(db.placeholder)
}

func isPostgresDSN(dsn string) bool {
	dsn = strings.ToLower(strings.TrimSpace(dsn))
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}
