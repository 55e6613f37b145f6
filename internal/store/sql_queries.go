package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const documentsTable = "documents"

// upsertSuffix works on PostgreSQL and on SQLite 3.24+.
const upsertSuffix = "ON CONFLICT (path) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at"

func buildGetDocumentQuery(b sq.StatementBuilderType, path string) (string, []any, error) {
	return b.Select("body").
		From(documentsTable).
		Where(sq.Eq{"path": path}).
		ToSql()
}

func buildPutDocumentQuery(b sq.StatementBuilderType, path string, body []byte, now time.Time) (string, []any, error) {
	return b.Insert(documentsTable).
		Columns("path", "body", "updated_at").
		Values(path, string(body), now).
		Suffix(upsertSuffix).
		ToSql()
}
