package store

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/invite-cards/internal/logger"
)

// maxSQLAttempts bounds how often a retryable statement is executed.
const maxSQLAttempts = 3

var sqlRetryDelay = 100 * time.Millisecond

// sqlDocumentStore keeps every document as one row of the documents table.
type sqlDocumentStore struct {
	db     *DB
	now    func() time.Time
	logger *logger.Logger
}

// NewSQLDocumentStore constructs a [DocumentStore] on top of db. The table
// must already exist; see [DB.Migrate].
func NewSQLDocumentStore(db *DB, log *logger.Logger) DocumentStore {
	return &sqlDocumentStore{
		db:     db,
		now:    func() time.Time { return time.Now().UTC() },
		logger: log,
	}
}

func (s *sqlDocumentStore) Get(ctx context.Context, path string) ([]byte, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetDocumentQuery(s.db.builder(), path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var body string
	err = s.withRetry(ctx, func() error {
		return s.db.QueryRowContext(ctx, query, args...).Scan(&body)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		log.Err(err).Str("func", "sqlDocumentStore.Get").Str("path", path).Msg("failed to read document")
		return nil, fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, ErrScanningRow, err)
	}

	trimmed := bytes.TrimSpace([]byte(body))
	if len(trimmed) == 0 || bytes.Equal(trimmed, nullDocument) {
		return nil, nil
	}

	return trimmed, nil
}

func (s *sqlDocumentStore) Put(ctx context.Context, path string, body []byte) ([]byte, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildPutDocumentQuery(s.db.builder(), path, body, s.now())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = s.withRetry(ctx, func() error {
		_, execErr := s.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "sqlDocumentStore.Put").Str("path", path).Msg("failed to write document")
		return nil, fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, ErrExecutingQuery, err)
	}

	return body, nil
}

func (s *sqlDocumentStore) Close() error {
	return s.db.Close()
}

// withRetry runs op again while the classifier calls its error retryable.
func (s *sqlDocumentStore) withRetry(ctx context.Context, op func() error) error {
	var err error
	for attempt := 1; attempt <= maxSQLAttempts; attempt++ {
		err = op()
		if err == nil || errors.Is(err, sql.ErrNoRows) {
			return err
		}
		if s.db.errorClassificator == nil || s.db.errorClassificator.Classify(err) != Retryable {
			return err
		}
		if attempt == maxSQLAttempts {
			break
		}

		timer := time.NewTimer(time.Duration(attempt) * sqlRetryDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return errors.Join(err, ctx.Err())
		case <-timer.C:
		}
	}
	return err
}
