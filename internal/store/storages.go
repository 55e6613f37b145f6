package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/invite-cards/internal/config"
	"github.com/MKhiriev/invite-cards/internal/logger"
)

// Storages bundles the storages built on one document store.
type Storages struct {
	Records  RecordStorage
	Settings SettingsStorage

	docs DocumentStore
}

// NewStorages opens the document store selected by cfg.Driver. The sql
// driver migrates its table before returning.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var docs DocumentStore

	switch cfg.Driver {
	case config.DriverFirebase:
		firebase, err := NewFirebaseDocumentStore(cfg.Firebase, log)
		if err != nil {
			return nil, err
		}
		docs = firebase
	case config.DriverSQL:
		db, err := NewConnectSQL(ctx, cfg.DB.DSN, log)
		if err != nil {
			return nil, err
		}
		if err = db.Migrate(ctx); err != nil {
			db.Close()
			return nil, err
		}
		docs = NewSQLDocumentStore(db, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}

	log.Info().Str("func", "store.NewStorages").Str("driver", cfg.Driver).Msg("document store ready")

	return NewStoragesWith(docs, log), nil
}

// NewStoragesWith builds the storages on an existing document store.
func NewStoragesWith(docs DocumentStore, log *logger.Logger) *Storages {
	return &Storages{
		Records:  NewRecordStorage(docs, log),
		Settings: NewSettingsStorage(docs, log),
		docs:     docs,
	}
}

// Close releases the underlying document store.
func (s *Storages) Close() error {
	if s.docs == nil {
		return nil
	}
	return s.docs.Close()
}
