package store

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/invite-cards/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// DocumentStore is a key-value store of JSON documents addressed by
// slash-separated paths such as "invites/k3ofol" or "settings/protectedFields".
//
// Get returns (nil, nil) for an absent document. Every transport or backend
// failure is wrapped with ErrStoreUnavailable.
type DocumentStore interface {
	Get(ctx context.Context, path string) ([]byte, error)
	// Put replaces the document at path and returns the stored body.
	Put(ctx context.Context, path string, body []byte) ([]byte, error)
	Close() error
}

// RecordStorage persists invitation records keyed by their content hash.
type RecordStorage interface {
	// GetRecord returns the raw record, ErrRecordNotFound when absent, or an
	// error wrapping ErrStoreUnavailable.
	GetRecord(ctx context.Context, id string) (*models.RawRecord, error)
	// Exists reports whether a decodable record is stored under id.
	Exists(ctx context.Context, id string) (bool, error)
	PutRecord(ctx context.Context, id string, record models.InvitationRecord) error
}

// SettingsStorage reads and writes the settings documents.
type SettingsStorage interface {
	// GetDefaultTemplate returns ErrSettingNotFound when the document is
	// absent and ErrMalformedSetting when it has no fields array.
	GetDefaultTemplate(ctx context.Context) ([]models.Field, error)
	GetProtectedFields(ctx context.Context) ([]string, error)
	GetSetting(ctx context.Context, kind models.SettingKind) (json.RawMessage, error)
	PutSetting(ctx context.Context, kind models.SettingKind, data json.RawMessage) (json.RawMessage, error)
}
