// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/invite-cards/internal/config"
	"github.com/MKhiriev/invite-cards/internal/logger"
	"github.com/MKhiriev/invite-cards/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDocs is a DocumentStore whose behaviour is set per test.
type fakeDocs struct {
	getFunc func(ctx context.Context, path string) ([]byte, error)
	putFunc func(ctx context.Context, path string, body []byte) ([]byte, error)
}

func (f *fakeDocs) Get(ctx context.Context, path string) ([]byte, error) {
	return f.getFunc(ctx, path)
}

func (f *fakeDocs) Put(ctx context.Context, path string, body []byte) ([]byte, error) {
	return f.putFunc(ctx, path, body)
}

func (f *fakeDocs) Close() error { return nil }

func docsReturning(body string, err error) *fakeDocs {
	return &fakeDocs{getFunc: func(context.Context, string) ([]byte, error) {
		if body == "" {
			return nil, err
		}
		return []byte(body), err
	}}
}

var errBackend = errors.New("backend down")

// ── RecordStorage ────────────────────────────────────────────────────────────

func TestRecordStorage_GetRecordCurrent(t *testing.T) {
	var gotPath string
	docs := &fakeDocs{getFunc: func(_ context.Context, path string) ([]byte, error) {
		gotPath = path
		return []byte(`{"fields":[{"id":"event","type":"event","value":"Party","visible":true}],"createdAt":"2026-01-02T03:04:05Z"}`), nil
	}}
	records := NewRecordStorage(docs, logger.Nop())

	raw, err := records.GetRecord(context.Background(), "abc123")

	require.NoError(t, err)
	assert.Equal(t, "invites/abc123", gotPath)
	assert.Equal(t, models.RecordCurrent, raw.Kind)
	assert.Equal(t, "Party", raw.Current.Fields[0].Value)
	assert.Equal(t, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC), raw.Current.CreatedAt)
}

func TestRecordStorage_GetRecordLegacy(t *testing.T) {
	records := NewRecordStorage(docsReturning(`{"event":"Party","location":{"value":"Park"}}`, nil), logger.Nop())

	raw, err := records.GetRecord(context.Background(), "abc")

	require.NoError(t, err)
	assert.Equal(t, models.RecordLegacy, raw.Kind)
	assert.Equal(t, "Party", *raw.Legacy["event"].Value)
	assert.Equal(t, "Park", *raw.Legacy["location"].Value)
}

func TestRecordStorage_GetRecordErrors(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		docs    *fakeDocs
		wantErr error
	}{
		{name: "absent", id: "abc", docs: docsReturning("", nil), wantErr: ErrRecordNotFound},
		{name: "invalid id", id: "../settings", docs: docsReturning("", nil), wantErr: ErrRecordNotFound},
		{name: "malformed", id: "abc", docs: docsReturning(`[1,2]`, nil), wantErr: ErrRecordNotFound},
		{name: "backend", id: "abc", docs: docsReturning("", errors.Join(ErrStoreUnavailable, errBackend)), wantErr: ErrStoreUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRecordStorage(tt.docs, logger.Nop()).GetRecord(context.Background(), tt.id)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRecordStorage_Exists(t *testing.T) {
	ctx := context.Background()

	ok, err := NewRecordStorage(docsReturning(`{"fields":[]}`, nil), logger.Nop()).Exists(ctx, "abc")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = NewRecordStorage(docsReturning("", nil), logger.Nop()).Exists(ctx, "abc")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = NewRecordStorage(docsReturning("", ErrStoreUnavailable), logger.Nop()).Exists(ctx, "abc")
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestRecordStorage_ExistsIgnoresUndecodableBody(t *testing.T) {
	ctx := context.Background()

	for _, body := range []string{`"text"`, `[1,2]`, `{broken`, `null`} {
		ok, err := NewRecordStorage(docsReturning(body, nil), logger.Nop()).Exists(ctx, "abc")
		require.NoError(t, err, body)
		assert.False(t, ok, body)
	}
}

func TestRecordStorage_PutRecord(t *testing.T) {
	var gotPath string
	var gotBody []byte
	docs := &fakeDocs{putFunc: func(_ context.Context, path string, body []byte) ([]byte, error) {
		gotPath, gotBody = path, body
		return body, nil
	}}

	record := models.InvitationRecord{
		Fields:    []models.Field{{ID: "event", Type: models.FieldEvent, Value: "Party", Visible: true}},
		CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	err := NewRecordStorage(docs, logger.Nop()).PutRecord(context.Background(), "k3ofol", record)

	require.NoError(t, err)
	assert.Equal(t, "invites/k3ofol", gotPath)
	assert.JSONEq(t, `{"fields":[{"id":"event","type":"event","value":"Party","visible":true}],"createdAt":"2026-01-02T03:04:05Z"}`, string(gotBody))
}

func TestRecordStorage_PutRecordInvalidID(t *testing.T) {
	err := NewRecordStorage(&fakeDocs{}, logger.Nop()).PutRecord(context.Background(), "a/b", models.InvitationRecord{})

	assert.Error(t, err)
}

// ── SettingsStorage ──────────────────────────────────────────────────────────

func TestSettingsStorage_GetDefaultTemplate(t *testing.T) {
	var gotPath string
	docs := &fakeDocs{getFunc: func(_ context.Context, path string) ([]byte, error) {
		gotPath = path
		return []byte(`{"fields":[{"id":"title","type":"title","value":"Hi","visible":true}],"lastUpdatedBy":"a@b.c"}`), nil
	}}

	fields, err := NewSettingsStorage(docs, logger.Nop()).GetDefaultTemplate(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "settings/defaultTemplate", gotPath)
	assert.Equal(t, []models.Field{{ID: "title", Type: models.FieldTitle, Value: "Hi", Visible: true}}, fields)
}

func TestSettingsStorage_GetDefaultTemplateErrors(t *testing.T) {
	tests := []struct {
		name    string
		docs    *fakeDocs
		wantErr error
	}{
		{name: "absent", docs: docsReturning("", nil), wantErr: ErrSettingNotFound},
		{name: "not an object", docs: docsReturning(`"oops"`, nil), wantErr: ErrMalformedSetting},
		{name: "no fields", docs: docsReturning(`{"fields":[]}`, nil), wantErr: ErrMalformedSetting},
		{name: "backend", docs: docsReturning("", ErrStoreUnavailable), wantErr: ErrStoreUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSettingsStorage(tt.docs, logger.Nop()).GetDefaultTemplate(context.Background())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSettingsStorage_GetProtectedFields(t *testing.T) {
	ids, err := NewSettingsStorage(docsReturning(`["title","event"]`, nil), logger.Nop()).
		GetProtectedFields(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"title", "event"}, ids)

	_, err = NewSettingsStorage(docsReturning(`{"0":"title"}`, nil), logger.Nop()).
		GetProtectedFields(context.Background())
	assert.ErrorIs(t, err, ErrMalformedSetting)
}

func TestSettingsStorage_PutSetting(t *testing.T) {
	docs := &fakeDocs{putFunc: func(_ context.Context, path string, body []byte) ([]byte, error) {
		assert.Equal(t, "settings/fieldDefinitions", path)
		return body, nil
	}}
	settings := NewSettingsStorage(docs, logger.Nop())

	echo, err := settings.PutSetting(context.Background(), models.SettingFieldDefinitions, json.RawMessage(`{"a":1}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, string(echo))

	_, err = settings.PutSetting(context.Background(), models.SettingFieldDefinitions, json.RawMessage(`{`))
	assert.ErrorIs(t, err, ErrMalformedSetting)
}

// ── NewStorages ──────────────────────────────────────────────────────────────

func TestNewStorages_UnknownDriver(t *testing.T) {
	_, err := NewStorages(context.Background(), config.Storage{Driver: "mongo"}, logger.Nop())

	assert.ErrorIs(t, err, ErrUnknownDriver)
}

func TestNewStorages_SQLite(t *testing.T) {
	ctx := context.Background()
	dsn := "file:" + t.TempDir() + "/invites.db"

	storages, err := NewStorages(ctx, config.Storage{Driver: config.DriverSQL, DB: config.DB{DSN: dsn}}, logger.Nop())
	require.NoError(t, err)
	defer storages.Close()

	record := models.InvitationRecord{Fields: []models.Field{{ID: "event", Type: models.FieldEvent, Value: "Party", Visible: true}}}
	require.NoError(t, storages.Records.PutRecord(ctx, "abc", record))
	// upsert keeps one row per path
	require.NoError(t, storages.Records.PutRecord(ctx, "abc", record))

	raw, err := storages.Records.GetRecord(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, "Party", raw.Current.Fields[0].Value)

	ok, err := storages.Records.Exists(ctx, "zzz")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = storages.Settings.GetDefaultTemplate(ctx)
	assert.ErrorIs(t, err, ErrSettingNotFound)
}

func TestValidRecordID(t *testing.T) {
	assert.True(t, ValidRecordID("k3ofol"))
	assert.True(t, ValidRecordID("-NxA_b9"))
	assert.False(t, ValidRecordID(""))
	assert.False(t, ValidRecordID("a/b"))
	assert.False(t, ValidRecordID("a.json"))
}
