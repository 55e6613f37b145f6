package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/MKhiriev/invite-cards/internal/config"
	"github.com/MKhiriev/invite-cards/internal/logger"
	"github.com/MKhiriev/invite-cards/internal/mock"
	"github.com/MKhiriev/invite-cards/internal/store"
	"github.com/MKhiriev/invite-cards/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testAdmin = "admin@example.com"

func newTestAdminSvc(t *testing.T) (*adminService, *mock.MockSettingsStorage, *fakeSettings) {
	t.Helper()
	ctrl := gomock.NewController(t)
	documents := mock.NewMockSettingsStorage(ctrl)
	settings := &fakeSettings{}
	app := config.App{AdminEmails: []string{"Admin@Example.com", "ops@example.com"}}

	svc := NewAdminService(app, documents, settings, logger.Nop()).(*adminService)
	svc.now = func() time.Time { return time.Date(2026, 3, 4, 5, 6, 7, 890_000_000, time.UTC) }
	return svc, documents, settings
}

func echoPut(_ context.Context, _ models.SettingKind, data json.RawMessage) (json.RawMessage, error) {
	return data, nil
}

// ── Status ───────────────────────────────────────────────────────────────────

func TestAdminService_Status(t *testing.T) {
	svc, _, _ := newTestAdminSvc(t)

	tests := []struct {
		name  string
		email string
		want  models.AdminStatus
	}{
		{name: "anonymous", email: "", want: models.AdminStatus{Error: "Not authenticated"}},
		{name: "blank", email: "   ", want: models.AdminStatus{Error: "Not authenticated"}},
		{name: "admin", email: testAdmin, want: models.AdminStatus{User: testAdmin, IsAdmin: true, Message: "Admin access granted"}},
		{name: "admin case-insensitive", email: "OPS@example.com", want: models.AdminStatus{User: "OPS@example.com", IsAdmin: true, Message: "Admin access granted"}},
		{name: "regular user", email: "guest@example.com", want: models.AdminStatus{User: "guest@example.com", Message: "Regular user access"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.Status(tt.email))
		})
	}
}

// ── UpdateSetting ────────────────────────────────────────────────────────────

func TestAdminService_UpdateSetting_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		update  models.SettingUpdate
		wantErr error
	}{
		{name: "anonymous", email: "", update: models.SettingUpdate{UpdateType: models.SettingProtectedFields, TemplateData: json.RawMessage(`[]`)}, wantErr: ErrNotAuthenticated},
		{name: "not admin", email: "guest@example.com", update: models.SettingUpdate{UpdateType: models.SettingProtectedFields, TemplateData: json.RawMessage(`[]`)}, wantErr: ErrNotAdmin},
		{name: "missing type", email: testAdmin, update: models.SettingUpdate{TemplateData: json.RawMessage(`[]`)}, wantErr: ErrMissingUpdateData},
		{name: "missing data", email: testAdmin, update: models.SettingUpdate{UpdateType: models.SettingProtectedFields}, wantErr: ErrMissingUpdateData},
		{name: "null data", email: testAdmin, update: models.SettingUpdate{UpdateType: models.SettingProtectedFields, TemplateData: json.RawMessage(`null`)}, wantErr: ErrMissingUpdateData},
		{name: "unknown type", email: testAdmin, update: models.SettingUpdate{UpdateType: "users", TemplateData: json.RawMessage(`{}`)}, wantErr: ErrInvalidUpdateType},
		{name: "protected not array", email: testAdmin, update: models.SettingUpdate{UpdateType: models.SettingProtectedFields, TemplateData: json.RawMessage(`{"a":1}`)}, wantErr: ErrInvalidSetting},
		{name: "template bad type", email: testAdmin, update: models.SettingUpdate{
			UpdateType:   models.SettingDefaultTemplate,
			TemplateData: json.RawMessage(`{"fields":[{"id":"x","type":"banner"}]}`),
		}, wantErr: ErrInvalidSetting},
		{name: "template empty", email: testAdmin, update: models.SettingUpdate{
			UpdateType:   models.SettingDefaultTemplate,
			TemplateData: json.RawMessage(`{"fields":[]}`),
		}, wantErr: ErrInvalidSetting},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, settings := newTestAdminSvc(t)

			_, err := svc.UpdateSetting(context.Background(), tt.email, tt.update)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, settings.invalidateHits)
		})
	}
}

func TestAdminService_UpdateSetting_StampsObjects(t *testing.T) {
	svc, documents, settings := newTestAdminSvc(t)

	var stored json.RawMessage
	documents.EXPECT().PutSetting(gomock.Any(), models.SettingDefaultTemplate, gomock.Any()).
		DoAndReturn(func(ctx context.Context, kind models.SettingKind, data json.RawMessage) (json.RawMessage, error) {
			stored = data
			return echoPut(ctx, kind, data)
		})

	body, err := json.Marshal(models.DefaultTemplate{Fields: storedTemplate()})
	require.NoError(t, err)

	got, err := svc.UpdateSetting(context.Background(), testAdmin, models.SettingUpdate{
		UpdateType:   models.SettingDefaultTemplate,
		TemplateData: body,
	})

	require.NoError(t, err)
	assert.True(t, got.Success)
	assert.Equal(t, "defaultTemplate updated successfully", got.Message)
	assert.Equal(t, testAdmin, got.UpdatedBy)
	assert.Equal(t, 1, settings.invalidateHits)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(stored, &doc))
	assert.Equal(t, testAdmin, doc["lastUpdatedBy"])
	assert.Equal(t, "2026-03-04T05:06:07.890Z", doc["lastUpdatedAt"])
	assert.Len(t, doc["fields"], 3)
	assert.JSONEq(t, string(stored), string(got.Data))
}

func TestAdminService_UpdateSetting_ArraysStoredAsIs(t *testing.T) {
	svc, documents, _ := newTestAdminSvc(t)

	documents.EXPECT().PutSetting(gomock.Any(), models.SettingProtectedFields, json.RawMessage(`["title","event"]`)).
		DoAndReturn(echoPut)

	got, err := svc.UpdateSetting(context.Background(), testAdmin, models.SettingUpdate{
		UpdateType:   models.SettingProtectedFields,
		TemplateData: json.RawMessage(` ["title","event"] `),
	})

	require.NoError(t, err)
	assert.JSONEq(t, `["title","event"]`, string(got.Data))
}

func TestAdminService_UpdateSetting_FieldDefinitionsFreeForm(t *testing.T) {
	svc, documents, _ := newTestAdminSvc(t)

	documents.EXPECT().PutSetting(gomock.Any(), models.SettingFieldDefinitions, gomock.Any()).DoAndReturn(echoPut)

	_, err := svc.UpdateSetting(context.Background(), testAdmin, models.SettingUpdate{
		UpdateType:   models.SettingFieldDefinitions,
		TemplateData: json.RawMessage(`{"anything":{"goes":true}}`),
	})

	require.NoError(t, err)
}

func TestAdminService_UpdateSetting_StoreFailure(t *testing.T) {
	svc, documents, settings := newTestAdminSvc(t)

	documents.EXPECT().PutSetting(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, store.ErrStoreUnavailable)

	_, err := svc.UpdateSetting(context.Background(), testAdmin, models.SettingUpdate{
		UpdateType:   models.SettingProtectedFields,
		TemplateData: json.RawMessage(`[]`),
	})

	assert.ErrorIs(t, err, ErrSettingsUnavailable)
	assert.ErrorIs(t, err, store.ErrStoreUnavailable)
	assert.Zero(t, settings.invalidateHits)
}
