package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/invite-cards/internal/service"
	"github.com/MKhiriev/invite-cards/internal/store"
	"github.com/MKhiriev/invite-cards/internal/validators"
	"github.com/MKhiriev/invite-cards/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoutes_UnknownPathsAndMethods(t *testing.T) {
	router := newTestRouter(nil)

	tests := []struct {
		name   string
		method string
		path   string
		want   int
	}{
		{name: "version", method: http.MethodGet, path: "/api/version", want: http.StatusOK},
		{name: "defaults", method: http.MethodGet, path: "/api/defaults", want: http.StatusOK},
		{name: "unknown path", method: http.MethodGet, path: "/api/nope", want: http.StatusNotFound},
		{name: "wrong method on version", method: http.MethodPost, path: "/api/version", want: http.StatusNotFound},
		{name: "wrong method on share", method: http.MethodPut, path: "/api/invites", want: http.StatusNotFound},
		{name: "wrong method on invite", method: http.MethodDelete, path: "/api/invites/abc", want: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, router, tt.method, tt.path, nil, nil)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestGetServerVersion(t *testing.T) {
	rec := do(t, newTestRouter(nil), http.MethodGet, "/api/version", nil, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"version":"test-version"}`, rec.Body.String())
}

func TestGetDefaults(t *testing.T) {
	t.Run("fallback template", func(t *testing.T) {
		rec := do(t, newTestRouter(nil), http.MethodGet, "/api/defaults", nil, nil)

		require.Equal(t, http.StatusOK, rec.Code)
		var got models.Defaults
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.True(t, got.Fallback)
		assert.Len(t, got.Fields, len(models.FallbackTemplate()))
	})

	t.Run("cancelled request", func(t *testing.T) {
		services := testServices(nil)
		services.SettingsService = &mockSettingsService{DraftFunc: func(context.Context) (models.Defaults, error) {
			return models.Defaults{}, context.Canceled
		}}

		rec := do(t, newTestRouter(services), http.MethodGet, "/api/defaults", nil, nil)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

// ── GET /api/invites/{id} ────────────────────────────────────────────────────

func TestGetInvitation(t *testing.T) {
	fields := []models.Field{{ID: "event", Type: models.FieldEvent, Value: "Party", Visible: true}}
	invitations := &mockInvitationService{GetFunc: func(_ context.Context, id string) (models.InvitationRecord, error) {
		switch id {
		case "abc":
			return models.InvitationRecord{Fields: fields}, nil
		case "down":
			return models.InvitationRecord{}, fmt.Errorf("%w: %w", service.ErrInvitationNotFound, store.ErrStoreUnavailable)
		default:
			return models.InvitationRecord{}, fmt.Errorf("%w: %w", service.ErrInvitationNotFound, store.ErrRecordNotFound)
		}
	}}
	router := newTestRouter(testServices(invitations))

	t.Run("found", func(t *testing.T) {
		rec := do(t, router, http.MethodGet, "/api/invites/abc", nil, nil)

		require.Equal(t, http.StatusOK, rec.Code)
		var got models.InvitationResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "abc", got.ID)
		assert.Equal(t, fields, got.Fields)
	})

	for _, id := range []string{"missing", "bad.id"} {
		t.Run(id, func(t *testing.T) {
			rec := do(t, router, http.MethodGet, "/api/invites/"+id, nil, nil)
			assert.Equal(t, http.StatusNotFound, rec.Code)
		})
	}

	t.Run("store down", func(t *testing.T) {
		rec := do(t, router, http.MethodGet, "/api/invites/down", nil, nil)

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		var got models.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "invitation store unavailable", got.Error)
		assert.Empty(t, got.Details)
	})
}

// ── POST /api/invites ────────────────────────────────────────────────────────

func TestShare(t *testing.T) {
	var gotOrigin string
	var created bool
	invitations := &mockInvitationService{ShareFunc: func(_ context.Context, fields []models.Field, origin string) (models.ShareResult, error) {
		gotOrigin = origin
		return models.ShareResult{ID: "k3ofol", URL: "https://cards.example.com/invite/k3ofol", Created: created}, nil
	}}
	router := newTestRouter(testServices(invitations))
	body := `{"fields":[{"id":"event","type":"event","value":"Birthday Bash","visible":true}]}`

	t.Run("created", func(t *testing.T) {
		created = true
		rec := do(t, router, http.MethodPost, "/api/invites", jsonBody(body), map[string]string{"Origin": "https://cards.example.com"})

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"id":"k3ofol","url":"https://cards.example.com/invite/k3ofol","created":true}`, rec.Body.String())
		assert.Equal(t, "https://cards.example.com", gotOrigin)
	})

	t.Run("already existed", func(t *testing.T) {
		created = false
		rec := do(t, router, http.MethodPost, "/api/invites", jsonBody(`{"fields":[],"origin":"http://localhost:3000"}`), nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "http://localhost:3000", gotOrigin)
	})

	t.Run("invalid json", func(t *testing.T) {
		rec := do(t, router, http.MethodPost, "/api/invites", jsonBody(`{"fields":`), nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid JSON was passed")
	})
}

func TestShare_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "validation",
			err:        fmt.Errorf("error during invitation validation before sharing: %w", &validators.FieldError{Field: "event", Message: "Event name is required and must be less than 100 characters"}),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Validation failed","field":"event","message":"Event name is required and must be less than 100 characters"}`,
		},
		{
			name:       "store down",
			err:        fmt.Errorf("%w: %w", service.ErrShareFailed, store.ErrStoreUnavailable),
			wantStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			invitations := &mockInvitationService{ShareFunc: func(context.Context, []models.Field, string) (models.ShareResult, error) {
				return models.ShareResult{}, tt.err
			}}

			rec := do(t, newTestRouter(testServices(invitations)), http.MethodPost, "/api/invites", jsonBody(`{"fields":[]}`), nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestShare_RateLimited(t *testing.T) {
	cfg := testConfig()
	cfg.Server.ShareRateLimit = 2
	router := newTestHandler(nil, cfg).Init()

	send := func(ip string) int {
		rec := do(t, router, http.MethodPost, "/api/invites", jsonBody(`{"fields":[]}`), map[string]string{"X-Real-IP": ip})
		return rec.Code
	}

	assert.Equal(t, http.StatusCreated, send("10.0.0.1"))
	assert.Equal(t, http.StatusCreated, send("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1"))
	// other clients have their own bucket
	assert.Equal(t, http.StatusCreated, send("10.0.0.2"))
}

func TestShare_RateLimitDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.Server.ShareRateLimit = -1
	h := newTestHandler(nil, cfg)
	router := h.Init()

	assert.Nil(t, h.shareLimiter)
	for range 5 {
		rec := do(t, router, http.MethodPost, "/api/invites", jsonBody(`{"fields":[]}`), nil)
		assert.Equal(t, http.StatusCreated, rec.Code)
	}
}

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{err: fmt.Errorf("%w: %w", service.ErrInvitationNotFound, store.ErrStoreUnavailable), want: http.StatusNotFound},
		{err: fmt.Errorf("%w: %w", service.ErrSettingsUnavailable, store.ErrStoreUnavailable), want: http.StatusBadGateway},
		{err: fmt.Errorf("%w: %w", service.ErrInvalidSetting, &validators.FieldError{}), want: http.StatusBadRequest},
		{err: service.ErrNotAdmin, want: http.StatusForbidden},
		{err: service.ErrNotAuthenticated, want: http.StatusUnauthorized},
		{err: ErrRateLimited, want: http.StatusTooManyRequests},
		{err: context.DeadlineExceeded, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}
