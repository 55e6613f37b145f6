package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/invite-cards/internal/config"
	"github.com/MKhiriev/invite-cards/internal/logger"
	"github.com/MKhiriev/invite-cards/internal/service"
	"github.com/MKhiriev/invite-cards/models"
)

// ── fakes ────────────────────────────────────────────────────────────────────

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(context.Context) string { return m.version }

type mockSettingsService struct {
	DraftFunc func(ctx context.Context) (models.Defaults, error)
}

func (m *mockSettingsService) Defaults(ctx context.Context) (models.Defaults, error) {
	return m.Draft(ctx)
}

func (m *mockSettingsService) Draft(ctx context.Context) (models.Defaults, error) {
	if m.DraftFunc != nil {
		return m.DraftFunc(ctx)
	}
	return models.Defaults{Fields: models.FallbackTemplate(), ProtectedFields: models.FallbackProtectedFields(), Fallback: true}, nil
}

func (m *mockSettingsService) Refresh(context.Context) error                     { return nil }
func (m *mockSettingsService) Invalidate()                                       {}
func (m *mockSettingsService) Seed(context.Context, models.Settings, bool) error { return nil }

type mockInvitationService struct {
	GetFunc   func(ctx context.Context, id string) (models.InvitationRecord, error)
	ShareFunc func(ctx context.Context, fields []models.Field, origin string) (models.ShareResult, error)
}

func (m *mockInvitationService) Get(ctx context.Context, id string) (models.InvitationRecord, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return models.InvitationRecord{}, service.ErrInvitationNotFound
}

func (m *mockInvitationService) Load(ctx context.Context, id string) ([]models.Field, error) {
	record, err := m.Get(ctx, id)
	return record.Fields, err
}

func (m *mockInvitationService) Share(ctx context.Context, fields []models.Field, origin string) (models.ShareResult, error) {
	if m.ShareFunc != nil {
		return m.ShareFunc(ctx, fields, origin)
	}
	return models.ShareResult{ID: "abc", URL: origin + "/invite/abc", Created: true}, nil
}

type mockPreviewService struct {
	PreviewFunc func(ctx context.Context, id, origin string) (models.Preview, error)
}

func (m *mockPreviewService) Preview(ctx context.Context, id, origin string) (models.Preview, error) {
	if m.PreviewFunc != nil {
		return m.PreviewFunc(ctx, id, origin)
	}
	return service.NotFoundPreview(id, origin), nil
}

// ── helpers ──────────────────────────────────────────────────────────────────

const (
	testAuthHeader = "X-Authenticated-User"
	testAdminEmail = "admin@example.com"
)

func testConfig() config.StructuredConfig {
	return config.StructuredConfig{
		App: config.App{
			AuthHeader:  testAuthHeader,
			AdminEmails: []string{testAdminEmail},
		},
		Server: config.Server{ShareRateLimit: 100},
	}
}

// testServices returns services backed by fakes. The admin service is real
// because it has no storage dependency on the read path.
func testServices(invitations *mockInvitationService) *service.Services {
	if invitations == nil {
		invitations = &mockInvitationService{}
	}
	settings := &mockSettingsService{}
	cfg := testConfig()

	return &service.Services{
		AppInfoService:    &mockAppInfoService{version: "test-version"},
		SettingsService:   settings,
		InvitationService: invitations,
		AdminService:      service.NewAdminService(cfg.App, nil, settings, logger.Nop()),
		PreviewService:    &mockPreviewService{},
	}
}

func newTestHandler(services *service.Services, cfg config.StructuredConfig) *Handler {
	if services == nil {
		services = testServices(nil)
	}
	return NewHandler(services, cfg, logger.Nop())
}

func newTestRouter(services *service.Services) http.Handler {
	return newTestHandler(services, testConfig()).Init()
}

func do(t *testing.T, router http.Handler, method, path string, body io.Reader, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func jsonBody(s string) io.Reader { return strings.NewReader(s) }
