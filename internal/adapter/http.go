package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/invite-cards/internal/config"
	"github.com/MKhiriev/invite-cards/internal/logger"
	"github.com/MKhiriev/invite-cards/internal/utils"
	"github.com/MKhiriev/invite-cards/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	authHeader string

	mu       sync.RWMutex
	identity string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP implementation of [ServerAdapter]
// for the server at adapterCfg.HTTPAddress. authHeader names the request
// header that carries the caller's e-mail on admin requests.
//
// Returns an error if the address is empty or not a valid URL.
func NewHTTPServerAdapter(adapterCfg config.Adapter, authHeader string, logger *logger.Logger) (ServerAdapter, error) {
	client, err := utils.NewHTTPClient(adapterCfg.HTTPAddress, adapterCfg.RequestTimeout)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{client: client, authHeader: authHeader, logger: logger}, nil
}

func (h *httpServerAdapter) SetIdentity(email string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.identity = strings.TrimSpace(email)
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	var v models.AppVersion
	if err := h.getJSON(h.client.R().SetContext(ctx), "/api/version", &v); err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	return v.Version, nil
}

func (h *httpServerAdapter) Defaults(ctx context.Context) (models.Defaults, error) {
	var d models.Defaults
	if err := h.getJSON(h.client.R().SetContext(ctx), "/api/defaults", &d); err != nil {
		return models.Defaults{}, fmt.Errorf("defaults request: %w", err)
	}
	return d, nil
}

func (h *httpServerAdapter) Share(ctx context.Context, req models.ShareRequest) (models.ShareResult, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/invites")
	if err != nil {
		return models.ShareResult{}, fmt.Errorf("share request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ShareResult{}, err
	}

	var result models.ShareResult
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return models.ShareResult{}, fmt.Errorf("decode share response: %w", err)
	}

	h.logger.Debug().Str("id", result.ID).Bool("created", result.Created).Msg("invitation shared")
	return result, nil
}

func (h *httpServerAdapter) Invitation(ctx context.Context, id string) (models.InvitationResponse, error) {
	var inv models.InvitationResponse
	if err := h.getJSON(h.client.R().SetContext(ctx), "/api/invites/"+url.PathEscape(id), &inv); err != nil {
		return models.InvitationResponse{}, fmt.Errorf("get invitation %q: %w", id, err)
	}
	return inv, nil
}

func (h *httpServerAdapter) AdminCheck(ctx context.Context) (models.AdminStatus, error) {
	var status models.AdminStatus
	if err := h.getJSON(h.authedRequest(ctx), "/api/admin/check", &status); err != nil {
		return models.AdminStatus{}, fmt.Errorf("admin check request: %w", err)
	}
	return status, nil
}

func (h *httpServerAdapter) UpdateSetting(ctx context.Context, update models.SettingUpdate) (models.SettingUpdateResult, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(update).
		Post("/api/admin/update")
	if err != nil {
		return models.SettingUpdateResult{}, fmt.Errorf("update setting request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SettingUpdateResult{}, err
	}

	var result models.SettingUpdateResult
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return models.SettingUpdateResult{}, fmt.Errorf("decode update response: %w", err)
	}
	return result, nil
}

func (h *httpServerAdapter) getJSON(req *resty.Request, path string, dst any) error {
	resp, err := req.Get(path)
	if err != nil {
		return err
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}
	if err = json.Unmarshal(resp.Body(), dst); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)

	h.mu.RLock()
	identity := h.identity
	h.mu.RUnlock()

	if identity != "" && h.authHeader != "" {
		req.SetHeader(h.authHeader, identity)
	}
	return req
}
