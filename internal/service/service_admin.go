package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/invite-cards/internal/config"
	"github.com/MKhiriev/invite-cards/internal/logger"
	"github.com/MKhiriev/invite-cards/internal/store"
	"github.com/MKhiriev/invite-cards/internal/validators"
	"github.com/MKhiriev/invite-cards/models"
)

const (
	msgAdminGranted = "Admin access granted"
	msgRegularUser  = "Regular user access"
	msgNotAuth      = "Not authenticated"

	// lastUpdatedAtLayout matches JavaScript's Date.toISOString.
	lastUpdatedAtLayout = "2006-01-02T15:04:05.000Z"
)

type adminService struct {
	app       config.App
	documents store.SettingsStorage
	settings  SettingsService
	validator validators.Validator

	now func() time.Time

	logger *logger.Logger
}

func NewAdminService(app config.App, documents store.SettingsStorage, settings SettingsService, logger *logger.Logger) AdminService {
	return &adminService{
		app:       app,
		documents: documents,
		settings:  settings,
		validator: validators.NewInvitationValidator(),
		now:       time.Now,
		logger:    logger,
	}
}

func (a *adminService) IsAdmin(email string) bool {
	return a.app.IsAdmin(email)
}

func (a *adminService) Status(email string) models.AdminStatus {
	email = strings.TrimSpace(email)
	if email == "" {
		return models.AdminStatus{IsAdmin: false, Error: msgNotAuth}
	}

	status := models.AdminStatus{User: email, IsAdmin: a.IsAdmin(email), Message: msgRegularUser}
	if status.IsAdmin {
		status.Message = msgAdminGranted
	}
	return status
}

func (a *adminService) UpdateSetting(ctx context.Context, email string, update models.SettingUpdate) (models.SettingUpdateResult, error) {
	log := logger.FromContext(ctx)

	email = strings.TrimSpace(email)
	if email == "" {
		return models.SettingUpdateResult{}, ErrNotAuthenticated
	}
	if !a.IsAdmin(email) {
		log.Warn().Str("func", "adminService.UpdateSetting").Str("user", email).Msg("non-admin tried to update settings")
		return models.SettingUpdateResult{}, ErrNotAdmin
	}

	data := bytes.TrimSpace(update.TemplateData)
	if update.UpdateType == "" || len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return models.SettingUpdateResult{}, ErrMissingUpdateData
	}
	if !update.UpdateType.Valid() {
		return models.SettingUpdateResult{}, fmt.Errorf("%w: %q", ErrInvalidUpdateType, update.UpdateType)
	}

	if err := a.checkSetting(ctx, update.UpdateType, data); err != nil {
		return models.SettingUpdateResult{}, err
	}

	stamped, err := stampSetting(data, email, a.now())
	if err != nil {
		return models.SettingUpdateResult{}, fmt.Errorf("%w: %w", ErrInvalidSetting, err)
	}

	echo, err := a.documents.PutSetting(ctx, update.UpdateType, stamped)
	if err != nil {
		return models.SettingUpdateResult{}, fmt.Errorf("%w: %w", ErrSettingsUnavailable, err)
	}

	a.settings.Invalidate()
	log.Info().Str("func", "adminService.UpdateSetting").
		Str("user", email).
		Str("kind", string(update.UpdateType)).
		Msg("setting updated")

	return models.SettingUpdateResult{
		Success:   true,
		Message:   fmt.Sprintf("%s updated successfully", update.UpdateType),
		UpdatedBy: email,
		Data:      echo,
	}, nil
}

// checkSetting rejects documents that would make the defaults loader fall
// back. fieldDefinitions is free-form.
func (a *adminService) checkSetting(ctx context.Context, kind models.SettingKind, data json.RawMessage) error {
	switch kind {
	case models.SettingDefaultTemplate:
		var template models.DefaultTemplate
		if err := json.Unmarshal(data, &template); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidSetting, err)
		}
		if err := a.validator.Validate(ctx, template.Fields, validators.RulesStructure); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidSetting, err)
		}
	case models.SettingProtectedFields:
		var ids []string
		if err := json.Unmarshal(data, &ids); err != nil {
			return fmt.Errorf("%w: protectedFields must be an array of ids: %w", ErrInvalidSetting, err)
		}
	}
	return nil
}

// stampSetting adds lastUpdatedBy and lastUpdatedAt to object documents.
// Arrays and scalars are stored unchanged.
func stampSetting(data json.RawMessage, email string, at time.Time) (json.RawMessage, error) {
	if len(data) == 0 || data[0] != '{' {
		return data, nil
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	by, _ := json.Marshal(email)
	when, _ := json.Marshal(at.UTC().Format(lastUpdatedAtLayout))
	doc["lastUpdatedBy"] = by
	doc["lastUpdatedAt"] = when

	return json.Marshal(doc)
}
