package service

import (
	"github.com/MKhiriev/invite-cards/internal/config"
	"github.com/MKhiriev/invite-cards/internal/logger"
	"github.com/MKhiriev/invite-cards/internal/store"
)

type Services struct {
	AppInfoService    AppInfoService
	SettingsService   SettingsService
	InvitationService InvitationService
	AdminService      AdminService
	PreviewService    PreviewService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	settings := NewSettingsService(storages.Settings, cfg.App.SettingsTTL, logger)

	invitations := NewInvitationValidationService().
		Wrap(NewInvitationService(storages.Records, settings, cfg.App.PublicOrigin, logger))

	return &Services{
		AppInfoService:    appInfo,
		SettingsService:   settings,
		InvitationService: invitations,
		AdminService:      NewAdminService(cfg.App, storages.Settings, settings, logger),
		PreviewService:    NewPreviewService(invitations, logger),
	}, nil
}
