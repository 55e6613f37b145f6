package service

import (
	"context"

	"github.com/MKhiriev/invite-cards/models"
)

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// SettingsService resolves the field schema used to create and reconcile
// invitations.
type SettingsService interface {
	// Defaults returns the default template and protected ids. When the
	// settings store fails, the built-in fallback is returned with
	// Fallback set; an error is returned only for a cancelled context.
	Defaults(ctx context.Context) (models.Defaults, error)
	// Draft returns the template fields for a new invitation with every
	// protected field locked.
	Draft(ctx context.Context) (models.Defaults, error)
	// Refresh reloads the settings and replaces the cached snapshot. Unlike
	// Defaults it reports store failures and keeps the previous snapshot.
	Refresh(ctx context.Context) error
	// Invalidate drops the cached snapshot.
	Invalidate()
	// Seed writes the given settings. Existing settings are kept unless
	// force is set, in which case ErrSettingsAlreadySeeded is not returned.
	Seed(ctx context.Context, settings models.Settings, force bool) error
}

type InvitationService interface {
	// Get returns the reconciled record. Legacy records are upgraded onto
	// the current default template and carry a zero CreatedAt.
	Get(ctx context.Context, id string) (models.InvitationRecord, error)
	// Load returns the reconciled fields of the invitation.
	Load(ctx context.Context, id string) ([]models.Field, error)
	// Share stores fields under their content hash unless a record with the
	// same hash exists, and returns the share link.
	Share(ctx context.Context, fields []models.Field, origin string) (models.ShareResult, error)
}

// InvitationServiceWrapper defines middleware composition for InvitationService.
// Implementations wrap an existing InvitationService to add behavior such as
// validating.
type InvitationServiceWrapper interface {
	Wrap(InvitationService) InvitationService
}

type AdminService interface {
	IsAdmin(email string) bool
	Status(email string) models.AdminStatus
	UpdateSetting(ctx context.Context, email string, update models.SettingUpdate) (models.SettingUpdateResult, error)
}

type PreviewService interface {
	// Preview builds the social-preview metadata of an invitation. A missing
	// invitation gives Found=false and no error; a store failure gives the
	// generic preview together with the error.
	Preview(ctx context.Context, id, origin string) (models.Preview, error)
}
