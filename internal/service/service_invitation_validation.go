package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/invite-cards/internal/validators"
	"github.com/MKhiriev/invite-cards/models"
)

type InvitationValidationService struct {
	inner     InvitationService
	validator validators.Validator
}

func NewInvitationValidationService() InvitationServiceWrapper {
	return &InvitationValidationService{
		validator: validators.NewInvitationValidator(),
	}
}

func (v *InvitationValidationService) Get(ctx context.Context, id string) (models.InvitationRecord, error) {
	return v.inner.Get(ctx, id)
}

func (v *InvitationValidationService) Load(ctx context.Context, id string) ([]models.Field, error) {
	return v.inner.Load(ctx, id)
}

func (v *InvitationValidationService) Share(ctx context.Context, fields []models.Field, origin string) (models.ShareResult, error) {
	if err := v.validator.Validate(ctx, fields); err != nil {
		return models.ShareResult{}, fmt.Errorf("error during invitation validation before sharing: %w", err)
	}

	return v.inner.Share(ctx, fields, origin)
}

func (v *InvitationValidationService) Wrap(wrapped InvitationService) InvitationService {
	v.inner = wrapped
	return v
}
