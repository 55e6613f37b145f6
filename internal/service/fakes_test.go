package service

import (
	"context"

	"github.com/MKhiriev/invite-cards/models"
)

// fakeSettings is a hand-written SettingsService whose behaviour is set per test.
type fakeSettings struct {
	DefaultsFunc   func(ctx context.Context) (models.Defaults, error)
	invalidateHits int
}

func (f *fakeSettings) Defaults(ctx context.Context) (models.Defaults, error) {
	if f.DefaultsFunc != nil {
		return f.DefaultsFunc(ctx)
	}
	return fallbackDefaults(), nil
}

func (f *fakeSettings) Draft(ctx context.Context) (models.Defaults, error) {
	d, err := f.Defaults(ctx)
	if err != nil {
		return d, err
	}
	d.Fields = models.ApplyProtection(d.Fields, d.ProtectedFields)
	return d, nil
}

func (f *fakeSettings) Refresh(context.Context) error { return nil }

func (f *fakeSettings) Invalidate() { f.invalidateHits++ }

func (f *fakeSettings) Seed(context.Context, models.Settings, bool) error { return nil }

// fakeInvitations is a hand-written InvitationService.
type fakeInvitations struct {
	GetFunc   func(ctx context.Context, id string) (models.InvitationRecord, error)
	ShareFunc func(ctx context.Context, fields []models.Field, origin string) (models.ShareResult, error)
}

func (f *fakeInvitations) Get(ctx context.Context, id string) (models.InvitationRecord, error) {
	if f.GetFunc != nil {
		return f.GetFunc(ctx, id)
	}
	return models.InvitationRecord{}, ErrInvitationNotFound
}

func (f *fakeInvitations) Load(ctx context.Context, id string) ([]models.Field, error) {
	r, err := f.Get(ctx, id)
	return r.Fields, err
}

func (f *fakeInvitations) Share(ctx context.Context, fields []models.Field, origin string) (models.ShareResult, error) {
	if f.ShareFunc != nil {
		return f.ShareFunc(ctx, fields, origin)
	}
	return models.ShareResult{}, nil
}
