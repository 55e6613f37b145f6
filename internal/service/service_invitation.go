// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/invite-cards/internal/logger"
	"github.com/MKhiriev/invite-cards/internal/store"
	"github.com/MKhiriev/invite-cards/internal/utils"
	"github.com/MKhiriev/invite-cards/models"
)

const invitePathPrefix = "/invite/"

type invitationService struct {
	records  store.RecordStorage
	settings SettingsService

	publicOrigin string
	now          func() time.Time

	logger *logger.Logger
}

func NewInvitationService(records store.RecordStorage, settings SettingsService, publicOrigin string, logger *logger.Logger) InvitationService {
	return &invitationService{
		records:      records,
		settings:     settings,
		publicOrigin: strings.TrimRight(publicOrigin, "/"),
		now:          func() time.Time { return time.Now().UTC() },
		logger:       logger,
	}
}

func (s *invitationService) Get(ctx context.Context, id string) (models.InvitationRecord, error) {
	log := logger.FromContext(ctx)

	raw, err := s.records.GetRecord(ctx, id)
	if err != nil {
		log.Debug().Err(err).Str("func", "invitationService.Get").Str("id", id).Msg("record unavailable")
		return models.InvitationRecord{}, fmt.Errorf("%w: %w", ErrInvitationNotFound, err)
	}

	switch raw.Kind {
	case models.RecordCurrent:
		return *raw.Current, nil
	case models.RecordLegacy:
		defaults, err := s.settings.Defaults(ctx)
		if err != nil {
			return models.InvitationRecord{}, err
		}
		log.Debug().Str("func", "invitationService.Get").Str("id", id).
			Bool("fallback_template", defaults.Fallback).
			Msg("upgrading legacy record")
		return models.InvitationRecord{Fields: models.UpgradeLegacy(defaults.Fields, raw.Legacy)}, nil
	default:
		return models.InvitationRecord{}, fmt.Errorf("%w: unknown record kind %s", ErrInvitationNotFound, raw.Kind)
	}
}

func (s *invitationService) Load(ctx context.Context, id string) ([]models.Field, error) {
	record, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return record.Fields, nil
}

// Share is check-then-write. Two concurrent shares of the same content may
// both write; the payloads are identical so only createdAt differs.
func (s *invitationService) Share(ctx context.Context, fields []models.Field, origin string) (models.ShareResult, error) {
	log := logger.FromContext(ctx)

	id := utils.InviteID(fields)

	exists, err := s.records.Exists(ctx, id)
	if err != nil {
		return models.ShareResult{}, fmt.Errorf("%w: %w", ErrShareFailed, err)
	}

	if !exists {
		record := models.InvitationRecord{
			Fields:    models.CloneFields(fields),
			CreatedAt: s.now(),
		}
		if err = s.records.PutRecord(ctx, id, record); err != nil {
			return models.ShareResult{}, fmt.Errorf("%w: %w", ErrShareFailed, err)
		}
		log.Info().Str("func", "invitationService.Share").Str("id", id).Msg("invitation stored")
	}

	return models.ShareResult{
		ID:      id,
		URL:     s.shareURL(origin, id),
		Created: !exists,
	}, nil
}

// shareURL prefers a well-formed http(s) origin from the caller over the
// configured one.
func (s *invitationService) shareURL(origin, id string) string {
	base := s.publicOrigin
	if u, err := url.Parse(strings.TrimSpace(origin)); err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != "" {
		base = u.Scheme + "://" + u.Host
	}
	return base + invitePathPrefix + id
}
