package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/invite-cards/internal/logger"
	"github.com/MKhiriev/invite-cards/models"
)

type settingsStorage struct {
	docs   DocumentStore
	logger *logger.Logger
}

// NewSettingsStorage returns a [SettingsStorage] keeping every kind under
// "settings/{kind}" of docs.
func NewSettingsStorage(docs DocumentStore, log *logger.Logger) SettingsStorage {
	return &settingsStorage{docs: docs, logger: log}
}

func (s *settingsStorage) GetDefaultTemplate(ctx context.Context) ([]models.Field, error) {
	body, err := s.GetSetting(ctx, models.SettingDefaultTemplate)
	if err != nil {
		return nil, err
	}

	var template struct {
		Fields []models.Field `json:"fields"`
	}
	if err = json.Unmarshal(body, &template); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMalformedSetting, models.SettingDefaultTemplate, err)
	}
	if len(template.Fields) == 0 {
		return nil, fmt.Errorf("%w: %s has no fields", ErrMalformedSetting, models.SettingDefaultTemplate)
	}

	return template.Fields, nil
}

func (s *settingsStorage) GetProtectedFields(ctx context.Context) ([]string, error) {
	body, err := s.GetSetting(ctx, models.SettingProtectedFields)
	if err != nil {
		return nil, err
	}

	var ids []string
	if err = json.Unmarshal(body, &ids); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMalformedSetting, models.SettingProtectedFields, err)
	}

	return ids, nil
}

func (s *settingsStorage) GetSetting(ctx context.Context, kind models.SettingKind) (json.RawMessage, error) {
	body, err := s.docs.Get(ctx, settingPath(kind))
	if err != nil {
		return nil, err
	}
	if body == nil {
		return nil, fmt.Errorf("%w: %s", ErrSettingNotFound, kind)
	}

	return body, nil
}

func (s *settingsStorage) PutSetting(ctx context.Context, kind models.SettingKind, data json.RawMessage) (json.RawMessage, error) {
	if !json.Valid(data) {
		return nil, fmt.Errorf("%w: %s is not valid json", ErrMalformedSetting, kind)
	}

	echo, err := s.docs.Put(ctx, settingPath(kind), data)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "settingsStorage.PutSetting").
			Str("kind", string(kind)).
			Msg("failed to write setting")
		return nil, err
	}

	return echo, nil
}
