package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/invite-cards/internal/logger"
	"github.com/MKhiriev/invite-cards/internal/store"
	"github.com/MKhiriev/invite-cards/models"
)

type settingDocument struct {
	kind models.SettingKind
	data any
}

type settingsService struct {
	settings store.SettingsStorage

	// ttl <= 0 disables the snapshot cache.
	ttl time.Duration
	now func() time.Time

	mu       sync.RWMutex
	snapshot *models.Defaults
	loadedAt time.Time

	logger *logger.Logger
}

func NewSettingsService(settings store.SettingsStorage, ttl time.Duration, logger *logger.Logger) SettingsService {
	return &settingsService{
		settings: settings,
		ttl:      ttl,
		now:      time.Now,
		logger:   logger,
	}
}

func (s *settingsService) Defaults(ctx context.Context) (models.Defaults, error) {
	if cached, ok := s.cached(); ok {
		return cached, nil
	}

	defaults, err := s.load(ctx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return models.Defaults{}, ctxErr
		}

		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "settingsService.Defaults").
			Msg("settings store unavailable, using built-in template")

		return fallbackDefaults(), nil
	}

	s.remember(defaults)
	return cloneDefaults(defaults), nil
}

func (s *settingsService) Draft(ctx context.Context) (models.Defaults, error) {
	defaults, err := s.Defaults(ctx)
	if err != nil {
		return models.Defaults{}, err
	}

	defaults.Fields = models.ApplyProtection(defaults.Fields, defaults.ProtectedFields)
	return defaults, nil
}

func (s *settingsService) Refresh(ctx context.Context) error {
	defaults, err := s.load(ctx)
	if err != nil {
		return err
	}

	s.remember(defaults)
	return nil
}

func (s *settingsService) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot = nil
	s.loadedAt = time.Time{}
}

func (s *settingsService) Seed(ctx context.Context, settings models.Settings, force bool) error {
	log := logger.FromContext(ctx)

	if !force {
		_, err := s.settings.GetSetting(ctx, models.SettingDefaultTemplate)
		switch {
		case err == nil:
			return ErrSettingsAlreadySeeded
		case !errors.Is(err, store.ErrSettingNotFound):
			return fmt.Errorf("%w: %w", ErrSettingsUnavailable, err)
		}
	}

	if len(settings.DefaultTemplate.Fields) == 0 {
		return fmt.Errorf("%w: default template has no fields", ErrInvalidSetting)
	}
	if settings.ProtectedFields == nil {
		settings.ProtectedFields = []string{}
	}

	documents := []settingDocument{
		{kind: models.SettingDefaultTemplate, data: settings.DefaultTemplate},
		{kind: models.SettingProtectedFields, data: settings.ProtectedFields},
	}
	if len(settings.FieldDefinitions) > 0 {
		documents = append(documents, settingDocument{kind: models.SettingFieldDefinitions, data: settings.FieldDefinitions})
	}

	for _, doc := range documents {
		body, err := json.Marshal(doc.data)
		if err != nil {
			return fmt.Errorf("error encoding %s: %w", doc.kind, err)
		}
		if _, err = s.settings.PutSetting(ctx, doc.kind, body); err != nil {
			return fmt.Errorf("%w: %w", ErrSettingsUnavailable, err)
		}
		log.Info().Str("func", "settingsService.Seed").Str("kind", string(doc.kind)).Msg("setting written")
	}

	s.Invalidate()
	return nil
}

// load fetches the template and the protected ids concurrently. Either
// failure fails the whole load.
func (s *settingsService) load(ctx context.Context) (models.Defaults, error) {
	var template []models.Field
	var protected []string

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		template, err = s.settings.GetDefaultTemplate(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		protected, err = s.settings.GetProtectedFields(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return models.Defaults{}, fmt.Errorf("%w: %w", ErrSettingsUnavailable, err)
	}

	if protected == nil {
		protected = []string{}
	}

	return models.Defaults{Fields: template, ProtectedFields: protected}, nil
}

func (s *settingsService) cached() (models.Defaults, bool) {
	if s.ttl <= 0 {
		return models.Defaults{}, false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.snapshot == nil || s.now().Sub(s.loadedAt) >= s.ttl {
		return models.Defaults{}, false
	}

	return cloneDefaults(*s.snapshot), true
}

func (s *settingsService) remember(defaults models.Defaults) {
	if s.ttl <= 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := cloneDefaults(defaults)
	s.snapshot = &snapshot
	s.loadedAt = s.now()
}

func fallbackDefaults() models.Defaults {
	return models.Defaults{
		Fields:          models.FallbackTemplate(),
		ProtectedFields: models.FallbackProtectedFields(),
		Fallback:        true,
	}
}

func cloneDefaults(d models.Defaults) models.Defaults {
	return models.Defaults{
		Fields:          models.CloneFields(d.Fields),
		ProtectedFields: slices.Clone(d.ProtectedFields),
		Fallback:        d.Fallback,
	}
}
