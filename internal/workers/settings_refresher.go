package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/invite-cards/internal/logger"
	"github.com/MKhiriev/invite-cards/internal/service"
)

// SettingsRefresher reloads the cached default template on a fixed
// interval, so request handlers rarely pay for a settings fetch.
type SettingsRefresher struct {
	settings service.SettingsService
	interval time.Duration

	logger *logger.Logger
}

func NewSettingsRefresher(settings service.SettingsService, interval time.Duration, logger *logger.Logger) *SettingsRefresher {
	return &SettingsRefresher{
		settings: settings,
		interval: interval,
		logger:   logger,
	}
}

// Run refreshes once immediately and then on every tick until ctx is done.
func (s *SettingsRefresher) Run(ctx context.Context) {
	s.logger.Info().Dur("interval", s.interval).Msg("settings refresher started")

	s.refresh(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("settings refresher stopped")
			return
		case <-ticker.C:
			s.refresh(ctx)
		}
	}
}

func (s *SettingsRefresher) refresh(parent context.Context) {
	// a slow store must not hold the next tick
	ctx, cancel := context.WithTimeout(parent, s.interval)
	defer cancel()

	if err := s.settings.Refresh(ctx); err != nil {
		if parent.Err() != nil {
			return
		}
		s.logger.Warn().Err(err).Str("func", "SettingsRefresher.refresh").Msg("settings refresh failed, keeping previous snapshot")
		return
	}

	s.logger.Debug().Str("func", "SettingsRefresher.refresh").Msg("settings refreshed")
}
