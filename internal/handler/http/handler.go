package http

import (
	"net/http"

	"github.com/MKhiriev/invite-cards/internal/config"
	"github.com/MKhiriev/invite-cards/internal/logger"
	"github.com/MKhiriev/invite-cards/internal/service"
	"github.com/MKhiriev/invite-cards/internal/utils"
)

type Handler struct {
	services *service.Services

	authHeader   string
	shareLimiter *rateLimiter

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:     services,
		authHeader:   cfg.App.AuthHeader,
		shareLimiter: newRateLimiter(cfg.Server.ShareRateLimit, shareRateWindow),
		logger:       logger,
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "writeJSON").Msg("error writing response")
	}
}
