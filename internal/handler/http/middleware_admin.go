package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/invite-cards/internal/logger"
	"github.com/MKhiriev/invite-cards/internal/service"
	"github.com/MKhiriev/invite-cards/internal/utils"
	"github.com/MKhiriev/invite-cards/models"
)

// withAuthenticatedUser reads the e-mail set by the upstream identity proxy
// from the configured header and stores it in the request context.
// Requests without it are rejected with 401.
func (h *Handler) withAuthenticatedUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email := strings.TrimSpace(r.Header.Get(h.authHeader))
		if email == "" {
			logger.FromRequest(r).Warn().Err(service.ErrNotAuthenticated).
				Str("func", "*Handler.withAuthenticatedUser").
				Str("header", h.authHeader).
				Send()
			writeJSON(w, r, h.services.AdminService.Status(""), http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithAuthenticatedUser(r.Context(), email)))
	})
}

// adminOnly must run after withAuthenticatedUser.
func (h *Handler) adminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, ok := utils.GetAuthenticatedUserFromContext(r.Context())
		if !ok {
			writeError(w, r, "*Handler.adminOnly", "Not authenticated", service.ErrNotAuthenticated)
			return
		}
		if !h.services.AdminService.IsAdmin(email) {
			logger.FromRequest(r).Warn().Str("func", "*Handler.adminOnly").Str("user", email).Msg("admin access denied")
			writeJSON(w, r, models.ErrorResponse{Error: "Admin access required"}, http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
