package http

import (
	"net/http"

	"github.com/MKhiriev/invite-cards/internal/logger"
)

// getDefaults answers with the template for a new invitation. The
// response is never an error while the request is alive; a failing
// settings store yields the built-in template with fallback=true.
func (h *Handler) getDefaults(w http.ResponseWriter, r *http.Request) {
	draft, err := h.services.SettingsService.Draft(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.getDefaults", "error loading defaults", err)
		return
	}

	if draft.Fallback {
		logger.FromRequest(r).Debug().Str("func", "*Handler.getDefaults").Msg("serving built-in template")
	}

	writeJSON(w, r, draft, http.StatusOK)
}
