package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/invite-cards/internal/utils"
	"github.com/MKhiriev/invite-cards/models"
)

// maxSettingBodySize bounds POST /api/admin/update bodies.
const maxSettingBodySize = 4 << 20

func (h *Handler) adminCheck(w http.ResponseWriter, r *http.Request) {
	email, _ := utils.GetAuthenticatedUserFromContext(r.Context())
	writeJSON(w, r, h.services.AdminService.Status(email), http.StatusOK)
}

func (h *Handler) adminUpdate(w http.ResponseWriter, r *http.Request) {
	email, _ := utils.GetAuthenticatedUserFromContext(r.Context())

	var update models.SettingUpdate
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxSettingBodySize)).Decode(&update); err != nil {
		writeError(w, r, "*Handler.adminUpdate", "Invalid JSON was passed", fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	result, err := h.services.AdminService.UpdateSetting(r.Context(), email, update)
	if err != nil {
		writeError(w, r, "*Handler.adminUpdate", "error updating settings", err)
		return
	}

	writeJSON(w, r, result, http.StatusOK)
}
