package http

import (
	"net/http"

	"github.com/MKhiriev/invite-cards/models"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	version := h.services.AppInfoService.GetAppVersion(r.Context())
	writeJSON(w, r, models.AppVersion{Version: version}, http.StatusOK)
}
