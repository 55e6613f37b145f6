package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/invite-cards/internal/logger"
	"github.com/MKhiriev/invite-cards/internal/service"
	"github.com/MKhiriev/invite-cards/internal/store"
	"github.com/MKhiriev/invite-cards/models"
)

// maxShareBodySize bounds POST /api/invites bodies.
const maxShareBodySize = 1 << 20

func (h *Handler) getInvitation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !store.ValidRecordID(id) {
		writeError(w, r, "*Handler.getInvitation", "invitation not found", service.ErrInvitationNotFound)
		return
	}

	fields, err := h.services.InvitationService.Load(r.Context(), id)
	if errors.Is(err, store.ErrStoreUnavailable) {
		writeError(w, r, "*Handler.getInvitation", "invitation store unavailable", store.ErrStoreUnavailable)
		return
	}
	if err != nil {
		writeError(w, r, "*Handler.getInvitation", "invitation not found", err)
		return
	}

	writeJSON(w, r, models.InvitationResponse{ID: id, Fields: fields}, http.StatusOK)
}

func (h *Handler) share(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.ShareRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxShareBodySize)).Decode(&req); err != nil {
		writeError(w, r, "*Handler.share", "Invalid JSON was passed", fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	origin := req.Origin
	if origin == "" {
		origin = r.Header.Get("Origin")
	}

	result, err := h.services.InvitationService.Share(r.Context(), req.Fields, origin)
	if err != nil {
		writeError(w, r, "*Handler.share", "error sharing invitation", err)
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}

	log.Debug().Str("func", "*Handler.share").Str("id", result.ID).Bool("created", result.Created).Send()
	writeJSON(w, r, result, status)
}
