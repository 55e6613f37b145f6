package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/invite-cards/internal/logger"
	"github.com/MKhiriev/invite-cards/internal/service"
	"github.com/MKhiriev/invite-cards/internal/store"
	"github.com/MKhiriev/invite-cards/internal/validators"
	"github.com/MKhiriev/invite-cards/models"
)

type errorStatus struct {
	err    error
	status int
}

// errorStatusMap is ordered: the first match wins. Service errors come
// before the store errors they wrap.
var errorStatusMap = []errorStatus{
	{service.ErrInvitationNotFound, http.StatusNotFound},
	{validators.ErrValidationFailed, http.StatusBadRequest},
	{service.ErrInvalidSetting, http.StatusBadRequest},
	{service.ErrMissingUpdateData, http.StatusBadRequest},
	{service.ErrInvalidUpdateType, http.StatusBadRequest},
	{service.ErrNotAuthenticated, http.StatusUnauthorized},
	{service.ErrNotAdmin, http.StatusForbidden},
	{service.ErrSettingsAlreadySeeded, http.StatusConflict},
	{service.ErrShareFailed, http.StatusBadGateway},
	{service.ErrSettingsUnavailable, http.StatusBadGateway},
	{ErrInvalidJSON, http.StatusBadRequest},
	{ErrMissingInvitationID, http.StatusBadRequest},
	{ErrRateLimited, http.StatusTooManyRequests},

	{store.ErrRecordNotFound, http.StatusNotFound},
	{store.ErrSettingNotFound, http.StatusNotFound},
	{store.ErrStoreUnavailable, http.StatusBadGateway},
	{store.ErrMalformedSetting, http.StatusBadGateway},
}

func statusFromError(err error) int {
	for _, e := range errorStatusMap {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and answers with the mapped status. Validation
// failures carry the offending field; other errors a short message.
func writeError(w http.ResponseWriter, r *http.Request, funcName, msg string, err error) {
	status := statusFromError(err)

	event := logger.FromRequest(r).Warn()
	if status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Str("func", funcName).Int("status", status).Msg(msg)

	var fieldErr *validators.FieldError
	if errors.As(err, &fieldErr) {
		writeJSON(w, r, models.ValidationErrorResponse{
			Error:   "Validation failed",
			Field:   fieldErr.Field,
			Message: fieldErr.Message,
		}, status)
		return
	}

	resp := models.ErrorResponse{Error: msg}
	if status < http.StatusInternalServerError {
		resp.Details = err.Error()
	}
	writeJSON(w, r, resp, status)
}
