package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrInvitationNotFound wraps both store.ErrRecordNotFound and
	// store.ErrStoreUnavailable; use errors.Is on those for diagnostics.
	ErrInvitationNotFound = errors.New("invitation not found")

	// ErrShareFailed is returned when a shared invitation could not be stored.
	ErrShareFailed = errors.New("invitation could not be shared")

	// ErrSettingsUnavailable is returned when settings cannot be read or
	// written and no fallback applies.
	ErrSettingsUnavailable   = errors.New("settings unavailable")
	ErrSettingsAlreadySeeded = errors.New("settings already exist")

	ErrNotAuthenticated  = errors.New("not authenticated")
	ErrNotAdmin          = errors.New("admin access required")
	ErrMissingUpdateData = errors.New("missing template data or update type")
	ErrInvalidUpdateType = errors.New("invalid update type")
	ErrInvalidSetting    = errors.New("invalid setting data")
)
