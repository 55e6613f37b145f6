package models

import "time"

// ShareRequest is the body of POST /api/invites.
type ShareRequest struct {
	Fields []Field `json:"fields" yaml:"fields"`
	// Origin overrides the public origin used to build the share URL.
	// The server falls back to its configured origin when empty.
	Origin string `json:"origin,omitempty" yaml:"origin,omitempty"`
}

// ShareResult describes a shared invitation.
type ShareResult struct {
	ID  string `json:"id"`
	URL string `json:"url"`
	// Created is false when a record with the same content already existed
	// and nothing was written.
	Created bool `json:"created"`
}

// InvitationResponse is the body of GET /api/invites/{id}.
type InvitationResponse struct {
	ID     string  `json:"id"`
	Fields []Field `json:"fields"`
}

// ValidationErrorResponse reports the first violated validation rule.
type ValidationErrorResponse struct {
	Error   string `json:"error"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse is a generic JSON error body.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// AdminStatus is the body of GET /api/admin/check.
type AdminStatus struct {
	User    string `json:"user,omitempty"`
	IsAdmin bool   `json:"isAdmin"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// AppVersion is the body of GET /api/version.
type AppVersion struct {
	Version string `json:"version"`
}

// Preview holds the social-preview metadata for one invitation.
type Preview struct {
	ID          string
	Found       bool
	Title       string
	Description string
	Event       string
	From        string
	PageURL     string
	ImageURL    string
	UpdatedAt   time.Time
}

// OGImageParams are the query parameters of GET /api/og-image.
type OGImageParams struct {
	Event    string
	Date     string
	Location string
}
