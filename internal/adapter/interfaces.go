// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to a running invite-cards server over its JSON API.
//
// [ServerAdapter] is what the invitesctl command uses. Non-2xx responses are
// mapped by mapHTTPError onto the sentinel errors of this package so callers
// can branch with [errors.Is] (e.g. [ErrNotFound] for 404, [ErrRateLimited]
// for 429).
package adapter

import (
	"context"

	"github.com/MKhiriev/invite-cards/models"
)

// ServerAdapter is the client side of the invitation API.
type ServerAdapter interface {
	// SetIdentity sets the e-mail sent in the configured auth header on
	// admin requests. An empty identity sends no header.
	SetIdentity(email string)

	// Version returns the server's reported version.
	Version(ctx context.Context) (string, error)

	// Defaults fetches the field template a new invitation starts from.
	Defaults(ctx context.Context) (models.Defaults, error)

	// Share stores an invitation and returns its id and public URL.
	Share(ctx context.Context, req models.ShareRequest) (models.ShareResult, error)

	// Invitation fetches a shared invitation, already reconciled with the
	// server's current template.
	Invitation(ctx context.Context, id string) (models.InvitationResponse, error)

	// AdminCheck reports whether the current identity is an administrator.
	AdminCheck(ctx context.Context) (models.AdminStatus, error)

	// UpdateSetting replaces one settings document. Requires an admin identity.
	UpdateSetting(ctx context.Context, update models.SettingUpdate) (models.SettingUpdateResult, error)
}
