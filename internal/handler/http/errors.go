// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidJSON is reported when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrMissingInvitationID is reported by the preview endpoint when the
	// id query parameter is absent.
	ErrMissingInvitationID = errors.New("invalid invitation URL")

	// ErrRateLimited is reported when a client exceeded the share rate.
	ErrRateLimited = errors.New("too many requests")
)
