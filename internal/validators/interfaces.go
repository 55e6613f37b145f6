// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks invitation content before it is shared.
//
// A Validator reports only the first violated rule. Rule violations are
// returned as *FieldError values wrapping ErrValidationFailed so callers can
// both match the kind with errors.Is and show the field and message.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named rule groups.
	Validate(context.Context, any, ...string) error
}
