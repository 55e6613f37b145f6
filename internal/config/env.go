// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from APP_, STORAGE_, SERVER_, ADAPTER_ and WORKERS_
// variables. Every malformed variable is reported, not only the first one.
func parseEnv(cfg *StructuredConfig) error {
	err := env.Parse(cfg)
	if err == nil {
		return nil
	}

	var aggErr env.AggregateError
	if errors.As(err, &aggErr) {
		return fmt.Errorf("error getting env configs: %w", errors.Join(aggErr.Errors...))
	}

	return fmt.Errorf("error getting env configs: %w", err)
}
