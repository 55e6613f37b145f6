// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validate checks that the final merged [StructuredConfig] can be used at
// startup. Errors wrap one of the ErrInvalid* sentinels.
func (cfg *StructuredConfig) validate() error {
	if err := cfg.ValidateStorage(); err != nil {
		return err
	}
	return cfg.validateClientSide()
}

// ValidateStorage checks the document store settings. The CLI calls it only
// for commands that open the store directly.
func (cfg *StructuredConfig) ValidateStorage() error {
	switch cfg.Storage.Driver {
	case DriverFirebase:
		if cfg.Storage.Firebase.URL == "" {
			return fmt.Errorf("%w: firebase driver needs STORAGE_FIREBASE_URL", ErrInvalidStorageConfigs)
		}
		if _, err := url.ParseRequestURI(cfg.Storage.Firebase.URL); err != nil {
			return fmt.Errorf("%w: firebase url: %w", ErrInvalidStorageConfigs, err)
		}
	case DriverSQL:
		if cfg.Storage.DB.DSN == "" {
			return fmt.Errorf("%w: sql driver needs STORAGE_DB_DATABASE_URI", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.Driver)
	}
	return nil
}

func (cfg *StructuredConfig) validateClientSide() error {
	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty http address", ErrInvalidServerConfigs)
	}

	if cfg.App.PublicOrigin != "" {
		u, err := url.Parse(cfg.App.PublicOrigin)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%w: public origin %q is not an absolute url", ErrInvalidAppConfigs, cfg.App.PublicOrigin)
		}
	}

	if strings.TrimSpace(cfg.App.AuthHeader) == "" {
		return fmt.Errorf("%w: empty auth header name", ErrInvalidAppConfigs)
	}

	if cfg.Adapter.HTTPAddress == "" {
		return ErrInvalidAdapterConfigs
	}

	return nil
}

// IsAdmin reports whether email is on the admin allow-list. The comparison
// ignores case and surrounding spaces.
func (a App) IsAdmin(email string) bool {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return false
	}
	for _, admin := range a.AdminEmails {
		if strings.ToLower(strings.TrimSpace(admin)) == email {
			return true
		}
	}
	return false
}
