// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// Storage drivers understood by the store package.
const (
	// DriverFirebase stores documents in a Firebase Realtime Database (or any
	// service speaking its REST dialect) over HTTP.
	DriverFirebase = "firebase"
	// DriverSQL stores documents in a single SQL table (PostgreSQL or SQLite).
	DriverSQL = "sql"
)

// StructuredConfig is the top-level configuration container.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: version, admin allow-list,
	// public origin and settings caching.
	App App `envPrefix:"APP_"`
	// Storage selects and configures the document store backend.
	Storage Storage `envPrefix:"STORAGE_"`
	// Server holds HTTP listener settings.
	Server Server `envPrefix:"SERVER_"`
	// Adapter holds the address of a running server, used by the CLI.
	Adapter Adapter `envPrefix:"ADAPTER_"`
	// Workers holds configuration for background workers.
	Workers Workers `envPrefix:"WORKERS_"`
	// JSONFilePath is the optional path to a JSON configuration file.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is reported by GET /api/version.
	Version string `env:"VERSION"`
	// LogLevel is a zerolog level name (debug, info, warn, error).
	LogLevel string `env:"LOG_LEVEL"`
	// PublicOrigin is the scheme://host prefix of share links when the
	// request does not supply its own origin.
	PublicOrigin string `env:"PUBLIC_ORIGIN"`
	// AdminEmails is the case-insensitive allow-list of admin e-mails.
	AdminEmails []string `env:"ADMIN_EMAILS" envSeparator:","`
	// AuthHeader is the request header carrying the authenticated user's
	// e-mail, set by the fronting proxy.
	AuthHeader string `env:"AUTH_HEADER"`
	// SettingsTTL is how long a loaded settings snapshot is reused.
	// A negative value disables caching.
	SettingsTTL time.Duration `env:"SETTINGS_TTL"`
}

// Storage groups the configuration of the document store.
type Storage struct {
	// Driver is DriverFirebase or DriverSQL.
	Driver string `env:"DRIVER"`
	// Firebase configures the HTTP document driver.
	Firebase Firebase `envPrefix:"FIREBASE_"`
	// DB configures the SQL document driver.
	DB DB `envPrefix:"DB_"`
}

// Firebase configures access to the realtime JSON database.
type Firebase struct {
	// URL is the database root, e.g. https://my-db.firebaseio.com.
	URL string `env:"URL"`
	// AuthToken is sent as the "auth" query parameter when non-empty.
	AuthToken string `env:"AUTH"`
	// RequestTimeout bounds every outbound call.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// DB configures the SQL document driver.
type DB struct {
	// DSN is a postgres:// URL or a sqlite file path (file:... or *.db).
	DSN string `env:"DATABASE_URI"`
}

// Server holds HTTP listener settings.
type Server struct {
	HTTPAddress     string        `env:"ADDRESS"`
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
	// ShareRateLimit is the number of share requests allowed per client IP
	// per minute. A negative value disables the limiter.
	ShareRateLimit int `env:"SHARE_RATE_LIMIT"`
}

// Adapter points the CLI at a running server.
type Adapter struct {
	HTTPAddress    string        `env:"ADDRESS"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background workers.
type Workers struct {
	// SettingsRefreshInterval is the period of the settings refresher.
	// A negative value disables the worker.
	SettingsRefreshInterval time.Duration `env:"SETTINGS_REFRESH_INTERVAL"`
}

// GetStructuredConfig builds the server configuration from environment
// variables, command-line flags, an optional JSON file and defaults.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		withDefaults().
		build()
}

// GetCLIConfig builds the CLI configuration from environment variables, the
// given JSON file (may be empty) and defaults. The CLI binds its own flags.
// Storage settings are not validated; see [StructuredConfig.ValidateStorage].
func GetCLIConfig(jsonFilePath string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withoutStorageCheck().
		withEnv().
		withConfig(&StructuredConfig{JSONFilePath: jsonFilePath}).
		withJSON().
		withDefaults().
		build()
}
