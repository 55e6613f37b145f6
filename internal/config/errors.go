package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrInvalidStorageConfigs indicates an unknown storage driver or a
	// driver without its connection settings.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid HTTP listener settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a public origin that is not an absolute URL).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidAdapterConfigs indicates the CLI has no server to talk to.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
