package config

import "time"

const (
	defaultHTTPAddress     = "localhost:8080"
	defaultPublicOrigin    = "http://localhost:8080"
	defaultAuthHeader      = "X-Authenticated-User"
	defaultLogLevel        = "info"
	defaultVersion         = "dev"
	defaultStorageTimeout  = 10 * time.Second
	defaultRequestTimeout  = 15 * time.Second
	defaultShutdownTimeout = 10 * time.Second
	defaultShareRateLimit  = 20
	defaultSettingsTTL     = time.Minute
	defaultRefreshInterval = 5 * time.Minute
	defaultAdapterAddress  = "http://localhost:8080"
	defaultAdapterTimeout  = 15 * time.Second
	defaultStorageDriver   = DriverFirebase
)

// defaults returns the lowest-priority configuration layer.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:      defaultVersion,
			LogLevel:     defaultLogLevel,
			PublicOrigin: defaultPublicOrigin,
			AuthHeader:   defaultAuthHeader,
			SettingsTTL:  defaultSettingsTTL,
		},
		Storage: Storage{
			Driver: defaultStorageDriver,
			Firebase: Firebase{
				RequestTimeout: defaultStorageTimeout,
			},
		},
		Server: Server{
			HTTPAddress:     defaultHTTPAddress,
			RequestTimeout:  defaultRequestTimeout,
			ShutdownTimeout: defaultShutdownTimeout,
			ShareRateLimit:  defaultShareRateLimit,
		},
		Adapter: Adapter{
			HTTPAddress:    defaultAdapterAddress,
			RequestTimeout: defaultAdapterTimeout,
		},
		Workers: Workers{
			SettingsRefreshInterval: defaultRefreshInterval,
		},
	}
}
