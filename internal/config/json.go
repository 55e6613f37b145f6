package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON shape of the configuration.
type StructuredJSONConfig struct {
	App struct {
		Version      string   `json:"version"`
		LogLevel     string   `json:"log_level"`
		PublicOrigin string   `json:"public_origin"`
		AdminEmails  []string `json:"admin_emails"`
		AuthHeader   string   `json:"auth_header"`
		SettingsTTL  Duration `json:"settings_ttl"`
	} `json:"app,omitempty"`

	Storage struct {
		Driver   string `json:"driver"`
		Firebase struct {
			URL            string   `json:"url"`
			AuthToken      string   `json:"auth"`
			RequestTimeout Duration `json:"request_timeout"`
		} `json:"firebase,omitempty"`
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
		ShareRateLimit  int      `json:"share_rate_limit"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		SettingsRefreshInterval Duration `json:"settings_refresh_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version:      jsonCfg.App.Version,
			LogLevel:     jsonCfg.App.LogLevel,
			PublicOrigin: jsonCfg.App.PublicOrigin,
			AdminEmails:  jsonCfg.App.AdminEmails,
			AuthHeader:   jsonCfg.App.AuthHeader,
			SettingsTTL:  time.Duration(jsonCfg.App.SettingsTTL),
		},
		Storage: Storage{
			Driver: jsonCfg.Storage.Driver,
			Firebase: Firebase{
				URL:            jsonCfg.Storage.Firebase.URL,
				AuthToken:      jsonCfg.Storage.Firebase.AuthToken,
				RequestTimeout: time.Duration(jsonCfg.Storage.Firebase.RequestTimeout),
			},
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
			ShareRateLimit:  jsonCfg.Server.ShareRateLimit,
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Workers: Workers{
			SettingsRefreshInterval: time.Duration(jsonCfg.Workers.SettingsRefreshInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as plain nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
