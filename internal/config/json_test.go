package config

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_AllSections(t *testing.T) {
	path := writeTempJSONConfig(t, `{
		"app": {
			"version": "2.0.0",
			"public_origin": "https://cards.example.com",
			"admin_emails": ["root@example.com"],
			"settings_ttl": "10s"
		},
		"storage": {
			"driver": "firebase",
			"firebase": {"url": "https://db.example.com", "auth": "tok", "request_timeout": 2000000000}
		},
		"server": {"http_address": ":8080", "shutdown_timeout": "1s", "share_rate_limit": 3},
		"adapter": {"http_address": "http://localhost:8080"},
		"workers": {"settings_refresh_interval": "2m"}
	}`)

	cfg, err := parseJSON(path)

	require.NoError(t, err)
	assert.Equal(t, "2.0.0", cfg.App.Version)
	assert.Equal(t, "https://cards.example.com", cfg.App.PublicOrigin)
	assert.Equal(t, []string{"root@example.com"}, cfg.App.AdminEmails)
	assert.Equal(t, 10*time.Second, cfg.App.SettingsTTL)
	assert.Equal(t, "tok", cfg.Storage.Firebase.AuthToken)
	assert.Equal(t, 2*time.Second, cfg.Storage.Firebase.RequestTimeout)
	assert.Equal(t, ":8080", cfg.Server.HTTPAddress)
	assert.Equal(t, time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 3, cfg.Server.ShareRateLimit)
	assert.Equal(t, 2*time.Minute, cfg.Workers.SettingsRefreshInterval)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_InvalidFile(t *testing.T) {
	path := writeTempJSONConfig(t, `{"server": `)

	_, err := parseJSON(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestDuration_RoundTrip(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`"90s"`), &d))
	assert.Equal(t, 90*time.Second, time.Duration(d))

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `"1m30s"`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`"later"`), &d))
}
