package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8080}, expected: "localhost:8080"},
		{name: "only port no host", addr: NetAddress{Port: 8080}, expected: ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		expected    NetAddress
	}{
		{name: "localhost", input: "localhost:8080", expected: NetAddress{Host: "localhost", Port: 8080}},
		{name: "ipv4", input: "127.0.0.1:9090", expected: NetAddress{Host: "127.0.0.1", Port: 9090}},
		{name: "all interfaces", input: ":8080", expected: NetAddress{Port: 8080}},
		{name: "no port", input: "localhost", expectError: true},
		{name: "port not a number", input: "localhost:http", expectError: true},
		{name: "port zero", input: "localhost:0", expectError: true},
		{name: "port too large", input: "localhost:70000", expectError: true},
		{name: "hostname", input: "example.com:80", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, addr)
		})
	}
}

func TestParseFlags(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-a", "localhost:8081",
		"-config", "/etc/invites.json",
		"-driver", "sql",
		"-d", "postgres://localhost/invites",
		"-origin", "https://invites.example.com",
		"-log-level", "warn",
		"-request-timeout", "20s",
		"-rate-limit", "5",
	})

	require.NoError(t, err)
	assert.Equal(t, "localhost:8081", cfg.Server.HTTPAddress)
	assert.Equal(t, "/etc/invites.json", cfg.JSONFilePath)
	assert.Equal(t, DriverSQL, cfg.Storage.Driver)
	assert.Equal(t, "postgres://localhost/invites", cfg.Storage.DB.DSN)
	assert.Equal(t, "https://invites.example.com", cfg.App.PublicOrigin)
	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.Equal(t, 20*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 5, cfg.Server.ShareRateLimit)
}

func TestParseFlags_Empty(t *testing.T) {
	cfg, err := parseFlags(nil)

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_Unknown(t *testing.T) {
	_, err := parseFlags([]string{"-grpc-address", "localhost:9090"})

	assert.Error(t, err)
}
