// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The coffee-shop Authors

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"CONFIG":  "/path/to/config.json",
		"PROFILE": "production",

		"PRODUCTION":         "true",
		"API_SERVER_URL":     "https://api.example.com",
		"AUTH0_URL":          "tenant.eu",
		"AUTH0_DOMAIN":       "login.example.com",
		"AUTH0_AUDIENCE":     "coffee",
		"AUTH0_CLIENT_ID":    "client-id",
		"AUTH0_CALLBACK_URL": "https://app.example.com",

		"SERVER_ADDRESS":          "0.0.0.0:8080",
		"SERVER_REQUEST_TIMEOUT":  "30s",
		"SERVER_SHUTDOWN_TIMEOUT": "5s",

		"AUTH_ALGORITHMS":     "RS256,ES256",
		"AUTH_JWKS_TIMEOUT":   "3s",
		"AUTH_JWKS_CACHE_TTL": "10m",
	})

	// Act
	cfg, err := parseEnv()

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "production", cfg.Profile)

	assert.Equal(t, "true", cfg.Environment.Production)
	assert.Equal(t, "https://api.example.com", stringValue(cfg.Environment.APIServerURL))
	assert.Equal(t, Auth0{
		URL:         stringPtr("tenant.eu"),
		Domain:      stringPtr("login.example.com"),
		Audience:    stringPtr("coffee"),
		ClientID:    stringPtr("client-id"),
		CallbackURL: stringPtr("https://app.example.com"),
	}, cfg.Environment.Auth0)

	assert.Equal(t, "0.0.0.0:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)

	assert.Equal(t, []string{"RS256", "ES256"}, cfg.Auth.Algorithms)
	assert.Equal(t, 3*time.Second, cfg.Auth.JWKSTimeout)
	assert.Equal(t, 10*time.Minute, cfg.Auth.JWKSCacheTTL)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"AUTH0_CLIENT_ID": "only-client",
		"SERVER_ADDRESS":  "localhost:8080",
	})

	// Act
	cfg, err := parseEnv()

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "only-client", stringValue(cfg.Environment.Auth0.ClientID))
	assert.Nil(t, cfg.Environment.Auth0.URL)
	assert.Empty(t, cfg.Environment.Production)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Zero(t, cfg.Server.RequestTimeout)
	assert.Empty(t, cfg.Auth.Algorithms)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	cfg, err := parseEnv()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, StructuredConfig{}, *cfg)
}

// TestParseEnv_EmptyValues verifies that a variable set to "" is kept apart
// from an unset one.
func TestParseEnv_EmptyValues(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"AUTH0_CLIENT_ID": "",
		"API_SERVER_URL":  "",
	})

	// Act
	cfg, err := parseEnv()

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg.Environment.Auth0.ClientID)
	assert.Empty(t, *cfg.Environment.Auth0.ClientID)
	require.NotNil(t, cfg.Environment.APIServerURL)
	assert.Empty(t, *cfg.Environment.APIServerURL)
	assert.Nil(t, cfg.Environment.Auth0.Audience)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"AUTH_JWKS_TIMEOUT": "invalid_duration",
	})

	// Act
	cfg, err := parseEnv()

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "env")
}

func TestParseEnv_DurationFormats(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected time.Duration
	}{
		{"hours", "2h", 2 * time.Hour},
		{"minutes", "45m", 45 * time.Minute},
		{"seconds", "30s", 30 * time.Second},
		{"combined", "1h30m", 90 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnvVars(t, map[string]string{
				"SERVER_REQUEST_TIMEOUT": tt.envValue,
			})

			cfg, err := parseEnv()

			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.Server.RequestTimeout)
		})
	}
}

// Helpers

// envKeys lists every variable the config package reads.
var envKeys = []string{
	"CONFIG",
	"PROFILE",

	"PRODUCTION",
	"API_SERVER_URL",
	"AUTH0_URL",
	"AUTH0_DOMAIN",
	"AUTH0_AUDIENCE",
	"AUTH0_CLIENT_ID",
	"AUTH0_CALLBACK_URL",

	"SERVER_ADDRESS",
	"SERVER_REQUEST_TIMEOUT",
	"SERVER_SHUTDOWN_TIMEOUT",

	"AUTH_ALGORITHMS",
	"AUTH_JWKS_TIMEOUT",
	"AUTH_JWKS_CACHE_TTL",
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

// clearEnvVars unsets every known variable for the duration of the test.
// t.Setenv registers the restore; the variable is then removed, because an
// empty value is an explicit setting for the profile fields.
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}
