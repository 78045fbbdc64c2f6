// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The coffee-shop Authors

package config

import (
	"os"
	"time"
)

// StructuredConfig is a single configuration layer as read from one source
// (flags, environment, JSON file or profile defaults). Fields left empty in a
// layer fall through to the next one during merging.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Profile selects the built-in defaults ("development" or "production").
	// Env: PROFILE
	Profile string `env:"PROFILE"`

	// Environment holds the values exposed to the front-end application.
	Environment Environment

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Auth holds settings for verifying identity-provider tokens.
	Auth Auth `envPrefix:"AUTH_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Environment is the raw, unvalidated form of a [Profile].
//
// String values are pointers: nil means "not set in this layer", while a
// pointer to "" is an explicit empty value that still hides lower layers
// and is then rejected by validation.
type Environment struct {
	// Production is kept as text so that an explicit "false" can override a
	// profile default of "true". Empty means "not set in this layer".
	// Env: PRODUCTION
	Production string `env:"PRODUCTION"`

	// APIServerURL is the base URL of the backend API.
	// Env: API_SERVER_URL
	APIServerURL *string `env:"API_SERVER_URL"`

	// Auth0 holds the identity-provider registration of the front-end.
	Auth0 Auth0 `envPrefix:"AUTH0_"`
}

// Auth0 is the raw form of [Auth0Profile].
type Auth0 struct {
	// URL is the tenant domain prefix (e.g. "quyetcv1.us").
	// Env: AUTH0_URL
	URL *string `env:"URL"`

	// Domain is the full tenant host. Derived from URL when empty.
	// Env: AUTH0_DOMAIN
	Domain *string `env:"DOMAIN"`

	// Env: AUTH0_AUDIENCE
	Audience *string `env:"AUDIENCE"`

	// Env: AUTH0_CLIENT_ID
	ClientID *string `env:"CLIENT_ID"`

	// Env: AUTH0_CALLBACK_URL
	CallbackURL *string `env:"CALLBACK_URL"`
}

func stringPtr(s string) *string {
	return &s
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "127.0.0.1:5000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds the graceful shutdown of the HTTP server.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Auth holds settings for verifying access tokens issued by the identity
// provider.
type Auth struct {
	// Algorithms lists the accepted JWS signing algorithms.
	// Env: AUTH_ALGORITHMS (comma separated)
	Algorithms []string `env:"ALGORITHMS" envSeparator:","`

	// JWKSTimeout is the HTTP timeout for downloading the key set.
	// Env: AUTH_JWKS_TIMEOUT
	JWKSTimeout time.Duration `env:"JWKS_TIMEOUT"`

	// JWKSCacheTTL is how long a downloaded key set is reused.
	// Env: AUTH_JWKS_CACHE_TTL
	JWKSCacheTTL time.Duration `env:"JWKS_CACHE_TTL"`
}

// Config is the validated configuration of a running process. It is built
// once at startup and handed to consumers by value.
type Config struct {
	Profile Profile
	Server  Server
	Auth    Auth
}

// Load builds the configuration from args (without the program name), the
// process environment, the optional JSON file and the selected profile
// defaults, then validates it.
//
// No partial result is returned: on any error the *Config is nil.
func Load(args []string) (*Config, error) {
	return newConfigBuilder().
		withFlags(args).
		withEnv().
		withJSON().
		withProfileDefaults().
		build()
}

// GetConfig is [Load] over the command-line arguments of the process.
func GetConfig() (*Config, error) {
	return Load(os.Args[1:])
}
