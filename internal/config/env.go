// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The coffee-shop Authors

package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// parseEnv reads a configuration layer from the process environment using
// the `env` and `envPrefix` tags of [StructuredConfig].
//
// Unset variables leave their fields empty. A profile variable that is set
// to the empty string is kept as an explicit empty value. A value that cannot
// be converted to the field type (e.g. a malformed duration) is returned as a
// wrapped error.
func parseEnv() (*StructuredConfig, error) {
	cfg, err := env.ParseAs[StructuredConfig]()
	if err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	markEmptyEnv(&cfg)

	return &cfg, nil
}

// markEmptyEnv records profile variables that are present but empty.
// caarlos0/env treats those the same as unset ones.
func markEmptyEnv(cfg *StructuredConfig) {
	fields := map[string]**string{
		"API_SERVER_URL":     &cfg.Environment.APIServerURL,
		"AUTH0_URL":          &cfg.Environment.Auth0.URL,
		"AUTH0_DOMAIN":       &cfg.Environment.Auth0.Domain,
		"AUTH0_AUDIENCE":     &cfg.Environment.Auth0.Audience,
		"AUTH0_CLIENT_ID":    &cfg.Environment.Auth0.ClientID,
		"AUTH0_CALLBACK_URL": &cfg.Environment.Auth0.CallbackURL,
	}

	for key, field := range fields {
		if value, ok := os.LookupEnv(key); ok && value == "" && *field == nil {
			*field = stringPtr("")
		}
	}
}
