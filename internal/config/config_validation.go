// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The coffee-shop Authors

package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
)

// resolve validates the merged layer and converts it into a [Config].
//
// Every invalid field is reported; the returned error is an [errors.Join] of
// [*ConfigurationError] values and the *Config is nil in that case.
func (cfg *StructuredConfig) resolve() (*Config, error) {
	var errs []error

	production, err := strconv.ParseBool(strings.TrimSpace(cfg.Environment.Production))
	if err != nil {
		errs = append(errs, fieldError("production", fmt.Errorf("%w: %q", ErrInvalidValue, cfg.Environment.Production)))
	}

	apiServerURL := stringValue(cfg.Environment.APIServerURL)
	auth0 := Auth0Profile{
		URL:         stringValue(cfg.Environment.Auth0.URL),
		Domain:      stringValue(cfg.Environment.Auth0.Domain),
		Audience:    stringValue(cfg.Environment.Auth0.Audience),
		ClientID:    stringValue(cfg.Environment.Auth0.ClientID),
		CallbackURL: stringValue(cfg.Environment.Auth0.CallbackURL),
	}

	errs = append(errs,
		validateURL("apiServerUrl", apiServerURL),
		validateHost("auth0.url", auth0.URL),
		validateRequired("auth0.audience", auth0.Audience),
		validateRequired("auth0.clientId", auth0.ClientID),
		validateURL("auth0.callbackURL", auth0.CallbackURL),
		validateAddress("server.address", cfg.Server.HTTPAddress),
	)
	if auth0.Domain != "" {
		errs = append(errs, validateHost("auth0.domain", auth0.Domain))
	}
	if len(cfg.Auth.Algorithms) == 0 {
		errs = append(errs, fieldError("auth.algorithms", ErrMissingValue))
	}
	if cfg.Server.RequestTimeout < 0 {
		errs = append(errs, fieldError("server.requestTimeout", ErrInvalidValue))
	}
	if cfg.Server.ShutdownTimeout < 0 {
		errs = append(errs, fieldError("server.shutdownTimeout", ErrInvalidValue))
	}
	if cfg.Auth.JWKSTimeout < 0 || cfg.Auth.JWKSCacheTTL < 0 {
		errs = append(errs, fieldError("auth.jwks", ErrInvalidValue))
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	if auth0.Domain == "" {
		auth0.Domain = deriveDomain(auth0.URL)
	}

	return &Config{
		Profile: Profile{
			Name:         cfg.Profile,
			Production:   production,
			APIServerURL: apiServerURL,
			Auth0:        auth0,
		},
		Server: cfg.Server,
		Auth: Auth{
			Algorithms:   append([]string(nil), cfg.Auth.Algorithms...),
			JWKSTimeout:  cfg.Auth.JWKSTimeout,
			JWKSCacheTTL: cfg.Auth.JWKSCacheTTL,
		},
	}, nil
}

func validateRequired(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fieldError(field, ErrMissingValue)
	}
	return nil
}

// validateURL requires an absolute URL with both scheme and host.
func validateURL(field, value string) error {
	if err := validateRequired(field, value); err != nil {
		return err
	}

	u, err := url.Parse(value)
	if err != nil {
		return fieldError(field, fmt.Errorf("%w: %w", ErrInvalidURL, err))
	}
	if !u.IsAbs() || u.Host == "" {
		return fieldError(field, fmt.Errorf("%w: %q", ErrInvalidURL, value))
	}

	return nil
}

// validateHost accepts a bare host name such as "tenant.us" without scheme
// or path.
func validateHost(field, value string) error {
	if err := validateRequired(field, value); err != nil {
		return err
	}

	if strings.ContainsAny(value, "/: \t") {
		return fieldError(field, fmt.Errorf("%w: host expected, got %q", ErrInvalidValue, value))
	}

	return nil
}

func validateAddress(field, value string) error {
	if err := validateRequired(field, value); err != nil {
		return err
	}

	if _, _, err := net.SplitHostPort(value); err != nil {
		return fieldError(field, fmt.Errorf("%w: %w", ErrInvalidValue, err))
	}

	return nil
}
