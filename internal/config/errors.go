package config

import (
	"errors"
	"fmt"
)

// Reasons carried by [ConfigurationError]. Match them with [errors.Is].
var (
	// ErrMissingValue indicates a required field that is absent or blank.
	ErrMissingValue = errors.New("value is required")
	// ErrInvalidURL indicates a field that must hold an absolute URL.
	ErrInvalidURL = errors.New("value is not a valid absolute URL")
	// ErrInvalidValue indicates a field whose value cannot be interpreted.
	ErrInvalidValue = errors.New("invalid value")
	// ErrUnknownProfile indicates a PROFILE that has no built-in defaults.
	ErrUnknownProfile = errors.New("unknown profile")
)

// ConfigurationError reports a single invalid configuration field.
// Field uses the public names of the profile ("apiServerUrl",
// "auth0.clientId", ...) or the dotted path of server settings.
type ConfigurationError struct {
	Field  string
	Reason error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration field %q: %v", e.Field, e.Reason)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Reason
}

func fieldError(field string, reason error) error {
	return &ConfigurationError{Field: field, Reason: reason}
}
