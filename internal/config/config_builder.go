package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configBuilder collects configuration layers in priority order, highest
// first, and merges them in [configBuilder.build].
type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

// build merges the collected layers and validates the result. mergo only
// fills empty destination fields, so earlier layers take precedence.
// Pointers are not dereferenced: a non-nil pointer to "" counts as set.
func (b *configBuilder) build() (*Config, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	merged, err := b.merged()
	if err != nil {
		return nil, err
	}

	return merged.resolve()
}

func (b *configBuilder) merged() (*StructuredConfig, error) {
	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithoutDereference); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, nil
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flagsCfg, err := parseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("error parsing flags: %w", err))
		return b
	}

	b.configs = append(b.configs, flagsCfg)
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg, err := parseEnv()
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

// withJSON adds the JSON file named by the highest-priority layer that sets
// a path. It is a no-op when no layer does.
func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
			break
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, jsonCfg)
	return b
}

// withProfileDefaults appends the defaults of the profile selected by the
// layers collected so far, or of the development profile when none is set.
func (b *configBuilder) withProfileDefaults() *configBuilder {
	name := ProfileDevelopment
	for _, cfg := range b.configs {
		if cfg.Profile != "" {
			name = cfg.Profile
			break
		}
	}

	defaults, ok := profileDefaults(name)
	if !ok {
		b.err = errors.Join(b.err, fieldError("profile", fmt.Errorf("%w: %q", ErrUnknownProfile, name)))
		return b
	}

	b.configs = append(b.configs, defaults)
	return b
}
