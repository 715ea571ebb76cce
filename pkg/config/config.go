// Package config supplies reldir's operational defaults. Values are
// layered with koanf: built-in defaults first, then RELDIR_* environment
// variables. There is deliberately no config file: the releases layout
// carries no persisted metadata, and every run is fully described by
// its flags and environment.
package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix for all reldir environment overrides.
const EnvPrefix = "RELDIR_"

// Keys understood by the config layer.
const (
	KeyKeepReleases = "keep_releases"
	KeyKeepCurrent  = "keep_current"
	KeyStep         = "step"
)

// Config holds the layered defaults for command flags.
type Config struct {
	k *koanf.Koanf
}

// New loads defaults and environment overrides.
func New() (*Config, error) {
	k := koanf.New(".")

	defaults := map[string]interface{}{
		KeyKeepReleases: 5,
		KeyKeepCurrent:  true,
		KeyStep:         1,
	}
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	envProvider := env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment overrides: %w", err)
	}

	return &Config{k: k}, nil
}

// KeepReleases returns the default retention window for cleanup.
func (c *Config) KeepReleases() int {
	return c.k.Int(KeyKeepReleases)
}

// KeepCurrent returns the default current-protection flag for cleanup.
func (c *Config) KeepCurrent() bool {
	return c.k.Bool(KeyKeepCurrent)
}

// Step returns the default rollback step.
func (c *Config) Step() int {
	return c.k.Int(KeyStep)
}
