// Package config provides configuration management functionality for the issues-full application.
package config

import (
	"fmt"
	"slices"
	"time"

	"github.com/lerenn/issues-full/configs"
	"github.com/lerenn/issues-full/pkg/scheduler"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Forge  string       `yaml:"forge"`
	Store  StoreConfig  `yaml:"store"`
	GitHub GitHubConfig `yaml:"github"`
	Enrich EnrichConfig `yaml:"enrich"`
	Watch  WatchConfig  `yaml:"watch"`
}

// StoreConfig selects where cached issues and preview mappings are persisted.
type StoreConfig struct {
	Backend string `yaml:"backend"`
	Path    string `yaml:"path"`
}

// GitHubConfig configures access to the GitHub API.
type GitHubConfig struct {
	BaseURL  string        `yaml:"base_url,omitempty"`
	TokenEnv string        `yaml:"token_env"`
	Timeout  time.Duration `yaml:"timeout"`
}

// EnrichConfig configures preview enrichment.
type EnrichConfig struct {
	// Concurrency limits the previews fetched at once; 0 means unlimited.
	Concurrency int `yaml:"concurrency"`
}

// WatchConfig configures periodic re-enrichment.
type WatchConfig struct {
	Schedule string `yaml:"schedule"`
}

var storeBackends = []string{"file", "sqlite", "memory"}

// Validate validates the configuration values.
func (c *Config) Validate() error {
	if c.Forge == "" {
		return ErrForgeEmpty
	}
	if !slices.Contains(storeBackends, c.Store.Backend) {
		return fmt.Errorf("%w: %q", ErrInvalidStoreBackend, c.Store.Backend)
	}
	if c.Store.Backend != "memory" && c.Store.Path == "" {
		return ErrStorePathEmpty
	}
	if c.GitHub.TokenEnv == "" {
		return ErrTokenEnvEmpty
	}
	if c.GitHub.Timeout < 0 {
		return ErrInvalidTimeout
	}
	if c.Enrich.Concurrency < 0 {
		return ErrInvalidConcurrency
	}
	if c.Watch.Schedule != "" {
		if err := scheduler.ValidateSchedule(c.Watch.Schedule); err != nil {
			return err
		}
	}
	return nil
}

// parseDefault decodes the embedded default configuration.
func parseDefault() (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(configs.DefaultConfigYAML, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfigFileParse, err)
	}
	return cfg, nil
}
