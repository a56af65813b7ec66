//go:build unit

package config

import (
	"testing"
	"time"

	"github.com/lerenn/issues-full/pkg/scheduler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		Forge:  "github",
		Store:  StoreConfig{Backend: "file", Path: "/tmp/store.json"},
		GitHub: GitHubConfig{TokenEnv: "GITHUB_TOKEN", Timeout: 10 * time.Second},
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Config)
		expected error
	}{
		{name: "valid config", mutate: func(*Config) {}},
		{name: "memory without path", mutate: func(c *Config) { c.Store = StoreConfig{Backend: "memory"} }},
		{name: "empty forge", mutate: func(c *Config) { c.Forge = "" }, expected: ErrForgeEmpty},
		{name: "unknown backend", mutate: func(c *Config) { c.Store.Backend = "redis" }, expected: ErrInvalidStoreBackend},
		{name: "empty store path", mutate: func(c *Config) { c.Store.Path = "" }, expected: ErrStorePathEmpty},
		{name: "empty token env", mutate: func(c *Config) { c.GitHub.TokenEnv = "" }, expected: ErrTokenEnvEmpty},
		{name: "negative timeout", mutate: func(c *Config) { c.GitHub.Timeout = -time.Second }, expected: ErrInvalidTimeout},
		{name: "negative concurrency", mutate: func(c *Config) { c.Enrich.Concurrency = -1 }, expected: ErrInvalidConcurrency},
		{name: "cron schedule", mutate: func(c *Config) { c.Watch.Schedule = "0 * * * *" }},
		{name: "invalid schedule", mutate: func(c *Config) { c.Watch.Schedule = "hourly-ish" }, expected: scheduler.ErrInvalidSchedule},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := validConfig()
			tt.mutate(&config)

			err := config.Validate()
			if tt.expected == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestParseDefault(t *testing.T) {
	config, err := parseDefault()
	require.NoError(t, err)

	assert.Equal(t, "github", config.Forge)
	assert.Equal(t, "file", config.Store.Backend)
	assert.Equal(t, "~/.issues-full/store.json", config.Store.Path)
	assert.Equal(t, "GITHUB_TOKEN", config.GitHub.TokenEnv)
	assert.Equal(t, 10*time.Second, config.GitHub.Timeout)
	assert.Equal(t, 0, config.Enrich.Concurrency)
	assert.Equal(t, "@every 15m", config.Watch.Schedule)
	assert.NoError(t, config.Validate())
}
