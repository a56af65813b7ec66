//go:build integration

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lerenn/issues-full/pkg/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_DefaultConfig(t *testing.T) {
	manager := NewManager(fs.NewFS(), filepath.Join(t.TempDir(), "config.yaml"))
	config := manager.DefaultConfig()

	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(homeDir, ".issues-full", "store.json"), config.Store.Path)
}

func TestManager_GetConfig_NotInitialized(t *testing.T) {
	manager := NewManager(fs.NewFS(), filepath.Join(t.TempDir(), "config.yaml"))

	_, err := manager.GetConfig()
	assert.ErrorIs(t, err, ErrConfigNotInitialized)

	config, err := manager.GetConfigWithFallback()
	require.NoError(t, err)
	assert.Equal(t, manager.DefaultConfig(), config)
}

func TestManager_GetConfig_PartialFile(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")
	storePath := filepath.Join(tempDir, "issues.db")

	content := "store:\n  backend: sqlite\n  path: " + storePath + "\nenrich:\n  concurrency: 4\n"
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o644))

	config, err := NewManager(fs.NewFS(), configPath).GetConfig()
	require.NoError(t, err)

	assert.Equal(t, "sqlite", config.Store.Backend)
	assert.Equal(t, storePath, config.Store.Path)
	assert.Equal(t, 4, config.Enrich.Concurrency)
	// Unset keys keep their defaults
	assert.Equal(t, "github", config.Forge)
	assert.Equal(t, "GITHUB_TOKEN", config.GitHub.TokenEnv)
}

func TestManager_GetConfig_Invalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("store:\n  backend: redis\n"), 0o644))

	manager := NewManager(fs.NewFS(), configPath)

	_, err := manager.GetConfig()
	assert.ErrorIs(t, err, ErrInvalidStoreBackend)

	_, err = manager.GetConfigWithFallback()
	assert.ErrorIs(t, err, ErrInvalidStoreBackend)
}

func TestManager_GetConfig_ParseError(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("store: [unclosed"), 0o644))

	_, err := NewManager(fs.NewFS(), configPath).GetConfig()
	assert.ErrorIs(t, err, ErrConfigFileParse)
}

func TestManager_SaveConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "nested", "config.yaml")
	manager := NewManager(fs.NewFS(), configPath)

	config := manager.DefaultConfig()
	config.Enrich.Concurrency = 8
	require.NoError(t, manager.SaveConfig(config))

	loaded, err := manager.GetConfig()
	require.NoError(t, err)
	assert.Equal(t, config, loaded)
	assert.Equal(t, configPath, manager.GetConfigPath())
}
