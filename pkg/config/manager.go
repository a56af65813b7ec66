package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lerenn/issues-full/pkg/fs"
	"gopkg.in/yaml.v3"
)

// Manager interface provides configuration management functionality with an embedded config path.
type Manager interface {
	GetConfig() (Config, error)
	GetConfigWithFallback() (Config, error)
	SaveConfig(config Config) error
	GetConfigPath() string
	DefaultConfig() Config
}

// realManager manages configuration with an embedded config path.
type realManager struct {
	fs         fs.FS
	configPath string
}

// NewManager creates a new Manager instance with the specified config path.
func NewManager(filesystem fs.FS, configPath string) Manager {
	return &realManager{
		fs:         filesystem,
		configPath: configPath,
	}
}

// DefaultConfigPath returns ~/.issues-full/config.yaml, or a relative path when
// the home directory cannot be determined.
func DefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}
	return filepath.Join(homeDir, ".issues-full", "config.yaml")
}

// GetConfig loads configuration from the embedded config path.
func (c *realManager) GetConfig() (Config, error) {
	exists, err := c.fs.Exists(c.configPath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to check config file existence: %w", err)
	}
	if !exists {
		return Config{}, fmt.Errorf("%w: %s", ErrConfigNotInitialized, c.configPath)
	}

	data, err := c.fs.ReadFile(c.configPath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	// Unset keys keep their default values
	config := c.DefaultConfig()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfigFileParse, err)
	}

	if err := c.expandTildes(&config); err != nil {
		return Config{}, fmt.Errorf("failed to expand tildes in configuration: %w", err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// GetConfigWithFallback loads the configuration from the embedded config path, falling back to default if not found.
func (c *realManager) GetConfigWithFallback() (Config, error) {
	config, err := c.GetConfig()
	if err == nil {
		return config, nil
	}

	exists, existsErr := c.fs.Exists(c.configPath)
	if existsErr == nil && exists {
		// A broken file must not be silently replaced by defaults
		return Config{}, err
	}

	return c.DefaultConfig(), nil
}

// SaveConfig saves configuration to the embedded config path.
func (c *realManager) SaveConfig(config Config) error {
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}

	if err := c.fs.WriteFileAtomic(c.configPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	return nil
}

// GetConfigPath returns the embedded config path.
func (c *realManager) GetConfigPath() string {
	return c.configPath
}

// DefaultConfig returns the default configuration with paths expanded.
func (c *realManager) DefaultConfig() Config {
	config, err := parseDefault()
	if err != nil {
		// Only reachable when configs/default.yaml is broken
		panic(err)
	}

	if err := c.expandTildes(&config); err != nil {
		// Fallback to a path relative to the current directory
		config.Store.Path = filepath.Join(".", filepath.Base(config.Store.Path))
	}

	return config
}

// expandTildes expands the home directory in configuration paths.
func (c *realManager) expandTildes(config *Config) error {
	path, err := c.fs.ExpandPath(config.Store.Path)
	if err != nil {
		return err
	}
	config.Store.Path = path
	return nil
}
