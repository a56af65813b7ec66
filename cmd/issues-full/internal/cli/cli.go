// Package cli provides common configuration and utility functions for the issues-full CLI.
package cli

import (
	"github.com/lerenn/issues-full/pkg/config"
	"github.com/lerenn/issues-full/pkg/fs"
	"github.com/lerenn/issues-full/pkg/logger"
)

var (
	// Quiet suppresses all output except errors.
	Quiet bool
	// Verbose enables verbose output.
	Verbose bool
	// ConfigPath specifies a custom config file path.
	ConfigPath string
)

// NewConfigManager creates a new Manager with the appropriate config path.
func NewConfigManager() config.Manager {
	return config.NewManager(fs.NewFS(), GetConfigPath())
}

// GetConfigPath returns the config file path that would be used by LoadConfig.
func GetConfigPath() string {
	if ConfigPath != "" {
		return ConfigPath
	}
	return config.DefaultConfigPath()
}

// LoadConfig loads the configuration, using the defaults when no file exists.
func LoadConfig() (config.Config, error) {
	return NewConfigManager().GetConfigWithFallback()
}

// NewLogger returns the logger selected by the global flags.
func NewLogger() logger.Logger {
	if Quiet {
		return logger.NewNoopLogger()
	}
	return logger.NewDefaultLogger()
}
