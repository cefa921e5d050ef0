package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const appDir = "newslens"

// Environment overrides. Each wins over the settings file when set.
const (
	EnvConfigDir = "NEWSLENS_CONFIG_DIR"
	EnvDBPath    = "NEWSLENS_DB_PATH"
	EnvLogFile   = "NEWSLENS_LOG_FILE"
)

// Dir returns the configuration directory, honoring NEWSLENS_CONFIG_DIR.
func Dir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir
	}
	return filepath.Join(xdg.ConfigHome, appDir)
}

func DefaultConfigPath() string {
	return filepath.Join(Dir(), "config.yaml")
}

// DatabasePath resolves the SQLite file location: environment override first,
// then the settings file, then the XDG data directory.
func (c *Config) DatabasePath() string {
	if path := os.Getenv(EnvDBPath); path != "" {
		return path
	}
	if c.Database != "" {
		return c.Database
	}
	return filepath.Join(xdg.DataHome, appDir, "newslens.db")
}

// LogPath resolves the log file location with the same precedence.
func (c *Config) LogPath() string {
	if path := os.Getenv(EnvLogFile); path != "" {
		return path
	}
	if c.LogFile != "" {
		return c.LogFile
	}
	return filepath.Join(xdg.StateHome, appDir, "newslens.log")
}
