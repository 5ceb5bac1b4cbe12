// Package config handles TOML-based configuration loading and validation.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"vodkaflix/internal/embed"
	"vodkaflix/internal/episodes"
	"vodkaflix/internal/httputil"
)

// Config holds all application configuration.
type Config struct {
	Server        int    `toml:"server"`         // Default embed server (1..6)
	Player        string `toml:"player"`         // "browser" or a command name
	EpisodeSource string `toml:"episode_source"` // Episode directory API base
	History       bool   `toml:"history"`        // Persist watch positions
	Debug         bool   `toml:"debug"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Server:        embed.DefaultServer,
		Player:        "browser",
		EpisodeSource: episodes.DefaultBase,
		History:       true,
		Debug:         false,
	}
}

// configDir returns the XDG-compliant config directory.
func configDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "vodkaflix"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".config", "vodkaflix"), nil
}

// ConfigPath returns the path to the config file.
func ConfigPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the config file and merges with defaults.
// If the config file doesn't exist, defaults are returned.
func Load() (*Config, error) {
	cfg := Default()

	path, err := ConfigPath()
	if err != nil {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate checks config values are within acceptable bounds.
func (c *Config) Validate() error {
	if c.Server < 1 || c.Server > embed.ServerCount {
		return fmt.Errorf("server must be between 1 and %d, got %d", embed.ServerCount, c.Server)
	}
	if c.Player == "" {
		return fmt.Errorf("player cannot be empty")
	}
	if c.EpisodeSource == "" {
		return fmt.Errorf("episode_source cannot be empty")
	}
	if err := httputil.ValidateURL(c.EpisodeSource); err != nil {
		return fmt.Errorf("episode_source: %w", err)
	}
	return nil
}

// LibraryPath returns the path to the SQLite library database that holds
// watch progress and user lists.
func LibraryPath() (string, error) {
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataDir, "vodkaflix", "library.db"), nil
}
