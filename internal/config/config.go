// Package config loads the app configuration from the standard TOML
// location, falling back to defaults when no file exists.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds all thoughtbuddy configuration.
type Config struct {
	// DataDir holds the local database and debug log.
	DataDir string `toml:"data_dir"`
	// ContentPath optionally points at an external content catalog,
	// e.g. a translated one. Empty means the embedded catalog.
	ContentPath string `toml:"content_path"`
	// Debug enables the debug log in DataDir.
	Debug bool `toml:"debug"`
}

// DefaultConfig returns config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		DataDir: defaultDataDir(),
	}
}

// Load reads config from the standard path, falling back to defaults.
func Load() (Config, error) {
	cfg := DefaultConfig()

	for _, p := range configPaths() {
		if _, err := os.Stat(p); err == nil {
			if _, err := toml.DecodeFile(p, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", p, err)
			}
			break
		}
	}

	cfg.DataDir = expandHome(cfg.DataDir)
	cfg.ContentPath = expandHome(cfg.ContentPath)
	return cfg, nil
}

// ConfigDir returns the thoughtbuddy config directory path.
// Uses $XDG_CONFIG_HOME/thoughtbuddy if set, otherwise
// ~/.config/thoughtbuddy.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "thoughtbuddy")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "thoughtbuddy")
}

func configPaths() []string {
	var paths []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, "thoughtbuddy", "config.toml"))
	}
	home, _ := os.UserHomeDir()
	if home != "" {
		paths = append(paths, filepath.Join(home, ".config", "thoughtbuddy", "config.toml"))
	}
	return paths
}

func defaultDataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "thoughtbuddy")
	}
	return "~/.local/share/thoughtbuddy"
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}

// DatabasePath returns the local SQLite database path.
func (c Config) DatabasePath() string {
	return filepath.Join(c.DataDir, "thoughtbuddy.db")
}

// LogPath returns the debug log path.
func (c Config) LogPath() string {
	return filepath.Join(c.DataDir, "debug.log")
}
