package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// WriteDefault writes a default config.toml pointing at dataDir.
// Returns the config file path. Skips if config.toml already exists.
func WriteDefault(dataDir string) (string, error) {
	dir := ConfigDir()
	path := filepath.Join(dir, "config.toml")

	if _, err := os.Stat(path); err == nil {
		return path, nil // already exists
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create config dir: %w", err)
	}

	content := fmt.Sprintf(`data_dir = %q

# Point at a customized or translated content catalog (JSON).
# Leave empty to use the built-in one.
content_path = ""

# Write a debug log to <data_dir>/debug.log.
debug = false
`, CompressHome(dataDir))

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write config: %w", err)
	}
	return path, nil
}

// CompressHome replaces $HOME prefix with ~/ for portable config values.
func CompressHome(path string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	if strings.HasPrefix(path, home+"/") {
		return "~/" + path[len(home)+1:]
	}
	if path == home {
		return "~"
	}
	return path
}
