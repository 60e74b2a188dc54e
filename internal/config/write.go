package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ConfigDir returns the reba config directory path.
// Uses $XDG_CONFIG_HOME/reba if set, otherwise ~/.config/reba.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "reba")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "reba")
}

const defaultContent = `[output]
# text, json, yaml or markdown
format = "text"

[log]
level = "info"

[batch]
workers = 4

[watch]
debounce_ms = 250
`

// WriteDefault writes a default config.toml into ConfigDir.
// Returns the config file path and whether it was created; an existing file
// is left alone.
func WriteDefault() (string, bool, error) {
	dir := ConfigDir()
	path := filepath.Join(dir, "config.toml")

	if _, err := os.Stat(path); err == nil {
		return path, false, nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", false, fmt.Errorf("create config dir: %w", err)
	}

	if err := os.WriteFile(path, []byte(defaultContent), 0o644); err != nil {
		return "", false, fmt.Errorf("write config: %w", err)
	}

	return path, true, nil
}

// CompressHome replaces $HOME prefix with ~/ for display.
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
