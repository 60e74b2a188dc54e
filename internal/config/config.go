package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/suykerbuyk/reba/internal/render"
)

// Environment overrides, read from the process environment and from a .env
// file in the working directory. The process environment wins.
const (
	EnvFormat   = "REBA_FORMAT"
	EnvLogLevel = "REBA_LOG_LEVEL"
	EnvWorkers  = "REBA_WORKERS"
)

// EnvFile is the dotenv file consulted by Load, relative to the working directory.
var EnvFile = ".env"

// Config holds all reba configuration.
type Config struct {
	Output OutputConfig `toml:"output"`
	Log    LogConfig    `toml:"log"`
	Batch  BatchConfig  `toml:"batch"`
	Watch  WatchConfig  `toml:"watch"`
}

type OutputConfig struct {
	Format string `toml:"format"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

type BatchConfig struct {
	Workers int `toml:"workers"`
}

type WatchConfig struct {
	DebounceMS int `toml:"debounce_ms"`
}

// Debounce returns the watch debounce interval.
func (w WatchConfig) Debounce() time.Duration {
	return time.Duration(w.DebounceMS) * time.Millisecond
}

// DefaultConfig returns config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Output: OutputConfig{Format: string(render.FormatText)},
		Log:    LogConfig{Level: "info"},
		Batch:  BatchConfig{Workers: 4},
		Watch:  WatchConfig{DebounceMS: 250},
	}
}

// Load reads config from path, or from the standard locations when path is
// empty, falling back to defaults. Environment overrides are applied last.
// The result is not validated.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	} else {
		for _, p := range configPaths() {
			if _, err := os.Stat(p); err == nil {
				if _, err := toml.DecodeFile(p, &cfg); err != nil {
					return cfg, fmt.Errorf("parse config %s: %w", p, err)
				}
				break
			}
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects values the commands cannot run with. Callers run it after
// applying their own overrides, so a bad file value that a flag replaces is
// never seen.
func (c Config) Validate() error {
	if _, err := render.ParseFormat(c.Output.Format); err != nil {
		return fmt.Errorf("output.format: %w", err)
	}
	if c.Batch.Workers < 1 {
		return fmt.Errorf("batch.workers must be positive, got %d", c.Batch.Workers)
	}
	if c.Watch.DebounceMS < 1 {
		return fmt.Errorf("watch.debounce_ms must be positive, got %d", c.Watch.DebounceMS)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	vals := map[string]string{}
	if _, err := os.Stat(EnvFile); err == nil {
		m, err := godotenv.Read(EnvFile)
		if err != nil {
			return fmt.Errorf("read %s: %w", EnvFile, err)
		}
		vals = m
	}
	for _, k := range []string{EnvFormat, EnvLogLevel, EnvWorkers} {
		if v := os.Getenv(k); v != "" {
			vals[k] = v
		}
	}

	if v := vals[EnvFormat]; v != "" {
		cfg.Output.Format = v
	}
	if v := vals[EnvLogLevel]; v != "" {
		cfg.Log.Level = v
	}
	if v := vals[EnvWorkers]; v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvWorkers, err)
		}
		cfg.Batch.Workers = n
	}
	return nil
}

func configPaths() []string {
	var paths []string

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, "reba", "config.toml"))
	}

	home, _ := os.UserHomeDir()
	if home != "" {
		paths = append(paths, filepath.Join(home, ".config", "reba", "config.toml"))
	}

	return paths
}
