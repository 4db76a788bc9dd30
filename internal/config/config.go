package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/timeanchor/timeanchor/internal/resolve"
)

// Config holds the application configuration.
type Config struct {
	// Port the dev server listens on.
	Port int `json:"port"`
	// TimeZone is the fallback zone for best-effort requests that name
	// none (or an unrecognized one).
	TimeZone string `json:"time_zone"`
}

// Default returns the configuration used when no file has been saved.
func Default() Config {
	return Config{Port: 8080, TimeZone: resolve.DefaultZone}
}

// configDir returns the config directory path.
// Exported as a var for testing.
var configDir = defaultConfigDir

func defaultConfigDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "timeanchor")
}

func configPath() string {
	return filepath.Join(configDir(), "config.json")
}

// Exists returns true if a config file has been saved.
func Exists() bool {
	_, err := os.Stat(configPath())
	return err == nil
}

// Load reads the config file. Returns the default config if the file doesn't
// exist. Fields left empty by an older release fall back to their defaults.
func Load() (Config, error) {
	data, err := os.ReadFile(configPath())
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, err
	}

	cfg := Default()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Port <= 0 {
		cfg.Port = Default().Port
	}
	if cfg.TimeZone == "" {
		cfg.TimeZone = Default().TimeZone
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := configDir()
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath(), data, 0o600)
}
