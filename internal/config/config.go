// Package config loads the TOML configuration file, creating it with
// defaults on first run.
package config

import (
	"errors"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	DefaultConfigFileName = "config.toml"
	DefaultStoreFileName  = "store.json"
)

type Config struct {
	StorePath   string   `toml:"store_path"`
	DefaultView string   `toml:"default_view"` // "list" or "calendar"
	Palette     []string `toml:"palette"`      // subject colors, assigned in order
}

// LoadOrCreate reads the config at path, writing the defaults there first
// when no file exists. Missing fields fall back to defaults.
func LoadOrCreate(path string) (Config, error) {
	cfg := defaultConfig()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.StorePath == "" {
		cfg.StorePath = DefaultStoreFileName
	}
	if cfg.DefaultView != "calendar" {
		cfg.DefaultView = "list"
	}
	if len(cfg.Palette) == 0 {
		cfg.Palette = defaultPalette()
	}
	return cfg, nil
}

func write(path string, cfg Config) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultConfig() Config {
	return Config{
		StorePath:   DefaultStoreFileName,
		DefaultView: "list",
		Palette:     defaultPalette(),
	}
}

// defaultPalette mirrors the UI theme so subject markers stay readable on
// the same background.
func defaultPalette() []string {
	return []string{
		"#8ec07c", // green
		"#fabd2f", // yellow
		"#83a598", // blue
		"#d3869b", // purple
		"#fe8019", // orange
		"#fb4934", // red
		"#b8bb26", // lime
		"#ebdbb2", // cream
	}
}
