// Package config loads the gridfile CLI defaults from a YAML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EnvPath names the environment variable that overrides the config path.
const EnvPath = "GRIDFILE_CONFIG"

// Config holds the preview defaults. Command-line flags take precedence.
type Config struct {
	// Preview style: table, markdown, or yaml.
	Style string `yaml:"style,omitempty"`

	// Table border: rounded, none, ascii, heavy, or double.
	Border string `yaml:"border,omitempty"`

	PageSize int  `yaml:"page_size,omitempty"`
	MaxWidth int  `yaml:"max_width,omitempty"`
	Numbered bool `yaml:"numbered,omitempty"`

	// Color mode: auto, always, or never.
	Color string `yaml:"color,omitempty"`
}

// Default returns the built-in defaults.
func Default() *Config {
	return &Config{
		Style:    "table",
		Border:   "rounded",
		PageSize: 100,
		Color:    "auto",
	}
}

// configPathFunc returns the default config path. Tests override it.
var configPathFunc = defaultConfigPath

// SetConfigPathFunc sets the config path function for testing.
// Returns the original function so it can be restored.
func SetConfigPathFunc(fn func() (string, error)) func() (string, error) {
	orig := configPathFunc
	configPathFunc = fn
	return orig
}

// defaultConfigPath returns ~/.config/gridfile/config.yaml
func defaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "gridfile", "config.yaml"), nil
}

// Path resolves the config path: GRIDFILE_CONFIG when set, the default
// location otherwise.
func Path() (string, error) {
	if p := os.Getenv(EnvPath); p != "" {
		return p, nil
	}
	return configPathFunc()
}

// Load reads the config from path, or from [Path] when path is empty.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := Path()
		if err != nil {
			return Default(), nil
		}
		path = p
	}
	return LoadFromPath(path)
}

// LoadFromPath reads the config at path. Fields left unset keep their
// defaults.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	if cfg.PageSize < 0 {
		return nil, fmt.Errorf("invalid config file %s: page_size must not be negative", path)
	}
	if cfg.MaxWidth < 0 {
		return nil, fmt.Errorf("invalid config file %s: max_width must not be negative", path)
	}
	return cfg, nil
}
