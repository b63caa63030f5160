package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// CatalogPath points at an optional YAML catalog override. When the
	// file is absent the built-in catalog is used.
	CatalogPath string `yaml:"catalog_path"`

	// StorePath is the directory holding the local media collection store.
	StorePath string `yaml:"store_path"`

	// RequestTimeoutMS bounds each HEAD probe.
	RequestTimeoutMS int `yaml:"request_timeout_ms"`

	// UI Settings
	ColorTheme string `yaml:"color_theme"`

	// WatchDebounceMS delays sweep re-runs after a catalog file change.
	WatchDebounceMS int `yaml:"watch_debounce_ms"`
}

// DefaultConfig returns a Config struct with default values
func DefaultConfig() *Config {
	return &Config{
		CatalogPath:      "",
		StorePath:        defaultStorePath(),
		RequestTimeoutMS: 10000,
		ColorTheme:       "auto",
		WatchDebounceMS:  500,
	}
}

func defaultStorePath() string {
	if xdgDataHome := os.Getenv("XDG_DATA_HOME"); xdgDataHome != "" {
		return filepath.Join(xdgDataHome, "mediaseed")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".mediaseed"
	}
	return filepath.Join(home, ".local", "share", "mediaseed")
}

// DefaultPath returns the config file location.
func DefaultPath() string {
	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		return filepath.Join(xdgConfigHome, "mediaseed", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(home, ".config", "mediaseed", "config.yaml")
}

// Load reads configuration from the specified file path
func Load(path string) (*Config, error) {
	// Start with default config
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		// If file doesn't exist, return default config (not an error)
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply defaults for essential values if missing
	if cfg.StorePath == "" {
		cfg.StorePath = defaultStorePath()
	}
	if cfg.RequestTimeoutMS <= 0 {
		cfg.RequestTimeoutMS = 10000
	}
	if cfg.ColorTheme == "" {
		cfg.ColorTheme = "auto"
	}
	if cfg.WatchDebounceMS <= 0 {
		cfg.WatchDebounceMS = 500
	}

	return cfg, nil
}

// Save persists the current configuration to the specified file path
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
