package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadConfig reads and parses a config file, filling defaults for anything
// left unset. A missing file yields the pure-default config.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := &Config{}
			applyDefaults(cfg)
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}
	applyDefaults(&cfg)
	return &cfg, nil
}

// SaveConfig writes the config to the specified path.
func SaveConfig(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.Theme.Accent == "" {
		cfg.Theme.Accent = "#3498db"
	}
	if cfg.Theme.Background == "" {
		cfg.Theme.Background = "#0d1117"
	}
	if cfg.Theme.HeatmapBase == "" {
		cfg.Theme.HeatmapBase = "#26a641"
	}
	if cfg.Desktop.SnapThreshold <= 0 {
		cfg.Desktop.SnapThreshold = 6
	}
	if cfg.Desktop.MobileBreakpoint <= 0 {
		cfg.Desktop.MobileBreakpoint = 80
	}
	if cfg.Desktop.MaxCenteredWidth <= 0 {
		cfg.Desktop.MaxCenteredWidth = 100
	}
	if cfg.Desktop.TransitionMs <= 0 {
		cfg.Desktop.TransitionMs = 200
	}
	if cfg.Bindings.ToggleConsole == "" {
		cfg.Bindings.ToggleConsole = "`"
	}
	if cfg.Bindings.Respawn == "" {
		cfg.Bindings.Respawn = "r"
	}
	if cfg.Bindings.Quit == "" {
		cfg.Bindings.Quit = "ctrl+c"
	}
}
