package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Settings is the optional application configuration
// (~/.config/sweepd/config.yaml). It only supplies defaults; CLI flags win.
type Settings struct {
	Clean struct {
		DryRun    bool   `yaml:"dry_run"`    // Default to reporting without deleting
		RulesFile string `yaml:"rules_file"` // Default rules file path
	} `yaml:"clean"`
	Log struct {
		Verbose bool `yaml:"verbose"` // Debug-level logging
	} `yaml:"log"`
	Watch struct {
		DebounceSeconds int `yaml:"debounce_seconds"` // Quiet period before a re-run
	} `yaml:"watch"`
}

// LoadSettings loads settings from the default location
// (~/.config/sweepd/config.yaml).
func LoadSettings() (*Settings, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	settingsPath := filepath.Join(home, ".config", "sweepd", "config.yaml")
	return LoadSettingsFile(settingsPath)
}

// LoadSettingsFile loads settings from a specific file path.
// If the file doesn't exist, returns default settings.
func LoadSettingsFile(path string) (*Settings, error) {
	cfg := defaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Defaults if no settings file
		}
		return nil, fmt.Errorf("error reading settings file: %w", err)
	}

	// Unmarshal into a temporary settings value to preserve defaults for
	// unset fields
	var tmp Settings
	if err := yaml.Unmarshal(data, &tmp); err != nil {
		return nil, fmt.Errorf("error parsing settings file: %w", err)
	}

	cfg.Clean.DryRun = tmp.Clean.DryRun
	if tmp.Clean.RulesFile != "" {
		cfg.Clean.RulesFile = tmp.Clean.RulesFile
	}
	cfg.Log.Verbose = tmp.Log.Verbose
	if tmp.Watch.DebounceSeconds > 0 {
		cfg.Watch.DebounceSeconds = tmp.Watch.DebounceSeconds
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return cfg, nil
}

func defaultSettings() *Settings {
	cfg := &Settings{}
	cfg.Clean.DryRun = false
	cfg.Watch.DebounceSeconds = 2
	return cfg
}

// DefaultSettings returns the built-in defaults, used when no settings file
// can be loaded.
func DefaultSettings() *Settings {
	return defaultSettings()
}

// SaveSettings writes the settings to the given file, creating parent
// directories as needed.
func SaveSettings(cfg *Settings, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}

// Validate checks if the settings are valid.
func (s *Settings) Validate() error {
	if s == nil {
		return fmt.Errorf("nil settings")
	}
	if s.Watch.DebounceSeconds < 1 {
		return fmt.Errorf("watch debounce must be >= 1 second")
	}
	return nil
}
