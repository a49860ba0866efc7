package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/trop3n/scopemidi/internal/midi"
)

// Config holds everything scopemidi persists between runs: the control
// mappings, the preferred input port, and the scope settings the mapped
// parameters drive.
type Config struct {
	InPort   string               `json:"in_port"`
	Mappings []midi.MappingRecord `json:"mappings"`

	// Display
	LineWidth   float32 `json:"line_width"`
	Intensity   float32 `json:"intensity"`
	Persistence float32 `json:"persistence"`
	Zoom        float32 `json:"zoom"`
	DCOffsetX   float32 `json:"dc_offset_x"`
	DCOffsetY   float32 `json:"dc_offset_y"`

	// Audio input
	Gain float32 `json:"gain"`

	// File playback
	Volume float32 `json:"volume"`
	Speed  float32 `json:"speed"`
}

// Default returns the settings used when no config file exists.
func Default() *Config {
	return &Config{
		Mappings:    []midi.MappingRecord{},
		LineWidth:   1.5,
		Intensity:   1.0,
		Persistence: 0.85,
		Zoom:        1.0,
		Gain:        1.0,
		Volume:      1.0,
		Speed:       1.0,
	}
}

// configDir returns the platform-appropriate config directory
func configDir() (string, error) {
	configHome, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configHome, "scopemidi"), nil
}

// ConfigPath returns the full path to the config file
func ConfigPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from the platform config dir, returning
// defaults if the file is not found.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the config from path. A missing file is not an error:
// defaults are returned so first launch needs no setup. Unknown fields
// in the file are ignored, absent fields keep their defaults.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.Mappings == nil {
		cfg.Mappings = []midi.MappingRecord{}
	}
	return cfg, nil
}

// Save writes the config to the platform config dir.
func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return c.SaveTo(path)
}

// SaveTo writes the config to path, creating parent directories.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
