// Package config loads the defaults the qrencode CLI falls back to when a
// flag is not given explicitly on the command line.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the persisted defaults for the qrencode command.
type Config struct {
	OutputDir  string `yaml:"output_dir"`
	Scale      int    `yaml:"scale"`
	Border     int    `yaml:"border"`
	DefaultECC string `yaml:"default_ecc"`
}

func defaults() *Config {
	return &Config{
		OutputDir:  ".",
		Scale:      8,
		Border:     4,
		DefaultECC: "M",
	}
}

// Defaults returns a Config populated with all default values.
func Defaults() *Config {
	return defaults()
}

// Load reads cfg from the YAML file at path, filling in any field the file
// leaves unset with its default value. An empty file yields all defaults.
func Load(path string) (*Config, error) {
	cfg := defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg to path in YAML format, creating parent directories as
// needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
