package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// FileName is the configuration file inside the vault directory.
const FileName = "cardvault.yaml"

// Config represents the cardvault.yaml configuration for one vault.
// Environment variables override the file.
type Config struct {
	// Server is the base URL of the remote account store.
	Server string `yaml:"server" env:"CARDVAULT_SERVER"`
	// Device identifies this installation on the auth endpoint.
	Device string `yaml:"device" env:"CARDVAULT_DEVICE"`
}

// Load reads cardvault.yaml from a vault directory and applies
// CARDVAULT_* environment overrides.
func Load(dir string) (*Config, error) {
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("applying env overrides: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to cardvault.yaml in the vault directory.
func Save(dir string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, FileName), data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config for a new vault. The device name falls back
// to the hostname.
func Default(server string) *Config {
	device, err := os.Hostname()
	if err != nil || device == "" {
		device = "cardvault"
	}
	return &Config{
		Server: server,
		Device: device,
	}
}
