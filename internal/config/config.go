// Package config loads and saves freedomd.yaml, the per-project
// settings file sitting next to the profile.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level freedomd.yaml configuration.
type Config struct {
	Owner    OwnerConfig `yaml:"owner"`
	Currency string      `yaml:"currency"`
	Git      GitConfig   `yaml:"git"`
}

// OwnerConfig identifies whose finances this project tracks.
type OwnerConfig struct {
	Name string `yaml:"name"`
}

// GitConfig controls auto-commit of profile changes.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads a freedomd.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
func Default(ownerName string) *Config {
	return &Config{
		Owner:    OwnerConfig{Name: ownerName},
		Currency: "USD",
		Git: GitConfig{
			AutoCommit:  true,
			AuthorName:  "Freedomd",
			AuthorEmail: "bot@freedomd.dev",
		},
	}
}
