package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds REPL and history defaults. CLI flags override it.
type Config struct {
	DB           string `yaml:"db"`
	HistoryLimit int    `yaml:"history_limit"`
	Prompt       string `yaml:"prompt"`
}

// defaults returns the built-in configuration.
func defaults() *Config {
	return &Config{
		DB:           "calc.db",
		HistoryLimit: 50,
		Prompt:       ">>> ",
	}
}

// loadConfig reads configuration from path, or from the default location
// when path is empty. A missing file is not an error; the defaults apply.
func loadConfig(path string) (*Config, error) {
	cfg := defaults()

	if path == "" {
		path = defaultConfigPath()
		if path == "" {
			return cfg, nil
		}
		if _, err := os.Stat(path); err != nil {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// defaultConfigPath is $XDG_CONFIG_HOME/calc/config.yaml, falling back to
// ~/.config/calc/config.yaml.
func defaultConfigPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "calc", "config.yaml")
}
