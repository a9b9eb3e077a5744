// Package models provides configuration loading for the Pulseway client.
//
// Configuration comes from an optional YAML file overlaid with environment
// variables; the environment always wins. All three fields are required and
// a missing one is fatal at startup.
package models

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment variable names recognized by LoadConfig.
const (
	EnvServerURL   = "PULSEWAY_SERVER_URL"
	EnvTokenID     = "PULSEWAY_TOKEN_ID"
	EnvTokenSecret = "PULSEWAY_TOKEN_SECRET"
)

// Config holds the Pulseway API credentials. It is treated as immutable once
// loaded.
type Config struct {
	ServerURL   string `json:"server_url" yaml:"server_url"`
	TokenID     string `json:"token_id" yaml:"token_id"`
	TokenSecret string `json:"token_secret" yaml:"token_secret"`
}

// Validate reports the first missing required field.
func (c Config) Validate() error {
	if c.ServerURL == "" {
		return &ValidationError{Field: "server_url", Message: fmt.Sprintf("required (set %s)", EnvServerURL)}
	}
	if c.TokenID == "" {
		return &ValidationError{Field: "token_id", Message: fmt.Sprintf("required (set %s)", EnvTokenID)}
	}
	if c.TokenSecret == "" {
		return &ValidationError{Field: "token_secret", Message: fmt.Sprintf("required (set %s)", EnvTokenSecret)}
	}
	return nil
}

// LoadConfig reads configuration from the YAML file at path (skipped when
// path is empty or the file does not exist) and overlays the PULSEWAY_*
// environment variables. The result is validated.
func LoadConfig(path string) (Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parsing config file %s: %w", path, err)
			}
		case os.IsNotExist(err):
			// fall through to environment only
		default:
			return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	if v := os.Getenv(EnvServerURL); v != "" {
		cfg.ServerURL = v
	}
	if v := os.Getenv(EnvTokenID); v != "" {
		cfg.TokenID = v
	}
	if v := os.Getenv(EnvTokenSecret); v != "" {
		cfg.TokenSecret = v
	}
	cfg.ServerURL = strings.TrimRight(cfg.ServerURL, "/")

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
