// Package config contains the loader and strongly typed model for changelog.yaml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	envconf "github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	envfile "github.com/monorepo-tools/changelogctl/internal/env"
)

// Resolver modes accepted by Config.Mode.
const (
	// ModeLive fetches PR labels from GitHub, one lookup per PR.
	ModeLive = "live"
	// ModeEmbedded reads labels from annotation comments in the PR bodies.
	ModeEmbedded = "embedded"
)

// Config describes a changelogctl run. Values come from changelog.yaml,
// overridden by environment variables, overridden by command-line flags.
type Config struct {
	// Repo is the GitHub repository slug (owner/name) for live label lookups.
	Repo string `yaml:"repo" env:"CHANGELOG_REPO"`
	// Mode selects how PR labels are resolved: "live" or "embedded".
	Mode string `yaml:"mode" env:"CHANGELOG_MODE"`
	// LogLevel is the log level applied when --log-level is not given.
	LogLevel string `yaml:"logLevel" env:"CHANGELOG_LOG_LEVEL"`
	// EnvFiles lists .env files loaded before applying environment overrides,
	// relative to the config file's directory.
	EnvFiles []string `yaml:"envFiles,omitempty"`
	// Token authenticates live lookups. Only read from the environment.
	Token string `yaml:"-" env:"GITHUB_TOKEN"`
}

// Load reads the config file at path, loads any referenced .env files, and
// applies environment overrides. A missing config file is not an error; the
// defaults (embedded mode, info level) apply.
func Load(path string) (*Config, error) {
	cfg := &Config{Mode: ModeEmbedded, LogLevel: "info"}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// Optional file.
	case err != nil:
		return nil, fmt.Errorf("read config %q: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %q: %w", path, err)
		}
	}

	fileVars, err := envfile.LoadEnvFiles(filepath.Dir(path), cfg.EnvFiles)
	if err != nil {
		return nil, err
	}
	merged := envfile.Merge(envfile.FromOS(), fileVars)

	if err := envconf.ParseWithOptions(cfg, envconf.Options{Environment: merged}); err != nil {
		return nil, fmt.Errorf("apply environment overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks mode and the live-mode repo requirement.
func (c *Config) Validate() error {
	switch c.Mode {
	case ModeLive, ModeEmbedded:
	default:
		return fmt.Errorf("invalid mode %q, expected %q or %q", c.Mode, ModeLive, ModeEmbedded)
	}
	return nil
}
