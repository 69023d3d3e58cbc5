// Copyright 2026 The Ebank Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults. The base URL matches the backend's development posture;
// deployments override it in the config file.
const (
	DefaultBaseURL = "http://localhost:8080/api"
	DefaultTimeout = 30 * time.Second
)

// Duration wraps time.Duration so YAML can carry values like "30s".
type Duration time.Duration

// UnmarshalYAML parses a Go duration string.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("config: invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML emits the duration string form.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// APIConfig configures the HTTP gateway.
type APIConfig struct {
	// BaseURL is the backend API root, including the /api prefix.
	BaseURL string `yaml:"base_url"`
	// Timeout bounds each backend call end to end.
	Timeout Duration `yaml:"timeout"`
}

// Config is the complete client configuration.
type Config struct {
	API APIConfig `yaml:"api"`

	// KeepSessionOnUnauthorized disables the force-logout on 401
	// responses. The default (false) matches the source behavior:
	// any unauthorized response ends the session. Deployments behind
	// proxies that emit transient 401s can set this to keep the
	// session and surface the error inline instead.
	KeepSessionOnUnauthorized bool `yaml:"keep_session_on_unauthorized"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		API: APIConfig{
			BaseURL: DefaultBaseURL,
			Timeout: Duration(DefaultTimeout),
		},
		LogLevel: "info",
	}
}

// Load reads the config file at path, layering it over the defaults.
// A missing file returns the defaults unchanged; a present but invalid
// file is an error (a half-read config is worse than none).
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	parsed, err := url.Parse(c.API.BaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("api.base_url %q is not an absolute URL", c.API.BaseURL)
	}
	if time.Duration(c.API.Timeout) <= 0 {
		return fmt.Errorf("api.timeout must be positive")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level %q is not one of debug, info, warn, error", c.LogLevel)
	}
	return nil
}

// Timeout returns the per-request timeout as a time.Duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.API.Timeout)
}

// Level converts the configured log level to a slog.Level-compatible
// name. The zero value maps to info.
func (c *Config) Level() string {
	if c.LogLevel == "" {
		return "info"
	}
	return c.LogLevel
}

// Path resolves the config file location: the explicit flag value wins,
// then EBANK_CONFIG, then config.yaml in the state directory.
func Path(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if envPath := os.Getenv("EBANK_CONFIG"); envPath != "" {
		return envPath
	}
	return filepath.Join(StateDir(), "config.yaml")
}

// StateDir returns the directory for persisted client state (session
// files, default config). Checks EBANK_STATE_DIR first, then
// XDG_CONFIG_HOME, then ~/.config.
func StateDir() string {
	if envDir := os.Getenv("EBANK_STATE_DIR"); envDir != "" {
		return envDir
	}

	configDirectory := os.Getenv("XDG_CONFIG_HOME")
	if configDirectory == "" {
		homeDirectory, err := os.UserHomeDir()
		if err != nil {
			// Fallback — this should rarely happen.
			return filepath.Join(os.TempDir(), "ebank")
		}
		configDirectory = filepath.Join(homeDirectory, ".config")
	}
	return filepath.Join(configDirectory, "ebank")
}
