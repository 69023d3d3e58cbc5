// Copyright 2026 The Ebank Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.API.BaseURL != DefaultBaseURL {
		t.Errorf("BaseURL = %q, want %q", cfg.API.BaseURL, DefaultBaseURL)
	}
	if time.Duration(cfg.API.Timeout) != DefaultTimeout {
		t.Errorf("Timeout = %v, want %v", time.Duration(cfg.API.Timeout), DefaultTimeout)
	}
	if cfg.KeepSessionOnUnauthorized {
		t.Error("KeepSessionOnUnauthorized should default to false")
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
api:
  base_url: https://bank.example.com/api
  timeout: 5s
keep_session_on_unauthorized: true
log_level: debug
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.API.BaseURL != "https://bank.example.com/api" {
		t.Errorf("BaseURL = %q", cfg.API.BaseURL)
	}
	if time.Duration(cfg.API.Timeout) != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s", time.Duration(cfg.API.Timeout))
	}
	if !cfg.KeepSessionOnUnauthorized {
		t.Error("KeepSessionOnUnauthorized not applied")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{"not yaml", "{{{"},
		{"relative base url", "api:\n  base_url: /api\n"},
		{"bad duration", "api:\n  timeout: fast\n"},
		{"bad log level", "log_level: loud\n"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(test.content), 0600); err != nil {
				t.Fatalf("WriteFile: %v", err)
			}
			if _, err := Load(path); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestStateDirPrefersEnvOverride(t *testing.T) {
	t.Setenv("EBANK_STATE_DIR", "/tmp/ebank-test-state")
	if got := StateDir(); got != "/tmp/ebank-test-state" {
		t.Errorf("StateDir = %q", got)
	}
}

func TestPathResolution(t *testing.T) {
	t.Setenv("EBANK_CONFIG", "/tmp/from-env.yaml")
	if got := Path("/tmp/from-flag.yaml"); got != "/tmp/from-flag.yaml" {
		t.Errorf("flag should win, got %q", got)
	}
	if got := Path(""); got != "/tmp/from-env.yaml" {
		t.Errorf("env should win over default, got %q", got)
	}
}
