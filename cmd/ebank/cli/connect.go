// Copyright 2026 The Ebank Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/TNT-747/ebank/lib/api"
	"github.com/TNT-747/ebank/lib/config"
	"github.com/TNT-747/ebank/lib/session"
)

// ConnectConfig holds the options for wiring a command environment.
type ConnectConfig struct {
	// ConfigPath is the --config flag value. Empty falls through to
	// EBANK_CONFIG and the state directory default.
	ConfigPath string
	// LogWriter overrides the logger destination. Nil means stderr.
	// The TUI points this at a file so log lines don't tear the screen.
	LogWriter io.Writer
	// OnUnauthorized, when set, runs after the session has been cleared
	// in response to a rejected credential. The TUI uses this to route
	// back to the login view.
	OnUnauthorized func()
}

// Env bundles everything a command needs to talk to the backend.
type Env struct {
	Config  config.Config
	Store   *session.Store
	Gateway *api.Client
	Logger  *slog.Logger
}

// Connect loads configuration and wires the session store and HTTP
// gateway together. The store is created empty; callers restore the
// persisted session with [Env.RequireSession] (headless commands) or
// leave it to the TUI's startup sequence.
func Connect(cc ConnectConfig) (*Env, error) {
	cfg, err := config.Load(config.Path(cc.ConfigPath))
	if err != nil {
		return nil, err
	}

	logger := NewCommandLogger(cc.LogWriter, cfg.Level())

	store, err := session.NewStore(session.StoreConfig{
		StateDir: config.StateDir(),
		Logger:   logger,
	})
	if err != nil {
		return nil, err
	}

	onUnauthorized := store.HandleUnauthorized
	if cc.OnUnauthorized != nil {
		extra := cc.OnUnauthorized
		onUnauthorized = func() {
			store.HandleUnauthorized()
			extra()
		}
	}

	gateway, err := api.NewClient(api.ClientConfig{
		BaseURL:                   cfg.API.BaseURL,
		Logger:                    logger,
		TokenSource:               store.Token,
		OnUnauthorized:            onUnauthorized,
		KeepSessionOnUnauthorized: cfg.KeepSessionOnUnauthorized,
	})
	if err != nil {
		return nil, err
	}
	store.Bind(gateway)

	return &Env{
		Config:  cfg,
		Store:   store,
		Gateway: gateway,
		Logger:  logger,
	}, nil
}

// RequireSession restores the persisted session and fails when none
// exists. Headless commands call this before their backend operation.
func (e *Env) RequireSession() error {
	if err := e.Store.Restore(); err != nil {
		return err
	}
	if !e.Store.Authenticated() {
		return fmt.Errorf("not logged in (run 'ebank login <username>')")
	}
	return nil
}

// CallContext builds the per-request context with the configured
// timeout.
func (e *Env) CallContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), time.Duration(e.Config.API.Timeout))
}
