// Copyright 2026 The Ebank Authors
// SPDX-License-Identifier: Apache-2.0

package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/TNT-747/ebank/lib/api"
)

// Gateway is the slice of the HTTP gateway the store needs. Declared
// here so the store can be tested against a fake without a server.
type Gateway interface {
	Login(ctx context.Context, request api.LoginRequest) (*api.LoginResponse, error)
	ChangePassword(ctx context.Context, request api.ChangePasswordRequest) error
}

// Client-side password rules, checked before any network call. The
// backend enforces its own copy; these exist so an obviously bad form
// never leaves the machine.
const (
	minPasswordLength = 6

	passwordMismatchMessage = "new password and confirmation do not match"
	passwordTooShortMessage = "new password must be at least 6 characters"
)

// StoreConfig holds configuration for creating a Store.
type StoreConfig struct {
	// StateDir is the directory holding the token and identity files.
	StateDir string
	// Logger is used for structured logging. If nil, slog.Default()
	// is used.
	Logger *slog.Logger
}

// Store holds the current session: either fully absent or fully
// populated, never partial. All mutation goes through Login, Logout,
// HandleUnauthorized, and Restore; every mutation updates memory and
// disk together.
type Store struct {
	logger  *slog.Logger
	storage storage

	mu       sync.RWMutex
	gateway  Gateway
	identity *Identity
	token    string
}

// NewStore creates a session store over the given state directory.
// The store starts empty; call [Store.Restore] to pick up a persisted
// session, and [Store.Bind] to attach the gateway before using Login
// or ChangePassword.
func NewStore(config StoreConfig) (*Store, error) {
	if config.StateDir == "" {
		return nil, fmt.Errorf("session: StateDir is required")
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Store{
		logger:  logger,
		storage: storage{dir: config.StateDir},
	}, nil
}

// Bind attaches the gateway. The store and the gateway reference each
// other (the gateway reads the credential through [Store.Token]), so
// the pair is completed here after both exist.
func (s *Store) Bind(gateway Gateway) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gateway = gateway
}

// Restore loads the persisted session, if any. Called once at startup,
// before the first route decision. No network call is made — the
// credential is trusted until the backend rejects it. Corrupt persisted
// state is wiped and treated as logged out; only unexpected filesystem
// failures surface as errors.
func (s *Store) Restore() error {
	token, identity, err := s.storage.load()
	if err != nil {
		if isCorrupt(err) {
			s.logger.Warn("persisted session is corrupt, clearing", "error", err)
			if clearErr := s.storage.clear(); clearErr != nil {
				return clearErr
			}
			return nil
		}
		return err
	}
	if identity == nil {
		return nil
	}

	s.mu.Lock()
	s.identity = identity
	s.token = token
	s.mu.Unlock()

	s.logger.Info("session restored", "username", identity.Username, "role", identity.Role)
	return nil
}

// Login authenticates against the backend and, on success, installs
// the session in memory and on disk. On failure nothing changes — no
// partial state, no storage writes.
func (s *Store) Login(ctx context.Context, username, password string) (*Identity, error) {
	s.mu.RLock()
	gateway := s.gateway
	s.mu.RUnlock()
	if gateway == nil {
		return nil, fmt.Errorf("session: store has no gateway bound")
	}

	response, err := gateway.Login(ctx, api.LoginRequest{Username: username, Password: password})
	if err != nil {
		return nil, err
	}

	role, err := ParseRole(response.Role)
	if err != nil {
		// A role outside the closed set means a contract break, not a
		// user mistake. Refuse the session rather than guessing.
		s.logger.Error("login response carries unknown role", "role", response.Role)
		return nil, &api.Error{Kind: api.KindUnknown, Message: "the server returned an unexpected response"}
	}

	identity := &Identity{
		Username: response.Username,
		Role:     role,
		Email:    response.Email,
	}

	if err := s.storage.save(response.Token, identity); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.identity = identity
	s.token = response.Token
	s.mu.Unlock()

	return identity, nil
}

// Logout clears the session in memory and on disk. Idempotent — a
// second call is a no-op.
func (s *Store) Logout() {
	s.mu.Lock()
	hadSession := s.identity != nil
	s.identity = nil
	s.token = ""
	s.mu.Unlock()

	if err := s.storage.clear(); err != nil {
		s.logger.Warn("clearing persisted session failed", "error", err)
	}
	if hadSession {
		s.logger.Info("logged out")
	}
}

// HandleUnauthorized is the gateway's OnUnauthorized target: the
// backend rejected the credential, so the session is gone regardless
// of what the user was doing. Clears at most once — overlapping
// notifications find the session already absent.
func (s *Store) HandleUnauthorized() {
	s.mu.Lock()
	hadSession := s.identity != nil
	s.identity = nil
	s.token = ""
	s.mu.Unlock()

	if !hadSession {
		return
	}
	if err := s.storage.clear(); err != nil {
		s.logger.Warn("clearing persisted session failed", "error", err)
	}
	s.logger.Info("session invalidated by backend")
}

// ChangePassword validates the form client-side, then forwards all
// three values to the backend. The session is not touched on success;
// the caller decides whether to force a re-login.
func (s *Store) ChangePassword(ctx context.Context, current, newPassword, confirm string) error {
	if newPassword != confirm {
		return &api.Error{Kind: api.KindValidation, Message: passwordMismatchMessage}
	}
	if len(newPassword) < minPasswordLength {
		return &api.Error{Kind: api.KindValidation, Message: passwordTooShortMessage}
	}

	s.mu.RLock()
	gateway := s.gateway
	s.mu.RUnlock()
	if gateway == nil {
		return fmt.Errorf("session: store has no gateway bound")
	}

	return gateway.ChangePassword(ctx, api.ChangePasswordRequest{
		CurrentPassword: current,
		NewPassword:     newPassword,
		ConfirmPassword: confirm,
	})
}

// Current returns the identity of the logged-in user, or nil when the
// session is absent. The returned value is a copy — mutating it does
// not affect the store.
func (s *Store) Current() *Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return nil
	}
	identity := *s.identity
	return &identity
}

// Token returns the bearer credential, or "" when logged out. This is
// the gateway's token source.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Authenticated reports whether a session is present.
func (s *Store) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity != nil
}

// IsAgent reports whether the current session belongs to a teller.
// False when logged out.
func (s *Store) IsAgent() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity != nil && s.identity.Role == RoleAgent
}

// IsClient reports whether the current session belongs to a bank
// client. False when logged out.
func (s *Store) IsClient() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity != nil && s.identity.Role == RoleClient
}
