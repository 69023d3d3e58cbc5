// Copyright 2026 The Ebank Authors
// SPDX-License-Identifier: Apache-2.0

package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// File names under the state directory. The credential and the identity
// are keyed independently, matching the two localStorage entries of the
// browser original: either one missing means logged out.
const (
	tokenFileName    = "token"
	identityFileName = "identity.json"
)

// storage persists the session to disk. The token file holds the bare
// credential string; the identity file holds the JSON identity record.
// Files are written 0600 in a 0700 directory since the token grants
// account access.
type storage struct {
	dir string
}

// errCorrupt marks persisted state that exists but does not parse.
// Restore treats it as logged out and wipes the files.
var errCorrupt = errors.New("session: corrupt persisted state")

// isCorrupt reports whether err stems from unusable persisted state,
// as opposed to a filesystem failure.
func isCorrupt(err error) bool {
	return errors.Is(err, errCorrupt)
}

// load reads both files. Returns ("", nil, nil) when either file is
// absent — a normal logged-out state, not an error. Returns errCorrupt
// (wrapped) when data is present but unusable.
func (s *storage) load() (string, *Identity, error) {
	tokenBytes, err := os.ReadFile(filepath.Join(s.dir, tokenFileName))
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil, nil
	}
	if err != nil {
		return "", nil, fmt.Errorf("session: reading token file: %w", err)
	}

	identityBytes, err := os.ReadFile(filepath.Join(s.dir, identityFileName))
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil, nil
	}
	if err != nil {
		return "", nil, fmt.Errorf("session: reading identity file: %w", err)
	}

	token := strings.TrimSpace(string(tokenBytes))
	if token == "" {
		return "", nil, fmt.Errorf("%w: empty token file", errCorrupt)
	}

	var identity Identity
	if err := json.Unmarshal(identityBytes, &identity); err != nil {
		return "", nil, fmt.Errorf("%w: %v", errCorrupt, err)
	}
	if identity.Username == "" || !identity.Role.Valid() {
		return "", nil, fmt.Errorf("%w: incomplete identity record", errCorrupt)
	}

	return token, &identity, nil
}

// save writes both files, directory first. The identity file is written
// after the token so a crash between the two writes leaves a state that
// load treats as logged out rather than half-populated.
func (s *storage) save(token string, identity *Identity) error {
	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return fmt.Errorf("session: creating state directory %s: %w", s.dir, err)
	}

	if err := os.WriteFile(filepath.Join(s.dir, tokenFileName), []byte(token+"\n"), 0600); err != nil {
		return fmt.Errorf("session: writing token file: %w", err)
	}

	data, err := json.MarshalIndent(identity, "", "  ")
	if err != nil {
		return fmt.Errorf("session: marshaling identity: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(filepath.Join(s.dir, identityFileName), data, 0600); err != nil {
		return fmt.Errorf("session: writing identity file: %w", err)
	}

	return nil
}

// clear removes both files. Absent files are fine — clear is idempotent.
func (s *storage) clear() error {
	var firstErr error
	for _, name := range []string{tokenFileName, identityFileName} {
		err := os.Remove(filepath.Join(s.dir, name))
		if err != nil && !errors.Is(err, fs.ErrNotExist) && firstErr == nil {
			firstErr = fmt.Errorf("session: removing %s: %w", name, err)
		}
	}
	return firstErr
}
