// Copyright 2026 The Ebank Authors
// SPDX-License-Identifier: Apache-2.0

// Package session is the single source of truth for "who is logged in".
// The [Store] holds the authenticated identity and bearer credential in
// memory and mirrors them to two independently keyed files under the
// state directory (the credential as a bare string, the identity as
// JSON), so a session survives process restarts the way the browser
// original survived page reloads.
//
// Restoration is optimistic: [Store.Restore] reads the files without
// validating the credential against the backend. Both files must be
// present and parseable for a session to materialize; anything else is
// a clear-and-reset to the logged-out state.
//
// The store is safe for concurrent use. UI code runs bubbletea commands
// on background goroutines, and the gateway's unauthorized notification
// can arrive on any of them.
package session
