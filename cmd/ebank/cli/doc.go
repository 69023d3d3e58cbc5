// Copyright 2026 The Ebank Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command tree framework for the ebank binary:
// command dispatch with typo suggestions, structured help output, and
// the shared wiring that connects a command to the configured backend
// (config file, session store, HTTP gateway, logger).
//
// Commands are plain structs with a Run function; the framework owns
// flag parsing (spf13/pflag), help rendering, and exit-code handling.
package cli
