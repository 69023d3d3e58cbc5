// Copyright 2026 The Ebank Authors
// SPDX-License-Identifier: Apache-2.0

// Package config loads the client configuration: the backend base URL,
// request timeout, logging level, and the unauthorized-handling switch.
// Configuration comes from a single YAML file, located via the --config
// flag or the EBANK_CONFIG environment variable, with a well-known
// default under the state directory. A missing file is not an error —
// every field has a usable default.
package config
