// Copyright 2026 The Ebank Authors
// SPDX-License-Identifier: Apache-2.0

// Package routes defines the application's logical views, the static
// role policy gating each of them, and the route guard. The guard,
// [Decide], is a pure function of (identity, loading, allowed roles) —
// no hidden state, no side effects — so every navigation decision the
// UI makes is reproducible in a table test.
package routes
