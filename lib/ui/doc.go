// Copyright 2026 The Ebank Authors
// SPDX-License-Identifier: Apache-2.0

// Package ui implements the ebank terminal client. Built on bubbletea
// (Elm architecture), the root [App] model owns navigation: every view
// change goes through the route guard, and the active view is one of
// login, dashboard, new-client, new-account, new-transfer, or
// change-password, with a role-filtered navbar on top.
//
// Backend calls run as bubbletea commands on background goroutines.
// Every result message carries the generation counter of the view that
// issued it; results arriving after the user has navigated away are
// dropped on the floor instead of writing stale state.
//
// The gateway's unauthorized notification reaches the app through a
// channel wired up in cmd/ebank: the session store has already been
// cleared by the time the message arrives, so the app only has to
// route back to the login view.
package ui
