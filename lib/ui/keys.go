// Copyright 2026 The Ebank Authors
// SPDX-License-Identifier: Apache-2.0

package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the client. Letter keys are
// reserved for text entry — every form view is mostly textinputs — so
// global actions sit on control chords and view-local actions on
// arrows and enter.
type KeyMap struct {
	// Global.
	Quit     key.Binding
	Logout   key.Binding
	NextView key.Binding
	PrevView key.Binding

	// Forms.
	NextField key.Binding
	PrevField key.Binding
	Submit    key.Binding
	Back      key.Binding

	// Dashboard.
	Refresh     key.Binding
	NextPage    key.Binding
	PrevPage    key.Binding
	CycleOption key.Binding

	// Transfer form. A control chord because the form's text inputs own
	// the letter keys.
	CycleSource key.Binding
}

// DefaultKeyMap is the built-in binding set.
var DefaultKeyMap = KeyMap{
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("C-c", "quit"),
	),
	Logout: key.NewBinding(
		key.WithKeys("ctrl+x"),
		key.WithHelp("C-x", "log out"),
	),
	NextView: key.NewBinding(
		key.WithKeys("ctrl+n"),
		key.WithHelp("C-n", "next view"),
	),
	PrevView: key.NewBinding(
		key.WithKeys("ctrl+p"),
		key.WithHelp("C-p", "previous view"),
	),
	NextField: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next field"),
	),
	PrevField: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("S-tab", "previous field"),
	),
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "submit"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "home"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→", "next page"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←", "previous page"),
	),
	CycleOption: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "switch account"),
	),
	CycleSource: key.NewBinding(
		key.WithKeys("ctrl+a"),
		key.WithHelp("C-a", "switch source account"),
	),
}
