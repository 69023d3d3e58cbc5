// Copyright 2026 The Ebank Authors
// SPDX-License-Identifier: Apache-2.0

package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/TNT-747/ebank/lib/api"
)

// loginView is the sign-in form. On success the app routes to the
// remembered destination, or the role's home view.
type loginView struct {
	form       form
	submitting bool
	errText    string
}

func newLoginView() loginView {
	return loginView{form: newForm(
		field{label: "Username", placeholder: "username", limit: 64},
		field{label: "Password", placeholder: "password", secret: true, limit: 128},
	)}
}

func (v *loginView) reset() {
	v.form.reset()
	v.submitting = false
	v.errText = ""
}

func (v *loginView) update(a *App, msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case loginResultMsg:
		if a.stale(msg.gen) {
			return nil
		}
		v.submitting = false
		if msg.err != nil {
			v.errText = api.UserMessage(msg.err)
			return nil
		}
		return a.afterLogin(msg.identity)

	case tea.KeyMsg:
		if v.submitting {
			return nil
		}
		switch {
		case key.Matches(msg, a.keys.NextField):
			return v.form.next()
		case key.Matches(msg, a.keys.PrevField):
			return v.form.prev()
		case key.Matches(msg, a.keys.Submit):
			if !v.form.onLastField() {
				return v.form.next()
			}
			return v.submit(a)
		}
	}
	return v.form.update(msg)
}

func (v *loginView) submit(a *App) tea.Cmd {
	username := v.form.value(0)
	password := v.form.inputs[1].Value()
	if username == "" || password == "" {
		v.errText = "username and password are required"
		return nil
	}

	v.submitting = true
	v.errText = ""
	gen := a.gen
	store := a.store
	call := func() tea.Msg {
		ctx, cancel := a.callContext()
		defer cancel()
		identity, err := store.Login(ctx, username, password)
		return loginResultMsg{gen: gen, identity: identity, err: err}
	}
	return tea.Batch(call, a.spin.Tick)
}

func (v *loginView) view(a *App) string {
	header := lipgloss.NewStyle().
		Foreground(a.theme.HeaderForeground).
		Bold(true).
		Render("eBank — Sign in")

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n\n")
	b.WriteString(v.form.view(a.theme))
	b.WriteString("\n\n")

	switch {
	case v.submitting:
		b.WriteString(a.spin.View())
		b.WriteString(" signing in…")
	case v.errText != "":
		b.WriteString(lipgloss.NewStyle().Foreground(a.theme.ErrorText).Render(v.errText))
	default:
		b.WriteString(lipgloss.NewStyle().Foreground(a.theme.HelpText).Render("enter to sign in"))
	}
	return b.String()
}
