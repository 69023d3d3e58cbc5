// Copyright 2026 The Ebank Authors
// SPDX-License-Identifier: Apache-2.0

package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/TNT-747/ebank/lib/api"
	"github.com/TNT-747/ebank/lib/routes"
)

// changePasswordView is the credential rotation form, open to both
// roles. On success the session ends and the user signs in again with
// the new password.
type changePasswordView struct {
	form       form
	submitting bool
	errText    string
}

func newChangePasswordView() changePasswordView {
	return changePasswordView{form: newForm(
		field{label: "Current password", secret: true, limit: 128},
		field{label: "New password", secret: true, limit: 128},
		field{label: "Confirm new password", secret: true, limit: 128},
	)}
}

func (v *changePasswordView) reset() {
	v.form.reset()
	v.submitting = false
	v.errText = ""
}

func (v *changePasswordView) update(a *App, msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case submitResultMsg:
		if a.stale(msg.gen) {
			return nil
		}
		v.submitting = false
		if msg.err != nil {
			v.errText = api.UserMessage(msg.err)
			return nil
		}
		// The old credential is dead; force a fresh sign-in.
		a.store.Logout()
		notice := a.setNotice("password changed, sign in with the new password", false)
		return tea.Batch(notice, a.navigate(routes.RouteLogin))

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

func (v *changePasswordView) submit(a *App) tea.Cmd {
	current := v.form.inputs[0].Value()
	newPassword := v.form.inputs[1].Value()
	confirm := v.form.inputs[2].Value()
	if current == "" || newPassword == "" {
		v.errText = "current and new passwords are required"
		return nil
	}

	v.submitting = true
	v.errText = ""
	gen := a.gen
	store := a.store
	call := func() tea.Msg {
		ctx, cancel := a.callContext()
		defer cancel()
		err := store.ChangePassword(ctx, current, newPassword, confirm)
		return submitResultMsg{gen: gen, err: err}
	}
	return tea.Batch(call, a.spin.Tick)
}

func (v *changePasswordView) view(a *App) string {
	header := lipgloss.NewStyle().
		Foreground(a.theme.HeaderForeground).
		Bold(true).
		Render("Change password")

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n\n")
	b.WriteString(v.form.view(a.theme))
	b.WriteString("\n\n")

	switch {
	case v.submitting:
		b.WriteString(a.spin.View())
		b.WriteString(" updating…")
	case v.errText != "":
		b.WriteString(lipgloss.NewStyle().Foreground(a.theme.ErrorText).Render(v.errText))
	default:
		b.WriteString(lipgloss.NewStyle().Foreground(a.theme.HelpText).Render("enter to change the password"))
	}
	return b.String()
}
