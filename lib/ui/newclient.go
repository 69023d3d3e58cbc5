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

// newClientView is the teller's client onboarding form.
type newClientView struct {
	form       form
	submitting bool
	errText    string
	success    string
}

func newNewClientView() newClientView {
	return newClientView{form: newForm(
		field{label: "First name", limit: 64},
		field{label: "Last name", limit: 64},
		field{label: "Identity number", placeholder: "national ID", limit: 32},
		field{label: "Birth date", placeholder: "YYYY-MM-DD", limit: 10},
		field{label: "Email", placeholder: "client@example.com", limit: 128},
		field{label: "Address", limit: 256},
	)}
}

func (v *newClientView) reset() {
	v.form.reset()
	v.submitting = false
	v.errText = ""
	v.success = ""
}

func (v *newClientView) update(a *App, msg tea.Msg) tea.Cmd {
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
		v.form.reset()
		v.success = msg.notice
		return nil

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

func (v *newClientView) submit(a *App) tea.Cmd {
	request := api.CreateClientRequest{
		FirstName:      v.form.value(0),
		LastName:       v.form.value(1),
		IdentityNumber: v.form.value(2),
		BirthDate:      v.form.value(3),
		Email:          v.form.value(4),
		Address:        v.form.value(5),
	}
	if request.FirstName == "" || request.LastName == "" || request.IdentityNumber == "" {
		v.errText = "first name, last name, and identity number are required"
		return nil
	}

	v.submitting = true
	v.errText = ""
	v.success = ""
	gen := a.gen
	gateway := a.gateway
	call := func() tea.Msg {
		ctx, cancel := a.callContext()
		defer cancel()
		created, err := gateway.CreateClient(ctx, request)
		if err != nil {
			return submitResultMsg{gen: gen, err: err}
		}
		notice := "client created: " + created.FirstName + " " + created.LastName +
			" (username " + created.Username + ")"
		return submitResultMsg{gen: gen, notice: notice}
	}
	return tea.Batch(call, a.spin.Tick)
}

func (v *newClientView) view(a *App) string {
	header := lipgloss.NewStyle().
		Foreground(a.theme.HeaderForeground).
		Bold(true).
		Render("New client")

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n\n")
	b.WriteString(v.form.view(a.theme))
	b.WriteString("\n\n")

	switch {
	case v.submitting:
		b.WriteString(a.spin.View())
		b.WriteString(" creating…")
	case v.errText != "":
		b.WriteString(lipgloss.NewStyle().Foreground(a.theme.ErrorText).Render(v.errText))
	case v.success != "":
		b.WriteString(lipgloss.NewStyle().Foreground(a.theme.InfoText).Render(v.success))
	default:
		b.WriteString(lipgloss.NewStyle().Foreground(a.theme.HelpText).Render("enter to create the client"))
	}
	return b.String()
}
