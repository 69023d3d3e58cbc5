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

// newAccountView is the teller's account opening form: a RIB for the
// new account and the identity number of the client it belongs to.
type newAccountView struct {
	form       form
	submitting bool
	errText    string
	success    string
}

func newNewAccountView() newAccountView {
	return newAccountView{form: newForm(
		field{label: "RIB", placeholder: "account RIB", limit: 34},
		field{label: "Identity number", placeholder: "client's national ID", limit: 32},
	)}
}

func (v *newAccountView) reset() {
	v.form.reset()
	v.submitting = false
	v.errText = ""
	v.success = ""
}

func (v *newAccountView) update(a *App, msg tea.Msg) tea.Cmd {
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

func (v *newAccountView) submit(a *App) tea.Cmd {
	request := api.CreateAccountRequest{
		RIB:            v.form.value(0),
		IdentityNumber: v.form.value(1),
	}
	if request.RIB == "" || request.IdentityNumber == "" {
		v.errText = "RIB and identity number are required"
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
		account, err := gateway.CreateAccount(ctx, request)
		if err != nil {
			return submitResultMsg{gen: gen, err: err}
		}
		return submitResultMsg{gen: gen, notice: "account opened: " + account.RIB}
	}
	return tea.Batch(call, a.spin.Tick)
}

func (v *newAccountView) view(a *App) string {
	header := lipgloss.NewStyle().
		Foreground(a.theme.HeaderForeground).
		Bold(true).
		Render("New account")

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n\n")
	b.WriteString(v.form.view(a.theme))
	b.WriteString("\n\n")

	switch {
	case v.submitting:
		b.WriteString(a.spin.View())
		b.WriteString(" opening…")
	case v.errText != "":
		b.WriteString(lipgloss.NewStyle().Foreground(a.theme.ErrorText).Render(v.errText))
	case v.success != "":
		b.WriteString(lipgloss.NewStyle().Foreground(a.theme.InfoText).Render(v.success))
	default:
		b.WriteString(lipgloss.NewStyle().Foreground(a.theme.HelpText).Render("enter to open the account"))
	}
	return b.String()
}
