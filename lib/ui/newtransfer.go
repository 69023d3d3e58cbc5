// Copyright 2026 The Ebank Authors
// SPDX-License-Identifier: Apache-2.0

package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/TNT-747/ebank/lib/api"
)

// newTransferView is the client's transfer form. The source account is
// picked from the client's own accounts, loaded on entry; destination,
// amount, and motif are typed.
type newTransferView struct {
	accounts []api.Account
	source   int // Index into accounts.

	form       form
	submitting bool
	errText    string
	success    string
}

func newNewTransferView() newTransferView {
	return newTransferView{form: newForm(
		field{label: "Destination RIB", placeholder: "beneficiary RIB", limit: 34},
		field{label: "Amount", placeholder: "0.00", limit: 16},
		field{label: "Motif", placeholder: "reason for the transfer", limit: 128},
	)}
}

func (v *newTransferView) reset() {
	v.accounts = nil
	v.source = 0
	v.form.reset()
	v.submitting = false
	v.errText = ""
	v.success = ""
}

// loadAccounts fetches the client's accounts for the source selector.
func (v *newTransferView) loadAccounts(a *App) tea.Cmd {
	gen := a.gen
	gateway := a.gateway
	return func() tea.Msg {
		ctx, cancel := a.callContext()
		defer cancel()
		summary, err := gateway.Dashboard(ctx, 0)
		if err != nil {
			return accountsLoadedMsg{gen: gen, err: err}
		}
		return accountsLoadedMsg{gen: gen, accounts: summary.AllAccounts}
	}
}

func (v *newTransferView) update(a *App, msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case accountsLoadedMsg:
		if a.stale(msg.gen) {
			return nil
		}
		if msg.err != nil {
			v.errText = api.UserMessage(msg.err)
			return nil
		}
		v.accounts = msg.accounts
		v.source = 0
		return nil

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
		// Balances changed; refresh the selector.
		return v.loadAccounts(a)

	case tea.KeyMsg:
		if v.submitting {
			return nil
		}
		switch {
		case key.Matches(msg, a.keys.CycleSource):
			if len(v.accounts) > 1 {
				v.source = (v.source + 1) % len(v.accounts)
			}
			return nil
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

func (v *newTransferView) submit(a *App) tea.Cmd {
	if len(v.accounts) == 0 {
		v.errText = "no source account available"
		return nil
	}
	destination := v.form.value(0)
	rawAmount := v.form.value(1)
	motif := v.form.value(2)

	if destination == "" {
		v.errText = "destination RIB is required"
		return nil
	}
	amount, err := decimal.NewFromString(rawAmount)
	if err != nil {
		v.errText = "amount must be a number"
		return nil
	}
	if !amount.IsPositive() {
		v.errText = "amount must be greater than zero"
		return nil
	}

	request := api.TransferRequest{
		SourceRIB:      v.accounts[v.source].RIB,
		DestinationRIB: destination,
		Amount:         amount,
		Motif:          motif,
	}

	v.submitting = true
	v.errText = ""
	v.success = ""
	gen := a.gen
	gateway := a.gateway
	call := func() tea.Msg {
		ctx, cancel := a.callContext()
		defer cancel()
		transaction, err := gateway.ExecuteTransfer(ctx, request)
		if err != nil {
			return submitResultMsg{gen: gen, err: err}
		}
		notice := "transfer executed: " + transaction.Amount.StringFixed(2) +
			" to " + request.DestinationRIB
		return submitResultMsg{gen: gen, notice: notice}
	}
	return tea.Batch(call, a.spin.Tick)
}

func (v *newTransferView) view(a *App) string {
	header := lipgloss.NewStyle().
		Foreground(a.theme.HeaderForeground).
		Bold(true).
		Render("New transfer")

	faint := lipgloss.NewStyle().Foreground(a.theme.FaintText)
	normal := lipgloss.NewStyle().Foreground(a.theme.NormalText)

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n\n")

	b.WriteString(faint.Render("From"))
	b.WriteString("\n")
	if len(v.accounts) == 0 {
		b.WriteString(faint.Render("(no accounts)"))
	} else {
		account := v.accounts[v.source]
		b.WriteString(normal.Render(account.RIB))
		b.WriteString(faint.Render("  balance " + account.Balance.StringFixed(2)))
		if len(v.accounts) > 1 {
			b.WriteString(faint.Render("  (C-a to switch)"))
		}
	}
	b.WriteString("\n\n")
	b.WriteString(v.form.view(a.theme))
	b.WriteString("\n\n")

	switch {
	case v.submitting:
		b.WriteString(a.spin.View())
		b.WriteString(" executing…")
	case v.errText != "":
		b.WriteString(lipgloss.NewStyle().Foreground(a.theme.ErrorText).Render(v.errText))
	case v.success != "":
		b.WriteString(lipgloss.NewStyle().Foreground(a.theme.InfoText).Render(v.success))
	default:
		b.WriteString(lipgloss.NewStyle().Foreground(a.theme.HelpText).Render("enter to execute the transfer"))
	}
	return b.String()
}
