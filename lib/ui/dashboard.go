// Copyright 2026 The Ebank Authors
// SPDX-License-Identifier: Apache-2.0

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/TNT-747/ebank/lib/api"
)

// transactionsPageSize is the page length requested from the history
// endpoint.
const transactionsPageSize = 10

// dashboardView shows the client's balance overview and the paginated
// transaction history of the selected account.
type dashboardView struct {
	summary *api.DashboardSummary

	// selectedID is the account whose history is shown; 0 until the
	// first summary arrives, then the backend's default account.
	selectedID int64

	history    table.Model
	page       int
	totalPages int

	fetching bool
	errText  string

	width  int
	height int
}

func newHistoryTable() table.Model {
	columns := []table.Column{
		{Title: "Date", Width: 17},
		{Title: "Type", Width: 14},
		{Title: "Label", Width: 28},
		{Title: "Amount", Width: 14},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithHeight(transactionsPageSize+1),
		table.WithFocused(true),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Foreground(DefaultTheme.HeaderForeground).
		BorderForeground(DefaultTheme.BorderColor).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(DefaultTheme.SelectedForeground).
		Background(DefaultTheme.SelectedBackground)
	t.SetStyles(styles)
	return t
}

func (v *dashboardView) reset() {
	v.summary = nil
	v.selectedID = 0
	v.history = newHistoryTable()
	v.page = 0
	v.totalPages = 0
	v.fetching = true
	v.errText = ""
	v.fitTable()
}

func (v *dashboardView) resize(width, height int) {
	v.width = width
	v.height = height
	v.fitTable()
}

// fitTable bounds the history table to the terminal height, leaving
// room for the navbar, the summary block, and the status bar.
func (v *dashboardView) fitTable() {
	if v.height == 0 {
		return
	}
	rows := v.height - 12
	if rows < 3 {
		rows = 3
	}
	if rows > transactionsPageSize+1 {
		rows = transactionsPageSize + 1
	}
	v.history.SetHeight(rows)
}

// load fetches the summary for the selected account. Runs on every
// entry into the view, on refresh, and on account switch.
func (v *dashboardView) load(a *App) tea.Cmd {
	v.fetching = true
	gen := a.gen
	gateway := a.gateway
	accountID := v.selectedID
	return func() tea.Msg {
		ctx, cancel := a.callContext()
		defer cancel()
		summary, err := gateway.Dashboard(ctx, accountID)
		return dashboardLoadedMsg{gen: gen, summary: summary, err: err}
	}
}

// loadHistory fetches one page of the selected account's transactions.
func (v *dashboardView) loadHistory(a *App, page int) tea.Cmd {
	if v.selectedID == 0 {
		return nil
	}
	v.fetching = true
	gen := a.gen
	gateway := a.gateway
	accountID := v.selectedID
	return func() tea.Msg {
		ctx, cancel := a.callContext()
		defer cancel()
		listing, err := gateway.Transactions(ctx, accountID, page, transactionsPageSize)
		return transactionsLoadedMsg{gen: gen, page: page, data: listing, err: err}
	}
}

func (v *dashboardView) update(a *App, msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		if a.stale(msg.gen) {
			return nil
		}
		v.fetching = false
		if msg.err != nil {
			// A failed refresh keeps whatever was on screen.
			a.logger.Warn("dashboard refresh failed", "error", msg.err)
			v.errText = api.UserMessage(msg.err)
			return nil
		}
		v.errText = ""
		v.summary = msg.summary
		if msg.summary.Account != nil {
			v.selectedID = msg.summary.Account.ID
		}
		v.page = 0
		return v.loadHistory(a, 0)

	case transactionsLoadedMsg:
		if a.stale(msg.gen) {
			return nil
		}
		v.fetching = false
		if msg.err != nil {
			a.logger.Warn("transaction history fetch failed", "error", msg.err)
			v.errText = api.UserMessage(msg.err)
			return nil
		}
		v.errText = ""
		v.page = msg.page
		v.totalPages = msg.data.TotalPages
		v.history.SetRows(transactionRows(msg.data.Content))
		return nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.Refresh):
			return tea.Batch(v.load(a), a.spin.Tick)
		case key.Matches(msg, a.keys.NextPage):
			if v.page+1 < v.totalPages {
				return tea.Batch(v.loadHistory(a, v.page+1), a.spin.Tick)
			}
			return nil
		case key.Matches(msg, a.keys.PrevPage):
			if v.page > 0 {
				return tea.Batch(v.loadHistory(a, v.page-1), a.spin.Tick)
			}
			return nil
		case key.Matches(msg, a.keys.CycleOption):
			return v.cycleAccount(a)
		}
	}

	var cmd tea.Cmd
	v.history, cmd = v.history.Update(msg)
	return cmd
}

// cycleAccount switches the view to the client's next account and
// reloads both the summary and the history.
func (v *dashboardView) cycleAccount(a *App) tea.Cmd {
	if v.summary == nil || len(v.summary.AllAccounts) < 2 {
		return nil
	}
	accounts := v.summary.AllAccounts
	current := 0
	for i, account := range accounts {
		if account.ID == v.selectedID {
			current = i
			break
		}
	}
	v.selectedID = accounts[(current+1)%len(accounts)].ID
	return tea.Batch(v.load(a), a.spin.Tick)
}

func transactionRows(transactions []api.Transaction) []table.Row {
	rows := make([]table.Row, len(transactions))
	for i, tx := range transactions {
		rows[i] = table.Row{
			tx.Date.Format("2006-01-02 15:04"),
			tx.Type,
			tx.Label,
			tx.Amount.StringFixed(2),
		}
	}
	return rows
}

func (v *dashboardView) view(a *App) string {
	header := lipgloss.NewStyle().
		Foreground(a.theme.HeaderForeground).
		Bold(true).
		Render("Dashboard")

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n\n")

	if v.summary == nil {
		if v.fetching {
			b.WriteString(a.spin.View())
			b.WriteString(" loading…")
		} else if v.errText != "" {
			b.WriteString(lipgloss.NewStyle().Foreground(a.theme.ErrorText).Render(v.errText))
		}
		return b.String()
	}

	faint := lipgloss.NewStyle().Foreground(a.theme.FaintText)
	normal := lipgloss.NewStyle().Foreground(a.theme.NormalText)

	if account := v.summary.Account; account != nil {
		status := lipgloss.NewStyle().
			Foreground(a.theme.StatusColor(account.Status)).
			Render(account.Status)
		b.WriteString(faint.Render("Account  "))
		b.WriteString(normal.Render(account.RIB))
		b.WriteString("  ")
		b.WriteString(status)
		b.WriteString("\n")
		b.WriteString(faint.Render("Balance  "))
		b.WriteString(normal.Render(account.Balance.StringFixed(2)))
		b.WriteString("\n")
	}
	b.WriteString(faint.Render("Total    "))
	b.WriteString(normal.Render(v.summary.TotalBalance.StringFixed(2)))
	if len(v.summary.AllAccounts) > 1 {
		b.WriteString(faint.Render(fmt.Sprintf("  across %d accounts (a to switch)", len(v.summary.AllAccounts))))
	}
	b.WriteString("\n\n")

	b.WriteString(v.history.View())
	b.WriteString("\n")
	if v.totalPages > 1 {
		b.WriteString(faint.Render(fmt.Sprintf("page %d/%d  ←/→", v.page+1, v.totalPages)))
	}

	if v.fetching {
		b.WriteString("\n")
		b.WriteString(a.spin.View())
		b.WriteString(" refreshing…")
	} else if v.errText != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(a.theme.ErrorText).Render(v.errText))
	}
	return b.String()
}
