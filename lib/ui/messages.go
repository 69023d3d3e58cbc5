// Copyright 2026 The Ebank Authors
// SPDX-License-Identifier: Apache-2.0

package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/TNT-747/ebank/lib/api"
	"github.com/TNT-747/ebank/lib/session"
)

// restoredMsg is sent once at startup when session restoration has
// finished. Until it arrives the app renders a neutral loading
// placeholder and the guard stays in its pending state.
type restoredMsg struct {
	err error
}

// unauthorizedMsg is sent when the gateway reports a rejected
// credential. The session store is already cleared; the app's only job
// is routing back to login.
type unauthorizedMsg struct{}

// Async results. Each carries the generation of the view that issued
// the call; a result whose generation no longer matches the app's is
// discarded, so late responses for a navigated-away view cannot write
// stale state.

type loginResultMsg struct {
	gen      int
	identity *session.Identity
	err      error
}

type dashboardLoadedMsg struct {
	gen     int
	summary *api.DashboardSummary
	err     error
}

type transactionsLoadedMsg struct {
	gen  int
	page int
	data *api.TransactionPage
	err  error
}

// accountsLoadedMsg feeds the transfer form's source-account selector.
type accountsLoadedMsg struct {
	gen      int
	accounts []api.Account
	err      error
}

// submitResultMsg is the outcome of a form submission (new client, new
// account, transfer, password change).
type submitResultMsg struct {
	gen    int
	notice string // Success notice shown in the view.
	err    error
}

// statusExpiredMsg clears a transient status-bar notice.
type statusExpiredMsg struct {
	id int
}

// statusNoticeDelay is how long a transient notice stays visible.
const statusNoticeDelay = 5 * time.Second

// callContext builds the per-request context with the configured
// timeout. Commands run on background goroutines with no parent
// lifecycle to inherit, so Background is the correct root.
func (a *App) callContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), a.timeout)
}

// waitUnauthorized blocks on the unauthorized channel and resolves to
// an unauthorizedMsg. Re-armed after each delivery.
func (a *App) waitUnauthorized() tea.Cmd {
	channel := a.unauthorized
	if channel == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-channel; !ok {
			return nil
		}
		return unauthorizedMsg{}
	}
}
