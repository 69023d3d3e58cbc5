// Copyright 2026 The Ebank Authors
// SPDX-License-Identifier: Apache-2.0

package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/TNT-747/ebank/lib/routes"
)

// navbarView renders the top bar: brand, the tabs the current role may
// visit, and the signed-in identity. Logged out it shows the brand
// alone.
func (a *App) navbarView() string {
	brand := lipgloss.NewStyle().
		Foreground(a.theme.HeaderForeground).
		Bold(true).
		Padding(0, 1).
		Render("eBank")

	identity := a.store.Current()
	if identity == nil {
		return brand
	}

	tabStyle := lipgloss.NewStyle().Foreground(a.theme.FaintText).Padding(0, 1)
	activeStyle := lipgloss.NewStyle().
		Foreground(a.theme.SelectedForeground).
		Background(a.theme.SelectedBackground).
		Padding(0, 1)

	var tabs []string
	for _, route := range routes.Navigable(identity) {
		style := tabStyle
		if route == a.route {
			style = activeStyle
		}
		tabs = append(tabs, style.Render(routes.Title(route)))
	}

	label := identity.Username + " (" + identity.Role.Label() + ")"
	if expiresAt, ok := a.store.ExpiresAt(); ok {
		label += " · expires " + expiresAt.Format("15:04")
	}
	who := lipgloss.NewStyle().
		Foreground(a.theme.InfoText).
		Padding(0, 1).
		Render(label)

	return brand + strings.Join(tabs, "") + who
}

// statusBarView renders the bottom line: a transient notice when one is
// active, otherwise the key help.
func (a *App) statusBarView() string {
	if a.notice != "" {
		color := a.theme.InfoText
		if a.noticeError {
			color = a.theme.ErrorText
		}
		return lipgloss.NewStyle().Foreground(color).Padding(0, 1).Render(a.notice)
	}

	help := "C-c quit"
	if a.store.Authenticated() {
		help = "C-n/C-p switch view · esc home · C-x log out · C-c quit"
	}
	return lipgloss.NewStyle().Foreground(a.theme.HelpText).Padding(0, 1).Render(help)
}

// forbiddenView is rendered when the guard denied the active route.
func (a *App) forbiddenView() string {
	title := lipgloss.NewStyle().
		Foreground(a.theme.ErrorText).
		Bold(true).
		Render("Access denied")
	body := lipgloss.NewStyle().
		Foreground(a.theme.NormalText).
		Render("You do not have permission to use this feature.\nContact your administrator if you believe this is a mistake.")
	return title + "\n\n" + body
}
