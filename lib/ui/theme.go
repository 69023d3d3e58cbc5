// Copyright 2026 The Ebank Authors
// SPDX-License-Identifier: Apache-2.0

package ui

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette for the terminal client. All colors
// use lipgloss ANSI 256-color codes for broad terminal compatibility.
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color
	ErrorText  lipgloss.Color
	InfoText   lipgloss.Color

	// Selected navbar tab.
	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	// Ledger direction colors: money in, money out.
	CreditColor lipgloss.Color
	DebitColor  lipgloss.Color

	// Account status colors.
	StatusActive    lipgloss.Color
	StatusSuspended lipgloss.Color
	StatusClosed    lipgloss.Color

	// UI chrome.
	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color
}

// StatusColor returns the color for an account status string. Unknown
// values render faint.
func (theme Theme) StatusColor(status string) lipgloss.Color {
	switch status {
	case "ACTIVE":
		return theme.StatusActive
	case "SUSPENDED":
		return theme.StatusSuspended
	case "CLOSED":
		return theme.StatusClosed
	default:
		return theme.FaintText
	}
}

// AmountColor returns the color for a transaction type. Credits render
// green, debits red, anything else normal.
func (theme Theme) AmountColor(transactionType string) lipgloss.Color {
	switch transactionType {
	case "CREDIT", "TRANSFER_IN", "DEPOSIT":
		return theme.CreditColor
	case "DEBIT", "TRANSFER_OUT", "WITHDRAWAL":
		return theme.DebitColor
	default:
		return theme.NormalText
	}
}

// DefaultTheme is the built-in dark-terminal color scheme.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),
	ErrorText:  lipgloss.Color("196"),
	InfoText:   lipgloss.Color("114"),

	SelectedBackground: lipgloss.Color("236"),
	SelectedForeground: lipgloss.Color("255"),

	CreditColor: lipgloss.Color("114"), // green
	DebitColor:  lipgloss.Color("203"), // soft red

	StatusActive:    lipgloss.Color("114"),
	StatusSuspended: lipgloss.Color("220"),
	StatusClosed:    lipgloss.Color("245"),

	HeaderForeground: lipgloss.Color("255"),
	BorderColor:      lipgloss.Color("240"),
	HelpText:         lipgloss.Color("241"),
}
