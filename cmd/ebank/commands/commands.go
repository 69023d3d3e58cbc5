// Copyright 2026 The Ebank Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands assembles the ebank command tree. Each command file
// owns one verb; Root wires them together and doubles as the default
// entry into the interactive TUI.
package commands

import (
	"github.com/TNT-747/ebank/cmd/ebank/cli"
)

// Root returns the top-level ebank command. Running it with no
// subcommand launches the interactive terminal client.
func Root() *cli.Command {
	ui := UICommand()
	return &cli.Command{
		Name:    "ebank",
		Summary: "Terminal client for the ebank online banking backend",
		Description: `ebank is a terminal client for the ebank online banking backend.

Run it with no arguments to open the interactive interface. The
subcommands cover the same operations headlessly, for scripts and
quick lookups: sign in once with "ebank login", then every command
reuses the saved session.`,
		Usage: "ebank [command] [flags]",
		Examples: []cli.Example{
			{
				Description: "Open the interactive client",
				Command:     "ebank",
			},
			{
				Description: "Sign in, then check the session",
				Command:     "ebank login alice && ebank whoami",
			},
			{
				Description: "Execute a transfer from a script",
				Command:     "ebank transfer --from RIB123 --to RIB456 --amount 250.00 --motif rent",
			},
		},
		Subcommands: []*cli.Command{
			ui,
			LoginCommand(),
			LogoutCommand(),
			WhoamiCommand(),
			PasswdCommand(),
			DashboardCommand(),
			TransactionsCommand(),
			TransferCommand(),
			ClientCommand(),
			AccountCommand(),
		},
		Flags: ui.Flags,
		Run:   ui.Run,
	}
}
