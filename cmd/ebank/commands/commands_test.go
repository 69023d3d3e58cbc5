// Copyright 2026 The Ebank Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"strings"
	"testing"

	"github.com/TNT-747/ebank/cmd/ebank/cli"
)

// walk visits every command in the tree.
func walk(command *cli.Command, visit func(path string, c *cli.Command)) {
	var recurse func(path string, c *cli.Command)
	recurse = func(path string, c *cli.Command) {
		visit(path, c)
		for _, sub := range c.Subcommands {
			recurse(path+" "+sub.Name, sub)
		}
	}
	recurse(command.Name, command)
}

func TestRootTreeIsWellFormed(t *testing.T) {
	t.Parallel()

	walk(Root(), func(path string, c *cli.Command) {
		if c.Name == "" {
			t.Errorf("%s: command with empty name", path)
		}
		if c.Run == nil && len(c.Subcommands) == 0 {
			t.Errorf("%s: neither Run nor subcommands", path)
		}
		if c.Summary == "" && c.Name != "ebank" {
			t.Errorf("%s: missing summary", path)
		}

		seen := make(map[string]bool)
		for _, sub := range c.Subcommands {
			if seen[sub.Name] {
				t.Errorf("%s: duplicate subcommand %q", path, sub.Name)
			}
			seen[sub.Name] = true
		}
	})
}

func TestRootHelpListsEveryVerb(t *testing.T) {
	t.Parallel()

	var help strings.Builder
	Root().PrintHelp(&help)

	for _, verb := range []string{"ui", "login", "logout", "whoami", "passwd", "dashboard", "transactions", "transfer", "client", "account"} {
		if !strings.Contains(help.String(), verb) {
			t.Errorf("root help is missing %q", verb)
		}
	}
}

func TestFlagSetsAreRebuildable(t *testing.T) {
	t.Parallel()

	// Execute recreates the flag set for suggestion lookup after a
	// failed parse; calling Flags twice must not panic or share state.
	walk(Root(), func(path string, c *cli.Command) {
		if c.Flags == nil {
			return
		}
		first := c.Flags()
		second := c.Flags()
		if first == nil || second == nil {
			t.Errorf("%s: Flags() returned nil", path)
		}
	})
}
