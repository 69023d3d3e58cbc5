// Copyright 2026 The Ebank Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func TestExecuteDispatchesToSubcommand(t *testing.T) {
	t.Parallel()

	var ran []string
	root := &Command{
		Name: "ebank",
		Subcommands: []*Command{
			{
				Name: "client",
				Subcommands: []*Command{
					{
						Name: "list",
						Run: func(args []string) error {
							ran = append(ran, "client list")
							return nil
						},
					},
				},
			},
		},
	}

	if err := root.Execute([]string{"client", "list"}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(ran) != 1 || ran[0] != "client list" {
		t.Fatalf("ran = %v, want [client list]", ran)
	}
}

func TestExecuteUnknownCommandSuggestsClosest(t *testing.T) {
	t.Parallel()

	root := &Command{
		Name: "ebank",
		Subcommands: []*Command{
			{Name: "transfer", Run: func([]string) error { return nil }},
			{Name: "transactions", Run: func([]string) error { return nil }},
		},
	}

	err := root.Execute([]string{"transfre"})
	if err == nil {
		t.Fatal("expected an error for the unknown command")
	}
	if !strings.Contains(err.Error(), `"transfer"`) {
		t.Fatalf("error %q does not suggest transfer", err)
	}
}

func TestExecutePassesRemainingArgsAfterFlags(t *testing.T) {
	t.Parallel()

	var (
		gotVerbose bool
		gotArgs    []string
	)
	command := &Command{
		Name: "show",
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("show", pflag.ContinueOnError)
			flags.BoolVar(&gotVerbose, "verbose", false, "verbose output")
			return flags
		},
		Run: func(args []string) error {
			gotArgs = args
			return nil
		},
	}

	if err := command.Execute([]string{"--verbose", "RIB123"}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !gotVerbose {
		t.Error("--verbose not parsed")
	}
	if len(gotArgs) != 1 || gotArgs[0] != "RIB123" {
		t.Errorf("args = %v, want [RIB123]", gotArgs)
	}
}

func TestExecuteUnknownFlagSuggestsClosest(t *testing.T) {
	t.Parallel()

	command := &Command{
		Name: "transfer",
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("transfer", pflag.ContinueOnError)
			flags.String("amount", "", "amount to transfer")
			return flags
		},
		Run: func([]string) error { return nil },
	}

	err := command.Execute([]string{"--amont", "10"})
	if err == nil {
		t.Fatal("expected an error for the unknown flag")
	}
	if !strings.Contains(err.Error(), "--amount") {
		t.Fatalf("error %q does not suggest --amount", err)
	}
}

func TestExecuteHelpFlagSucceeds(t *testing.T) {
	t.Parallel()

	command := &Command{
		Name: "ebank",
		Subcommands: []*Command{
			{Name: "login", Summary: "Sign in", Run: func([]string) error { return nil }},
		},
	}
	if err := command.Execute([]string{"--help"}); err != nil {
		t.Fatalf("Execute(--help): %v", err)
	}
}

func TestExecuteSubcommandRequiredWithoutArgs(t *testing.T) {
	t.Parallel()

	command := &Command{
		Name: "client",
		Subcommands: []*Command{
			{Name: "list", Run: func([]string) error { return nil }},
		},
	}
	if err := command.Execute(nil); err == nil {
		t.Fatal("expected an error when no subcommand is given")
	}
}

func TestPrintHelpListsSubcommandsAndExamples(t *testing.T) {
	t.Parallel()

	command := &Command{
		Name:    "ebank",
		Summary: "Terminal banking client",
		Examples: []Example{
			{Description: "Open the client", Command: "ebank"},
		},
		Subcommands: []*Command{
			{Name: "login", Summary: "Sign in and save the session"},
			{Name: "whoami", Summary: "Show the signed-in identity"},
		},
	}

	var help strings.Builder
	command.PrintHelp(&help)

	for _, wanted := range []string{"login", "whoami", "Sign in and save the session", "# Open the client"} {
		if !strings.Contains(help.String(), wanted) {
			t.Errorf("help output is missing %q", wanted)
		}
	}
}
