// Copyright 2026 The Ebank Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/TNT-747/ebank/cmd/ebank/cli"
	"github.com/TNT-747/ebank/lib/config"
)

// LoginCommand returns the "login" command: authenticate and save the
// session locally. Subsequent commands load the saved session
// transparently.
func LoginCommand() *cli.Command {
	var (
		configPath   string
		passwordFile string
	)

	return &cli.Command{
		Name:    "login",
		Summary: "Sign in and save the session",
		Description: `Sign in to the backend and save the session locally.

After login, the other commands use the saved session transparently.
The token and identity files are stored in the state directory with
mode 0600 (owner-only), since they carry the access credential.

The password is prompted interactively, or read from --password-file
for scripted use.`,
		Usage: "ebank login <username> [flags]",
		Examples: []cli.Example{
			{
				Description: "Sign in interactively (prompts for password)",
				Command:     "ebank login alice",
			},
			{
				Description: "Sign in with the password read from a file",
				Command:     "ebank login alice --password-file /run/secrets/ebank",
			},
		},
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("login", pflag.ContinueOnError)
			flags.StringVar(&configPath, "config", "", "path to the config file")
			flags.StringVar(&passwordFile, "password-file", "", "path to a file containing the password (default: prompt)")
			return flags
		},
		Run: func(args []string) error {
			if len(args) < 1 {
				return fmt.Errorf("username is required\n\nUsage: ebank login <username> [flags]")
			}
			username := args[0]
			if len(args) > 1 {
				return fmt.Errorf("unexpected argument: %s", args[1])
			}

			password, err := readLoginPassword(passwordFile)
			if err != nil {
				return err
			}

			env, err := cli.Connect(cli.ConnectConfig{ConfigPath: configPath})
			if err != nil {
				return err
			}

			ctx, cancel := env.CallContext()
			defer cancel()

			identity, err := env.Store.Login(ctx, username, password)
			if err != nil {
				return err
			}

			fmt.Fprintf(os.Stderr, "Logged in as %s (%s)\n", identity.Username, identity.Role.Label())
			fmt.Fprintf(os.Stderr, "Session saved to %s\n", config.StateDir())
			return nil
		},
	}
}

// readLoginPassword reads the login password: from the given file when
// set, otherwise interactively.
func readLoginPassword(passwordFile string) (string, error) {
	if passwordFile != "" && passwordFile != "-" {
		data, err := os.ReadFile(passwordFile)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", passwordFile, err)
		}
		// Strip trailing newlines — files often end with one.
		for len(data) > 0 && (data[len(data)-1] == '\n' || data[len(data)-1] == '\r') {
			data = data[:len(data)-1]
		}
		if len(data) == 0 {
			return "", fmt.Errorf("file %s is empty", passwordFile)
		}
		return string(data), nil
	}
	return cli.ReadPassword("Password: ")
}
