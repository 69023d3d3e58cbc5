// Copyright 2026 The Ebank Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/TNT-747/ebank/cmd/ebank/cli"
)

// LogoutCommand returns the "logout" command: end the saved session.
func LogoutCommand() *cli.Command {
	var configPath string

	return &cli.Command{
		Name:    "logout",
		Summary: "End the saved session",
		Usage:   "ebank logout [flags]",
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("logout", pflag.ContinueOnError)
			flags.StringVar(&configPath, "config", "", "path to the config file")
			return flags
		},
		Run: func(args []string) error {
			env, err := cli.Connect(cli.ConnectConfig{ConfigPath: configPath})
			if err != nil {
				return err
			}
			if err := env.Store.Restore(); err != nil {
				return err
			}
			env.Store.Logout()
			fmt.Fprintln(os.Stderr, "Logged out")
			return nil
		},
	}
}

// WhoamiCommand returns the "whoami" command: show the saved session.
// Exits 1 without an error line when no session exists, so scripts can
// branch on it.
func WhoamiCommand() *cli.Command {
	var configPath string

	return &cli.Command{
		Name:    "whoami",
		Summary: "Show the signed-in identity",
		Usage:   "ebank whoami [flags]",
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("whoami", pflag.ContinueOnError)
			flags.StringVar(&configPath, "config", "", "path to the config file")
			return flags
		},
		Run: func(args []string) error {
			env, err := cli.Connect(cli.ConnectConfig{ConfigPath: configPath})
			if err != nil {
				return err
			}
			if err := env.Store.Restore(); err != nil {
				return err
			}

			identity := env.Store.Current()
			if identity == nil {
				fmt.Fprintln(os.Stderr, "not logged in")
				return &cli.ExitError{Code: 1}
			}

			fmt.Printf("username: %s\n", identity.Username)
			fmt.Printf("role:     %s\n", identity.Role.Label())
			fmt.Printf("email:    %s\n", identity.Email)

			// Expiry is display-only: the token is opaque to the client,
			// but a JWT exp claim is worth surfacing when present.
			if expiresAt, ok := env.Store.ExpiresAt(); ok {
				state := "expires"
				if env.Store.Expired(time.Now()) {
					state = "expired"
				}
				fmt.Printf("token:    %s %s\n", state, expiresAt.Format(time.RFC3339))
			}
			return nil
		},
	}
}

// PasswdCommand returns the "passwd" command: rotate the password of
// the signed-in user. On success the saved session ends — the next
// command signs in with the new password.
func PasswdCommand() *cli.Command {
	var configPath string

	return &cli.Command{
		Name:    "passwd",
		Summary: "Change the password of the signed-in user",
		Usage:   "ebank passwd [flags]",
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("passwd", pflag.ContinueOnError)
			flags.StringVar(&configPath, "config", "", "path to the config file")
			return flags
		},
		Run: func(args []string) error {
			env, err := cli.Connect(cli.ConnectConfig{ConfigPath: configPath})
			if err != nil {
				return err
			}
			if err := env.RequireSession(); err != nil {
				return err
			}

			current, err := cli.ReadPassword("Current password: ")
			if err != nil {
				return err
			}
			newPassword, err := cli.ReadPassword("New password: ")
			if err != nil {
				return err
			}
			confirm, err := cli.ReadPassword("Confirm new password: ")
			if err != nil {
				return err
			}

			ctx, cancel := env.CallContext()
			defer cancel()

			if err := env.Store.ChangePassword(ctx, current, newPassword, confirm); err != nil {
				return err
			}

			env.Store.Logout()
			fmt.Fprintln(os.Stderr, "Password changed. Sign in again with the new password.")
			return nil
		},
	}
}
