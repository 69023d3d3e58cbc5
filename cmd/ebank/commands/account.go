// Copyright 2026 The Ebank Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/TNT-747/ebank/cmd/ebank/cli"
	"github.com/TNT-747/ebank/lib/api"
)

// AccountCommand returns the "account" command group.
func AccountCommand() *cli.Command {
	return &cli.Command{
		Name:    "account",
		Summary: "Manage bank accounts",
		Subcommands: []*cli.Command{
			accountCreateCommand(),
			accountShowCommand(),
		},
	}
}

func accountCreateCommand() *cli.Command {
	var (
		configPath string
		request    api.CreateAccountRequest
	)

	return &cli.Command{
		Name:    "create",
		Summary: "Open an account for an existing client (teller only)",
		Usage:   "ebank account create [flags]",
		Examples: []cli.Example{
			{
				Command: "ebank account create --rib RIB00012345 --identity AB123456",
			},
		},
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("create", pflag.ContinueOnError)
			flags.StringVar(&configPath, "config", "", "path to the config file")
			flags.StringVar(&request.RIB, "rib", "", "RIB of the new account")
			flags.StringVar(&request.IdentityNumber, "identity", "", "identity number of the owning client")
			return flags
		},
		Run: func(args []string) error {
			if request.RIB == "" || request.IdentityNumber == "" {
				return fmt.Errorf("--rib and --identity are required")
			}

			env, err := cli.Connect(cli.ConnectConfig{ConfigPath: configPath})
			if err != nil {
				return err
			}
			if err := env.RequireSession(); err != nil {
				return err
			}

			ctx, cancel := env.CallContext()
			defer cancel()

			account, err := env.Gateway.CreateAccount(ctx, request)
			if err != nil {
				return err
			}

			fmt.Printf("opened account %s for %s\n", account.RIB, account.ClientName)
			return nil
		},
	}
}

func accountShowCommand() *cli.Command {
	var configPath string

	return &cli.Command{
		Name:    "show",
		Summary: "Look up an account by RIB or numeric ID",
		Usage:   "ebank account show <rib-or-id> [flags]",
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("show", pflag.ContinueOnError)
			flags.StringVar(&configPath, "config", "", "path to the config file")
			return flags
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("exactly one RIB or account ID is required\n\nUsage: ebank account show <rib-or-id>")
			}

			env, err := cli.Connect(cli.ConnectConfig{ConfigPath: configPath})
			if err != nil {
				return err
			}
			if err := env.RequireSession(); err != nil {
				return err
			}

			ctx, cancel := env.CallContext()
			defer cancel()

			// An all-digit argument is an account ID; anything else is a
			// RIB.
			var account *api.Account
			if id, convErr := strconv.ParseInt(args[0], 10, 64); convErr == nil {
				account, err = env.Gateway.AccountByID(ctx, id)
			} else {
				account, err = env.Gateway.AccountByRIB(ctx, args[0])
			}
			if err != nil {
				return err
			}

			fmt.Printf("rib:     %s\n", account.RIB)
			fmt.Printf("owner:   %s\n", account.ClientName)
			fmt.Printf("balance: %s\n", account.Balance.StringFixed(2))
			fmt.Printf("status:  %s\n", account.Status)
			if !account.CreatedAt.IsZero() {
				fmt.Printf("opened:  %s\n", account.CreatedAt.Format("2006-01-02 15:04"))
			}
			return nil
		},
	}
}
