// Copyright 2026 The Ebank Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/TNT-747/ebank/cmd/ebank/cli"
	"github.com/TNT-747/ebank/lib/api"
)

// ClientCommand returns the "client" command group: teller operations
// on bank client records.
func ClientCommand() *cli.Command {
	return &cli.Command{
		Name:    "client",
		Summary: "Manage bank clients (teller only)",
		Subcommands: []*cli.Command{
			clientCreateCommand(),
			clientListCommand(),
			clientShowCommand(),
		},
	}
}

func clientCreateCommand() *cli.Command {
	var (
		configPath string
		request    api.CreateClientRequest
	)

	return &cli.Command{
		Name:    "create",
		Summary: "Onboard a new bank client",
		Description: `Onboard a new bank client.

The backend generates the client's username and initial password and
returns the username; the password is delivered out of band.`,
		Usage: "ebank client create [flags]",
		Examples: []cli.Example{
			{
				Command: "ebank client create --first-name Ada --last-name Lovelace --identity AB123456 --birth-date 1990-12-10 --email ada@example.com --address '12 Rue des Maths'",
			},
		},
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("create", pflag.ContinueOnError)
			flags.StringVar(&configPath, "config", "", "path to the config file")
			flags.StringVar(&request.FirstName, "first-name", "", "client's first name")
			flags.StringVar(&request.LastName, "last-name", "", "client's last name")
			flags.StringVar(&request.IdentityNumber, "identity", "", "national identity number")
			flags.StringVar(&request.BirthDate, "birth-date", "", "birth date (YYYY-MM-DD)")
			flags.StringVar(&request.Email, "email", "", "contact email")
			flags.StringVar(&request.Address, "address", "", "postal address")
			return flags
		},
		Run: func(args []string) error {
			if request.FirstName == "" || request.LastName == "" || request.IdentityNumber == "" {
				return fmt.Errorf("--first-name, --last-name, and --identity are required")
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

			created, err := env.Gateway.CreateClient(ctx, request)
			if err != nil {
				return err
			}

			fmt.Printf("created client %s %s\n", created.FirstName, created.LastName)
			fmt.Printf("username: %s\n", created.Username)
			return nil
		},
	}
}

func clientListCommand() *cli.Command {
	var configPath string

	return &cli.Command{
		Name:    "list",
		Summary: "List all bank clients",
		Usage:   "ebank client list [flags]",
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("list", pflag.ContinueOnError)
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

			ctx, cancel := env.CallContext()
			defer cancel()

			clients, err := env.Gateway.ListClients(ctx)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tIDENTITY\tUSERNAME\tEMAIL")
			for _, client := range clients {
				fmt.Fprintf(tw, "%d\t%s %s\t%s\t%s\t%s\n",
					client.ID, client.FirstName, client.LastName,
					client.IdentityNumber, client.Username, client.Email)
			}
			return tw.Flush()
		},
	}
}

func clientShowCommand() *cli.Command {
	var configPath string

	return &cli.Command{
		Name:    "show",
		Summary: "Look up a client by identity number",
		Usage:   "ebank client show <identity-number> [flags]",
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("show", pflag.ContinueOnError)
			flags.StringVar(&configPath, "config", "", "path to the config file")
			return flags
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("exactly one identity number is required\n\nUsage: ebank client show <identity-number>")
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

			client, err := env.Gateway.ClientByIdentity(ctx, args[0])
			if err != nil {
				return err
			}

			fmt.Printf("name:     %s %s\n", client.FirstName, client.LastName)
			fmt.Printf("identity: %s\n", client.IdentityNumber)
			if !client.BirthDate.IsZero() {
				fmt.Printf("born:     %s\n", client.BirthDate.Format("2006-01-02"))
			}
			fmt.Printf("email:    %s\n", client.Email)
			fmt.Printf("address:  %s\n", client.Address)
			fmt.Printf("username: %s\n", client.Username)
			return nil
		},
	}
}
