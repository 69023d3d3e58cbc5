// Copyright 2026 The Ebank Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"

	"github.com/TNT-747/ebank/cmd/ebank/cli"
	"github.com/TNT-747/ebank/lib/api"
)

// TransferCommand returns the "transfer" command: move funds between
// two accounts addressed by RIB.
func TransferCommand() *cli.Command {
	var (
		configPath string
		from       string
		to         string
		rawAmount  string
		motif      string
	)

	return &cli.Command{
		Name:    "transfer",
		Summary: "Execute a transfer between two accounts",
		Description: `Execute a transfer between two accounts addressed by RIB.

The amount is parsed as an exact decimal — no floating point. Balance
checks and RIB validation happen on the backend; a rejected transfer
prints the backend's reason.`,
		Usage: "ebank transfer [flags]",
		Examples: []cli.Example{
			{
				Command: "ebank transfer --from RIB123 --to RIB456 --amount 250.00 --motif rent",
			},
		},
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("transfer", pflag.ContinueOnError)
			flags.StringVar(&configPath, "config", "", "path to the config file")
			flags.StringVar(&from, "from", "", "source account RIB")
			flags.StringVar(&to, "to", "", "destination account RIB")
			flags.StringVar(&rawAmount, "amount", "", "amount to transfer")
			flags.StringVar(&motif, "motif", "", "reason for the transfer")
			return flags
		},
		Run: func(args []string) error {
			if from == "" || to == "" || rawAmount == "" {
				return fmt.Errorf("--from, --to, and --amount are required")
			}
			amount, err := decimal.NewFromString(rawAmount)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", rawAmount, err)
			}
			if !amount.IsPositive() {
				return fmt.Errorf("amount must be greater than zero")
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

			transaction, err := env.Gateway.ExecuteTransfer(ctx, api.TransferRequest{
				SourceRIB:      from,
				DestinationRIB: to,
				Amount:         amount,
				Motif:          motif,
			})
			if err != nil {
				return err
			}

			fmt.Printf("transfer executed: %s (transaction %d)\n",
				transaction.Amount.StringFixed(2), transaction.ID)
			return nil
		},
	}
}
