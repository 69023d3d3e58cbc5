// Copyright 2026 The Ebank Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/TNT-747/ebank/cmd/ebank/cli"
	"github.com/TNT-747/ebank/lib/api"
)

// DashboardCommand returns the "dashboard" command: the client's
// balance overview, headless.
func DashboardCommand() *cli.Command {
	var (
		configPath string
		accountID  int64
	)

	return &cli.Command{
		Name:    "dashboard",
		Summary: "Show the balance overview (client only)",
		Usage:   "ebank dashboard [flags]",
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("dashboard", pflag.ContinueOnError)
			flags.StringVar(&configPath, "config", "", "path to the config file")
			flags.Int64Var(&accountID, "account", 0, "account ID to focus (default: first account)")
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

			summary, err := env.Gateway.Dashboard(ctx, accountID)
			if err != nil {
				return err
			}

			if account := summary.Account; account != nil {
				fmt.Printf("account: %s (%s)\n", account.RIB, account.Status)
				fmt.Printf("balance: %s\n", account.Balance.StringFixed(2))
			}
			fmt.Printf("total:   %s across %d account(s)\n",
				summary.TotalBalance.StringFixed(2), len(summary.AllAccounts))

			if len(summary.RecentTransactions) > 0 {
				fmt.Println()
				printTransactions(summary.RecentTransactions)
			}
			return nil
		},
	}
}

// TransactionsCommand returns the "transactions" command: one page of
// an account's history.
func TransactionsCommand() *cli.Command {
	var (
		configPath string
		page       int
		size       int
	)

	return &cli.Command{
		Name:    "transactions",
		Summary: "List an account's transaction history (client only)",
		Usage:   "ebank transactions <account-id> [flags]",
		Examples: []cli.Example{
			{
				Description: "Second page of account 7's history",
				Command:     "ebank transactions 7 --page 1",
			},
		},
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("transactions", pflag.ContinueOnError)
			flags.StringVar(&configPath, "config", "", "path to the config file")
			flags.IntVar(&page, "page", 0, "zero-based page number")
			flags.IntVar(&size, "size", 10, "page length")
			return flags
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("exactly one account ID is required\n\nUsage: ebank transactions <account-id>")
			}
			accountID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid account ID %q", args[0])
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

			listing, err := env.Gateway.Transactions(ctx, accountID, page, size)
			if err != nil {
				return err
			}

			printTransactions(listing.Content)
			if listing.TotalPages > 1 {
				fmt.Printf("\npage %d of %d\n", page+1, listing.TotalPages)
			}
			return nil
		},
	}
}

func printTransactions(transactions []api.Transaction) {
	tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "DATE\tTYPE\tLABEL\tAMOUNT")
	for _, tx := range transactions {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			tx.Date.Format("2006-01-02 15:04"), tx.Type, tx.Label, tx.Amount.StringFixed(2))
	}
	tw.Flush()
}
