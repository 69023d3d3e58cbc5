// Copyright 2026 The Ebank Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/TNT-747/ebank/cmd/ebank/cli"
	"github.com/TNT-747/ebank/lib/config"
	"github.com/TNT-747/ebank/lib/ui"
)

// UICommand returns the "ui" command: the interactive terminal client.
// This is also the root command's default action.
func UICommand() *cli.Command {
	var configPath string

	return &cli.Command{
		Name:    "ui",
		Summary: "Open the interactive terminal client",
		Description: `Open the full-screen terminal client.

The client restores the saved session if one exists, otherwise it
starts at the sign-in view. Log lines go to ebank.log in the state
directory — never to the screen.`,
		Usage: "ebank ui [flags]",
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("ui", pflag.ContinueOnError)
			flags.StringVar(&configPath, "config", "", "path to the config file")
			return flags
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}
			return runUI(configPath)
		},
	}
}

func runUI(configPath string) error {
	// A full-screen program cannot share the terminal with the logger.
	logPath := filepath.Join(config.StateDir(), "ebank.log")
	if err := os.MkdirAll(config.StateDir(), 0o700); err != nil {
		return fmt.Errorf("creating state directory: %w", err)
	}
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer logFile.Close()

	// The gateway's 401 callback runs on a request goroutine; the
	// buffered channel hands the event to the bubbletea loop without
	// blocking the request.
	unauthorized := make(chan struct{}, 1)
	notify := func() {
		select {
		case unauthorized <- struct{}{}:
		default:
		}
	}

	env, err := cli.Connect(cli.ConnectConfig{
		ConfigPath:     configPath,
		LogWriter:      logFile,
		OnUnauthorized: notify,
	})
	if err != nil {
		return err
	}

	app := ui.NewApp(ui.AppConfig{
		Store:        env.Store,
		Gateway:      env.Gateway,
		Logger:       env.Logger,
		Timeout:      env.Config.Timeout(),
		Unauthorized: unauthorized,
	})

	program := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running terminal client: %w", err)
	}
	return nil
}
