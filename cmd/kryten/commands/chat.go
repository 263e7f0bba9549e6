// Copyright 2026 The Kryten Robot Team
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"github.com/kryten-robot/kryten-cli/cmd/kryten/cli"
	"github.com/kryten-robot/kryten-cli/lib/command"
)

func sayCommand(app *App) *cli.Command {
	globals := &globalFlags{}
	return &cli.Command{
		Name:    "say",
		Summary: "Send a chat message",
		Usage:   "kryten say <message> [flags]",
		Flags:   globals.flagSet,
		Run: app.run(globals, func(args []string) (command.Command, error) {
			if len(args) != 1 {
				return nil, cli.Usagef("say requires exactly one argument: the message text")
			}
			return command.Say{Message: args[0]}, nil
		}),
	}
}

func pmCommand(app *App) *cli.Command {
	globals := &globalFlags{}
	return &cli.Command{
		Name:    "pm",
		Summary: "Send a private message",
		Usage:   "kryten pm <username> <message> [flags]",
		Flags:   globals.flagSet,
		Run: app.run(globals, func(args []string) (command.Command, error) {
			if len(args) != 2 {
				return nil, cli.Usagef("pm requires two arguments: a username and the message text")
			}
			return command.PrivateMessage{Username: args[0], Message: args[1]}, nil
		}),
	}
}
