// Copyright 2026 The Kryten Robot Team
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"github.com/kryten-robot/kryten-cli/cmd/kryten/cli"
	"github.com/kryten-robot/kryten-cli/lib/command"
)

func kickCommand(app *App) *cli.Command {
	globals := &globalFlags{}
	return &cli.Command{
		Name:    "kick",
		Summary: "Kick a user from the channel",
		Usage:   "kryten kick <username> [reason] [flags]",
		Flags:   globals.flagSet,
		Run: app.run(globals, func(args []string) (command.Command, error) {
			username, reason, err := moderationArgs("kick", args)
			if err != nil {
				return nil, err
			}
			return command.Kick{Username: username, Reason: reason}, nil
		}),
	}
}

func banCommand(app *App) *cli.Command {
	globals := &globalFlags{}
	return &cli.Command{
		Name:    "ban",
		Summary: "Ban a user from the channel",
		Usage:   "kryten ban <username> [reason] [flags]",
		Flags:   globals.flagSet,
		Run: app.run(globals, func(args []string) (command.Command, error) {
			username, reason, err := moderationArgs("ban", args)
			if err != nil {
				return nil, err
			}
			return command.Ban{Username: username, Reason: reason}, nil
		}),
	}
}

func voteskipCommand(app *App) *cli.Command {
	globals := &globalFlags{}
	return &cli.Command{
		Name:    "voteskip",
		Summary: "Vote to skip the current video",
		Usage:   "kryten voteskip [flags]",
		Flags:   globals.flagSet,
		Run: app.run(globals, func(args []string) (command.Command, error) {
			if len(args) != 0 {
				return nil, cli.Usagef("voteskip takes no arguments")
			}
			return command.VoteSkip{}, nil
		}),
	}
}

// moderationArgs parses the shared "<username> [reason]" shape. An
// absent reason stays empty and is left out of the payload.
func moderationArgs(name string, args []string) (username, reason string, err error) {
	switch len(args) {
	case 1:
		return args[0], "", nil
	case 2:
		return args[0], args[1], nil
	}
	return "", "", cli.Usagef("%s requires a username and an optional reason", name)
}
