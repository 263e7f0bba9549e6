// Copyright 2026 The Kryten Robot Team
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"github.com/kryten-robot/kryten-cli/cmd/kryten/cli"
	"github.com/kryten-robot/kryten-cli/lib/command"
)

func pauseCommand(app *App) *cli.Command {
	globals := &globalFlags{}
	return &cli.Command{
		Name:    "pause",
		Summary: "Pause playback",
		Usage:   "kryten pause [flags]",
		Flags:   globals.flagSet,
		Run: app.run(globals, func(args []string) (command.Command, error) {
			if len(args) != 0 {
				return nil, cli.Usagef("pause takes no arguments")
			}
			return command.Pause{}, nil
		}),
	}
}

func playCommand(app *App) *cli.Command {
	globals := &globalFlags{}
	return &cli.Command{
		Name:    "play",
		Summary: "Resume playback",
		Usage:   "kryten play [flags]",
		Flags:   globals.flagSet,
		Run: app.run(globals, func(args []string) (command.Command, error) {
			if len(args) != 0 {
				return nil, cli.Usagef("play takes no arguments")
			}
			return command.Play{}, nil
		}),
	}
}

func seekCommand(app *App) *cli.Command {
	globals := &globalFlags{}
	return &cli.Command{
		Name:    "seek",
		Summary: "Seek to a timestamp",
		Usage:   "kryten seek <seconds> [flags]",
		Flags:   globals.flagSet,
		Run: app.run(globals, func(args []string) (command.Command, error) {
			if len(args) != 1 {
				return nil, cli.Usagef("seek requires exactly one argument: the time in seconds")
			}
			seconds, err := command.ParseSeekTime(args[0])
			if err != nil {
				return nil, cli.Usagef("seek: %v", err)
			}
			return command.Seek{Time: seconds}, nil
		}),
	}
}
