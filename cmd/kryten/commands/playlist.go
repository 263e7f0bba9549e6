// Copyright 2026 The Kryten Robot Team
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"github.com/spf13/pflag"

	"github.com/kryten-robot/kryten-cli/cmd/kryten/cli"
	"github.com/kryten-robot/kryten-cli/lib/command"
)

func playlistCommand(app *App) *cli.Command {
	return &cli.Command{
		Name:    "playlist",
		Summary: "Playlist management",
		Subcommands: []*cli.Command{
			playlistAddCommand(app),
			playlistAddNextCommand(app),
			playlistDelCommand(app),
			playlistMoveCommand(app),
			playlistJumpCommand(app),
			playlistClearCommand(app),
			playlistShuffleCommand(app),
			playlistSetTempCommand(app),
		},
		Examples: []cli.Example{
			{
				Description: "Add a video to the end of the playlist",
				Command:     "kryten playlist add https://youtube.com/watch?v=dQw4w9WgXcQ",
			},
			{
				Description: "Move entry 3 to play after entry 7",
				Command:     "kryten playlist move 3 after 7",
			},
			{
				Description: "Mark entry 5 as temporary",
				Command:     "kryten playlist settemp 5 true",
			},
		},
	}
}

// queueFlags extends the global flags for add/addnext with a
// tombstone for the removed --temp flag. Queueing as temporary at add
// time was unreliable end-to-end, so the flag is recognized only to
// point users at settemp.
type queueFlags struct {
	globalFlags
	flagSet *pflag.FlagSet
}

func (q *queueFlags) makeFlagSet() *pflag.FlagSet {
	flagSet := q.globalFlags.flagSet()
	flagSet.Bool("temp", false, "removed; use 'playlist settemp' after adding")
	_ = flagSet.MarkHidden("temp")
	q.flagSet = flagSet
	return flagSet
}

// tempRejected reports whether --temp appeared on the command line in
// any form, including --temp=false.
func (q *queueFlags) tempRejected() bool {
	return q.flagSet != nil && q.flagSet.Changed("temp")
}

func playlistAddCommand(app *App) *cli.Command {
	flags := &queueFlags{}
	return &cli.Command{
		Name:    "add",
		Summary: "Add a video to the end of the playlist",
		Usage:   "kryten playlist add <url> [flags]",
		Flags:   flags.makeFlagSet,
		Run: app.run(&flags.globalFlags, func(args []string) (command.Command, error) {
			if flags.tempRejected() {
				return nil, cli.Usagef("--temp was removed: add the video, then mark it with 'kryten playlist settemp <uid> true'")
			}
			if len(args) != 1 {
				return nil, cli.Usagef("playlist add requires exactly one argument: the video URL or id")
			}
			return command.PlaylistAdd{Media: args[0]}, nil
		}),
	}
}

func playlistAddNextCommand(app *App) *cli.Command {
	flags := &queueFlags{}
	return &cli.Command{
		Name:    "addnext",
		Summary: "Add a video to play next",
		Usage:   "kryten playlist addnext <url> [flags]",
		Flags:   flags.makeFlagSet,
		Run: app.run(&flags.globalFlags, func(args []string) (command.Command, error) {
			if flags.tempRejected() {
				return nil, cli.Usagef("--temp was removed: add the video, then mark it with 'kryten playlist settemp <uid> true'")
			}
			if len(args) != 1 {
				return nil, cli.Usagef("playlist addnext requires exactly one argument: the video URL or id")
			}
			return command.PlaylistAddNext{Media: args[0]}, nil
		}),
	}
}

func playlistDelCommand(app *App) *cli.Command {
	globals := &globalFlags{}
	return &cli.Command{
		Name:    "del",
		Summary: "Delete a video from the playlist",
		Usage:   "kryten playlist del <uid> [flags]",
		Flags:   globals.flagSet,
		Run: app.run(globals, func(args []string) (command.Command, error) {
			if len(args) != 1 {
				return nil, cli.Usagef("playlist del requires exactly one argument: the video uid")
			}
			uid, err := command.ParseUID(args[0])
			if err != nil {
				return nil, cli.Usagef("playlist del: %v", err)
			}
			return command.PlaylistDelete{UID: uid}, nil
		}),
	}
}

func playlistMoveCommand(app *App) *cli.Command {
	globals := &globalFlags{}
	return &cli.Command{
		Name:    "move",
		Summary: "Move a video within the playlist",
		Usage:   "kryten playlist move <uid> after <uid> [flags]",
		Flags:   globals.flagSet,
		Run: app.run(globals, func(args []string) (command.Command, error) {
			if len(args) != 3 || args[1] != "after" {
				return nil, cli.Usagef("playlist move takes the form: move <uid> after <uid>")
			}
			uid, err := command.ParseUID(args[0])
			if err != nil {
				return nil, cli.Usagef("playlist move: %v", err)
			}
			after, err := command.ParseUID(args[2])
			if err != nil {
				return nil, cli.Usagef("playlist move: %v", err)
			}
			return command.PlaylistMove{UID: uid, AfterUID: after}, nil
		}),
	}
}

func playlistJumpCommand(app *App) *cli.Command {
	globals := &globalFlags{}
	return &cli.Command{
		Name:    "jump",
		Summary: "Jump to a video in the playlist",
		Usage:   "kryten playlist jump <uid> [flags]",
		Flags:   globals.flagSet,
		Run: app.run(globals, func(args []string) (command.Command, error) {
			if len(args) != 1 {
				return nil, cli.Usagef("playlist jump requires exactly one argument: the video uid")
			}
			uid, err := command.ParseUID(args[0])
			if err != nil {
				return nil, cli.Usagef("playlist jump: %v", err)
			}
			return command.PlaylistJump{UID: uid}, nil
		}),
	}
}

func playlistClearCommand(app *App) *cli.Command {
	globals := &globalFlags{}
	return &cli.Command{
		Name:    "clear",
		Summary: "Clear the entire playlist",
		Usage:   "kryten playlist clear [flags]",
		Flags:   globals.flagSet,
		Run: app.run(globals, func(args []string) (command.Command, error) {
			if len(args) != 0 {
				return nil, cli.Usagef("playlist clear takes no arguments")
			}
			return command.PlaylistClear{}, nil
		}),
	}
}

func playlistShuffleCommand(app *App) *cli.Command {
	globals := &globalFlags{}
	return &cli.Command{
		Name:    "shuffle",
		Summary: "Shuffle the playlist",
		Usage:   "kryten playlist shuffle [flags]",
		Flags:   globals.flagSet,
		Run: app.run(globals, func(args []string) (command.Command, error) {
			if len(args) != 0 {
				return nil, cli.Usagef("playlist shuffle takes no arguments")
			}
			return command.PlaylistShuffle{}, nil
		}),
	}
}

func playlistSetTempCommand(app *App) *cli.Command {
	globals := &globalFlags{}
	return &cli.Command{
		Name:    "settemp",
		Summary: "Set a video's temporary status",
		Usage:   "kryten playlist settemp <uid> <true|false> [flags]",
		Flags:   globals.flagSet,
		Run: app.run(globals, func(args []string) (command.Command, error) {
			if len(args) != 2 {
				return nil, cli.Usagef("playlist settemp requires two arguments: a uid and true or false")
			}
			uid, err := command.ParseUID(args[0])
			if err != nil {
				return nil, cli.Usagef("playlist settemp: %v", err)
			}
			temp, err := command.ParseTemp(args[1])
			if err != nil {
				return nil, cli.Usagef("playlist settemp: %v", err)
			}
			return command.PlaylistSetTemp{UID: uid, Temp: temp}, nil
		}),
	}
}
