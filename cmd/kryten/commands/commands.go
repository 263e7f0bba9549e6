// Copyright 2026 The Kryten Robot Team
// SPDX-License-Identifier: Apache-2.0

// Package commands assembles the complete kryten CLI command tree.
// main wires it to the real NATS transport via [DialNATS]; tests
// drive the same tree with a recording sender.
package commands

import (
	"fmt"

	"github.com/kryten-robot/kryten-cli/cmd/kryten/cli"
	"github.com/kryten-robot/kryten-cli/lib/version"
)

// Root builds the complete kryten command tree.
func Root(app *App) *cli.Command {
	return &cli.Command{
		Name: "kryten",
		Description: `Send commands to a CyTube channel over NATS.

Commands are published to the kryten bridge as fire-and-forget
actions: success means the transport accepted the message, not that
the channel executed it. Connection settings come from config.json in
the current directory or the file named with --config.`,
		Subcommands: []*cli.Command{
			sayCommand(app),
			pmCommand(app),
			playlistCommand(app),
			pauseCommand(app),
			playCommand(app),
			seekCommand(app),
			kickCommand(app),
			banCommand(app),
			voteskipCommand(app),
			versionCommand(app),
		},
		Examples: []cli.Example{
			{
				Description: "Send a chat message",
				Command:     `kryten say "Hello world"`,
			},
			{
				Description: "Add a video to the playlist",
				Command:     "kryten playlist add https://youtube.com/watch?v=dQw4w9WgXcQ",
			},
			{
				Description: "Seek to two minutes in",
				Command:     "kryten seek 120.5",
			},
			{
				Description: "Kick a user with a reason",
				Command:     `kryten kick UserName "Stop spamming"`,
			},
		},
	}
}

func versionCommand(app *App) *cli.Command {
	return &cli.Command{
		Name:    "version",
		Summary: "Print version information",
		Run: func(args []string) error {
			fmt.Fprintf(app.Stdout, "kryten %s\n", version.Full())
			return nil
		},
	}
}
