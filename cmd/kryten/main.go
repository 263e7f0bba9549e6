// Copyright 2026 The Kryten Robot Team
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/kryten-robot/kryten-cli/cmd/kryten/cli"
	"github.com/kryten-robot/kryten-cli/cmd/kryten/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := run(ctx)
	if err == nil {
		return
	}

	if ctx.Err() != nil {
		fmt.Fprintln(os.Stderr, "Aborted.")
		os.Exit(130)
	}

	code := 1
	if coder, ok := err.(interface{ ExitCode() int }); ok {
		code = coder.ExitCode()
	}
	// An ExitError means the command already printed its own result
	// line; don't add a redundant "error:" line for those.
	if _, silent := err.(*cli.ExitError); !silent {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	os.Exit(code)
}

func run(ctx context.Context) error {
	app := &commands.App{
		Context: ctx,
		Dial:    commands.DialNATS,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Logger:  cli.NewLogger(),
	}
	return commands.Root(app).Execute(os.Args[1:])
}
