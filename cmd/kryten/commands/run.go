// Copyright 2026 The Kryten Robot Team
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/kryten-robot/kryten-cli/cmd/kryten/cli"
	"github.com/kryten-robot/kryten-cli/lib/command"
	"github.com/kryten-robot/kryten-cli/lib/config"
	"github.com/kryten-robot/kryten-cli/messaging"
)

// DialFunc opens the transport once a command has been parsed and its
// arguments validated. Tests substitute a recording sender.
type DialFunc func(ctx context.Context, cfg *config.Config, logger *slog.Logger) (command.SendCloser, error)

// App carries the process-level collaborators for the command tree.
// main wires the real transport and the std streams; tests inject
// buffers and a recording sender.
type App struct {
	Context context.Context
	Dial    DialFunc
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
}

// DialNATS opens the real NATS connection for cfg.
func DialNATS(ctx context.Context, cfg *config.Config, logger *slog.Logger) (command.SendCloser, error) {
	return messaging.Connect(ctx, messaging.Config{
		Servers: cfg.Servers,
		Logger:  logger,
	})
}

// globalFlags are accepted by every leaf command. pflag parses
// interspersed flags, so they may appear anywhere after the
// subcommand name.
type globalFlags struct {
	ConfigPath string
	Channel    string
}

func (g *globalFlags) addFlags(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&g.ConfigPath, "config", "config.json", "path to configuration file")
	flagSet.StringVar(&g.Channel, "channel", "", "override the channel from the configuration")
}

func (g *globalFlags) flagSet() *pflag.FlagSet {
	flagSet := pflag.NewFlagSet("kryten", pflag.ContinueOnError)
	g.addFlags(flagSet)
	return flagSet
}

// buildFunc parses positional arguments into a typed command. A
// returned *cli.UsageError aborts the run before configuration is
// even loaded.
type buildFunc func(args []string) (command.Command, error)

// run wraps a leaf's argument parser in the full invocation pipeline:
// parse, load configuration, validate, dial, dispatch, render.
// Exactly one result line is printed on every path once parsing has
// succeeded, and the connection is closed before the exit code is
// returned.
func (a *App) run(globals *globalFlags, build buildFunc) func(args []string) error {
	return func(args []string) error {
		cmd, err := build(args)
		if err != nil {
			return err
		}

		cfg, err := config.Load(globals.ConfigPath)
		if err != nil {
			return a.report(command.Failure(configKind(err), err.Error()))
		}
		if globals.Channel != "" {
			cfg.Channel = globals.Channel
		}

		// Reject invalid arguments before opening a connection: a
		// command that will never be sent should have no side
		// effects at all.
		if err := command.Validate(cmd); err != nil {
			return a.report(command.Failure(command.KindInvalidArgument, err.Error()))
		}

		sender, err := a.Dial(a.Context, cfg, a.Logger)
		if err != nil {
			return a.report(command.Failure(command.KindTransportFailure,
				fmt.Sprintf("failed to connect: %v", err)))
		}
		defer sender.Close()

		return a.report(command.Dispatch(a.Context, cmd, cfg, sender))
	}
}

// report renders a result to the right stream and converts a failure
// into a silent exit-code error: the ✗ line is the diagnostic.
func (a *App) report(result command.Result) error {
	line, code := command.Render(result)
	if result.OK {
		fmt.Fprintln(a.Stdout, line)
		return nil
	}
	fmt.Fprintln(a.Stderr, line)
	return &cli.ExitError{Code: code}
}

// configKind classifies a config.Load error into the result taxonomy.
func configKind(err error) command.Kind {
	switch {
	case errors.Is(err, config.ErrNotFound):
		return command.KindConfigNotFound
	case errors.Is(err, config.ErrMalformed):
		return command.KindConfigMalformed
	default:
		return command.KindConfigInvalid
	}
}
