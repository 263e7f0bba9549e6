// Copyright 2026 The Kryten Robot Team
// SPDX-License-Identifier: Apache-2.0

package command

import "github.com/charmbracelet/lipgloss"

// Kind classifies why an invocation failed. KindNone means success.
type Kind int

const (
	KindNone Kind = iota

	// KindUsage is a bad command line: unknown command, wrong arity,
	// or an argument that does not parse. Nothing was attempted.
	KindUsage

	// Configuration-stage failures. No send was attempted.
	KindConfigNotFound
	KindConfigMalformed
	KindConfigInvalid

	// KindInvalidArgument is a parsed but semantically invalid
	// argument, caught before the send capability is invoked.
	KindInvalidArgument

	// KindTransportFailure means the send capability reported an
	// error: connection refused, publish rejected, flush timeout.
	KindTransportFailure
)

// ExitCode maps the failure class to the process exit code contract:
// 0 success, 1 transport failure, 2 user-correctable input, 3
// configuration. Scripts branch on the code without parsing output.
func (k Kind) ExitCode() int {
	switch k {
	case KindNone:
		return 0
	case KindUsage, KindInvalidArgument:
		return 2
	case KindConfigNotFound, KindConfigMalformed, KindConfigInvalid:
		return 3
	default:
		return 1
	}
}

// Result is the terminal outcome of one command invocation. Exactly
// one is produced per run; it is rendered and then discarded.
type Result struct {
	OK      bool
	Summary string
	Kind    Kind
}

// Success builds an ok result with the given human summary.
func Success(summary string) Result {
	return Result{OK: true, Summary: summary}
}

// Failure builds a failed result classified by kind.
func Failure(kind Kind, summary string) Result {
	return Result{OK: false, Summary: summary, Kind: kind}
}

var (
	okMark   = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).SetString("✓")
	failMark = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).SetString("✗")
)

// Render formats a result as the single output line and the process
// exit code. The marks are colored only when the terminal supports
// it; piped output stays plain.
func Render(result Result) (string, int) {
	if result.OK {
		return okMark.String() + " " + result.Summary, 0
	}
	return failMark.String() + " " + result.Summary, result.Kind.ExitCode()
}
