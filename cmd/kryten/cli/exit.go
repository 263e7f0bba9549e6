// Copyright 2026 The Kryten Robot Team
// SPDX-License-Identifier: Apache-2.0

package cli

import "fmt"

// UsageError reports a user-correctable mistake in the command line:
// an unknown command or flag, wrong arity, or an argument that does
// not parse. Nothing has been attempted when one is returned. It maps
// to exit code 2.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}

// ExitCode returns 2, the exit code reserved for usage errors.
func (e *UsageError) ExitCode() int {
	return 2
}

// Usagef builds a UsageError from a format string.
func Usagef(format string, args ...any) *UsageError {
	return &UsageError{Message: fmt.Sprintf(format, args...)}
}

// ExitError signals a non-zero exit code without printing an extra
// error message. When a command handler returns an ExitError, main
// exits with the specified code without printing the error string:
// the command is expected to have already written its own output
// (here, the single ✗ result line).
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// ExitCode returns the exit code. Main checks for this interface on
// returned errors to distinguish "handled non-zero exit" from
// "unexpected error to display".
func (e *ExitError) ExitCode() int {
	return e.Code
}
