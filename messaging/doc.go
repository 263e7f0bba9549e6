// Copyright 2026 The Kryten Robot Team
// SPDX-License-Identifier: Apache-2.0

// Package messaging publishes kryten command actions to NATS.
//
// [Client] wraps a single NATS connection for the lifetime of one CLI
// invocation. Each command becomes one JSON envelope
//
//	{"action": "<action>", "data": {...}}
//
// published to a channel- and action-scoped subject
// (cytube.command.<domain>.<channel>.<action>) and flushed before
// success is reported. There is no subscription side and no retry:
// the bridge process on the other end of the bus owns execution, and
// retry policy belongs to whoever invokes the CLI.
//
// All errors are wrapped with a "messaging:" prefix and the subject
// or action involved, so the one-line diagnostic printed by the CLI
// names the failing destination.
package messaging
