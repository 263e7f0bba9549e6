// Copyright 2026 The Kryten Robot Team
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/kryten-robot/kryten-cli/lib/config"
	"github.com/kryten-robot/kryten-cli/lib/media"
)

// Sender publishes one action to the message bus. A nil error means
// the transport accepted the message, not that the bridge executed it.
type Sender interface {
	Send(ctx context.Context, channel, domain, action string, data map[string]any) error
}

// SendCloser is a Sender whose connection the caller owns for the
// lifetime of the process. Close must be called on every exit path
// before the final exit code is returned.
type SendCloser interface {
	Sender
	Close()
}

// Validate checks field-level constraints that argument parsing
// cannot: values that are syntactically fine but semantically out of
// range. A non-nil error means the command must not be dispatched.
func Validate(cmd Command) error {
	switch c := cmd.(type) {
	case Say:
		if c.Message == "" {
			return fmt.Errorf("message must not be empty")
		}
	case PrivateMessage:
		if c.Username == "" {
			return fmt.Errorf("username must not be empty")
		}
		if c.Message == "" {
			return fmt.Errorf("message must not be empty")
		}
	case PlaylistAdd:
		if strings.TrimSpace(c.Media) == "" {
			return fmt.Errorf("media URL or id must not be empty")
		}
	case PlaylistAddNext:
		if strings.TrimSpace(c.Media) == "" {
			return fmt.Errorf("media URL or id must not be empty")
		}
	case Seek:
		if c.Time < 0 {
			return fmt.Errorf("seek time must not be negative")
		}
	case Kick:
		if c.Username == "" {
			return fmt.Errorf("username must not be empty")
		}
	case Ban:
		if c.Username == "" {
			return fmt.Errorf("username must not be empty")
		}
	}
	return nil
}

// ActionFor returns the canonical wire action name for cmd. The
// mapping is fixed: one action per command variant, with add and
// addnext sharing "queue" and differing only in the position field.
func ActionFor(cmd Command) string {
	switch cmd.(type) {
	case Say:
		return "chat"
	case PrivateMessage:
		return "pm"
	case PlaylistAdd, PlaylistAddNext:
		return "queue"
	case PlaylistDelete:
		return "delete"
	case PlaylistMove:
		return "move"
	case PlaylistJump:
		return "jump"
	case PlaylistClear:
		return "clear"
	case PlaylistShuffle:
		return "shuffle"
	case PlaylistSetTemp:
		return "setTemp"
	case Pause:
		return "pause"
	case Play:
		return "play"
	case Seek:
		return "seek"
	case Kick:
		return "kick"
	case Ban:
		return "ban"
	case VoteSkip:
		return "voteskip"
	}
	panic(fmt.Sprintf("unhandled command type %T", cmd))
}

// Dispatch validates cmd, builds its wire payload, and performs the
// single send attempt. It never retries: the process is short-lived
// and retry policy belongs to the invoking script.
func Dispatch(ctx context.Context, cmd Command, cfg *config.Config, sender Sender) Result {
	if err := Validate(cmd); err != nil {
		return Failure(KindInvalidArgument, err.Error())
	}

	action := ActionFor(cmd)
	data, summary := payload(cmd, cfg.Channel)

	if err := sender.Send(ctx, cfg.Channel, cfg.Domain, action, data); err != nil {
		return Failure(KindTransportFailure,
			fmt.Sprintf("failed to send %s to %s: %v", action, cfg.Channel, err))
	}
	return Success(summary)
}

// payload builds the data mapping and the human summary for cmd. The
// mapping carries exactly the fields the bridge documents for the
// action: optional fields are omitted, never sent as empty strings.
func payload(cmd Command, channel string) (map[string]any, string) {
	switch c := cmd.(type) {
	case Say:
		return map[string]any{"message": c.Message},
			fmt.Sprintf("Sent chat message to %s", channel)
	case PrivateMessage:
		return map[string]any{"username": c.Username, "message": c.Message},
			fmt.Sprintf("Sent PM to %s in %s", c.Username, channel)
	case PlaylistAdd:
		ref := media.Resolve(c.Media)
		return map[string]any{"type": string(ref.Provider), "id": ref.ID, "position": "end"},
			fmt.Sprintf("Added %s:%s to end of playlist in %s", ref.Provider, ref.ID, channel)
	case PlaylistAddNext:
		ref := media.Resolve(c.Media)
		return map[string]any{"type": string(ref.Provider), "id": ref.ID, "position": "next"},
			fmt.Sprintf("Added %s:%s to play next in %s", ref.Provider, ref.ID, channel)
	case PlaylistDelete:
		return map[string]any{"uid": c.UID},
			fmt.Sprintf("Deleted media %d from %s", c.UID, channel)
	case PlaylistMove:
		return map[string]any{"uid": c.UID, "afterUid": c.AfterUID},
			fmt.Sprintf("Moved media %d after %d in %s", c.UID, c.AfterUID, channel)
	case PlaylistJump:
		return map[string]any{"uid": c.UID},
			fmt.Sprintf("Jumped to media %d in %s", c.UID, channel)
	case PlaylistClear:
		return map[string]any{},
			fmt.Sprintf("Cleared playlist in %s", channel)
	case PlaylistShuffle:
		return map[string]any{},
			fmt.Sprintf("Shuffled playlist in %s", channel)
	case PlaylistSetTemp:
		return map[string]any{"uid": c.UID, "temp": c.Temp},
			fmt.Sprintf("Set temp=%t for media %d in %s", c.Temp, c.UID, channel)
	case Pause:
		return map[string]any{},
			fmt.Sprintf("Paused playback in %s", channel)
	case Play:
		return map[string]any{},
			fmt.Sprintf("Resumed playback in %s", channel)
	case Seek:
		return map[string]any{"time": c.Time},
			fmt.Sprintf("Seeked to %gs in %s", c.Time, channel)
	case Kick:
		data := map[string]any{"username": c.Username}
		if c.Reason != "" {
			data["reason"] = c.Reason
		}
		return data, fmt.Sprintf("Kicked %s from %s", c.Username, channel)
	case Ban:
		data := map[string]any{"username": c.Username}
		if c.Reason != "" {
			data["reason"] = c.Reason
		}
		return data, fmt.Sprintf("Banned %s from %s", c.Username, channel)
	case VoteSkip:
		return map[string]any{},
			fmt.Sprintf("Voted to skip in %s", channel)
	}
	panic(fmt.Sprintf("unhandled command type %T", cmd))
}
