// Copyright 2026 The Kryten Robot Team
// SPDX-License-Identifier: Apache-2.0

// Package command defines the kryten command set, translates each
// command into its wire action, and reports dispatch outcomes.
//
// [Command] is a closed tagged variant: the concrete types in this
// package are its only implementations (the marker method is
// unexported), and the dispatcher switches over all of them. Adding a
// command without wiring it up fails the exhaustiveness test in this
// package rather than surfacing as a runtime gap.
package command

import (
	"fmt"
	"strconv"
	"strings"
)

// Command is one parsed, validated-for-shape CLI command. Values are
// immutable and built exactly once per invocation.
type Command interface {
	isCommand()
}

// Say posts a chat message to the channel.
type Say struct {
	Message string
}

// PrivateMessage sends a direct message to one user.
type PrivateMessage struct {
	Username string
	Message  string
}

// PlaylistAdd queues a media item at the end of the playlist. Media is
// the raw user input (URL, provider:id, or bare id); it is resolved
// into a typed reference at dispatch time.
type PlaylistAdd struct {
	Media string
}

// PlaylistAddNext queues a media item to play after the current one.
type PlaylistAddNext struct {
	Media string
}

// PlaylistDelete removes a playlist entry by UID.
type PlaylistDelete struct {
	UID int
}

// PlaylistMove places entry UID directly after entry AfterUID.
type PlaylistMove struct {
	UID      int
	AfterUID int
}

// PlaylistJump starts playback of the entry with the given UID.
type PlaylistJump struct {
	UID int
}

// PlaylistClear empties the playlist.
type PlaylistClear struct{}

// PlaylistShuffle randomizes the playlist order.
type PlaylistShuffle struct{}

// PlaylistSetTemp marks or unmarks a playlist entry as temporary.
type PlaylistSetTemp struct {
	UID  int
	Temp bool
}

// Pause pauses playback.
type Pause struct{}

// Play resumes playback.
type Play struct{}

// Seek moves playback to Time seconds from the start.
type Seek struct {
	Time float64
}

// Kick removes a user from the channel. An empty Reason is omitted
// from the payload; the bridge supplies its own default text.
type Kick struct {
	Username string
	Reason   string
}

// Ban bans a user from the channel. Reason handling as for Kick.
type Ban struct {
	Username string
	Reason   string
}

// VoteSkip votes to skip the currently playing item.
type VoteSkip struct{}

func (Say) isCommand()             {}
func (PrivateMessage) isCommand()  {}
func (PlaylistAdd) isCommand()     {}
func (PlaylistAddNext) isCommand() {}
func (PlaylistDelete) isCommand()  {}
func (PlaylistMove) isCommand()    {}
func (PlaylistJump) isCommand()    {}
func (PlaylistClear) isCommand()   {}
func (PlaylistShuffle) isCommand() {}
func (PlaylistSetTemp) isCommand() {}
func (Pause) isCommand()           {}
func (Play) isCommand()            {}
func (Seek) isCommand()            {}
func (Kick) isCommand()            {}
func (Ban) isCommand()             {}
func (VoteSkip) isCommand()        {}

// ParseTemp parses the settemp boolean token. Accepted forms, case
// insensitive: true/1/yes and false/0/no.
func ParseTemp(token string) (bool, error) {
	switch strings.ToLower(token) {
	case "true", "1", "yes":
		return true, nil
	case "false", "0", "no":
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean %q (expected true or false)", token)
}

// ParseUID parses a playlist entry UID. UIDs are assigned by the
// remote service and travel as integers on the wire.
func ParseUID(token string) (int, error) {
	uid, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("invalid uid %q (expected a number)", token)
	}
	return uid, nil
}

// ParseSeekTime parses the seek target in seconds. Range checking
// happens at validation, not here: "-5" parses fine and is rejected
// later as an invalid argument.
func ParseSeekTime(token string) (float64, error) {
	seconds, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q (expected seconds, e.g. 120.5)", token)
	}
	return seconds, nil
}
