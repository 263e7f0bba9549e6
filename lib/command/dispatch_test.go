// Copyright 2026 The Kryten Robot Team
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/kryten-robot/kryten-cli/lib/config"
)

type sentAction struct {
	Channel string
	Domain  string
	Action  string
	Data    map[string]any
}

// recorder is a Sender test double that records every Send call.
type recorder struct {
	calls []sentAction
	err   error
}

func (r *recorder) Send(_ context.Context, channel, domain, action string, data map[string]any) error {
	r.calls = append(r.calls, sentAction{Channel: channel, Domain: domain, Action: action, Data: data})
	return r.err
}

func (r *recorder) Close() {}

func testConfig() *config.Config {
	return &config.Config{
		Servers: []string{"nats://localhost:4222"},
		Channel: "demo",
		Domain:  "cytu.be",
	}
}

func TestDispatch_Say(t *testing.T) {
	sender := &recorder{}
	result := Dispatch(context.Background(), Say{Message: "Hello world"}, testConfig(), sender)

	if !result.OK {
		t.Fatalf("Dispatch() failed: %s", result.Summary)
	}
	if result.Summary != "Sent chat message to demo" {
		t.Errorf("Summary = %q", result.Summary)
	}

	want := sentAction{
		Channel: "demo",
		Domain:  "cytu.be",
		Action:  "chat",
		Data:    map[string]any{"message": "Hello world"},
	}
	if len(sender.calls) != 1 || !reflect.DeepEqual(sender.calls[0], want) {
		t.Errorf("sent %+v, want exactly one %+v", sender.calls, want)
	}
}

func TestDispatch_PlaylistAddResolvesMedia(t *testing.T) {
	sender := &recorder{}
	result := Dispatch(context.Background(),
		PlaylistAdd{Media: "https://youtu.be/dQw4w9WgXcQ"}, testConfig(), sender)

	if !result.OK {
		t.Fatalf("Dispatch() failed: %s", result.Summary)
	}

	wantData := map[string]any{"type": "YouTube", "id": "dQw4w9WgXcQ", "position": "end"}
	if len(sender.calls) != 1 {
		t.Fatalf("sent %d actions, want 1", len(sender.calls))
	}
	if sender.calls[0].Action != "queue" {
		t.Errorf("action = %q, want %q", sender.calls[0].Action, "queue")
	}
	if !reflect.DeepEqual(sender.calls[0].Data, wantData) {
		t.Errorf("data = %v, want %v", sender.calls[0].Data, wantData)
	}
}

func TestDispatch_PlaylistAddNextPosition(t *testing.T) {
	sender := &recorder{}
	Dispatch(context.Background(), PlaylistAddNext{Media: "yt:dQw4w9WgXcQ"}, testConfig(), sender)

	if len(sender.calls) != 1 {
		t.Fatalf("sent %d actions, want 1", len(sender.calls))
	}
	if position := sender.calls[0].Data["position"]; position != "next" {
		t.Errorf("position = %v, want %q", position, "next")
	}
}

func TestDispatch_NegativeSeekNeverSends(t *testing.T) {
	sender := &recorder{}
	result := Dispatch(context.Background(), Seek{Time: -5}, testConfig(), sender)

	if result.OK {
		t.Fatal("Dispatch() succeeded for a negative seek time")
	}
	if result.Kind != KindInvalidArgument {
		t.Errorf("Kind = %v, want KindInvalidArgument", result.Kind)
	}
	if len(sender.calls) != 0 {
		t.Errorf("sender was invoked %d times, want 0", len(sender.calls))
	}
}

func TestDispatch_TransportFailure(t *testing.T) {
	sender := &recorder{err: errors.New("connection refused")}
	result := Dispatch(context.Background(), Pause{}, testConfig(), sender)

	if result.OK {
		t.Fatal("Dispatch() succeeded despite a send error")
	}
	if result.Kind != KindTransportFailure {
		t.Errorf("Kind = %v, want KindTransportFailure", result.Kind)
	}
	// One attempt, no retries.
	if len(sender.calls) != 1 {
		t.Errorf("sender was invoked %d times, want exactly 1", len(sender.calls))
	}
}

func TestDispatch_ReasonOmittedWhenAbsent(t *testing.T) {
	sender := &recorder{}
	Dispatch(context.Background(), Kick{Username: "Rimmer"}, testConfig(), sender)
	Dispatch(context.Background(), Ban{Username: "Rimmer", Reason: "smeghead"}, testConfig(), sender)

	if len(sender.calls) != 2 {
		t.Fatalf("sent %d actions, want 2", len(sender.calls))
	}
	if _, present := sender.calls[0].Data["reason"]; present {
		t.Errorf("kick without reason sent reason field: %v", sender.calls[0].Data)
	}
	if reason := sender.calls[1].Data["reason"]; reason != "smeghead" {
		t.Errorf("ban reason = %v, want %q", reason, "smeghead")
	}
}

// allCommands is one value of every Command variant, with arguments
// that pass validation.
var allCommands = []Command{
	Say{Message: "hi"},
	PrivateMessage{Username: "Lister", Message: "hi"},
	PlaylistAdd{Media: "yt:dQw4w9WgXcQ"},
	PlaylistAddNext{Media: "yt:dQw4w9WgXcQ"},
	PlaylistDelete{UID: 5},
	PlaylistMove{UID: 3, AfterUID: 7},
	PlaylistJump{UID: 5},
	PlaylistClear{},
	PlaylistShuffle{},
	PlaylistSetTemp{UID: 5, Temp: true},
	Pause{},
	Play{},
	Seek{Time: 120.5},
	Kick{Username: "Rimmer"},
	Ban{Username: "Rimmer"},
	VoteSkip{},
}

// wantActions is the full command-to-action table. Kept literal so a
// renamed action shows up as a test diff, not just a changed constant.
var wantActions = map[reflect.Type]string{
	reflect.TypeOf(Say{}):             "chat",
	reflect.TypeOf(PrivateMessage{}):  "pm",
	reflect.TypeOf(PlaylistAdd{}):     "queue",
	reflect.TypeOf(PlaylistAddNext{}): "queue",
	reflect.TypeOf(PlaylistDelete{}):  "delete",
	reflect.TypeOf(PlaylistMove{}):    "move",
	reflect.TypeOf(PlaylistJump{}):    "jump",
	reflect.TypeOf(PlaylistClear{}):   "clear",
	reflect.TypeOf(PlaylistShuffle{}): "shuffle",
	reflect.TypeOf(PlaylistSetTemp{}): "setTemp",
	reflect.TypeOf(Pause{}):           "pause",
	reflect.TypeOf(Play{}):            "play",
	reflect.TypeOf(Seek{}):            "seek",
	reflect.TypeOf(Kick{}):            "kick",
	reflect.TypeOf(Ban{}):             "ban",
	reflect.TypeOf(VoteSkip{}):        "voteskip",
}

// TestDispatch_EveryVariantHasAHandler walks every command variant
// through the full dispatch path. A variant missing from ActionFor or
// payload panics here instead of in production.
func TestDispatch_EveryVariantHasAHandler(t *testing.T) {
	if len(allCommands) != len(wantActions) {
		t.Fatalf("allCommands has %d variants, action table has %d", len(allCommands), len(wantActions))
	}

	for _, cmd := range allCommands {
		sender := &recorder{}
		result := Dispatch(context.Background(), cmd, testConfig(), sender)
		if !result.OK {
			t.Errorf("%T: dispatch failed: %s", cmd, result.Summary)
			continue
		}
		if len(sender.calls) != 1 {
			t.Errorf("%T: %d sends, want 1", cmd, len(sender.calls))
			continue
		}
		if want := wantActions[reflect.TypeOf(cmd)]; sender.calls[0].Action != want {
			t.Errorf("%T: action = %q, want %q", cmd, sender.calls[0].Action, want)
		}
	}
}
