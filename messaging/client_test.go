// Copyright 2026 The Kryten Robot Team
// SPDX-License-Identifier: Apache-2.0

package messaging

import (
	"context"
	"encoding/json"
	"reflect"
	"testing"
)

func TestCommandSubject(t *testing.T) {
	tests := []struct {
		domain  string
		channel string
		action  string
		want    string
	}{
		{"cytu.be", "lounge", "chat", "cytube.command.cytu-be.lounge.chat"},
		{"cytu.be", "lounge", "setTemp", "cytube.command.cytu-be.lounge.settemp"},
		{"Cytu.be", "My Channel", "pause", "cytube.command.cytu-be.my-channel.pause"},
		{"cytu.be", "a.b>c*d", "play", "cytube.command.cytu-be.a-b-c-d.play"},
	}
	for _, test := range tests {
		got := commandSubject(test.domain, test.channel, test.action)
		if got != test.want {
			t.Errorf("commandSubject(%q, %q, %q) = %q, want %q",
				test.domain, test.channel, test.action, got, test.want)
		}
	}
}

func TestEnvelopeShape(t *testing.T) {
	payload, err := json.Marshal(envelope{
		Action: "queue",
		Data:   map[string]any{"type": "YouTube", "id": "dQw4w9WgXcQ", "position": "end"},
	})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(payload, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	want := map[string]any{
		"action": "queue",
		"data": map[string]any{
			"type": "YouTube", "id": "dQw4w9WgXcQ", "position": "end",
		},
	}
	if !reflect.DeepEqual(decoded, want) {
		t.Errorf("envelope = %v, want %v", decoded, want)
	}
}

func TestConnect_RequiresServers(t *testing.T) {
	if _, err := Connect(context.Background(), Config{}); err == nil {
		t.Error("Connect() with no servers succeeded, want error")
	}
}

func TestConnect_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Connect(ctx, Config{Servers: []string{"nats://localhost:4222"}})
	if err == nil {
		t.Error("Connect() with canceled context succeeded, want error")
	}
}
