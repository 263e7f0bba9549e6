// Copyright 2026 The Kryten Robot Team
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config fixture: %v", err)
	}
	return path
}

func TestLoad_CurrentShape(t *testing.T) {
	path := writeConfig(t, `{
		"nats": {"servers": ["nats://localhost:4222", "nats://backup:4222"]},
		"channels": [{"domain": "cytu.be", "channel": "lounge"}]
	}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Channel != "lounge" {
		t.Errorf("Channel = %q, want %q", cfg.Channel, "lounge")
	}
	if cfg.Domain != "cytu.be" {
		t.Errorf("Domain = %q, want %q", cfg.Domain, "cytu.be")
	}
	if len(cfg.Servers) != 2 || cfg.Servers[0] != "nats://localhost:4222" {
		t.Errorf("Servers = %v, want two entries starting with nats://localhost:4222", cfg.Servers)
	}
}

func TestLoad_LegacyShapeMatchesCurrentShape(t *testing.T) {
	current := writeConfig(t, `{
		"nats": {"servers": ["nats://localhost:4222"]},
		"channels": [{"domain": "cytu.be", "channel": "lounge"}]
	}`)
	legacy := writeConfig(t, `{
		"nats": {"servers": ["nats://localhost:4222"]},
		"cytube": {"channel": "lounge", "domain": "cytu.be"}
	}`)

	fromCurrent, err := Load(current)
	if err != nil {
		t.Fatalf("Load(current) error: %v", err)
	}
	fromLegacy, err := Load(legacy)
	if err != nil {
		t.Fatalf("Load(legacy) error: %v", err)
	}

	if !reflect.DeepEqual(fromCurrent, fromLegacy) {
		t.Errorf("shapes normalize differently: current=%+v legacy=%+v", fromCurrent, fromLegacy)
	}
}

func TestLoad_DomainDefaults(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "channels entry without domain",
			content: `{"nats": {"servers": ["nats://localhost:4222"]},
				"channels": [{"channel": "lounge"}]}`,
		},
		{
			name: "legacy object without domain",
			content: `{"nats": {"servers": ["nats://localhost:4222"]},
				"cytube": {"channel": "lounge"}}`,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, test.content))
			if err != nil {
				t.Fatalf("Load() error: %v", err)
			}
			if cfg.Domain != DefaultDomain {
				t.Errorf("Domain = %q, want default %q", cfg.Domain, DefaultDomain)
			}
		})
	}
}

func TestLoad_FirstChannelWins(t *testing.T) {
	path := writeConfig(t, `{
		"nats": {"servers": ["nats://localhost:4222"]},
		"channels": [
			{"domain": "cytu.be", "channel": "first"},
			{"domain": "other.example", "channel": "second"}
		]
	}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Channel != "first" || cfg.Domain != "cytu.be" {
		t.Errorf("got channel=%q domain=%q, want the first entry", cfg.Channel, cfg.Domain)
	}
}

func TestLoad_AcceptsComments(t *testing.T) {
	path := writeConfig(t, `{
		// transport
		"nats": {"servers": ["nats://localhost:4222"]},
		"channels": [{"domain": "cytu.be", "channel": "lounge"},]
	}`)

	if _, err := Load(path); err != nil {
		t.Fatalf("Load() error on commented config: %v", err)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    error
	}{
		{
			name:    "not json",
			content: `{"nats": [`,
			want:    ErrMalformed,
		},
		{
			name:    "neither shape",
			content: `{"nats": {"servers": ["nats://localhost:4222"]}}`,
			want:    ErrInvalid,
		},
		{
			name: "empty channel",
			content: `{"nats": {"servers": ["nats://localhost:4222"]},
				"channels": [{"domain": "cytu.be", "channel": ""}]}`,
			want: ErrInvalid,
		},
		{
			name: "no servers",
			content: `{"nats": {"servers": []},
				"channels": [{"domain": "cytu.be", "channel": "lounge"}]}`,
			want: ErrInvalid,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, test.content))
			if !errors.Is(err, test.want) {
				t.Errorf("Load() error = %v, want %v", err, test.want)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Load() error = %v, want %v", err, ErrNotFound)
	}
}
