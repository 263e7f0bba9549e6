// Copyright 2026 The Kryten Robot Team
// SPDX-License-Identifier: Apache-2.0

// Package config loads the kryten configuration document and produces
// the effective transport, channel, and domain settings for one run.
//
// Two on-disk shapes are accepted. The current shape carries a
// channels array:
//
//	{"nats": {"servers": ["nats://localhost:4222"]},
//	 "channels": [{"domain": "cytu.be", "channel": "lounge"}]}
//
// The legacy shape carries a cytube object:
//
//	{"nats": {"servers": ["nats://localhost:4222"]},
//	 "cytube": {"channel": "lounge", "domain": "cytu.be"}}
//
// Both normalize to the same Config. Presence of the distinguishing
// field (channels vs cytube) drives shape detection; there is no
// attribute probing beyond that. The document may use // comments and
// trailing commas; strict JSON is unaffected.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"
)

// DefaultDomain is applied when a configuration names a channel but no
// domain.
const DefaultDomain = "cytu.be"

// Load failure classes. Every error returned by Load wraps exactly one
// of these; callers branch with errors.Is.
var (
	ErrNotFound  = errors.New("config file not found")
	ErrMalformed = errors.New("config file is not valid JSON")
	ErrInvalid   = errors.New("config file is missing required fields")
)

// Config is the effective configuration for a single invocation:
// exactly one channel and one domain are active, and at least one
// transport server is configured.
type Config struct {
	// Servers are the NATS server URLs, in connection order.
	Servers []string

	// Channel is the CyTube channel commands target.
	Channel string

	// Domain is the hosting service the channel lives on.
	Domain string
}

// document mirrors the union of the two accepted on-disk shapes.
type document struct {
	NATS struct {
		Servers []string `json:"servers"`
	} `json:"nats"`
	Channels []channelEntry `json:"channels"`
	Cytube   *legacyEntry   `json:"cytube"`
}

type channelEntry struct {
	Domain  string `json:"domain"`
	Channel string `json:"channel"`
}

type legacyEntry struct {
	Channel string `json:"channel"`
	Domain  string `json:"domain"`
}

// Load reads path and normalizes either supported shape into a Config.
// Multi-channel documents are accepted syntactically but only the
// first entry is active; the rest are ignored. This is a known
// limitation kept from the original deployment format, not a merge.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("%w: reading %s: %v", ErrNotFound, path, err)
	}

	var doc document
	if err := json.Unmarshal(jsonc.ToJSON(data), &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, path, err)
	}

	config := &Config{Servers: doc.NATS.Servers}

	switch {
	case len(doc.Channels) > 0:
		config.Channel = doc.Channels[0].Channel
		config.Domain = doc.Channels[0].Domain
	case doc.Cytube != nil:
		config.Channel = doc.Cytube.Channel
		config.Domain = doc.Cytube.Domain
	default:
		return nil, fmt.Errorf("%w: %s: need a channels array or a cytube object", ErrInvalid, path)
	}

	if config.Channel == "" {
		return nil, fmt.Errorf("%w: %s: channel is empty", ErrInvalid, path)
	}
	if config.Domain == "" {
		config.Domain = DefaultDomain
	}
	if len(config.Servers) == 0 {
		return nil, fmt.Errorf("%w: %s: nats.servers is empty", ErrInvalid, path)
	}

	return config, nil
}
