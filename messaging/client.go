// Copyright 2026 The Kryten Robot Team
// SPDX-License-Identifier: Apache-2.0

package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/nats-io/nats.go"
)

// Config holds connection parameters for Connect.
type Config struct {
	// Servers are the NATS server URLs, tried in order.
	Servers []string

	// Name is the connection name reported to the server. If empty,
	// "kryten-cli" is used.
	Name string

	// ConnectTimeout bounds the initial connection attempt. If zero,
	// 5 seconds.
	ConnectTimeout time.Duration

	// Logger is used for structured logging. If nil, slog.Default()
	// is used.
	Logger *slog.Logger
}

// Client is a connected NATS publisher. It implements the
// dispatcher's send capability and lives for exactly one invocation:
// connect, publish one envelope, flush, close.
type Client struct {
	conn   *nats.Conn
	logger *slog.Logger
}

// envelope is the JSON wire format consumed by the kryten bridge.
type envelope struct {
	Action string         `json:"action"`
	Data   map[string]any `json:"data"`
}

// Connect establishes the NATS connection. The CLI is a one-shot
// process, so reconnection is disabled: a dropped connection fails
// the invocation instead of parking it in a retry loop.
func Connect(ctx context.Context, config Config) (*Client, error) {
	if len(config.Servers) == 0 {
		return nil, fmt.Errorf("messaging: no servers configured")
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("messaging: connect: %w", err)
	}

	name := config.Name
	if name == "" {
		name = "kryten-cli"
	}
	timeout := config.ConnectTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	servers := strings.Join(config.Servers, ",")
	conn, err := nats.Connect(servers,
		nats.Name(name),
		nats.Timeout(timeout),
		nats.NoReconnect(),
	)
	if err != nil {
		return nil, fmt.Errorf("messaging: connecting to %s: %w", servers, err)
	}

	logger.Debug("connected", "server", conn.ConnectedUrl())
	return &Client{conn: conn, logger: logger}, nil
}

// Send publishes one action envelope and flushes the connection. The
// flush is what gives "ok" its meaning: the transport has accepted
// the message. Whether the bridge executes it is not observable here.
func (c *Client) Send(ctx context.Context, channel, domain, action string, data map[string]any) error {
	subject := commandSubject(domain, channel, action)

	payload, err := json.Marshal(envelope{Action: action, Data: data})
	if err != nil {
		return fmt.Errorf("messaging: encoding %s payload: %w", action, err)
	}

	if err := c.conn.Publish(subject, payload); err != nil {
		return fmt.Errorf("messaging: publishing to %s: %w", subject, err)
	}
	if err := c.conn.FlushWithContext(ctx); err != nil {
		return fmt.Errorf("messaging: flushing %s: %w", subject, err)
	}

	c.logger.Debug("published", "subject", subject, "action", action, "bytes", len(payload))
	return nil
}

// Close releases the connection. Safe to call after a failed Send.
func (c *Client) Close() {
	c.conn.Close()
}

// commandSubject builds the NATS subject for one command:
// cytube.command.<domain>.<channel>.<action>, so bridges subscribe
// per channel (or with wildcards per domain). Domain and channel come
// from user configuration and may contain characters that are invalid
// in a subject token ("cytu.be" has a dot), so both are sanitized.
func commandSubject(domain, channel, action string) string {
	return fmt.Sprintf("cytube.command.%s.%s.%s",
		sanitizeToken(domain), sanitizeToken(channel), strings.ToLower(action))
}

// sanitizeToken maps a config value onto one valid NATS subject
// token: lowercased, with separators, wildcards, and whitespace
// replaced by "-".
func sanitizeToken(value string) string {
	var builder strings.Builder
	for _, r := range strings.ToLower(value) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			builder.WriteRune(r)
		default:
			builder.WriteRune('-')
		}
	}
	return builder.String()
}
