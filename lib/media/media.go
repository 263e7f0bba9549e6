// Copyright 2026 The Kryten Robot Team
// SPDX-License-Identifier: Apache-2.0

// Package media resolves user-supplied media strings (URLs, provider:id
// pairs, or bare identifiers) into provider-tagged references.
package media

import (
	"regexp"
	"strings"
)

// Provider identifies the hosting service for a media reference. The
// value is the canonical type name sent to the bridge.
type Provider string

const (
	YouTube     Provider = "YouTube"
	Vimeo       Provider = "Vimeo"
	Dailymotion Provider = "Dailymotion"

	// Raw is an untagged identifier passed through to the bridge
	// verbatim: direct video files, custom embeds, manifest URLs.
	Raw Provider = "Raw"
)

// Reference is a provider-tagged media identifier. It is built once by
// Resolve and consumed immediately when the queue payload is assembled.
type Reference struct {
	Provider Provider
	ID       string
}

// Short provider prefixes accepted in the canonical provider:id input
// form (e.g. "yt:dQw4w9WgXcQ").
var prefixes = map[string]Provider{
	"yt":  YouTube,
	"vm":  Vimeo,
	"dm":  Dailymotion,
	"raw": Raw,
}

var (
	youtubePattern     = regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/)([A-Za-z0-9_-]{11})`)
	vimeoPattern       = regexp.MustCompile(`vimeo\.com/(\d+)`)
	dailymotionPattern = regexp.MustCompile(`dailymotion\.com/video/([A-Za-z0-9]+)`)
)

// Resolve parses input into a Reference. It never fails: anything that
// matches neither a known provider URL pattern nor a provider:id prefix
// is returned as a Raw reference carrying the trimmed input verbatim.
//
// URL patterns are tried in a fixed order (YouTube, Vimeo, Dailymotion)
// so a theoretically ambiguous URL always resolves the same way. In
// practice the hostnames keep the patterns disjoint.
func Resolve(input string) Reference {
	trimmed := strings.TrimSpace(input)

	if match := youtubePattern.FindStringSubmatch(trimmed); match != nil {
		return Reference{Provider: YouTube, ID: match[1]}
	}
	if match := vimeoPattern.FindStringSubmatch(trimmed); match != nil {
		return Reference{Provider: Vimeo, ID: match[1]}
	}
	if match := dailymotionPattern.FindStringSubmatch(trimmed); match != nil {
		return Reference{Provider: Dailymotion, ID: match[1]}
	}

	// Canonical provider:id form. Only the first colon splits, and an
	// unrecognized prefix (such as the scheme of a plain http URL)
	// leaves the whole input as the Raw id.
	if prefix, id, ok := strings.Cut(trimmed, ":"); ok {
		if provider, known := prefixes[strings.ToLower(prefix)]; known {
			if id != "" && !strings.ContainsAny(id, " \t") {
				return Reference{Provider: provider, ID: id}
			}
		}
	}

	return Reference{Provider: Raw, ID: trimmed}
}
