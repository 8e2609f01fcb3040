// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package search

import (
	"regexp"
	"strings"
)

// Conversational patterns tried in order; the first capture wins. Earlier
// patterns are more specific and strip question/command scaffolding, the
// last one strips only a leading possessive/article and trailing
// punctuation. Matching is case-insensitive but the captured text keeps the
// user's casing; keyword matching lowercases later.
var queryPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^where (?:is|are|did i put|can i find) (?:my |the )?(.+?)[?.!]?$`),
	regexp.MustCompile(`(?i)^find (?:my |the )?(.+?)[?.!]?$`),
	regexp.MustCompile(`(?i)^locate (?:my |the )?(.+?)[?.!]?$`),
	regexp.MustCompile(`(?i)^(?:my |the )?(.+?)[?.!]?$`),
}

// Extract maps a raw utterance to a canonical search term by stripping
// conversational scaffolding: "Where are my keys?" → "keys",
// "find the wallet" → "wallet", "passport" → "passport".
//
// Extract never fails: when no pattern captures non-empty text it degrades
// to the trimmed input unchanged. The fallback pattern is deliberately
// permissive and can echo a whole sentence back; long inputs therefore
// produce broad multi-keyword terms.
func Extract(raw string) string {
	trimmed := strings.TrimSpace(raw)

	for _, pattern := range queryPatterns {
		match := pattern.FindStringSubmatch(trimmed)
		if match == nil {
			continue
		}
		if term := strings.TrimSpace(match[1]); term != "" {
			return term
		}
	}

	return trimmed
}
