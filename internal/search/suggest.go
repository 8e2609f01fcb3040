// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package search

import (
	"context"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/go-stash-find/internal/config"
	"github.com/MKhiriev/go-stash-find/internal/logger"
)

// Defaults applied when the Search config section leaves a field zero.
const (
	DefaultMinChars       = 2
	DefaultMaxSuggestions = 8
	DefaultDebounce       = 150 * time.Millisecond
)

// Suggester produces the live candidate list shown while the user is still
// typing. It applies the same keyword-OR substring policy as the resolver
// but only over the short record fields, gates input below the minimum
// length, caps the result, and sequences concurrent lookups so that only
// the most recent input's response is ever displayed.
//
// Sequencing is explicit: every keystroke calls [Suggester.Begin] and gets
// a [Ticket] carrying a monotonically increasing sequence number. A ticket
// is superseded the moment a newer one is issued; a superseded lookup
// yields nil regardless of when its store read completes, so a slow
// response for "ke" can never overwrite the list for "key"
// (last-input-wins, not last-response-wins).
type Suggester struct {
	source RecordSource
	logger *logger.Logger

	minChars int
	limit    int
	quiet    time.Duration

	latest atomic.Uint64
}

// Ticket identifies one suggestion cycle. Tickets are never reused.
type Ticket struct {
	seq   uint64
	input string
}

// Input returns the raw input the ticket was issued for.
func (t Ticket) Input() string { return t.input }

// NewSuggester constructs a [Suggester] reading through the given source.
// Zero config fields fall back to the package defaults (2 chars, 8 entries,
// 150ms quiet period).
func NewSuggester(source RecordSource, cfg config.Search, logger *logger.Logger) *Suggester {
	if cfg.MinChars <= 0 {
		cfg.MinChars = DefaultMinChars
	}
	if cfg.MaxSuggestions <= 0 {
		cfg.MaxSuggestions = DefaultMaxSuggestions
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = DefaultDebounce
	}

	return &Suggester{
		source:   source,
		logger:   logger,
		minChars: cfg.MinChars,
		limit:    cfg.MaxSuggestions,
		quiet:    cfg.Debounce,
	}
}

// Quiet returns the debounce window the caller's event loop should wait
// after a keystroke before invoking [Suggester.Lookup].
func (s *Suggester) Quiet() time.Duration { return s.quiet }

// Limit returns the hard cap on the suggestion list length.
func (s *Suggester) Limit() int { return s.limit }

// Begin starts a new suggestion cycle for the given input and supersedes
// every previously issued ticket.
func (s *Suggester) Begin(input string) Ticket {
	return Ticket{
		seq:   s.latest.Add(1),
		input: input,
	}
}

// Superseded reports whether a newer ticket has been issued since t.
func (s *Suggester) Superseded(t Ticket) bool {
	return t.seq != s.latest.Load()
}

// Lookup runs the suggestion query for ticket t.
//
// Return value contract:
//   - nil — the ticket was superseded (before or after the store read);
//     the caller must discard the result and keep whatever is displayed.
//   - empty slice — show no suggestions: input below the minimum length,
//     nothing matched, or the store read failed. Failures are logged and
//     swallowed; suggestions are best-effort and never surface errors to
//     a user who is still typing.
//   - non-empty slice — up to Limit records in snapshot order.
func (s *Suggester) Lookup(ctx context.Context, userID int64, t Ticket) []Record {
	if s.Superseded(t) {
		return nil
	}

	term := Extract(t.input)
	if utf8.RuneCountInString(term) < s.minChars {
		return []Record{}
	}

	records, err := s.source.ListRecords(ctx, userID)
	if err != nil {
		s.logger.Debug().
			Err(err).
			Str("func", "Suggester.Lookup").
			Int64("user_id", userID).
			Msg("suggestion lookup failed, degrading to empty list")
		return []Record{}
	}

	// The read is the only suspension point; a keystroke may have arrived
	// while it was in flight.
	if s.Superseded(t) {
		return nil
	}

	matched := filterRecords(records, term, false)
	if len(matched) > s.limit {
		matched = matched[:s.limit]
	}

	return matched
}
