// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package search

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-stash-find/internal/logger"
)

// OutcomeKind tags the classification of a resolved query.
type OutcomeKind int

const (
	// OutcomeResolved — exactly one record matched; Outcome.Record is set.
	OutcomeResolved OutcomeKind = iota + 1

	// OutcomeAmbiguous — several records matched; Outcome.Records holds
	// them newest-first and the final pick is deferred to the caller.
	// The resolver never guesses.
	OutcomeAmbiguous

	// OutcomeNotFound — the term matched nothing; Outcome.Term carries the
	// attempted canonical term so the caller can echo it back.
	OutcomeNotFound

	// OutcomeEmptyCollection — the user has no records at all. Distinct
	// from OutcomeNotFound so callers can say "add items first" instead of
	// "no match".
	OutcomeEmptyCollection

	// OutcomeValidationError — the query was empty after normalization.
	// Recoverable; the user must re-enter the query.
	OutcomeValidationError
)

// String implements fmt.Stringer; the values double as API outcome tags.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeResolved:
		return "resolved"
	case OutcomeAmbiguous:
		return "ambiguous"
	case OutcomeNotFound:
		return "not_found"
	case OutcomeEmptyCollection:
		return "empty_collection"
	case OutcomeValidationError:
		return "validation_error"
	default:
		return "unknown"
	}
}

// Outcome is the explicit tagged result of resolving one query. Exactly one
// payload field is populated according to Kind, so callers can never
// mistake a one-element list for a scalar or vice versa.
type Outcome struct {
	Kind    OutcomeKind
	Term    string   // canonical term attempted (empty for validation errors)
	Record  Record   // Kind == OutcomeResolved
	Records []Record // Kind == OutcomeAmbiguous, newest first
	Reason  string   // Kind == OutcomeValidationError
}

// Resolver classifies a raw utterance against the current snapshot of a
// user's records. It is stateless between calls: resolving the same term
// twice against an unchanged snapshot yields an identical outcome.
type Resolver struct {
	source RecordSource
	logger *logger.Logger
}

// NewResolver constructs a [Resolver] reading through the given source.
func NewResolver(source RecordSource, logger *logger.Logger) *Resolver {
	return &Resolver{
		source: source,
		logger: logger,
	}
}

// Resolve normalizes raw into a canonical term, reads the user's record
// snapshot and classifies the match result.
//
// The only error return is a source read failure (wrapping
// [ErrAuthFailure] or [ErrStoreUnavailable]); every other condition —
// including an empty query and an empty collection — is an [Outcome].
// Resolve never retries on its own.
func (r *Resolver) Resolve(ctx context.Context, userID int64, raw string) (Outcome, error) {
	term := Extract(raw)
	if term == "" {
		return Outcome{
			Kind:   OutcomeValidationError,
			Reason: "query must not be empty",
		}, nil
	}

	records, err := r.source.ListRecords(ctx, userID)
	if err != nil {
		r.logger.Err(err).
			Str("func", "Resolver.Resolve").
			Int64("user_id", userID).
			Msg("failed to read record snapshot")
		return Outcome{}, fmt.Errorf("list records: %w", err)
	}

	if len(records) == 0 {
		return Outcome{Kind: OutcomeEmptyCollection, Term: term}, nil
	}

	matched := filterRecords(records, term, true)

	switch len(matched) {
	case 0:
		return Outcome{Kind: OutcomeNotFound, Term: term}, nil
	case 1:
		return Outcome{Kind: OutcomeResolved, Term: term, Record: matched[0]}, nil
	default:
		r.logger.Debug().
			Str("func", "Resolver.Resolve").
			Int64("user_id", userID).
			Str("term", term).
			Int("matches", len(matched)).
			Msg("ambiguous query, deferring pick to caller")
		return Outcome{Kind: OutcomeAmbiguous, Term: term, Records: matched}, nil
	}
}

// SelectSuggestion converts a record the user picked from the suggestion
// list into a resolved outcome. Pure pass-through: no normalization, no
// lookup.
func SelectSuggestion(record Record) Outcome {
	return Outcome{
		Kind:   OutcomeResolved,
		Term:   record.Title(),
		Record: record,
	}
}
