// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package search

import "errors"

// Sentinel errors a [RecordSource] wraps its failures into. Callers use
// [errors.Is] to tell an expired session apart from a backend outage; the
// core itself treats both as "cannot search now" and never retries.
var (
	// ErrAuthFailure is returned when the caller is not (or no longer)
	// authenticated against the record store.
	ErrAuthFailure = errors.New("record source: authentication failure")

	// ErrStoreUnavailable is returned on any backend read failure. It is
	// never used for an empty collection.
	ErrStoreUnavailable = errors.New("record source: store unavailable")
)
