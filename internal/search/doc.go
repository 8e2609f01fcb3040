// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package search implements the query resolution core of go-stash-find:
// turning a raw natural-language utterance ("where are my keys?") into a
// canonical search term, matching it against a snapshot of the user's
// records, classifying the result as an explicit tagged outcome, and
// powering the debounced live suggestion list.
//
// The package is pure with respect to storage: records are read through the
// [RecordSource] boundary and never mutated. Both the server (over the
// database repositories) and the client (over the HTTP adapter and its
// local cache) run the same resolver and suggester.
package search
