// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package search

//go:generate mockgen -source=interfaces.go -destination=../mock/record_source_mock.go -package=mock

import "context"

// RecordSource is the record store boundary consumed by the resolver and
// the suggester. Implementations: the server-side repository adapters and
// the client-side snapshot cache adapters.
//
// ListRecords returns the user's records ordered newest-created first.
// A user with no records yields a nil error and an empty slice; failures
// are reported through errors matching [ErrAuthFailure] or
// [ErrStoreUnavailable] so callers never confuse "store is down" with
// "zero records".
type RecordSource interface {
	ListRecords(ctx context.Context, userID int64) ([]Record, error)
}
