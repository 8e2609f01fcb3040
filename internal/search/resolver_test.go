// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package search_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/MKhiriev/go-stash-find/internal/logger"
	"github.com/MKhiriev/go-stash-find/internal/mock"
	"github.com/MKhiriev/go-stash-find/internal/search"
	"github.com/MKhiriev/go-stash-find/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testUserID int64 = 42

// snapshot returns the canonical two-record fixture: newest first, both
// matching "keys", only one matching "kitchen".
func snapshot() []search.Record {
	return []search.Record{
		models.Item{ID: 2, UserID: testUserID, ItemName: "House Keys", Location: "Kitchen counter"},
		models.Item{ID: 1, UserID: testUserID, ItemName: "Car Keys", Location: "Garage"},
	}
}

func newTestResolver(t *testing.T) (*search.Resolver, *mock.MockRecordSource) {
	t.Helper()

	ctrl := gomock.NewController(t)
	source := mock.NewMockRecordSource(ctrl)

	return search.NewResolver(source, logger.Nop()), source
}

func TestResolver_Resolve_Ambiguous(t *testing.T) {
	resolver, source := newTestResolver(t)
	source.EXPECT().ListRecords(gomock.Any(), testUserID).Return(snapshot(), nil)

	outcome, err := resolver.Resolve(context.Background(), testUserID, "Where are my keys?")

	require.NoError(t, err)
	assert.Equal(t, search.OutcomeAmbiguous, outcome.Kind)
	assert.Equal(t, "keys", outcome.Term)
	require.Len(t, outcome.Records, 2)
	assert.Equal(t, "House Keys", outcome.Records[0].Title(), "newest-first order must be preserved")
	assert.Equal(t, "Car Keys", outcome.Records[1].Title())
	assert.Nil(t, outcome.Record, "ambiguous outcome must not carry a scalar record")
}

func TestResolver_Resolve_SingleMatchViaLocation(t *testing.T) {
	resolver, source := newTestResolver(t)
	source.EXPECT().ListRecords(gomock.Any(), testUserID).Return(snapshot(), nil)

	outcome, err := resolver.Resolve(context.Background(), testUserID, "kitchen")

	require.NoError(t, err)
	assert.Equal(t, search.OutcomeResolved, outcome.Kind)
	require.NotNil(t, outcome.Record)
	assert.Equal(t, "House Keys", outcome.Record.Title())
	assert.Empty(t, outcome.Records)
}

func TestResolver_Resolve_NotFound(t *testing.T) {
	resolver, source := newTestResolver(t)
	source.EXPECT().ListRecords(gomock.Any(), testUserID).Return(snapshot(), nil)

	outcome, err := resolver.Resolve(context.Background(), testUserID, "find my umbrella")

	require.NoError(t, err)
	assert.Equal(t, search.OutcomeNotFound, outcome.Kind)
	assert.Equal(t, "umbrella", outcome.Term)
}

func TestResolver_Resolve_EmptyCollection(t *testing.T) {
	resolver, source := newTestResolver(t)
	source.EXPECT().ListRecords(gomock.Any(), testUserID).Return([]search.Record{}, nil)

	outcome, err := resolver.Resolve(context.Background(), testUserID, "keys")

	require.NoError(t, err)
	assert.Equal(t, search.OutcomeEmptyCollection, outcome.Kind,
		"zero stored records must be distinguishable from a term that matched nothing")
}

func TestResolver_Resolve_ValidationError(t *testing.T) {
	resolver, source := newTestResolver(t)
	// No ListRecords expectation: an empty query must not reach the store.
	_ = source

	for _, raw := range []string{"", "   ", "\t"} {
		outcome, err := resolver.Resolve(context.Background(), testUserID, raw)

		require.NoError(t, err)
		assert.Equal(t, search.OutcomeValidationError, outcome.Kind)
		assert.NotEmpty(t, outcome.Reason)
	}
}

func TestResolver_Resolve_SourceFailure(t *testing.T) {
	resolver, source := newTestResolver(t)
	source.EXPECT().ListRecords(gomock.Any(), testUserID).Return(nil, search.ErrStoreUnavailable)

	_, err := resolver.Resolve(context.Background(), testUserID, "keys")

	require.Error(t, err)
	assert.ErrorIs(t, err, search.ErrStoreUnavailable,
		"a store outage must never be classified as not found or empty collection")
}

func TestResolver_Resolve_SourceFailureLogged(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mock.NewMockRecordSource(ctrl)
	source.EXPECT().ListRecords(gomock.Any(), testUserID).Return(nil, search.ErrStoreUnavailable)

	var buf bytes.Buffer
	log := logger.NewLogger("stash-find-server")
	log.Logger = log.Output(&buf)

	resolver := search.NewResolver(source, log)
	_, err := resolver.Resolve(context.Background(), testUserID, "keys")

	require.Error(t, err)
	assert.Contains(t, buf.String(), "failed to read record snapshot",
		"source failures must be reported through the resolver's own logger")
}

func TestResolver_Resolve_Idempotent(t *testing.T) {
	resolver, source := newTestResolver(t)
	source.EXPECT().ListRecords(gomock.Any(), testUserID).Return(snapshot(), nil).Times(2)

	first, err := resolver.Resolve(context.Background(), testUserID, "keys")
	require.NoError(t, err)
	second, err := resolver.Resolve(context.Background(), testUserID, "keys")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSelectSuggestion_PassThrough(t *testing.T) {
	picked := models.Item{ID: 7, ItemName: "Wallet", Location: "Coat pocket"}

	outcome := search.SelectSuggestion(picked)

	assert.Equal(t, search.OutcomeResolved, outcome.Kind)
	assert.Equal(t, picked, outcome.Record)
}
