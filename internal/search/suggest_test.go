// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package search_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-stash-find/internal/config"
	"github.com/MKhiriev/go-stash-find/internal/logger"
	"github.com/MKhiriev/go-stash-find/internal/mock"
	"github.com/MKhiriev/go-stash-find/internal/search"
	"github.com/MKhiriev/go-stash-find/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestSuggester(t *testing.T, cfg config.Search) (*search.Suggester, *mock.MockRecordSource) {
	t.Helper()

	ctrl := gomock.NewController(t)
	source := mock.NewMockRecordSource(ctrl)

	return search.NewSuggester(source, cfg, logger.Nop()), source
}

func TestSuggester_MinimumLengthGate(t *testing.T) {
	suggester, source := newTestSuggester(t, config.Search{})
	// No ListRecords expectation: gated input must not reach the store.
	_ = source

	for _, input := range []string{"", "k", " k "} {
		t.Run(fmt.Sprintf("input=%q", input), func(t *testing.T) {
			got := suggester.Lookup(context.Background(), testUserID, suggester.Begin(input))

			require.NotNil(t, got, "gated input yields an empty list, not a discard")
			assert.Empty(t, got)
		})
	}
}

func TestSuggester_GateAppliesToNormalizedTerm(t *testing.T) {
	suggester, source := newTestSuggester(t, config.Search{})
	_ = source

	// The raw input is long but normalizes to a single character.
	got := suggester.Lookup(context.Background(), testUserID, suggester.Begin("where is my k"))

	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSuggester_MatchesShallowFieldsOnly(t *testing.T) {
	suggester, source := newTestSuggester(t, config.Search{})
	source.EXPECT().ListRecords(gomock.Any(), testUserID).Return([]search.Record{
		models.Document{ID: 1, DocumentName: "Apartment Lease", DocumentType: "contract", Tags: "deposit"},
	}, nil)

	got := suggester.Lookup(context.Background(), testUserID, suggester.Begin("deposit"))

	require.NotNil(t, got)
	assert.Empty(t, got, "deep fields are full-search only")
}

func TestSuggester_CapsAtLimit(t *testing.T) {
	records := make([]search.Record, 0, 12)
	for i := 12; i > 0; i-- {
		records = append(records, models.Item{
			ID:       int64(i),
			ItemName: fmt.Sprintf("Spare Keys %d", i),
			Location: "Hallway drawer",
		})
	}

	suggester, source := newTestSuggester(t, config.Search{})
	source.EXPECT().ListRecords(gomock.Any(), testUserID).Return(records, nil)

	got := suggester.Lookup(context.Background(), testUserID, suggester.Begin("keys"))

	require.Len(t, got, search.DefaultMaxSuggestions)
	assert.Equal(t, "12", got[0].RecordID(), "cap keeps the newest records")
	assert.Equal(t, "5", got[7].RecordID())
}

func TestSuggester_SourceFailureDegradesSilently(t *testing.T) {
	suggester, source := newTestSuggester(t, config.Search{})
	source.EXPECT().ListRecords(gomock.Any(), testUserID).Return(nil, search.ErrStoreUnavailable)

	got := suggester.Lookup(context.Background(), testUserID, suggester.Begin("keys"))

	require.NotNil(t, got, "a failed lookup clears the list instead of surfacing an error")
	assert.Empty(t, got)
}

// TestSuggester_SupersededRequestDiscarded exercises the last-input-wins
// ordering guarantee: a lookup for "ke" whose store read completes only
// after "key" has been typed must be discarded, never displayed.
func TestSuggester_SupersededRequestDiscarded(t *testing.T) {
	records := []search.Record{
		models.Item{ID: 2, ItemName: "House Keys", Location: "Kitchen counter"},
		models.Item{ID: 1, ItemName: "Kettle", Location: "Stove"},
	}

	suggester, source := newTestSuggester(t, config.Search{})

	staleStarted := make(chan struct{})
	release := make(chan struct{})

	// First read blocks until released, simulating a slow store while the
	// user keeps typing.
	source.EXPECT().ListRecords(gomock.Any(), testUserID).DoAndReturn(
		func(context.Context, int64) ([]search.Record, error) {
			close(staleStarted)
			<-release
			return records, nil
		})
	source.EXPECT().ListRecords(gomock.Any(), testUserID).Return(records, nil)

	stale := suggester.Begin("ke")

	staleResult := make(chan []search.Record, 1)
	go func() {
		staleResult <- suggester.Lookup(context.Background(), testUserID, stale)
	}()

	<-staleStarted
	fresh := suggester.Begin("key")
	close(release)

	assert.Nil(t, <-staleResult, "superseded response must be discarded even though it completed")

	got := suggester.Lookup(context.Background(), testUserID, fresh)
	require.Len(t, got, 1)
	assert.Equal(t, "House Keys", got[0].Title())
}

func TestSuggester_SupersededBeforeLookupStarts(t *testing.T) {
	suggester, source := newTestSuggester(t, config.Search{})
	// Single expectation: the superseded ticket never reaches the store.
	source.EXPECT().ListRecords(gomock.Any(), testUserID).Return([]search.Record{}, nil)

	stale := suggester.Begin("ke")
	fresh := suggester.Begin("key")

	assert.Nil(t, suggester.Lookup(context.Background(), testUserID, stale))
	assert.NotNil(t, suggester.Lookup(context.Background(), testUserID, fresh))
}

func TestSuggester_ConfigOverridesAndDefaults(t *testing.T) {
	suggester, _ := newTestSuggester(t, config.Search{MaxSuggestions: 3, MinChars: 4})
	assert.Equal(t, 3, suggester.Limit())
	assert.Equal(t, search.DefaultDebounce, suggester.Quiet())

	gated := suggester.Lookup(context.Background(), testUserID, suggester.Begin("key"))
	require.NotNil(t, gated)
	assert.Empty(t, gated, "raised MinChars gates three-character input")
}
