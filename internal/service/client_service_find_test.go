package service

import (
	"context"
	"errors"
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

func newTestClientFindService(t *testing.T) (ClientFindService, *mock.MockSnapshotCache) {
	ctrl := gomock.NewController(t)
	cache := mock.NewMockSnapshotCache(ctrl)
	svc := NewClientFindService(cache, config.Search{}, logger.Nop())
	return svc, cache
}

func TestClientFindService_FindItems(t *testing.T) {
	ctx := context.Background()

	snapshot := []models.Item{
		{ID: 3, ItemName: "spare keys", Location: "garage hook"},
		{ID: 2, ItemName: "house keys", Location: "kitchen drawer"},
		{ID: 1, ItemName: "passport", Location: "top shelf"},
	}

	t.Run("resolved", func(t *testing.T) {
		svc, cache := newTestClientFindService(t)
		cache.EXPECT().ListItems(ctx).Return(snapshot, nil)

		outcome, err := svc.FindItems(ctx, "where is my passport?")
		require.NoError(t, err)
		require.Equal(t, search.OutcomeResolved, outcome.Kind)
		assert.Equal(t, "passport", outcome.Record.Title())
	})

	t.Run("ambiguous keeps snapshot order", func(t *testing.T) {
		svc, cache := newTestClientFindService(t)
		cache.EXPECT().ListItems(ctx).Return(snapshot, nil)

		outcome, err := svc.FindItems(ctx, "find my keys")
		require.NoError(t, err)
		require.Equal(t, search.OutcomeAmbiguous, outcome.Kind)
		require.Len(t, outcome.Records, 2)
		assert.Equal(t, "spare keys", outcome.Records[0].Title())
	})

	t.Run("cache failure surfaces as store unavailable", func(t *testing.T) {
		svc, cache := newTestClientFindService(t)
		cache.EXPECT().ListItems(ctx).Return(nil, errors.New("database is locked"))

		_, err := svc.FindItems(ctx, "where is my passport?")
		require.ErrorIs(t, err, search.ErrStoreUnavailable)
	})
}

func TestClientFindService_FindDocuments(t *testing.T) {
	ctx := context.Background()
	svc, cache := newTestClientFindService(t)

	cache.EXPECT().ListDocuments(ctx).Return([]models.Document{
		{ID: 1, DocumentName: "passport", DocumentType: "id", Tags: "travel, summer"},
	}, nil)

	outcome, err := svc.FindDocuments(ctx, "find my travel")
	require.NoError(t, err)
	assert.Equal(t, search.OutcomeResolved, outcome.Kind)
}

func TestClientFindService_Suggestions(t *testing.T) {
	ctx := context.Background()

	t.Run("current ticket returns matches", func(t *testing.T) {
		svc, cache := newTestClientFindService(t)
		cache.EXPECT().ListItems(ctx).Return([]models.Item{
			{ID: 2, ItemName: "house keys", Location: "kitchen drawer"},
			{ID: 1, ItemName: "passport", Location: "top shelf"},
		}, nil)

		ticket := svc.BeginItemSuggestion("key")
		got := svc.SuggestItems(ctx, ticket)
		require.Len(t, got, 1)
		assert.Equal(t, "house keys", got[0].ItemName)
	})

	t.Run("superseded ticket yields nil", func(t *testing.T) {
		svc, _ := newTestClientFindService(t)

		stale := svc.BeginItemSuggestion("ke")
		_ = svc.BeginItemSuggestion("key")

		assert.Nil(t, svc.SuggestItems(ctx, stale))
	})

	t.Run("input below minimum yields empty list without cache read", func(t *testing.T) {
		svc, _ := newTestClientFindService(t)

		ticket := svc.BeginItemSuggestion("k")
		got := svc.SuggestItems(ctx, ticket)
		require.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("document suggestions never match tags", func(t *testing.T) {
		svc, cache := newTestClientFindService(t)
		cache.EXPECT().ListDocuments(ctx).Return([]models.Document{
			{ID: 1, DocumentName: "passport", DocumentType: "id", Tags: "travel"},
		}, nil)

		ticket := svc.BeginDocumentSuggestion("travel")
		got := svc.SuggestDocuments(ctx, ticket)
		require.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("item and document suggestion sequences are independent", func(t *testing.T) {
		svc, cache := newTestClientFindService(t)
		cache.EXPECT().ListItems(ctx).Return([]models.Item{
			{ID: 1, ItemName: "house keys", Location: "drawer"},
		}, nil)

		itemTicket := svc.BeginItemSuggestion("keys")
		_ = svc.BeginDocumentSuggestion("passport")

		assert.NotNil(t, svc.SuggestItems(ctx, itemTicket))
	})

	t.Run("currency tracks the latest ticket per scope", func(t *testing.T) {
		svc, _ := newTestClientFindService(t)

		stale := svc.BeginItemSuggestion("ke")
		assert.True(t, svc.ItemSuggestionCurrent(stale))

		fresh := svc.BeginItemSuggestion("key")
		assert.False(t, svc.ItemSuggestionCurrent(stale))
		assert.True(t, svc.ItemSuggestionCurrent(fresh))

		// the document sequence is untouched by item keystrokes
		docTicket := svc.BeginDocumentSuggestion("pass")
		assert.True(t, svc.DocumentSuggestionCurrent(docTicket))
		assert.True(t, svc.ItemSuggestionCurrent(fresh))
	})

	t.Run("quiet window has a default", func(t *testing.T) {
		svc, _ := newTestClientFindService(t)
		assert.Equal(t, search.DefaultDebounce, svc.SuggestionQuiet())
	})
}
