// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-stash-find/internal/config"
	"github.com/MKhiriev/go-stash-find/internal/logger"
	"github.com/MKhiriev/go-stash-find/internal/search"
	"github.com/MKhiriev/go-stash-find/internal/store"
	"github.com/MKhiriev/go-stash-find/models"
)

// clientFindService runs the search core over the local snapshot cache.
// Unlike the server side, the suggesters live for the whole session: the
// ticket sequence is what protects the TUI from stale suggestion responses
// while the user is typing.
type clientFindService struct {
	itemResolver      *search.Resolver
	documentResolver  *search.Resolver
	itemSuggester     *search.Suggester
	documentSuggester *search.Suggester
}

func NewClientFindService(cache store.SnapshotCache, searchCfg config.Search, logger *logger.Logger) ClientFindService {
	itemSource := cachedItemSource{cache: cache}
	documentSource := cachedDocumentSource{cache: cache}

	return &clientFindService{
		itemResolver:      search.NewResolver(itemSource, logger),
		documentResolver:  search.NewResolver(documentSource, logger),
		itemSuggester:     search.NewSuggester(itemSource, searchCfg, logger),
		documentSuggester: search.NewSuggester(documentSource, searchCfg, logger),
	}
}

// FindItems implements ClientFindService.
func (f *clientFindService) FindItems(ctx context.Context, query string) (search.Outcome, error) {
	return f.itemResolver.Resolve(ctx, localUserID, query)
}

// FindDocuments implements ClientFindService.
func (f *clientFindService) FindDocuments(ctx context.Context, query string) (search.Outcome, error) {
	return f.documentResolver.Resolve(ctx, localUserID, query)
}

// BeginItemSuggestion implements ClientFindService.
func (f *clientFindService) BeginItemSuggestion(input string) search.Ticket {
	return f.itemSuggester.Begin(input)
}

// SuggestItems implements ClientFindService. Nil means the ticket was
// superseded and the caller must keep whatever is displayed.
func (f *clientFindService) SuggestItems(ctx context.Context, t search.Ticket) []models.Item {
	records := f.itemSuggester.Lookup(ctx, localUserID, t)
	if records == nil {
		return nil
	}
	return recordsToItems(records)
}

// ItemSuggestionCurrent implements ClientFindService.
func (f *clientFindService) ItemSuggestionCurrent(t search.Ticket) bool {
	return !f.itemSuggester.Superseded(t)
}

// BeginDocumentSuggestion implements ClientFindService.
func (f *clientFindService) BeginDocumentSuggestion(input string) search.Ticket {
	return f.documentSuggester.Begin(input)
}

// SuggestDocuments implements ClientFindService.
func (f *clientFindService) SuggestDocuments(ctx context.Context, t search.Ticket) []models.Document {
	records := f.documentSuggester.Lookup(ctx, localUserID, t)
	if records == nil {
		return nil
	}
	return recordsToDocuments(records)
}

// DocumentSuggestionCurrent implements ClientFindService.
func (f *clientFindService) DocumentSuggestionCurrent(t search.Ticket) bool {
	return !f.documentSuggester.Superseded(t)
}

// SuggestionQuiet implements ClientFindService. Both suggesters share the
// same config, so either window works.
func (f *clientFindService) SuggestionQuiet() time.Duration {
	return f.itemSuggester.Quiet()
}

// localUserID is the user id handed to the search core on the client. The
// snapshot cache is already scoped to the signed-in user, so the value is
// never used for filtering.
const localUserID int64 = 0

// cachedItemSource adapts the snapshot cache to the search core's
// RecordSource boundary. Cache failures surface as
// [search.ErrStoreUnavailable], same as the server-side sources.
type cachedItemSource struct {
	cache store.SnapshotCache
}

func (s cachedItemSource) ListRecords(ctx context.Context, _ int64) ([]search.Record, error) {
	items, err := s.cache.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", search.ErrStoreUnavailable, err)
	}

	return itemsToRecords(items), nil
}

// cachedDocumentSource is the document counterpart of cachedItemSource.
type cachedDocumentSource struct {
	cache store.SnapshotCache
}

func (s cachedDocumentSource) ListRecords(ctx context.Context, _ int64) ([]search.Record, error) {
	docs, err := s.cache.ListDocuments(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", search.ErrStoreUnavailable, err)
	}

	return documentsToRecords(docs), nil
}
