// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-stash-find/internal/adapter"
	"github.com/MKhiriev/go-stash-find/internal/logger"
	"github.com/MKhiriev/go-stash-find/internal/store"
	"github.com/MKhiriev/go-stash-find/models"
	"golang.org/x/sync/errgroup"
)

// clientRecordService serves reads from the local snapshot cache and sends
// mutations to the server. After a successful mutation the affected snapshot
// is re-pulled so a following read sees the change; a failed re-pull is
// logged and swallowed because the server already holds the truth.
type clientRecordService struct {
	adapter adapter.ServerAdapter
	cache   store.SnapshotCache
	logger  *logger.Logger
}

func NewClientRecordService(serverAdapter adapter.ServerAdapter, cache store.SnapshotCache, logger *logger.Logger) ClientRecordService {
	return &clientRecordService{adapter: serverAdapter, cache: cache, logger: logger}
}

// RefreshSnapshots implements ClientRecordService. Both snapshots are pulled
// concurrently; the first failure cancels the other pull.
func (s *clientRecordService) RefreshSnapshots(ctx context.Context) error {
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error { return s.refreshItems(gCtx) })
	g.Go(func() error { return s.refreshDocuments(gCtx) })
	return g.Wait()
}

// LastRefreshed implements ClientRecordService.
func (s *clientRecordService) LastRefreshed(ctx context.Context) (time.Time, error) {
	return s.cache.LastRefreshed(ctx)
}

// ListItems implements ClientRecordService. It reads the local snapshot and
// never touches the network.
func (s *clientRecordService) ListItems(ctx context.Context) ([]models.Item, error) {
	return s.cache.ListItems(ctx)
}

// AddItem implements ClientRecordService.
func (s *clientRecordService) AddItem(ctx context.Context, item models.Item) (models.Item, error) {
	created, err := s.adapter.CreateItem(ctx, item)
	if err != nil {
		return models.Item{}, mapAdapterError(err)
	}

	if err = s.refreshItems(ctx); err != nil {
		s.logger.Warn().
			Err(err).
			Str("func", "clientRecordService.AddItem").
			Msg("snapshot refresh after create failed, cache is stale until next refresh")
	}

	return created, nil
}

// DeleteItem implements ClientRecordService.
func (s *clientRecordService) DeleteItem(ctx context.Context, id int64) error {
	if err := s.adapter.DeleteItem(ctx, id); err != nil {
		return mapAdapterError(err)
	}

	if err := s.refreshItems(ctx); err != nil {
		s.logger.Warn().
			Err(err).
			Str("func", "clientRecordService.DeleteItem").
			Msg("snapshot refresh after delete failed, cache is stale until next refresh")
	}

	return nil
}

// ListDocuments implements ClientRecordService.
func (s *clientRecordService) ListDocuments(ctx context.Context) ([]models.Document, error) {
	return s.cache.ListDocuments(ctx)
}

// AddDocument implements ClientRecordService.
func (s *clientRecordService) AddDocument(ctx context.Context, doc models.Document) (models.Document, error) {
	created, err := s.adapter.CreateDocument(ctx, doc)
	if err != nil {
		return models.Document{}, mapAdapterError(err)
	}

	if err = s.refreshDocuments(ctx); err != nil {
		s.logger.Warn().
			Err(err).
			Str("func", "clientRecordService.AddDocument").
			Msg("snapshot refresh after create failed, cache is stale until next refresh")
	}

	return created, nil
}

// DeleteDocument implements ClientRecordService.
func (s *clientRecordService) DeleteDocument(ctx context.Context, id int64) error {
	if err := s.adapter.DeleteDocument(ctx, id); err != nil {
		return mapAdapterError(err)
	}

	if err := s.refreshDocuments(ctx); err != nil {
		s.logger.Warn().
			Err(err).
			Str("func", "clientRecordService.DeleteDocument").
			Msg("snapshot refresh after delete failed, cache is stale until next refresh")
	}

	return nil
}

func (s *clientRecordService) refreshItems(ctx context.Context) error {
	items, err := s.adapter.ListItems(ctx)
	if err != nil {
		return fmt.Errorf("list items from server: %w", mapAdapterError(err))
	}

	if err = s.cache.ReplaceItems(ctx, items); err != nil {
		return fmt.Errorf("replace cached items: %w", err)
	}

	return nil
}

func (s *clientRecordService) refreshDocuments(ctx context.Context) error {
	docs, err := s.adapter.ListDocuments(ctx)
	if err != nil {
		return fmt.Errorf("list documents from server: %w", mapAdapterError(err))
	}

	if err = s.cache.ReplaceDocuments(ctx, docs); err != nil {
		return fmt.Errorf("replace cached documents: %w", err)
	}

	return nil
}
