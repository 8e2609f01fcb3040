// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-stash-find/internal/logger"
	"github.com/MKhiriev/go-stash-find/models"
)

// snapshotCache is the SQLite-backed implementation of [SnapshotCache]. Each
// Replace* call runs inside a transaction so a failed refresh never leaves
// the cache half-updated.
type snapshotCache struct {
	*DB
	logger *logger.Logger
}

// NewSnapshotCache constructs a [SnapshotCache] backed by the provided
// SQLite connection and logger.
func NewSnapshotCache(db *DB, logger *logger.Logger) SnapshotCache {
	logger.Debug().Msg("creating snapshot cache")
	return &snapshotCache{
		DB:     db,
		logger: logger,
	}
}

// ReplaceItems swaps the cached belongings for a fresh server snapshot and
// stamps the refresh time.
func (c *snapshotCache) ReplaceItems(ctx context.Context, items []models.Item) error {
	log := logger.FromContext(ctx)

	tx, err := c.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin cache transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteAllCachedItems); err != nil {
		log.Err(err).Str("func", "snapshotCache.ReplaceItems").Msg("failed to clear cached items")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	for _, item := range items {
		_, err = tx.ExecContext(ctx, insertCachedItem,
			item.ID, item.UserID, item.ItemName, item.Location, item.Category, item.ImageRef, item.CreatedAt)
		if err != nil {
			log.Err(err).
				Str("func", "snapshotCache.ReplaceItems").
				Int64("id", item.ID).
				Msg("failed to insert cached item")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if _, err = tx.ExecContext(ctx, upsertLastRefreshed, time.Now().UTC()); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return tx.Commit()
}

// ListItems returns every cached belonging, newest first.
func (c *snapshotCache) ListItems(ctx context.Context) ([]models.Item, error) {
	log := logger.FromContext(ctx)

	rows, err := c.QueryContext(ctx, listCachedItems)
	if err != nil {
		log.Err(err).Str("func", "snapshotCache.ListItems").Msg("failed to query cached items")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.Item, 0, 50)

	for rows.Next() {
		var item models.Item

		if scanErr := rows.Scan(&item.ID, &item.UserID, &item.ItemName, &item.Location, &item.Category, &item.ImageRef, &item.CreatedAt); scanErr != nil {
			log.Err(scanErr).Str("func", "snapshotCache.ListItems").Msg("failed to scan cached item row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "snapshotCache.ListItems").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return items, nil
}

// ReplaceDocuments swaps the cached documents for a fresh server snapshot
// and stamps the refresh time.
func (c *snapshotCache) ReplaceDocuments(ctx context.Context, docs []models.Document) error {
	log := logger.FromContext(ctx)

	tx, err := c.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin cache transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteAllCachedDocuments); err != nil {
		log.Err(err).Str("func", "snapshotCache.ReplaceDocuments").Msg("failed to clear cached documents")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	for _, doc := range docs {
		_, err = tx.ExecContext(ctx, insertCachedDocument,
			doc.ID, doc.UserID, doc.DocumentName, doc.DocumentType, doc.Notes, doc.Tags, doc.ImageRef, doc.CreatedAt)
		if err != nil {
			log.Err(err).
				Str("func", "snapshotCache.ReplaceDocuments").
				Int64("id", doc.ID).
				Msg("failed to insert cached document")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if _, err = tx.ExecContext(ctx, upsertLastRefreshed, time.Now().UTC()); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return tx.Commit()
}

// ListDocuments returns every cached document, newest first.
func (c *snapshotCache) ListDocuments(ctx context.Context) ([]models.Document, error) {
	log := logger.FromContext(ctx)

	rows, err := c.QueryContext(ctx, listCachedDocuments)
	if err != nil {
		log.Err(err).Str("func", "snapshotCache.ListDocuments").Msg("failed to query cached documents")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	docs := make([]models.Document, 0, 50)

	for rows.Next() {
		var doc models.Document

		if scanErr := rows.Scan(&doc.ID, &doc.UserID, &doc.DocumentName, &doc.DocumentType, &doc.Notes, &doc.Tags, &doc.ImageRef, &doc.CreatedAt); scanErr != nil {
			log.Err(scanErr).Str("func", "snapshotCache.ListDocuments").Msg("failed to scan cached document row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		docs = append(docs, doc)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "snapshotCache.ListDocuments").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return docs, nil
}

// LastRefreshed reports when the snapshot was last replaced. Returns the
// zero time when the cache has never been filled.
func (c *snapshotCache) LastRefreshed(ctx context.Context) (time.Time, error) {
	var at time.Time
	row := c.QueryRowContext(ctx, getLastRefreshed)

	if err := row.Scan(&at); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return time.Time{}, nil
		}
		return time.Time{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return at, nil
}
