// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-stash-find/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/snapshot_cache_mock.go -package=mock

// SnapshotCache is the client-side local store holding the last snapshot of
// the user's records downloaded from the server. The TUI searches against
// this cache so that lookups keep working while the server is unreachable.
//
// Replace* methods swap the whole snapshot atomically; the cache never holds
// a partial mix of old and new records. List* methods return records newest
// first, matching the server ordering.
type SnapshotCache interface {
	ReplaceItems(ctx context.Context, items []models.Item) error
	ListItems(ctx context.Context) ([]models.Item, error)
	ReplaceDocuments(ctx context.Context, docs []models.Document) error
	ListDocuments(ctx context.Context) ([]models.Document, error)

	// LastRefreshed reports when the snapshot was last replaced.
	// Returns the zero time when the cache has never been filled.
	LastRefreshed(ctx context.Context) (time.Time, error)
}
