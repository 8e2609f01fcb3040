package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-stash-find/internal/search"
	"github.com/MKhiriev/go-stash-find/internal/store"
	"github.com/MKhiriev/go-stash-find/models"
)

// itemRecordSource adapts the postgres item repository to the search
// core's RecordSource boundary. A missing user id surfaces as
// [search.ErrAuthFailure], repository failures as
// [search.ErrStoreUnavailable], so the resolver can distinguish "who is
// asking" from "store is down" from "zero records".
type itemRecordSource struct {
	repository store.ItemRepository
}

func (s itemRecordSource) ListRecords(ctx context.Context, userID int64) ([]search.Record, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: no user id", search.ErrAuthFailure)
	}

	items, err := s.repository.GetAllItems(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", search.ErrStoreUnavailable, err)
	}

	return itemsToRecords(items), nil
}

// documentRecordSource is the document counterpart of itemRecordSource.
type documentRecordSource struct {
	repository store.DocumentRepository
}

func (s documentRecordSource) ListRecords(ctx context.Context, userID int64) ([]search.Record, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: no user id", search.ErrAuthFailure)
	}

	docs, err := s.repository.GetAllDocuments(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", search.ErrStoreUnavailable, err)
	}

	return documentsToRecords(docs), nil
}

func itemsToRecords(items []models.Item) []search.Record {
	records := make([]search.Record, 0, len(items))
	for _, item := range items {
		records = append(records, item)
	}
	return records
}

func documentsToRecords(docs []models.Document) []search.Record {
	records := make([]search.Record, 0, len(docs))
	for _, doc := range docs {
		records = append(records, doc)
	}
	return records
}

// recordsToItems narrows a record slice back to items, dropping anything
// else. The search core hands back the same values the source produced, so
// in practice nothing is dropped.
func recordsToItems(records []search.Record) []models.Item {
	items := make([]models.Item, 0, len(records))
	for _, r := range records {
		if item, ok := r.(models.Item); ok {
			items = append(items, item)
		}
	}
	return items
}

func recordsToDocuments(records []search.Record) []models.Document {
	docs := make([]models.Document, 0, len(records))
	for _, r := range records {
		if doc, ok := r.(models.Document); ok {
			docs = append(docs, doc)
		}
	}
	return docs
}
