package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-stash-find/internal/logger"
	"github.com/MKhiriev/go-stash-find/models"
)

func newTestSnapshotCache(t *testing.T) (*snapshotCache, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	cache := &snapshotCache{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return cache, mock, db
}

func TestSnapshotCache_ReplaceItems(t *testing.T) {
	cache, mock, db := newTestSnapshotCache(t)
	defer db.Close()

	now := time.Now()
	items := []models.Item{
		{ID: 2, UserID: 42, ItemName: "house keys", Location: "kitchen drawer", CreatedAt: now},
		{ID: 1, UserID: 42, ItemName: "passport", Location: "top shelf", CreatedAt: now.Add(-time.Hour)},
	}

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM cached_items").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO cached_items").
		WithArgs(items[0].ID, items[0].UserID, items[0].ItemName, items[0].Location, items[0].Category, items[0].ImageRef, items[0].CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO cached_items").
		WithArgs(items[1].ID, items[1].UserID, items[1].ItemName, items[1].Location, items[1].Category, items[1].ImageRef, items[1].CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO cache_meta").
		WithArgs(sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := cache.ReplaceItems(context.Background(), items); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSnapshotCache_ReplaceItems_RollsBackOnInsertError(t *testing.T) {
	cache, mock, db := newTestSnapshotCache(t)
	defer db.Close()

	items := []models.Item{{ID: 1, UserID: 42, ItemName: "passport", Location: "top shelf"}}

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM cached_items").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO cached_items").
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := cache.ReplaceItems(context.Background(), items)
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSnapshotCache_ListItems(t *testing.T) {
	cache, mock, db := newTestSnapshotCache(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows(itemColumns()).
		AddRow(2, 42, "house keys", "kitchen drawer", "keys", "", now).
		AddRow(1, 42, "passport", "top shelf", "documents", "", now.Add(-time.Hour))

	mock.ExpectQuery("SELECT").WillReturnRows(rows)

	items, err := cache.ListItems(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].ItemName != "house keys" {
		t.Errorf("expected newest item first, got %s", items[0].ItemName)
	}
}

func TestSnapshotCache_ReplaceDocuments(t *testing.T) {
	cache, mock, db := newTestSnapshotCache(t)
	defer db.Close()

	now := time.Now()
	docs := []models.Document{
		{ID: 1, UserID: 42, DocumentName: "passport", DocumentType: "id", Tags: "travel", CreatedAt: now},
	}

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM cached_documents").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO cached_documents").
		WithArgs(docs[0].ID, docs[0].UserID, docs[0].DocumentName, docs[0].DocumentType, docs[0].Notes, docs[0].Tags, docs[0].ImageRef, docs[0].CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO cache_meta").
		WithArgs(sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := cache.ReplaceDocuments(context.Background(), docs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSnapshotCache_ListDocuments_Empty(t *testing.T) {
	cache, mock, db := newTestSnapshotCache(t)
	defer db.Close()

	mock.ExpectQuery("SELECT").WillReturnRows(sqlmock.NewRows(documentColumns()))

	docs, err := cache.ListDocuments(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if docs == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(docs) != 0 {
		t.Errorf("expected no documents, got %d", len(docs))
	}
}

func TestSnapshotCache_LastRefreshed(t *testing.T) {
	cache, mock, db := newTestSnapshotCache(t)
	defer db.Close()

	at := time.Now().UTC().Truncate(time.Second)
	rows := sqlmock.NewRows([]string{"value"}).AddRow(at)

	mock.ExpectQuery("SELECT value FROM cache_meta").WillReturnRows(rows)

	got, err := cache.LastRefreshed(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(at) {
		t.Errorf("expected %v, got %v", at, got)
	}
}

func TestSnapshotCache_LastRefreshed_NeverFilled(t *testing.T) {
	cache, mock, db := newTestSnapshotCache(t)
	defer db.Close()

	mock.ExpectQuery("SELECT value FROM cache_meta").
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	got, err := cache.LastRefreshed(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.IsZero() {
		t.Errorf("expected zero time, got %v", got)
	}
}
