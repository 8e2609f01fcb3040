// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-stash-find/internal/logger"
	"github.com/MKhiriev/go-stash-find/internal/search"
	"github.com/MKhiriev/go-stash-find/internal/service"
	"github.com/MKhiriev/go-stash-find/internal/store"
	"github.com/MKhiriev/go-stash-find/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock SearchService
// ─────────────────────────────────────────────

type mockSearchService struct {
	resolveItemsFn     func(ctx context.Context, userID int64, query string) (search.Outcome, error)
	resolveDocumentsFn func(ctx context.Context, userID int64, query string) (search.Outcome, error)
	suggestItemsFn     func(ctx context.Context, userID int64, input string) []models.Item
	suggestDocumentsFn func(ctx context.Context, userID int64, input string) []models.Document
}

func (m *mockSearchService) ResolveItems(ctx context.Context, userID int64, query string) (search.Outcome, error) {
	return m.resolveItemsFn(ctx, userID, query)
}

func (m *mockSearchService) ResolveDocuments(ctx context.Context, userID int64, query string) (search.Outcome, error) {
	return m.resolveDocumentsFn(ctx, userID, query)
}

func (m *mockSearchService) SuggestItems(ctx context.Context, userID int64, input string) []models.Item {
	return m.suggestItemsFn(ctx, userID, input)
}

func (m *mockSearchService) SuggestDocuments(ctx context.Context, userID int64, input string) []models.Document {
	return m.suggestDocumentsFn(ctx, userID, input)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newHandlerForSearch(t *testing.T, svc service.SearchService) *Handler {
	t.Helper()
	svcs := &service.Services{
		SearchService: svc,
	}
	return NewHandler(svcs, logger.Nop())
}

func decodeItemsOutcome(t *testing.T, rec *httptest.ResponseRecorder) models.SearchItemsResponse {
	t.Helper()
	var resp models.SearchItemsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

// ─────────────────────────────────────────────
// searchItems
// ─────────────────────────────────────────────

func TestSearchItems_Resolved(t *testing.T) {
	svc := &mockSearchService{
		resolveItemsFn: func(_ context.Context, userID int64, query string) (search.Outcome, error) {
			assert.Equal(t, int64(1), userID)
			assert.Equal(t, "where are my keys?", query)
			return search.Outcome{
				Kind:   search.OutcomeResolved,
				Term:   "keys",
				Record: fixtureItem,
			}, nil
		},
	}

	h := newHandlerForSearch(t, svc)
	req := httptest.NewRequest(http.MethodGet, "/api/search/items?q=where+are+my+keys%3F", nil).
		WithContext(ctxWithUser(1))
	rec := httptest.NewRecorder()

	h.searchItems(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeItemsOutcome(t, rec)
	assert.Equal(t, models.OutcomeResolved, resp.Outcome)
	assert.Equal(t, "keys", resp.Term)
	require.NotNil(t, resp.Item)
	assert.Equal(t, "bowl by the front door", resp.Item.Location)
	assert.Empty(t, resp.Items)
}

func TestSearchItems_Ambiguous(t *testing.T) {
	newer := models.Item{ID: 9, ItemName: "keys", Location: "jacket pocket"}
	older := models.Item{ID: 7, ItemName: "keys", Location: "bowl by the front door"}

	svc := &mockSearchService{
		resolveItemsFn: func(_ context.Context, _ int64, _ string) (search.Outcome, error) {
			return search.Outcome{
				Kind:    search.OutcomeAmbiguous,
				Term:    "keys",
				Records: []search.Record{newer, older},
			}, nil
		},
	}

	h := newHandlerForSearch(t, svc)
	req := httptest.NewRequest(http.MethodGet, "/api/search/items?q=keys", nil).WithContext(ctxWithUser(1))
	rec := httptest.NewRecorder()

	h.searchItems(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeItemsOutcome(t, rec)
	assert.Equal(t, models.OutcomeAmbiguous, resp.Outcome)
	assert.Nil(t, resp.Item)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, int64(9), resp.Items[0].ID, "newest candidate comes first")
}

func TestSearchItems_NotFound(t *testing.T) {
	svc := &mockSearchService{
		resolveItemsFn: func(_ context.Context, _ int64, _ string) (search.Outcome, error) {
			return search.Outcome{Kind: search.OutcomeNotFound, Term: "unicycle"}, nil
		},
	}

	h := newHandlerForSearch(t, svc)
	req := httptest.NewRequest(http.MethodGet, "/api/search/items?q=unicycle", nil).WithContext(ctxWithUser(1))
	rec := httptest.NewRecorder()

	h.searchItems(rec, req)

	// a miss is still a successful resolution, not an HTTP error
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeItemsOutcome(t, rec)
	assert.Equal(t, models.OutcomeNotFound, resp.Outcome)
	assert.Equal(t, "unicycle", resp.Term)
}

func TestSearchItems_EmptyCollection(t *testing.T) {
	svc := &mockSearchService{
		resolveItemsFn: func(_ context.Context, _ int64, _ string) (search.Outcome, error) {
			return search.Outcome{Kind: search.OutcomeEmptyCollection, Term: "keys"}, nil
		},
	}

	h := newHandlerForSearch(t, svc)
	req := httptest.NewRequest(http.MethodGet, "/api/search/items?q=keys", nil).WithContext(ctxWithUser(1))
	rec := httptest.NewRecorder()

	h.searchItems(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeItemsOutcome(t, rec)
	assert.Equal(t, models.OutcomeEmptyCollection, resp.Outcome)
}

func TestSearchItems_ValidationError(t *testing.T) {
	svc := &mockSearchService{
		resolveItemsFn: func(_ context.Context, _ int64, _ string) (search.Outcome, error) {
			return search.Outcome{
				Kind:   search.OutcomeValidationError,
				Reason: "query is empty",
			}, nil
		},
	}

	h := newHandlerForSearch(t, svc)
	req := httptest.NewRequest(http.MethodGet, "/api/search/items?q=", nil).WithContext(ctxWithUser(1))
	rec := httptest.NewRecorder()

	h.searchItems(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeItemsOutcome(t, rec)
	assert.Equal(t, models.OutcomeValidationError, resp.Outcome)
	assert.Equal(t, "query is empty", resp.Reason)
}

func TestSearchItems_StoreError(t *testing.T) {
	svc := &mockSearchService{
		resolveItemsFn: func(_ context.Context, _ int64, _ string) (search.Outcome, error) {
			return search.Outcome{}, store.ErrExecutingQuery
		},
	}

	h := newHandlerForSearch(t, svc)
	req := httptest.NewRequest(http.MethodGet, "/api/search/items?q=keys", nil).WithContext(ctxWithUser(1))
	rec := httptest.NewRecorder()

	h.searchItems(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestSearchItems_NoUserID(t *testing.T) {
	h := newHandlerForSearch(t, &mockSearchService{})
	req := httptest.NewRequest(http.MethodGet, "/api/search/items?q=keys", nil)
	rec := httptest.NewRecorder()

	h.searchItems(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// ─────────────────────────────────────────────
// suggestItems
// ─────────────────────────────────────────────

func TestSuggestItems_Success(t *testing.T) {
	svc := &mockSearchService{
		suggestItemsFn: func(_ context.Context, userID int64, input string) []models.Item {
			assert.Equal(t, int64(1), userID)
			assert.Equal(t, "ke", input)
			return []models.Item{fixtureItem}
		},
	}

	h := newHandlerForSearch(t, svc)
	req := httptest.NewRequest(http.MethodGet, "/api/search/items/suggest?q=ke", nil).WithContext(ctxWithUser(1))
	rec := httptest.NewRecorder()

	h.suggestItems(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp models.SuggestItemsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Suggestions, 1)
	assert.Equal(t, "keys", resp.Suggestions[0].ItemName)
}

func TestSuggestItems_Empty(t *testing.T) {
	svc := &mockSearchService{
		suggestItemsFn: func(_ context.Context, _ int64, _ string) []models.Item {
			return []models.Item{}
		},
	}

	h := newHandlerForSearch(t, svc)
	req := httptest.NewRequest(http.MethodGet, "/api/search/items/suggest?q=k", nil).WithContext(ctxWithUser(1))
	rec := httptest.NewRecorder()

	h.suggestItems(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp models.SuggestItemsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Empty(t, resp.Suggestions)
}

// ─────────────────────────────────────────────
// searchDocuments
// ─────────────────────────────────────────────

func TestSearchDocuments_Resolved(t *testing.T) {
	svc := &mockSearchService{
		resolveDocumentsFn: func(_ context.Context, userID int64, query string) (search.Outcome, error) {
			assert.Equal(t, int64(1), userID)
			assert.Equal(t, "passport", query)
			return search.Outcome{
				Kind:   search.OutcomeResolved,
				Term:   "passport",
				Record: fixtureDocument,
			}, nil
		},
	}

	h := newHandlerForSearch(t, svc)
	req := httptest.NewRequest(http.MethodGet, "/api/search/documents?q=passport", nil).WithContext(ctxWithUser(1))
	rec := httptest.NewRecorder()

	h.searchDocuments(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp models.SearchDocumentsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, models.OutcomeResolved, resp.Outcome)
	require.NotNil(t, resp.Document)
	assert.Equal(t, "top shelf of the bedroom safe", resp.Document.Notes)
}

func TestSearchDocuments_Ambiguous(t *testing.T) {
	first := models.Document{ID: 8, DocumentName: "insurance policy"}
	second := models.Document{ID: 2, DocumentName: "insurance card"}

	svc := &mockSearchService{
		resolveDocumentsFn: func(_ context.Context, _ int64, _ string) (search.Outcome, error) {
			return search.Outcome{
				Kind:    search.OutcomeAmbiguous,
				Term:    "insurance",
				Records: []search.Record{first, second},
			}, nil
		},
	}

	h := newHandlerForSearch(t, svc)
	req := httptest.NewRequest(http.MethodGet, "/api/search/documents?q=insurance", nil).WithContext(ctxWithUser(1))
	rec := httptest.NewRecorder()

	h.searchDocuments(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp models.SearchDocumentsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, models.OutcomeAmbiguous, resp.Outcome)
	require.Len(t, resp.Documents, 2)
}

func TestSearchDocuments_StoreError(t *testing.T) {
	svc := &mockSearchService{
		resolveDocumentsFn: func(_ context.Context, _ int64, _ string) (search.Outcome, error) {
			return search.Outcome{}, store.ErrExecutingQuery
		},
	}

	h := newHandlerForSearch(t, svc)
	req := httptest.NewRequest(http.MethodGet, "/api/search/documents?q=x", nil).WithContext(ctxWithUser(1))
	rec := httptest.NewRecorder()

	h.searchDocuments(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ─────────────────────────────────────────────
// suggestDocuments
// ─────────────────────────────────────────────

func TestSuggestDocuments_Success(t *testing.T) {
	svc := &mockSearchService{
		suggestDocumentsFn: func(_ context.Context, _ int64, input string) []models.Document {
			assert.Equal(t, "pa", input)
			return []models.Document{fixtureDocument}
		},
	}

	h := newHandlerForSearch(t, svc)
	req := httptest.NewRequest(http.MethodGet, "/api/search/documents/suggest?q=pa", nil).WithContext(ctxWithUser(1))
	rec := httptest.NewRecorder()

	h.suggestDocuments(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp models.SuggestDocumentsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Suggestions, 1)
	assert.Equal(t, "passport", resp.Suggestions[0].DocumentName)
}
