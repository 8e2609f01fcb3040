// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-stash-find/internal/logger"
	"github.com/MKhiriev/go-stash-find/internal/search"
	"github.com/MKhiriev/go-stash-find/internal/service"
	"github.com/MKhiriev/go-stash-find/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestRouter wires a full router with permissive mocks behind every
// service so route registration and middleware ordering can be exercised
// end to end.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	svcs := &service.Services{
		AuthService: &mockAuthService{
			registerUserFn: func(_ context.Context, u models.User) (models.User, error) { return u, nil },
			loginFn:        func(_ context.Context, u models.User) (models.User, error) { return u, nil },
			createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
				return models.Token{SignedString: "issued.jwt.token"}, nil
			},
			parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
				if tokenString != "valid.jwt.token" {
					return models.Token{}, ErrEmptyToken
				}
				return models.Token{UserID: 1}, nil
			},
		},
		ItemService: &mockItemService{
			getAllItemsFn: func(_ context.Context, _ int64) ([]models.Item, error) {
				return []models.Item{fixtureItem}, nil
			},
		},
		DocumentService: &mockDocumentService{
			getAllDocumentsFn: func(_ context.Context, _ int64) ([]models.Document, error) {
				return []models.Document{fixtureDocument}, nil
			},
		},
		SearchService: &mockSearchService{
			resolveItemsFn: func(_ context.Context, _ int64, _ string) (search.Outcome, error) {
				return search.Outcome{Kind: search.OutcomeNotFound, Term: "keys"}, nil
			},
			suggestItemsFn: func(_ context.Context, _ int64, _ string) []models.Item {
				return []models.Item{}
			},
			resolveDocumentsFn: func(_ context.Context, _ int64, _ string) (search.Outcome, error) {
				return search.Outcome{Kind: search.OutcomeNotFound, Term: "passport"}, nil
			},
			suggestDocumentsFn: func(_ context.Context, _ int64, _ string) []models.Document {
				return []models.Document{}
			},
		},
	}

	return NewHandler(svcs, logger.Nop()).Init()
}

func doRequest(t *testing.T, router http.Handler, method, target, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(`{"login":"alice","password":"pw"}`))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// ─────────────────────────────────────────────
// public routes
// ─────────────────────────────────────────────

func TestRoutes_RegisterIsPublic(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/auth/register", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer issued.jwt.token", rec.Header().Get("Authorization"))
}

func TestRoutes_LoginIsPublic(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/auth/login", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

// ─────────────────────────────────────────────
// protected routes
// ─────────────────────────────────────────────

func TestRoutes_ProtectedRejectsMissingToken(t *testing.T) {
	router := newTestRouter(t)

	protected := []struct {
		method string
		target string
	}{
		{http.MethodGet, "/api/items"},
		{http.MethodGet, "/api/documents"},
		{http.MethodGet, "/api/search/items?q=keys"},
		{http.MethodGet, "/api/search/items/suggest?q=ke"},
		{http.MethodGet, "/api/search/documents?q=passport"},
		{http.MethodGet, "/api/search/documents/suggest?q=pa"},
	}

	for _, route := range protected {
		t.Run(route.method+" "+route.target, func(t *testing.T) {
			rec := doRequest(t, router, route.method, route.target, "")
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestRoutes_ProtectedRejectsInvalidToken(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/items", "garbage.token")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "token is expired or invalid")
}

func TestRoutes_ProtectedAcceptsValidToken(t *testing.T) {
	router := newTestRouter(t)

	authorized := []struct {
		method string
		target string
	}{
		{http.MethodGet, "/api/items"},
		{http.MethodGet, "/api/documents"},
		{http.MethodGet, "/api/search/items?q=keys"},
		{http.MethodGet, "/api/search/items/suggest?q=ke"},
		{http.MethodGet, "/api/search/documents?q=passport"},
		{http.MethodGet, "/api/search/documents/suggest?q=pa"},
	}

	for _, route := range authorized {
		t.Run(route.method+" "+route.target, func(t *testing.T) {
			rec := doRequest(t, router, route.method, route.target, "valid.jwt.token")
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

// ─────────────────────────────────────────────
// unknown routes
// ─────────────────────────────────────────────

func TestRoutes_UnknownPath(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/unknown", "valid.jwt.token")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRoutes_TraceIDHeaderSet(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/auth/login", "")

	assert.NotEmpty(t, rec.Header().Get("X-Trace-ID"))
}
