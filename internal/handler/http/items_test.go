// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/MKhiriev/go-stash-find/internal/logger"
	"github.com/MKhiriev/go-stash-find/internal/service"
	"github.com/MKhiriev/go-stash-find/internal/store"
	"github.com/MKhiriev/go-stash-find/internal/utils"
	"github.com/MKhiriev/go-stash-find/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock ItemService
// ─────────────────────────────────────────────

type mockItemService struct {
	addItemFn     func(ctx context.Context, item models.Item, image []byte, imageType string) (models.Item, error)
	getItemFn     func(ctx context.Context, id, userID int64) (models.Item, error)
	getAllItemsFn func(ctx context.Context, userID int64) ([]models.Item, error)
	updateItemFn  func(ctx context.Context, update models.ItemUpdate) error
	deleteItemFn  func(ctx context.Context, id, userID int64) error
	loadImageFn   func(ctx context.Context, name string) ([]byte, error)
}

func (m *mockItemService) AddItem(ctx context.Context, item models.Item, image []byte, imageType string) (models.Item, error) {
	return m.addItemFn(ctx, item, image, imageType)
}

func (m *mockItemService) GetItem(ctx context.Context, id, userID int64) (models.Item, error) {
	return m.getItemFn(ctx, id, userID)
}

func (m *mockItemService) GetAllItems(ctx context.Context, userID int64) ([]models.Item, error) {
	return m.getAllItemsFn(ctx, userID)
}

func (m *mockItemService) UpdateItem(ctx context.Context, update models.ItemUpdate) error {
	return m.updateItemFn(ctx, update)
}

func (m *mockItemService) DeleteItem(ctx context.Context, id, userID int64) error {
	return m.deleteItemFn(ctx, id, userID)
}

func (m *mockItemService) LoadImage(ctx context.Context, name string) ([]byte, error) {
	return m.loadImageFn(ctx, name)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newHandlerForItems(t *testing.T, svc service.ItemService) *Handler {
	t.Helper()
	svcs := &service.Services{
		ItemService: svc,
	}
	return NewHandler(svcs, logger.Nop())
}

// ctxWithUser returns a context carrying the given userID, as the auth
// middleware would have left it.
func ctxWithUser(userID int64) context.Context {
	return context.WithValue(context.Background(), utils.UserIDCtxKey, userID)
}

// withURLParam attaches a chi route parameter to the request so handlers
// called directly (without the router) can still read {id}.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// encodeBody serialises v to JSON and returns it as an io.Reader.
func encodeBody(t *testing.T, v any) io.Reader {
	t.Helper()
	buf := &bytes.Buffer{}
	require.NoError(t, json.NewEncoder(buf).Encode(v))
	return buf
}

// multipartBody builds a multipart request body with the record JSON in the
// "data" field and, when image is non-nil, the photo in the "image" file
// field carrying the given content type.
func multipartBody(t *testing.T, record any, image []byte, imageType string) (io.Reader, string) {
	t.Helper()

	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)

	data, err := json.Marshal(record)
	require.NoError(t, err)
	require.NoError(t, mw.WriteField("data", string(data)))

	if image != nil {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="image"; filename="photo"`)
		header.Set("Content-Type", imageType)
		part, err := mw.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(image)
		require.NoError(t, err)
	}

	require.NoError(t, mw.Close())
	return buf, mw.FormDataContentType()
}

var fixtureItem = models.Item{
	ID:       7,
	UserID:   1,
	ItemName: "keys",
	Location: "bowl by the front door",
	Category: "everyday carry",
}

// ─────────────────────────────────────────────
// listItems
// ─────────────────────────────────────────────

func TestListItems_Success(t *testing.T) {
	svc := &mockItemService{
		getAllItemsFn: func(_ context.Context, userID int64) ([]models.Item, error) {
			assert.Equal(t, int64(1), userID)
			return []models.Item{fixtureItem}, nil
		},
	}

	h := newHandlerForItems(t, svc)
	req := httptest.NewRequest(http.MethodGet, "/api/items", nil).WithContext(ctxWithUser(1))
	rec := httptest.NewRecorder()

	h.listItems(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var items []models.Item
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&items))
	require.Len(t, items, 1)
	assert.Equal(t, "keys", items[0].ItemName)
}

func TestListItems_NoUserID(t *testing.T) {
	h := newHandlerForItems(t, &mockItemService{})
	req := httptest.NewRequest(http.MethodGet, "/api/items", nil) // no userID in context
	rec := httptest.NewRecorder()

	h.listItems(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "no user ID provided")
}

func TestListItems_StoreError(t *testing.T) {
	svc := &mockItemService{
		getAllItemsFn: func(_ context.Context, _ int64) ([]models.Item, error) {
			return nil, store.ErrExecutingQuery
		},
	}

	h := newHandlerForItems(t, svc)
	req := httptest.NewRequest(http.MethodGet, "/api/items", nil).WithContext(ctxWithUser(1))
	rec := httptest.NewRecorder()

	h.listItems(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ─────────────────────────────────────────────
// createItem
// ─────────────────────────────────────────────

func TestCreateItem_JSONBody(t *testing.T) {
	svc := &mockItemService{
		addItemFn: func(_ context.Context, item models.Item, image []byte, imageType string) (models.Item, error) {
			assert.Equal(t, int64(1), item.UserID, "user ID must come from the context, not the body")
			assert.Nil(t, image)
			assert.Empty(t, imageType)
			item.ID = 7
			return item, nil
		},
	}

	h := newHandlerForItems(t, svc)
	body := models.Item{ItemName: "keys", Location: "bowl by the front door", UserID: 99}
	req := httptest.NewRequest(http.MethodPost, "/api/items", encodeBody(t, body)).WithContext(ctxWithUser(1))
	rec := httptest.NewRecorder()

	h.createItem(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var created models.Item
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	assert.Equal(t, int64(7), created.ID)
}

func TestCreateItem_MultipartWithImage(t *testing.T) {
	imageBytes := []byte{0xFF, 0xD8, 0xFF, 0xE0}

	svc := &mockItemService{
		addItemFn: func(_ context.Context, item models.Item, image []byte, imageType string) (models.Item, error) {
			assert.Equal(t, "passport", item.ItemName)
			assert.Equal(t, imageBytes, image)
			assert.Equal(t, "image/jpeg", imageType)
			item.ID = 3
			return item, nil
		},
	}

	h := newHandlerForItems(t, svc)
	body, contentType := multipartBody(t, models.Item{ItemName: "passport"}, imageBytes, "image/jpeg")
	req := httptest.NewRequest(http.MethodPost, "/api/items", body).WithContext(ctxWithUser(1))
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.createItem(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateItem_MultipartWithoutImage(t *testing.T) {
	svc := &mockItemService{
		addItemFn: func(_ context.Context, item models.Item, image []byte, imageType string) (models.Item, error) {
			assert.Nil(t, image)
			assert.Empty(t, imageType)
			return item, nil
		},
	}

	h := newHandlerForItems(t, svc)
	body, contentType := multipartBody(t, models.Item{ItemName: "umbrella"}, nil, "")
	req := httptest.NewRequest(http.MethodPost, "/api/items", body).WithContext(ctxWithUser(1))
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.createItem(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateItem_InvalidJSON(t *testing.T) {
	h := newHandlerForItems(t, &mockItemService{})
	req := httptest.NewRequest(http.MethodPost, "/api/items", strings.NewReader("{bad json")).WithContext(ctxWithUser(1))
	rec := httptest.NewRecorder()

	h.createItem(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid data provided")
}

func TestCreateItem_InvalidDataProvided(t *testing.T) {
	svc := &mockItemService{
		addItemFn: func(_ context.Context, _ models.Item, _ []byte, _ string) (models.Item, error) {
			return models.Item{}, service.ErrInvalidDataProvided
		},
	}

	h := newHandlerForItems(t, svc)
	req := httptest.NewRequest(http.MethodPost, "/api/items", encodeBody(t, models.Item{})).WithContext(ctxWithUser(1))
	rec := httptest.NewRecorder()

	h.createItem(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateItem_ImageTooLarge(t *testing.T) {
	svc := &mockItemService{
		addItemFn: func(_ context.Context, _ models.Item, _ []byte, _ string) (models.Item, error) {
			return models.Item{}, service.ErrImageTooLarge
		},
	}

	h := newHandlerForItems(t, svc)
	req := httptest.NewRequest(http.MethodPost, "/api/items", encodeBody(t, models.Item{ItemName: "keys"})).WithContext(ctxWithUser(1))
	rec := httptest.NewRecorder()

	h.createItem(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "image is too large")
}

// ─────────────────────────────────────────────
// getItem
// ─────────────────────────────────────────────

func TestGetItem_Success(t *testing.T) {
	svc := &mockItemService{
		getItemFn: func(_ context.Context, id, userID int64) (models.Item, error) {
			assert.Equal(t, int64(7), id)
			assert.Equal(t, int64(1), userID)
			return fixtureItem, nil
		},
	}

	h := newHandlerForItems(t, svc)
	req := httptest.NewRequest(http.MethodGet, "/api/items/7", nil).WithContext(ctxWithUser(1))
	req = withURLParam(req, "id", "7")
	rec := httptest.NewRecorder()

	h.getItem(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var item models.Item
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&item))
	assert.Equal(t, fixtureItem.Location, item.Location)
}

func TestGetItem_BadID(t *testing.T) {
	h := newHandlerForItems(t, &mockItemService{})
	req := httptest.NewRequest(http.MethodGet, "/api/items/abc", nil).WithContext(ctxWithUser(1))
	req = withURLParam(req, "id", "abc")
	rec := httptest.NewRecorder()

	h.getItem(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetItem_NotFound(t *testing.T) {
	svc := &mockItemService{
		getItemFn: func(_ context.Context, _, _ int64) (models.Item, error) {
			return models.Item{}, store.ErrItemNotFound
		},
	}

	h := newHandlerForItems(t, svc)
	req := httptest.NewRequest(http.MethodGet, "/api/items/404", nil).WithContext(ctxWithUser(1))
	req = withURLParam(req, "id", "404")
	rec := httptest.NewRecorder()

	h.getItem(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "record not found")
}

// ─────────────────────────────────────────────
// updateItem
// ─────────────────────────────────────────────

func TestUpdateItem_Success(t *testing.T) {
	newLocation := "kitchen drawer"

	svc := &mockItemService{
		updateItemFn: func(_ context.Context, update models.ItemUpdate) error {
			assert.Equal(t, int64(7), update.ID)
			assert.Equal(t, int64(1), update.UserID)
			require.NotNil(t, update.Location)
			assert.Equal(t, newLocation, *update.Location)
			return nil
		},
	}

	h := newHandlerForItems(t, svc)
	req := httptest.NewRequest(http.MethodPatch, "/api/items/7",
		encodeBody(t, models.ItemUpdate{Location: &newLocation})).WithContext(ctxWithUser(1))
	req = withURLParam(req, "id", "7")
	rec := httptest.NewRecorder()

	h.updateItem(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestUpdateItem_InvalidJSON(t *testing.T) {
	h := newHandlerForItems(t, &mockItemService{})
	req := httptest.NewRequest(http.MethodPatch, "/api/items/7", strings.NewReader("{bad")).WithContext(ctxWithUser(1))
	req = withURLParam(req, "id", "7")
	rec := httptest.NewRecorder()

	h.updateItem(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateItem_NotFound(t *testing.T) {
	svc := &mockItemService{
		updateItemFn: func(_ context.Context, _ models.ItemUpdate) error {
			return store.ErrItemNotFound
		},
	}

	h := newHandlerForItems(t, svc)
	req := httptest.NewRequest(http.MethodPatch, "/api/items/7",
		encodeBody(t, models.ItemUpdate{})).WithContext(ctxWithUser(1))
	req = withURLParam(req, "id", "7")
	rec := httptest.NewRecorder()

	h.updateItem(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ─────────────────────────────────────────────
// deleteItem
// ─────────────────────────────────────────────

func TestDeleteItem_Success(t *testing.T) {
	called := false
	svc := &mockItemService{
		deleteItemFn: func(_ context.Context, id, userID int64) error {
			called = true
			assert.Equal(t, int64(7), id)
			assert.Equal(t, int64(1), userID)
			return nil
		},
	}

	h := newHandlerForItems(t, svc)
	req := httptest.NewRequest(http.MethodDelete, "/api/items/7", nil).WithContext(ctxWithUser(1))
	req = withURLParam(req, "id", "7")
	rec := httptest.NewRecorder()

	h.deleteItem(rec, req)

	assert.True(t, called, "DeleteItem should have been called")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDeleteItem_NotFound(t *testing.T) {
	svc := &mockItemService{
		deleteItemFn: func(_ context.Context, _, _ int64) error {
			return store.ErrItemNotFound
		},
	}

	h := newHandlerForItems(t, svc)
	req := httptest.NewRequest(http.MethodDelete, "/api/items/404", nil).WithContext(ctxWithUser(1))
	req = withURLParam(req, "id", "404")
	rec := httptest.NewRecorder()

	h.deleteItem(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ─────────────────────────────────────────────
// itemImage
// ─────────────────────────────────────────────

func TestItemImage_Success(t *testing.T) {
	pngHeader := []byte("\x89PNG\r\n\x1a\n")

	svc := &mockItemService{
		getItemFn: func(_ context.Context, _, _ int64) (models.Item, error) {
			item := fixtureItem
			item.ImageRef = "items/7.png"
			return item, nil
		},
		loadImageFn: func(_ context.Context, name string) ([]byte, error) {
			assert.Equal(t, "items/7.png", name)
			return pngHeader, nil
		},
	}

	h := newHandlerForItems(t, svc)
	req := httptest.NewRequest(http.MethodGet, "/api/items/7/image", nil).WithContext(ctxWithUser(1))
	req = withURLParam(req, "id", "7")
	rec := httptest.NewRecorder()

	h.itemImage(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, pngHeader, rec.Body.Bytes())
}

func TestItemImage_NoImage(t *testing.T) {
	svc := &mockItemService{
		getItemFn: func(_ context.Context, _, _ int64) (models.Item, error) {
			return fixtureItem, nil // ImageRef empty
		},
	}

	h := newHandlerForItems(t, svc)
	req := httptest.NewRequest(http.MethodGet, "/api/items/7/image", nil).WithContext(ctxWithUser(1))
	req = withURLParam(req, "id", "7")
	rec := httptest.NewRecorder()

	h.itemImage(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestItemImage_RecordNotFound(t *testing.T) {
	svc := &mockItemService{
		getItemFn: func(_ context.Context, _, _ int64) (models.Item, error) {
			return models.Item{}, store.ErrItemNotFound
		},
	}

	h := newHandlerForItems(t, svc)
	req := httptest.NewRequest(http.MethodGet, "/api/items/404/image", nil).WithContext(ctxWithUser(1))
	req = withURLParam(req, "id", "404")
	rec := httptest.NewRecorder()

	h.itemImage(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
