// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-stash-find/internal/store"
	"github.com/MKhiriev/go-stash-find/internal/utils"
	"github.com/MKhiriev/go-stash-find/models"
	"github.com/go-chi/chi/v5"
)

// multipartMemoryLimit caps how much of a multipart body is held in memory
// before spilling to disk. Image size limits are enforced by the services.
const multipartMemoryLimit = 10 << 20

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userIDFromContext(w, r)
	if !ok {
		return
	}

	items, err := h.services.ItemService.GetAllItems(r.Context(), userID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, items, http.StatusOK)
}

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userIDFromContext(w, r)
	if !ok {
		return
	}

	var item models.Item
	image, imageType, err := decodeRecordBody(r, &item)
	if err != nil {
		h.respondBadJSON(w, r, err)
		return
	}
	item.UserID = userID

	created, err := h.services.ItemService.AddItem(r.Context(), item, image, imageType)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userIDFromContext(w, r)
	if !ok {
		return
	}

	id, err := recordIDFromURL(r)
	if err != nil {
		h.respondBadJSON(w, r, err)
		return
	}

	item, err := h.services.ItemService.GetItem(r.Context(), id, userID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, item, http.StatusOK)
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userIDFromContext(w, r)
	if !ok {
		return
	}

	id, err := recordIDFromURL(r)
	if err != nil {
		h.respondBadJSON(w, r, err)
		return
	}

	var update models.ItemUpdate
	if err = json.NewDecoder(r.Body).Decode(&update); err != nil {
		h.respondBadJSON(w, r, err)
		return
	}
	update.ID = id
	update.UserID = userID

	if err = h.services.ItemService.UpdateItem(r.Context(), update); err != nil {
		h.respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userIDFromContext(w, r)
	if !ok {
		return
	}

	id, err := recordIDFromURL(r)
	if err != nil {
		h.respondBadJSON(w, r, err)
		return
	}

	if err = h.services.ItemService.DeleteItem(r.Context(), id, userID); err != nil {
		h.respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) itemImage(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userIDFromContext(w, r)
	if !ok {
		return
	}

	id, err := recordIDFromURL(r)
	if err != nil {
		h.respondBadJSON(w, r, err)
		return
	}

	// ownership check happens through the record lookup
	item, err := h.services.ItemService.GetItem(r.Context(), id, userID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	writeImage(w, r, h, item.ImageRef, h.services.ItemService.LoadImage)
}

// recordIDFromURL parses the {id} URL parameter.
func recordIDFromURL(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// decodeRecordBody decodes a create-record request into dst. A plain JSON
// body carries the record alone; a multipart body carries the record JSON in
// the "data" field and an optional photo in the "image" file field, whose
// part header supplies the content type.
func decodeRecordBody(r *http.Request, dst any) (image []byte, imageType string, err error) {
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		return nil, "", json.NewDecoder(r.Body).Decode(dst)
	}

	if err = r.ParseMultipartForm(multipartMemoryLimit); err != nil {
		return nil, "", err
	}

	if err = json.Unmarshal([]byte(r.FormValue("data")), dst); err != nil {
		return nil, "", err
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, "", nil
		}
		return nil, "", err
	}
	defer func() { _ = file.Close() }()

	image, err = io.ReadAll(file)
	if err != nil {
		return nil, "", err
	}

	return image, header.Header.Get("Content-Type"), nil
}

// writeImage streams a stored image to the response. Records without an
// image answer 404 through the store's not-found sentinel.
func writeImage(w http.ResponseWriter, r *http.Request, h *Handler, imageRef string, load func(ctx context.Context, name string) ([]byte, error)) {
	if imageRef == "" {
		h.respondError(w, r, store.ErrImageNotFound)
		return
	}

	image, err := load(r.Context(), imageRef)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", http.DetectContentType(image))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(image)
}
