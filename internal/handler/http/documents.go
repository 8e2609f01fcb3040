// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-stash-find/internal/utils"
	"github.com/MKhiriev/go-stash-find/models"
)

func (h *Handler) listDocuments(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userIDFromContext(w, r)
	if !ok {
		return
	}

	docs, err := h.services.DocumentService.GetAllDocuments(r.Context(), userID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, docs, http.StatusOK)
}

func (h *Handler) createDocument(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userIDFromContext(w, r)
	if !ok {
		return
	}

	var doc models.Document
	image, imageType, err := decodeRecordBody(r, &doc)
	if err != nil {
		h.respondBadJSON(w, r, err)
		return
	}
	doc.UserID = userID

	created, err := h.services.DocumentService.AddDocument(r.Context(), doc, image, imageType)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) getDocument(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userIDFromContext(w, r)
	if !ok {
		return
	}

	id, err := recordIDFromURL(r)
	if err != nil {
		h.respondBadJSON(w, r, err)
		return
	}

	doc, err := h.services.DocumentService.GetDocument(r.Context(), id, userID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, doc, http.StatusOK)
}

func (h *Handler) updateDocument(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userIDFromContext(w, r)
	if !ok {
		return
	}

	id, err := recordIDFromURL(r)
	if err != nil {
		h.respondBadJSON(w, r, err)
		return
	}

	var update models.DocumentUpdate
	if err = json.NewDecoder(r.Body).Decode(&update); err != nil {
		h.respondBadJSON(w, r, err)
		return
	}
	update.ID = id
	update.UserID = userID

	if err = h.services.DocumentService.UpdateDocument(r.Context(), update); err != nil {
		h.respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteDocument(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userIDFromContext(w, r)
	if !ok {
		return
	}

	id, err := recordIDFromURL(r)
	if err != nil {
		h.respondBadJSON(w, r, err)
		return
	}

	if err = h.services.DocumentService.DeleteDocument(r.Context(), id, userID); err != nil {
		h.respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) documentImage(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userIDFromContext(w, r)
	if !ok {
		return
	}

	id, err := recordIDFromURL(r)
	if err != nil {
		h.respondBadJSON(w, r, err)
		return
	}

	doc, err := h.services.DocumentService.GetDocument(r.Context(), id, userID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	writeImage(w, r, h, doc.ImageRef, h.services.DocumentService.LoadImage)
}
