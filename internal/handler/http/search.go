// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-stash-find/internal/search"
	"github.com/MKhiriev/go-stash-find/internal/utils"
	"github.com/MKhiriev/go-stash-find/models"
)

// searchItems answers GET /api/search/items?q=... with the tagged outcome of
// resolving the query against the user's belongings. Everything except a
// store failure is a 200 with the outcome in the body.
func (h *Handler) searchItems(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userIDFromContext(w, r)
	if !ok {
		return
	}

	outcome, err := h.services.SearchService.ResolveItems(r.Context(), userID, r.URL.Query().Get("q"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, itemOutcomeResponse(outcome), http.StatusOK)
}

// suggestItems answers GET /api/search/items/suggest?q=... with up to the
// configured cap of typed-ahead candidates. Suggestions are best-effort and
// never fail: a store problem comes back as an empty list.
func (h *Handler) suggestItems(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userIDFromContext(w, r)
	if !ok {
		return
	}

	suggestions := h.services.SearchService.SuggestItems(r.Context(), userID, r.URL.Query().Get("q"))

	_, _ = utils.WriteJSON(w, models.SuggestItemsResponse{Suggestions: suggestions}, http.StatusOK)
}

func (h *Handler) searchDocuments(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userIDFromContext(w, r)
	if !ok {
		return
	}

	outcome, err := h.services.SearchService.ResolveDocuments(r.Context(), userID, r.URL.Query().Get("q"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, documentOutcomeResponse(outcome), http.StatusOK)
}

func (h *Handler) suggestDocuments(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userIDFromContext(w, r)
	if !ok {
		return
	}

	suggestions := h.services.SearchService.SuggestDocuments(r.Context(), userID, r.URL.Query().Get("q"))

	_, _ = utils.WriteJSON(w, models.SuggestDocumentsResponse{Suggestions: suggestions}, http.StatusOK)
}

func itemOutcomeResponse(outcome search.Outcome) models.SearchItemsResponse {
	resp := models.SearchItemsResponse{
		Outcome: outcome.Kind.String(),
		Term:    outcome.Term,
		Reason:  outcome.Reason,
	}

	switch outcome.Kind {
	case search.OutcomeResolved:
		if item, ok := outcome.Record.(models.Item); ok {
			resp.Item = &item
		}
	case search.OutcomeAmbiguous:
		resp.Items = make([]models.Item, 0, len(outcome.Records))
		for _, record := range outcome.Records {
			if item, ok := record.(models.Item); ok {
				resp.Items = append(resp.Items, item)
			}
		}
	}

	return resp
}

func documentOutcomeResponse(outcome search.Outcome) models.SearchDocumentsResponse {
	resp := models.SearchDocumentsResponse{
		Outcome: outcome.Kind.String(),
		Term:    outcome.Term,
		Reason:  outcome.Reason,
	}

	switch outcome.Kind {
	case search.OutcomeResolved:
		if doc, ok := outcome.Record.(models.Document); ok {
			resp.Document = &doc
		}
	case search.OutcomeAmbiguous:
		resp.Documents = make([]models.Document, 0, len(outcome.Records))
		for _, record := range outcome.Records {
			if doc, ok := record.(models.Document); ok {
				resp.Documents = append(resp.Documents, doc)
			}
		}
	}

	return resp
}
