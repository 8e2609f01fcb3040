package models

// Outcome tags used by the search API. They mirror the tagged variant the
// search core produces so API consumers never have to guess whether a
// payload is a scalar or a list.
const (
	OutcomeResolved        = "resolved"
	OutcomeAmbiguous       = "ambiguous"
	OutcomeNotFound        = "not_found"
	OutcomeEmptyCollection = "empty_collection"
	OutcomeValidationError = "validation_error"
)

// SearchItemsResponse is the body of GET /api/search/items.
//
// Exactly one of Item / Items is populated, depending on Outcome:
// "resolved" carries Item, "ambiguous" carries Items (newest first).
// Term is the canonical search term extracted from the raw query.
type SearchItemsResponse struct {
	Outcome string `json:"outcome"`
	Term    string `json:"term,omitempty"`
	Reason  string `json:"reason,omitempty"`
	Item    *Item  `json:"item,omitempty"`
	Items   []Item `json:"items,omitempty"`
}

// SearchDocumentsResponse is the body of GET /api/search/documents.
type SearchDocumentsResponse struct {
	Outcome   string     `json:"outcome"`
	Term      string     `json:"term,omitempty"`
	Reason    string     `json:"reason,omitempty"`
	Document  *Document  `json:"document,omitempty"`
	Documents []Document `json:"documents,omitempty"`
}

// SuggestItemsResponse is the body of GET /api/search/items/suggest.
// Suggestions preserve snapshot order and never exceed the configured cap.
type SuggestItemsResponse struct {
	Suggestions []Item `json:"suggestions"`
}

// SuggestDocumentsResponse is the body of GET /api/search/documents/suggest.
type SuggestDocumentsResponse struct {
	Suggestions []Document `json:"suggestions"`
}

// ErrorResponse is the uniform error body returned by the HTTP API.
type ErrorResponse struct {
	Error string `json:"error"`
}
