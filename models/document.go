package models

import (
	"strconv"
	"time"
)

// Document is a stored important document (passport, warranty, contract...).
// DocumentType is one of the fixed categories in [DocumentTypes]. Notes is
// optional free text shown in suggestions; Tags is optional free text
// matched only by full search.
type Document struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	DocumentName string    `json:"document_name"`
	DocumentType string    `json:"document_type"`
	Notes        string    `json:"notes,omitempty"`
	Tags         string    `json:"tags,omitempty"`
	ImageRef     string    `json:"image_ref,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// RecordID implements search.Record.
func (d Document) RecordID() string { return strconv.FormatInt(d.ID, 10) }

// Title implements search.Record.
func (d Document) Title() string { return d.DocumentName }

// SearchFields returns the fields matched by both full search and
// suggestions: name, the type value with its display label, and notes.
func (d Document) SearchFields() []string {
	return []string{d.DocumentName, d.DocumentType, DocumentTypeLabel(d.DocumentType), d.Notes}
}

// DeepFields returns the long free-text fields matched only by full search.
func (d Document) DeepFields() []string { return []string{d.Tags} }
