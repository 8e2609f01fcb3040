package models

import (
	"strconv"
	"time"
)

// Item is a stored belonging: a thing the user put somewhere and may later
// ask for. Location is free text describing where it was left. Category is
// an optional free-text tag. ImageRef is an opaque reference to an
// externally stored photo; nothing in the application interprets its bytes.
//
// Items are immutable from the search core's point of view: it only reads
// snapshots ordered newest-first by CreatedAt.
type Item struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	ItemName  string    `json:"item_name"`
	Location  string    `json:"location"`
	Category  string    `json:"category,omitempty"`
	ImageRef  string    `json:"image_ref,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// RecordID implements search.Record.
func (i Item) RecordID() string { return strconv.FormatInt(i.ID, 10) }

// Title implements search.Record.
func (i Item) Title() string { return i.ItemName }

// SearchFields returns the fields matched by both full search and
// suggestions: name, location and category.
func (i Item) SearchFields() []string {
	return []string{i.ItemName, i.Location, i.Category}
}

// DeepFields returns nothing: items carry no long free-text fields beyond
// the location already covered by SearchFields.
func (i Item) DeepFields() []string { return nil }
