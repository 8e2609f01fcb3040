package models

// ItemUpdate describes a partial update of a stored belonging.
// Nil pointer fields mean "do not touch"; non-nil fields are written as-is,
// so an empty string clears the column.
type ItemUpdate struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"-"`

	ItemName *string `json:"item_name,omitempty"`
	Location *string `json:"location,omitempty"`
	Category *string `json:"category,omitempty"`
	ImageRef *string `json:"image_ref,omitempty"`
}

// HasChanges reports whether at least one field is set.
func (u ItemUpdate) HasChanges() bool {
	return u.ItemName != nil || u.Location != nil || u.Category != nil || u.ImageRef != nil
}

// DocumentUpdate describes a partial update of a stored document.
// Nil pointer fields mean "do not touch".
type DocumentUpdate struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"-"`

	DocumentName *string `json:"document_name,omitempty"`
	DocumentType *string `json:"document_type,omitempty"`
	Notes        *string `json:"notes,omitempty"`
	Tags         *string `json:"tags,omitempty"`
	ImageRef     *string `json:"image_ref,omitempty"`
}

// HasChanges reports whether at least one field is set.
func (u DocumentUpdate) HasChanges() bool {
	return u.DocumentName != nil || u.DocumentType != nil || u.Notes != nil ||
		u.Tags != nil || u.ImageRef != nil
}
