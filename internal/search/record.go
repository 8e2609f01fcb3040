// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package search

// Record is the read-only view of a stored record (item or document) that
// the matching core understands. Concrete types live in the models package;
// they satisfy this interface structurally so the core stays independent of
// the record variants.
type Record interface {
	// RecordID returns the store-assigned identifier, unique within the
	// owning user's scope.
	RecordID() string

	// Title returns the primary display name. Never empty for a valid
	// record.
	Title() string

	// SearchFields returns the short fields matched by both full search
	// and suggestions: primary name, primary detail (location or notes)
	// and category / document type.
	SearchFields() []string

	// DeepFields returns long free-text fields matched by full search
	// only. Suggestions never look at them.
	DeepFields() []string
}
