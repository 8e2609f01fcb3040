// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package search

import "strings"

// keywords splits a canonical term into lowercase whitespace-separated
// keywords. Duplicates are irrelevant to matching and are not removed.
func keywords(term string) []string {
	return strings.Fields(strings.ToLower(term))
}

// searchableText builds the lowercase haystack for one record. Deep
// free-text fields are appended for full search only; the suggestion path
// sticks to the short fields.
func searchableText(record Record, deep bool) string {
	fields := record.SearchFields()
	if deep {
		fields = append(fields, record.DeepFields()...)
	}
	return strings.ToLower(strings.Join(fields, " "))
}

// matchesAny reports whether any keyword is a substring of text. The OR
// across keywords is intentional: one correct word among several filler
// words still hits, so multi-word queries keep their recall.
func matchesAny(text string, words []string) bool {
	for _, word := range words {
		if strings.Contains(text, word) {
			return true
		}
	}
	return false
}

// filterRecords returns the records matching the term's keywords,
// preserving the snapshot's newest-first order. There is no scoring and no
// reordering.
func filterRecords(records []Record, term string, deep bool) []Record {
	words := keywords(term)

	matched := make([]Record, 0, len(records))
	for _, record := range records {
		if matchesAny(searchableText(record, deep), words) {
			matched = append(matched, record)
		}
	}

	return matched
}
