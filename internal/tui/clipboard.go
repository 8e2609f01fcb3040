package tui

import "github.com/atotto/clipboard"

// copyToClipboard is a seam for tests; the real implementation writes to the
// system clipboard.
var copyToClipboard = func(text string) error {
	return clipboard.WriteAll(text)
}
