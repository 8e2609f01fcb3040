// Package tui implements the interactive terminal interface of the
// go-stash-find client.
//
// The interface runs as two Bubble Tea programs: an authentication flow
// (menu, login, register) and the main loop (record lists, add/delete,
// and the "find" screen with live suggestions).
package tui
