package tui

import (
	"github.com/MKhiriev/go-stash-find/internal/search"
	"github.com/MKhiriev/go-stash-find/models"
	tea "github.com/charmbracelet/bubbletea"
)

// NavigateTo asks the root model to switch to another page of the
// authentication flow. Payload, when set, is re-delivered to the target page
// as its first message.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult finishes an async login or register command. A nil Err on a
// login ends the authentication flow.
type LoginResult struct {
	Err      error
	User     models.User
	Register bool
}

// RegisterSuccessNotice is shown on the menu after a completed registration.
type RegisterSuccessNotice struct {
	Username string
}

type recordsLoadedMsg struct {
	items []models.Item
	docs  []models.Document
	err   error
}

type refreshDoneMsg struct {
	err error
}

type createDoneMsg struct {
	err error
}

type deleteDoneMsg struct {
	err error
}

type findDoneMsg struct {
	outcome search.Outcome
	err     error
}

// suggestTickMsg fires when the debounce window after a keystroke has
// elapsed. The ticket identifies which keystroke it belongs to.
type suggestTickMsg struct {
	ticket search.Ticket
}

type itemSuggestionsMsg struct {
	ticket search.Ticket
	items  []models.Item
}

type documentSuggestionsMsg struct {
	ticket search.Ticket
	docs   []models.Document
}
