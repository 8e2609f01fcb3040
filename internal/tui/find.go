// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-stash-find/internal/search"
	"github.com/MKhiriev/go-stash-find/internal/service"
	"github.com/MKhiriev/go-stash-find/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// findModel is the "where is my X" screen. While the user types, every
// keystroke opens a new suggestion ticket and arms a debounce timer; only
// the ticket that is still current when its timer fires produces a lookup,
// so a stale suggestion list can never overwrite a newer one. Enter resolves
// the query into an outcome view.
type findModel struct {
	ctx  context.Context
	find service.ClientFindService

	scope mainTab
	input textinput.Model

	lastInput    string
	suggestItems []models.Item
	suggestDocs  []models.Document
	selIdx       int

	resolving bool
	outcome   *search.Outcome

	status string
	errMsg string
}

func newFindModel(ctx context.Context, find service.ClientFindService) findModel {
	input := textinput.New()
	input.Placeholder = "where are my keys?"
	input.CharLimit = 120
	input.Width = 46

	return findModel{
		ctx:    ctx,
		find:   find,
		input:  input,
		selIdx: -1,
	}
}

// open prepares the screen for the given record scope and focuses the query
// input.
func (f findModel) open(scope mainTab) findModel {
	f = f.reset()
	f.scope = scope
	f.input.Focus()
	return f
}

func (f findModel) reset() findModel {
	f.input.SetValue("")
	f.lastInput = ""
	f.suggestItems = nil
	f.suggestDocs = nil
	f.selIdx = -1
	f.resolving = false
	f.outcome = nil
	f.status = ""
	f.errMsg = ""
	return f
}

// canLeave reports whether esc should close the screen. When an outcome is
// on display, esc first returns to the query input.
func (f findModel) canLeave() bool {
	return f.outcome == nil
}

func (f findModel) update(msg tea.Msg) (findModel, tea.Cmd) {
	switch msg := msg.(type) {
	case findDoneMsg:
		f.resolving = false
		if msg.err != nil {
			f.errMsg = humanizeServerUnavailableError(msg.err)
			return f, nil
		}
		f.errMsg = ""
		outcome := msg.outcome
		f.outcome = &outcome
		f.selIdx = -1
		return f, nil
	case suggestTickMsg:
		return f, f.cmdLookup(msg.ticket)
	case itemSuggestionsMsg:
		// a keystroke may have opened a newer cycle while this message was
		// in flight; last input wins
		if !f.find.ItemSuggestionCurrent(msg.ticket) {
			return f, nil
		}
		f.suggestItems = msg.items
		f.suggestDocs = nil
		if f.selIdx >= len(f.suggestItems) {
			f.selIdx = -1
		}
		return f, nil
	case documentSuggestionsMsg:
		if !f.find.DocumentSuggestionCurrent(msg.ticket) {
			return f, nil
		}
		f.suggestDocs = msg.docs
		f.suggestItems = nil
		if f.selIdx >= len(f.suggestDocs) {
			f.selIdx = -1
		}
		return f, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return f.updateInput(msg)
	}

	if f.outcome != nil {
		return f.updateOutcome(keyMsg)
	}

	switch keyMsg.String() {
	case "up":
		if f.selIdx > -1 {
			f.selIdx--
		}
		return f, nil
	case "down":
		if f.selIdx < f.suggestionCount()-1 {
			f.selIdx++
		}
		return f, nil
	case "enter":
		if record, ok := f.selectedSuggestion(); ok {
			outcome := search.SelectSuggestion(record)
			f.outcome = &outcome
			f.selIdx = -1
			return f, nil
		}

		if f.resolving {
			return f, nil
		}
		query := f.input.Value()
		f.resolving = true
		f.errMsg = ""
		return f, f.cmdFind(query)
	}

	return f.updateInput(msg)
}

// updateOutcome handles keys while an outcome is on display. For an
// ambiguous outcome the candidate list is navigable; picking one turns it
// into a resolved outcome.
func (f findModel) updateOutcome(keyMsg tea.KeyMsg) (findModel, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		f.outcome = nil
		f.status = ""
		f.selIdx = -1
		return f, nil
	case "up":
		if f.outcome.Kind == search.OutcomeAmbiguous && f.selIdx > 0 {
			f.selIdx--
		}
		return f, nil
	case "down":
		if f.outcome.Kind == search.OutcomeAmbiguous && f.selIdx < len(f.outcome.Records)-1 {
			f.selIdx++
		}
		return f, nil
	case "enter":
		if f.outcome.Kind == search.OutcomeAmbiguous && f.selIdx >= 0 && f.selIdx < len(f.outcome.Records) {
			outcome := search.SelectSuggestion(f.outcome.Records[f.selIdx])
			f.outcome = &outcome
			f.selIdx = -1
		}
		return f, nil
	case "c":
		if f.outcome.Kind != search.OutcomeResolved {
			return f, nil
		}
		text := recordPlace(f.outcome.Record)
		if text == "" {
			f.status = "nothing to copy"
			return f, nil
		}
		if err := copyToClipboard(text); err != nil {
			f.errMsg = fmt.Sprintf("copy failed: %v", err)
			return f, nil
		}
		f.status = "copied to clipboard"
		return f, nil
	}
	return f, nil
}

func (f findModel) updateInput(msg tea.Msg) (findModel, tea.Cmd) {
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)

	value := f.input.Value()
	if value == f.lastInput {
		return f, cmd
	}
	f.lastInput = value
	f.selIdx = -1

	// a new keystroke supersedes any pending suggestion cycle
	var ticket search.Ticket
	if f.scope == tabItems {
		ticket = f.find.BeginItemSuggestion(value)
	} else {
		ticket = f.find.BeginDocumentSuggestion(value)
	}

	debounce := tea.Tick(f.find.SuggestionQuiet(), func(time.Time) tea.Msg {
		return suggestTickMsg{ticket: ticket}
	})
	return f, tea.Batch(cmd, debounce)
}

// ── commands ──

func (f findModel) cmdFind(query string) tea.Cmd {
	ctx := f.ctx
	find := f.find
	scope := f.scope

	return func() tea.Msg {
		if scope == tabItems {
			outcome, err := find.FindItems(ctx, query)
			return findDoneMsg{outcome: outcome, err: err}
		}
		outcome, err := find.FindDocuments(ctx, query)
		return findDoneMsg{outcome: outcome, err: err}
	}
}

// cmdLookup runs the suggestion lookup for a ticket. A nil result means the
// ticket was superseded by a newer keystroke and produces no message.
func (f findModel) cmdLookup(ticket search.Ticket) tea.Cmd {
	ctx := f.ctx
	find := f.find
	scope := f.scope

	return func() tea.Msg {
		if scope == tabItems {
			items := find.SuggestItems(ctx, ticket)
			if items == nil {
				return nil
			}
			return itemSuggestionsMsg{ticket: ticket, items: items}
		}
		docs := find.SuggestDocuments(ctx, ticket)
		if docs == nil {
			return nil
		}
		return documentSuggestionsMsg{ticket: ticket, docs: docs}
	}
}

// ── helpers ──

func (f findModel) suggestionCount() int {
	if f.scope == tabItems {
		return len(f.suggestItems)
	}
	return len(f.suggestDocs)
}

func (f findModel) selectedSuggestion() (search.Record, bool) {
	if f.selIdx < 0 {
		return nil, false
	}
	if f.scope == tabItems {
		if f.selIdx >= len(f.suggestItems) {
			return nil, false
		}
		return f.suggestItems[f.selIdx], true
	}
	if f.selIdx >= len(f.suggestDocs) {
		return nil, false
	}
	return f.suggestDocs[f.selIdx], true
}

// recordPlace extracts the "where it is" text from a resolved record.
func recordPlace(record search.Record) string {
	switch r := record.(type) {
	case models.Item:
		return r.Location
	case models.Document:
		return r.Notes
	}
	return ""
}

// ── view ──

func (f findModel) view() string {
	var b strings.Builder

	scope := "items"
	if f.scope == tabDocuments {
		scope = "documents"
	}
	b.WriteString("Searching " + scope + "\n\n")
	b.WriteString("? [" + f.input.View() + "]\n")

	if f.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+f.errMsg) + "\n")
	}

	switch {
	case f.outcome != nil:
		b.WriteString("\n")
		b.WriteString(f.viewOutcome())
	case f.resolving:
		b.WriteString("\nsearching...\n")
	case f.suggestionCount() > 0:
		b.WriteString("\n")
		b.WriteString(f.viewSuggestions())
	}

	hotKeys := "enter: search │ ↑/↓: pick suggestion │ esc: back"
	if f.outcome != nil {
		switch f.outcome.Kind {
		case search.OutcomeResolved:
			hotKeys = "c: copy location │ esc: new search"
		case search.OutcomeAmbiguous:
			hotKeys = "↑/↓: pick │ enter: choose │ esc: new search"
		default:
			hotKeys = "esc: new search"
		}
	}

	return renderPage("FIND", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (f findModel) viewSuggestions() string {
	var b strings.Builder

	if f.scope == tabItems {
		for i, item := range f.suggestItems {
			cursor := " "
			if i == f.selIdx {
				cursor = ">"
			}
			b.WriteString(fmt.Sprintf("%s %-24s %s\n", cursor, fitText(item.ItemName, 24), helpStyle.Render(fitText(item.Location, 30))))
		}
	} else {
		for i, doc := range f.suggestDocs {
			cursor := " "
			if i == f.selIdx {
				cursor = ">"
			}
			b.WriteString(fmt.Sprintf("%s %-24s %s\n", cursor, fitText(doc.DocumentName, 24), helpStyle.Render(fitText(doc.DocumentType, 30))))
		}
	}

	return b.String()
}

func (f findModel) viewOutcome() string {
	var b strings.Builder

	switch f.outcome.Kind {
	case search.OutcomeResolved:
		b.WriteString("Found it!\n\n")
		switch r := f.outcome.Record.(type) {
		case models.Item:
			b.WriteString("Item     │ " + r.ItemName + "\n")
			b.WriteString("Location │ " + r.Location + "\n")
			if r.Category != "" {
				b.WriteString("Category │ " + r.Category + "\n")
			}
		case models.Document:
			b.WriteString("Document │ " + r.DocumentName + "\n")
			b.WriteString("Notes    │ " + valueOrDash(r.Notes) + "\n")
			if r.Tags != "" {
				b.WriteString("Tags     │ " + r.Tags + "\n")
			}
		}
	case search.OutcomeAmbiguous:
		b.WriteString(fmt.Sprintf("Several records match %q, newest first:\n\n", f.outcome.Term))
		for i, record := range f.outcome.Records {
			cursor := " "
			if i == f.selIdx {
				cursor = ">"
			}
			b.WriteString(fmt.Sprintf("%s %-24s %s\n", cursor, fitText(record.Title(), 24), helpStyle.Render(fitText(recordPlace(record), 30))))
		}
	case search.OutcomeNotFound:
		b.WriteString(fmt.Sprintf("Nothing called %q here. Maybe it goes by another name?\n", f.outcome.Term))
	case search.OutcomeEmptyCollection:
		b.WriteString("You have not added any records yet. Add a few first, then come back.\n")
	case search.OutcomeValidationError:
		b.WriteString("That query will not work: " + f.outcome.Reason + "\n")
	}

	if f.status != "" {
		b.WriteString("\nOK: " + f.status + "\n")
	}

	return b.String()
}
