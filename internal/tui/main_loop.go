// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-stash-find/internal/service"
	"github.com/MKhiriev/go-stash-find/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type mainTab int

const (
	tabItems mainTab = iota
	tabDocuments
)

type mainMode int

const (
	modeList mainMode = iota
	modeDetail
	modeAdd
	modeConfirmDelete
	modeFind
)

type mainLoopModel struct {
	ctx      context.Context
	services *service.ClientServices
	user     models.User

	tab  mainTab
	mode mainMode

	items []models.Item
	docs  []models.Document
	idx   int

	loading    bool
	refreshing bool
	status     string
	errMsg     string

	addInputs []textinput.Model
	addFocus  int
	addSaving bool

	find findModel

	logout bool
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices, user models.User) mainLoopModel {
	return mainLoopModel{
		ctx:      ctx,
		services: services,
		user:     user,
		loading:  true,
		find:     newFindModel(ctx, services.FindService),
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return m.cmdLoadRecords()
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case recordsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.items = msg.items
		m.docs = msg.docs
		m.clampIdx()
		return m, nil
	case refreshDoneMsg:
		m.refreshing = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.status = "refreshed from server"
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadRecords()
	case createDoneMsg:
		m.addSaving = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.mode = modeList
		m.status = "record added"
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadRecords()
	case deleteDoneMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("delete failed: %v", humanizeServerUnavailableError(msg.err))
			m.mode = modeList
			return m, nil
		}
		m.mode = modeList
		m.status = "record deleted"
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadRecords()
	}

	if m.mode == modeFind {
		keyMsg, isKey := msg.(tea.KeyMsg)
		if isKey {
			switch keyMsg.String() {
			case "ctrl+c":
				return m, tea.Quit
			case "esc":
				if m.find.canLeave() {
					m.mode = modeList
					m.find = m.find.reset()
					return m, nil
				}
			}
		}
		var cmd tea.Cmd
		m.find, cmd = m.find.update(msg)
		return m, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.mode == modeAdd {
			return m.updateAdd(msg)
		}
		return m, nil
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case modeAdd:
		return m.updateAdd(msg)
	case modeDetail:
		return m.updateDetail(keyMsg)
	case modeConfirmDelete:
		return m.updateConfirmDelete(keyMsg)
	}

	return m.updateList(keyMsg)
}

func (m mainLoopModel) updateList(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "q":
		return m, tea.Quit
	case "L":
		m.logout = true
		return m, tea.Quit
	case "tab":
		if m.tab == tabItems {
			m.tab = tabDocuments
		} else {
			m.tab = tabItems
		}
		m.idx = 0
		return m, nil
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < m.recordCount()-1 {
			m.idx++
		}
	case "enter":
		if m.recordCount() > 0 {
			m.mode = modeDetail
		}
	case "n":
		m.startAdd()
		return m, textinput.Blink
	case "d":
		if m.recordCount() > 0 {
			m.mode = modeConfirmDelete
		}
	case "r":
		if !m.refreshing {
			m.refreshing = true
			m.status = ""
			return m, m.cmdRefresh()
		}
	case "f", "/":
		m.mode = modeFind
		m.find = m.find.open(m.tab)
		return m, textinput.Blink
	}

	return m, nil
}

func (m mainLoopModel) updateDetail(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		m.mode = modeList
	case "c":
		text := m.copyValue()
		if text == "" {
			m.status = "nothing to copy"
			return m, nil
		}
		if err := copyToClipboard(text); err != nil {
			m.errMsg = fmt.Sprintf("copy failed: %v", err)
			return m, nil
		}
		m.status = "copied to clipboard"
	case "d":
		m.mode = modeConfirmDelete
	}
	return m, nil
}

func (m mainLoopModel) updateConfirmDelete(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "y":
		return m, m.cmdDelete()
	case "n", "esc":
		m.mode = modeList
	}
	return m, nil
}

// ── add form ──

const (
	addItemFieldName = iota
	addItemFieldLocation
	addItemFieldCategory
)

const (
	addDocFieldName = iota
	addDocFieldType
	addDocFieldNotes
	addDocFieldTags
)

func (m *mainLoopModel) startAdd() {
	newInput := func(placeholder string, limit int) textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.CharLimit = limit
		in.Width = 40
		return in
	}

	if m.tab == tabItems {
		m.addInputs = []textinput.Model{
			newInput("what is it (e.g. keys)", 80),
			newInput("where it lives (e.g. bowl by the front door)", 200),
			newInput("category (optional)", 80),
		}
	} else {
		m.addInputs = []textinput.Model{
			newInput("document name (e.g. passport)", 80),
			newInput("type (e.g. identity)", 80),
			newInput("where it is kept / notes", 400),
			newInput("tags, comma separated (optional)", 200),
		}
	}
	m.addInputs[0].Focus()
	m.addFocus = 0
	m.addSaving = false
	m.mode = modeAdd
	m.status = ""
	m.errMsg = ""
}

func (m mainLoopModel) updateAdd(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.mode = modeList
			m.addSaving = false
			return m, nil
		case "tab":
			m.addInputs[m.addFocus].Blur()
			m.addFocus = (m.addFocus + 1) % len(m.addInputs)
			m.addInputs[m.addFocus].Focus()
			return m, nil
		case "shift+tab":
			m.addInputs[m.addFocus].Blur()
			m.addFocus = (m.addFocus - 1 + len(m.addInputs)) % len(m.addInputs)
			m.addInputs[m.addFocus].Focus()
			return m, nil
		case "enter":
			if m.addSaving {
				return m, nil
			}
			return m.submitAdd()
		}
	}

	var cmd tea.Cmd
	m.addInputs[m.addFocus], cmd = m.addInputs[m.addFocus].Update(msg)
	return m, cmd
}

func (m mainLoopModel) submitAdd() (tea.Model, tea.Cmd) {
	if m.tab == tabItems {
		name := strings.TrimSpace(m.addInputs[addItemFieldName].Value())
		location := strings.TrimSpace(m.addInputs[addItemFieldLocation].Value())
		if name == "" || location == "" {
			m.errMsg = "name and location are required"
			return m, nil
		}

		item := models.Item{
			ItemName: name,
			Location: location,
			Category: strings.TrimSpace(m.addInputs[addItemFieldCategory].Value()),
		}
		m.errMsg = ""
		m.addSaving = true
		return m, m.cmdAddItem(item)
	}

	name := strings.TrimSpace(m.addInputs[addDocFieldName].Value())
	if name == "" {
		m.errMsg = "document name is required"
		return m, nil
	}

	doc := models.Document{
		DocumentName: name,
		DocumentType: strings.TrimSpace(m.addInputs[addDocFieldType].Value()),
		Notes:        strings.TrimSpace(m.addInputs[addDocFieldNotes].Value()),
		Tags:         normalizeTags(m.addInputs[addDocFieldTags].Value()),
	}
	m.errMsg = ""
	m.addSaving = true
	return m, m.cmdAddDocument(doc)
}

// normalizeTags squeezes a comma separated tag line into "a, b, c" form.
func normalizeTags(raw string) string {
	var tags []string
	for _, tag := range strings.Split(raw, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return strings.Join(tags, ", ")
}

// ── commands ──

func (m mainLoopModel) cmdLoadRecords() tea.Cmd {
	ctx := m.ctx
	records := m.services.RecordService

	return func() tea.Msg {
		items, err := records.ListItems(ctx)
		if err != nil {
			return recordsLoadedMsg{err: err}
		}
		docs, err := records.ListDocuments(ctx)
		if err != nil {
			return recordsLoadedMsg{err: err}
		}
		return recordsLoadedMsg{items: items, docs: docs}
	}
}

func (m mainLoopModel) cmdRefresh() tea.Cmd {
	ctx := m.ctx
	records := m.services.RecordService

	return func() tea.Msg {
		return refreshDoneMsg{err: records.RefreshSnapshots(ctx)}
	}
}

func (m mainLoopModel) cmdAddItem(item models.Item) tea.Cmd {
	ctx := m.ctx
	records := m.services.RecordService

	return func() tea.Msg {
		_, err := records.AddItem(ctx, item)
		return createDoneMsg{err: err}
	}
}

func (m mainLoopModel) cmdAddDocument(doc models.Document) tea.Cmd {
	ctx := m.ctx
	records := m.services.RecordService

	return func() tea.Msg {
		_, err := records.AddDocument(ctx, doc)
		return createDoneMsg{err: err}
	}
}

func (m mainLoopModel) cmdDelete() tea.Cmd {
	ctx := m.ctx
	records := m.services.RecordService

	if m.tab == tabItems {
		item, ok := m.currentItem()
		if !ok {
			return nil
		}
		return func() tea.Msg {
			return deleteDoneMsg{err: records.DeleteItem(ctx, item.ID)}
		}
	}

	doc, ok := m.currentDocument()
	if !ok {
		return nil
	}
	return func() tea.Msg {
		return deleteDoneMsg{err: records.DeleteDocument(ctx, doc.ID)}
	}
}

// ── helpers ──

func (m mainLoopModel) recordCount() int {
	if m.tab == tabItems {
		return len(m.items)
	}
	return len(m.docs)
}

func (m *mainLoopModel) clampIdx() {
	if m.idx >= m.recordCount() {
		m.idx = m.recordCount() - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m mainLoopModel) currentItem() (models.Item, bool) {
	if m.tab != tabItems || m.idx < 0 || m.idx >= len(m.items) {
		return models.Item{}, false
	}
	return m.items[m.idx], true
}

func (m mainLoopModel) currentDocument() (models.Document, bool) {
	if m.tab != tabDocuments || m.idx < 0 || m.idx >= len(m.docs) {
		return models.Document{}, false
	}
	return m.docs[m.idx], true
}

// copyValue picks the clipboard payload for the selected record: the place
// an item lives, or a document's notes.
func (m mainLoopModel) copyValue() string {
	if item, ok := m.currentItem(); ok {
		return item.Location
	}
	if doc, ok := m.currentDocument(); ok {
		return doc.Notes
	}
	return ""
}
