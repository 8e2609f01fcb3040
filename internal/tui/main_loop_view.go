// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"
)

func (m mainLoopModel) View() string {
	switch m.mode {
	case modeFind:
		return m.find.view()
	case modeDetail:
		return m.viewDetail()
	case modeAdd:
		return m.viewAdd()
	case modeConfirmDelete:
		return m.viewConfirmDelete()
	}
	return m.viewList()
}

func (m mainLoopModel) viewList() string {
	var b strings.Builder

	b.WriteString(m.tabsLine())
	b.WriteString("\n\n")

	if m.status != "" {
		b.WriteString("OK: ")
		b.WriteString(m.status)
		b.WriteString("\n\n")
	}
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n\n")
	}

	switch {
	case m.loading:
		b.WriteString("loading...\n")
	case m.refreshing:
		b.WriteString("refreshing...\n")
	case m.tab == tabItems:
		b.WriteString(m.itemsTable())
	default:
		b.WriteString(m.documentsTable())
	}

	return renderPage(
		"YOUR STASH",
		strings.TrimRight(b.String(), "\n"),
		"f: find │ n: add │ enter: open │ d: delete │ r: refresh │ tab: switch │ L: log out │ q: quit",
	)
}

func (m mainLoopModel) tabsLine() string {
	items := "  Items  "
	docs := "  Documents  "
	if m.tab == tabItems {
		items = "[ Items ]"
	} else {
		docs = "[ Documents ]"
	}
	return items + " " + docs
}

func (m mainLoopModel) itemsTable() string {
	if len(m.items) == 0 {
		return "No items yet. Press n to add the first one.\n"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("  %-20s │ %-34s │ %s\n", "Item", "Location", "Category"))
	b.WriteString("  " + strings.Repeat("─", 20) + "─┼─" + strings.Repeat("─", 34) + "─┼─" + strings.Repeat("─", 14) + "\n")

	for i, item := range m.items {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %-20s │ %-34s │ %s\n",
			cursor,
			fitText(item.ItemName, 20),
			fitText(item.Location, 34),
			fitText(valueOrDash(item.Category), 14),
		))
	}

	return b.String()
}

func (m mainLoopModel) documentsTable() string {
	if len(m.docs) == 0 {
		return "No documents yet. Press n to add the first one.\n"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("  %-20s │ %-12s │ %s\n", "Document", "Type", "Tags"))
	b.WriteString("  " + strings.Repeat("─", 20) + "─┼─" + strings.Repeat("─", 12) + "─┼─" + strings.Repeat("─", 20) + "\n")

	for i, doc := range m.docs {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %-20s │ %-12s │ %s\n",
			cursor,
			fitText(doc.DocumentName, 20),
			fitText(valueOrDash(doc.DocumentType), 12),
			fitText(valueOrDash(doc.Tags), 20),
		))
	}

	return b.String()
}

func (m mainLoopModel) viewDetail() string {
	var b strings.Builder

	if item, ok := m.currentItem(); ok {
		b.WriteString("Item     │ " + item.ItemName + "\n")
		b.WriteString("Location │ " + item.Location + "\n")
		b.WriteString("Category │ " + valueOrDash(item.Category) + "\n")
		if !item.CreatedAt.IsZero() {
			b.WriteString("Added    │ " + item.CreatedAt.Format("2006-01-02 15:04") + "\n")
		}
	} else if doc, ok := m.currentDocument(); ok {
		b.WriteString("Document │ " + doc.DocumentName + "\n")
		b.WriteString("Type     │ " + valueOrDash(doc.DocumentType) + "\n")
		b.WriteString("Notes    │ " + valueOrDash(doc.Notes) + "\n")
		b.WriteString("Tags     │ " + valueOrDash(doc.Tags) + "\n")
		if !doc.CreatedAt.IsZero() {
			b.WriteString("Added    │ " + doc.CreatedAt.Format("2006-01-02 15:04") + "\n")
		}
	}

	if m.status != "" {
		b.WriteString("\nOK: " + m.status + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.errMsg) + "\n")
	}

	return renderPage("RECORD", strings.TrimRight(b.String(), "\n"), "c: copy location │ d: delete │ esc: back")
}

func (m mainLoopModel) viewAdd() string {
	var labels []string
	title := "ADD ITEM"
	if m.tab == tabItems {
		labels = []string{"Name    ", "Location", "Category"}
	} else {
		title = "ADD DOCUMENT"
		labels = []string{"Name ", "Type ", "Notes", "Tags "}
	}

	var b strings.Builder
	for i, label := range labels {
		b.WriteString(label + " │ [" + m.addInputs[i].View() + "]\n")
	}

	if m.addSaving {
		b.WriteString("\n[Saving...]\n")
	} else {
		b.WriteString("\n[Save]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.errMsg) + "\n")
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"), "esc: cancel │ tab: next field │ enter: save")
}

func (m mainLoopModel) viewConfirmDelete() string {
	name := ""
	if item, ok := m.currentItem(); ok {
		name = item.ItemName
	} else if doc, ok := m.currentDocument(); ok {
		name = doc.DocumentName
	}

	body := fmt.Sprintf("Delete %q? This cannot be undone.", name)
	return renderPage("CONFIRM", body, "y: delete │ n: keep")
}
