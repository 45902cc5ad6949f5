// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-notes-keeper/internal/utils"
)

// richTextEditor edits note content as markdown and reports every change as
// HTML through onChange.
type richTextEditor struct {
	area     textarea.Model
	onChange func(html string)

	// last is the markdown that was reported most recently.
	last string
	err  error
}

func newRichTextEditor(content, placeholder string, onChange func(html string)) richTextEditor {
	area := textarea.New()
	area.Placeholder = placeholder
	area.ShowLineNumbers = false
	area.SetWidth(60)
	area.SetHeight(8)
	area.CharLimit = 0

	markdown, err := utils.HTMLToMarkdown(content)
	if err != nil {
		// show the stored text rather than an empty editor
		markdown = utils.PlainText(content)
	}
	area.SetValue(markdown)

	return richTextEditor{
		area:     area,
		onChange: onChange,
		last:     area.Value(),
	}
}

func (e richTextEditor) Update(msg tea.Msg) (richTextEditor, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.bold):
			e.wrap("**")
			return e.emit(), nil
		case key.Matches(keyMsg, keys.italic):
			e.wrap("_")
			return e.emit(), nil
		case key.Matches(keyMsg, keys.strike):
			e.wrap("~~")
			return e.emit(), nil
		case key.Matches(keyMsg, keys.bullet):
			e.prefixLine("- ")
			return e.emit(), nil
		case key.Matches(keyMsg, keys.ordered):
			e.prefixLine("1. ")
			return e.emit(), nil
		}
	}

	var cmd tea.Cmd
	e.area, cmd = e.area.Update(msg)
	return e.emit(), cmd
}

// wrap inserts an empty marker pair and leaves the cursor between them.
func (e *richTextEditor) wrap(marker string) {
	e.area.InsertString(marker + marker)
	for range len(marker) {
		e.area, _ = e.area.Update(tea.KeyMsg{Type: tea.KeyLeft})
	}
}

// prefixLine turns the current line into a list item.
func (e *richTextEditor) prefixLine(prefix string) {
	e.area.CursorStart()
	e.area.InsertString(prefix)
	e.area.CursorEnd()
}

// emit reports the content when the markdown changed since the last report.
func (e richTextEditor) emit() richTextEditor {
	value := e.area.Value()
	if value == e.last {
		return e
	}
	e.last = value

	html, err := utils.MarkdownToHTML(value)
	e.err = err
	if err != nil {
		return e
	}
	if e.onChange != nil {
		e.onChange(html)
	}
	return e
}

// Reset clears the editor without reporting a change.
func (e *richTextEditor) Reset() {
	e.area.Reset()
	e.last = ""
	e.err = nil
}

func (e *richTextEditor) Focus() tea.Cmd {
	return e.area.Focus()
}

func (e *richTextEditor) Blur() {
	e.area.Blur()
}

func (e richTextEditor) Markdown() string {
	return strings.TrimRight(e.area.Value(), "\n")
}

func (e richTextEditor) View() string {
	return e.area.View()
}
