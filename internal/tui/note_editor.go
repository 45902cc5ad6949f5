// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/models"
)

const (
	focusTitle = iota
	focusContent
)

// noteEditorModel is the compose/edit form. Every change goes straight into
// the edit session; the form keeps only widget state.
type noteEditorModel struct {
	session service.EditSession

	title   textinput.Model
	content richTextEditor
	focus   int
	saving  bool
}

func newNoteEditor(session service.EditSession) noteEditorModel {
	draft := session.Draft()

	title := textinput.New()
	title.Placeholder = "Заголовок"
	title.Width = 60
	title.SetValue(draft.Title)
	title.Focus()

	content := newRichTextEditor(draft.Content, "Заметка...", session.SetContent)

	return noteEditorModel{
		session: session,
		title:   title,
		content: content,
		focus:   focusTitle,
	}
}

func (m noteEditorModel) Update(msg tea.Msg) (noteEditorModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.tab):
			cmd := m.switchFocus()
			return m, cmd
		case key.Matches(keyMsg, keys.nextColor):
			m.session.SetColor(m.session.Draft().Color.Next())
			return m, nil
		case key.Matches(keyMsg, keys.prevColor):
			m.session.SetColor(m.session.Draft().Color.Prev())
			return m, nil
		case key.Matches(keyMsg, keys.togglePin):
			m.session.SetPinned(!m.session.Draft().IsPinned)
			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.focus == focusTitle {
		before := m.title.Value()
		m.title, cmd = m.title.Update(msg)
		if after := m.title.Value(); after != before {
			m.session.SetTitle(after)
		}
		return m, cmd
	}

	m.content, cmd = m.content.Update(msg)
	return m, cmd
}

func (m *noteEditorModel) switchFocus() tea.Cmd {
	if m.focus == focusTitle {
		m.focus = focusContent
		m.title.Blur()
		return m.content.Focus()
	}
	m.focus = focusTitle
	m.content.Blur()
	return m.title.Focus()
}

func (m noteEditorModel) View() string {
	draft := m.session.Draft()

	heading := "НОВАЯ ЗАМЕТКА"
	if draft.Mode == models.DraftEditing {
		heading = "ИЗМЕНЕНИЕ ЗАМЕТКИ"
	}

	var b strings.Builder
	b.WriteString("Заголовок : [ " + m.title.View() + " ]\n")
	b.WriteString("Цвет      : " + colorLabel(draft.Color) + "\n")
	b.WriteString("Закреплена: " + yesNo(draft.IsPinned) + "\n\n")
	b.WriteString(m.content.View())
	if m.content.err != nil {
		b.WriteString("\n" + errorStyle.Render("Ошибка разметки: "+m.content.err.Error()))
	}
	if m.saving {
		b.WriteString("\nСохранение...")
	}

	return renderPage(heading, b.String(),
		"ctrl+s: сохранить │ esc: отмена │ tab: поле │ alt+←/→: цвет │ alt+p: закрепить\n"+
			"  alt+b: жирный │ alt+i: курсив │ alt+s: зачёркнутый │ alt+l: список │ alt+o: нумерация")
}

func yesNo(v bool) string {
	if v {
		return "да"
	}
	return "нет"
}
