// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/models"
)

type listView int

const (
	viewNotes listView = iota
	viewArchive
)

const statusTTL = 2 * time.Second

type mainLoopModel struct {
	ctx        context.Context
	services   *service.ClientServices
	buildInfo  models.AppBuildInfo
	appVersion string

	notes    []models.Note
	liveErr  error
	mounting bool

	view   listView
	idx    int
	status string

	search    textinput.Model
	searching bool

	detail   bool
	detailID string

	editing bool
	editor  noteEditorModel
	// editorGen grows every time an editor is opened; a save result from an
	// older editor must not touch the current one.
	editorGen int

	showConfirm bool
	confirm     confirmModel

	showError    bool
	errorOverlay errorOverlayModel

	showBuildInfo bool
	serverVersion *models.ServerVersion
	serverErr     error
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices, buildInfo models.AppBuildInfo, appVersion string) mainLoopModel {
	search := textinput.New()
	search.Placeholder = "поиск по заголовку и тексту"
	search.Prompt = "/ "
	search.Width = 40

	return mainLoopModel{
		ctx:        ctx,
		services:   services,
		buildInfo:  buildInfo,
		appVersion: appVersion,
		notes:      []models.Note{},
		mounting:   true,
		search:     search,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return tea.Batch(m.cmdMount(), m.cmdWaitForChanges())
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case notesChangedMsg:
		m.notes = m.services.Subscriber.Notes()
		m.liveErr = m.services.Subscriber.Err()
		m.clampIdx()
		if m.detail {
			if _, ok := m.noteByID(m.detailID); !ok {
				m.detail = false
				m.status = "Заметка удалена"
			}
		}
		return m, m.cmdWaitForChanges()
	case mountDoneMsg:
		m.mounting = false
		if msg.err != nil {
			m.liveErr = msg.err
			return m, nil
		}
		m.liveErr = nil
		return m, nil
	case writeDoneMsg:
		return m.handleWriteDone(msg)
	case serverVersionMsg:
		m.serverErr = msg.err
		if msg.err == nil {
			v := msg.version
			m.serverVersion = &v
		}
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.showErrorf("Ошибка копирования: %v", msg.err)
			return m, nil
		}
		m.status = "Скопировано"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		// cursor blink and other widget ticks
		if m.editing {
			var cmd tea.Cmd
			m.editor, cmd = m.editor.Update(msg)
			return m, cmd
		}
		if m.searching {
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch {
	case m.showError:
		if key.Matches(keyMsg, keys.enter) || key.Matches(keyMsg, keys.esc) {
			m.showError = false
			m.errorOverlay.message = ""
		}
		return m, nil
	case m.showConfirm:
		return m.updateConfirm(keyMsg)
	case m.showBuildInfo:
		if key.Matches(keyMsg, keys.esc) || key.Matches(keyMsg, keys.info) {
			m.showBuildInfo = false
		}
		return m, nil
	case m.editing:
		return m.updateEditor(keyMsg)
	case m.searching:
		return m.updateSearch(keyMsg)
	case m.detail:
		return m.updateDetail(keyMsg)
	}

	return m.updateList(keyMsg)
}

func (m mainLoopModel) updateList(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.visible())-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.tab):
		if m.view == viewNotes {
			m.view = viewArchive
		} else {
			m.view = viewNotes
		}
		m.idx = 0
	case key.Matches(keyMsg, keys.search):
		m.searching = true
		cmd := m.search.Focus()
		return m, cmd
	case key.Matches(keyMsg, keys.esc):
		m.search.SetValue("")
		m.clampIdx()
	case key.Matches(keyMsg, keys.newNote):
		m.services.EditSession.StartCompose()
		return m.openEditor()
	case key.Matches(keyMsg, keys.retry):
		if m.mounting {
			return m, nil
		}
		m.mounting = true
		m.status = "Переподключение..."
		return m, m.cmdMount()
	case key.Matches(keyMsg, keys.info):
		m.showBuildInfo = true
		m.serverErr = nil
		return m, m.cmdServerVersion()
	case key.Matches(keyMsg, keys.enter):
		note, ok := m.current()
		if !ok {
			m.status = "Нет заметок"
			return m, nil
		}
		m.detail = true
		m.detailID = note.ID
	default:
		note, ok := m.current()
		if !ok {
			return m, nil
		}
		return m.noteAction(keyMsg, note)
	}

	return m, nil
}

func (m mainLoopModel) updateDetail(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(keyMsg, keys.esc) {
		m.detail = false
		return m, nil
	}
	if key.Matches(keyMsg, keys.quit) {
		return m, tea.Quit
	}

	note, ok := m.noteByID(m.detailID)
	if !ok {
		m.detail = false
		return m, nil
	}
	return m.noteAction(keyMsg, note)
}

// noteAction handles the keys shared by the list and the detail view.
func (m mainLoopModel) noteAction(keyMsg tea.KeyMsg, note models.Note) (tea.Model, tea.Cmd) {
	session := m.services.EditSession

	switch {
	case key.Matches(keyMsg, keys.edit):
		m.detail = false
		session.StartEdit(note)
		return m.openEditor()
	case key.Matches(keyMsg, keys.pin):
		return m, m.cmdWrite(opPin, func(ctx context.Context) error { return session.TogglePin(ctx, note) })
	case key.Matches(keyMsg, keys.archive):
		return m, m.cmdWrite(opArchive, func(ctx context.Context) error { return session.ToggleArchive(ctx, note) })
	case key.Matches(keyMsg, keys.delete):
		m.showConfirm = true
		m.confirm = confirmModel{noteID: note.ID, title: noteTitle(note)}
	case key.Matches(keyMsg, keys.copy):
		return m, cmdCopy(noteMarkdown(note))
	}
	return m, nil
}

func (m mainLoopModel) updateConfirm(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.yes):
		m.showConfirm = false
		id := m.confirm.noteID
		m.confirm = confirmModel{}
		if id == "" {
			return m, nil
		}
		session := m.services.EditSession
		return m, m.cmdWrite(opDelete, func(ctx context.Context) error { return session.Delete(ctx, id) })
	case key.Matches(keyMsg, keys.no), key.Matches(keyMsg, keys.esc):
		m.showConfirm = false
		m.confirm = confirmModel{}
	}
	return m, nil
}

func (m mainLoopModel) updateSearch(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.searching = false
		m.search.SetValue("")
		m.search.Blur()
		m.clampIdx()
		return m, nil
	case key.Matches(keyMsg, keys.enter):
		m.searching = false
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(keyMsg)
	m.idx = 0
	return m, cmd
}

func (m mainLoopModel) openEditor() (tea.Model, tea.Cmd) {
	m.editor = newNoteEditor(m.services.EditSession)
	m.editing = true
	m.editorGen++
	return m, textinput.Blink
}

func (m mainLoopModel) updateEditor(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.services.EditSession.CancelEdit()
		m.editing = false
		return m, nil
	case key.Matches(keyMsg, keys.save):
		if m.editor.saving {
			return m, nil
		}
		m.editor.saving = true
		return m, m.cmdWrite(opSave, m.services.EditSession.Submit)
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(keyMsg)
	return m, cmd
}

func (m mainLoopModel) handleWriteDone(msg writeDoneMsg) (tea.Model, tea.Cmd) {
	if msg.op == opSave && (!m.editing || msg.editorGen != m.editorGen) {
		// the editor that issued this save is gone
		if msg.err != nil {
			m.showErrorf("%s", humanizeError(msg.err))
			return m, nil
		}
		m.status = "Заметка сохранена"
		return m, cmdClearStatus()
	}

	if msg.op == opSave {
		m.editor.saving = false
	}
	if msg.err != nil {
		m.showErrorf("%s", humanizeError(msg.err))
		return m, nil
	}

	switch msg.op {
	case opSave:
		draft := m.services.EditSession.Draft()
		switch {
		case draft.Mode == models.DraftEmpty:
			m.editing = false
			m.status = "Заметка сохранена"
		case draft.IsBlank():
			// nothing was written, so closing is the same as esc
			m.services.EditSession.CancelEdit()
			m.editing = false
			m.status = "Пустая заметка не сохранена"
		default:
			// edited while the write was in flight: keep typing
			m.status = "Заметка сохранена"
		}
	case opPin:
		m.status = "Закрепление изменено"
	case opArchive:
		m.status = "Архив обновлён"
	case opDelete:
		m.detail = false
		m.status = "Заметка удалена"
	}
	return m, cmdClearStatus()
}

func (m *mainLoopModel) showErrorf(format string, args ...any) {
	m.showError = true
	m.errorOverlay = errorOverlayModel{message: fmt.Sprintf(format, args...)}
}

func (m mainLoopModel) projection() models.Projection {
	return service.ProjectNotes(m.notes, m.search.Value())
}

// visible returns the rows of the current view in display order.
func (m mainLoopModel) visible() []models.Note {
	if m.view == viewArchive {
		return service.ProjectArchive(m.notes, m.search.Value())
	}
	return m.projection().All()
}

func (m mainLoopModel) current() (models.Note, bool) {
	rows := m.visible()
	if len(rows) == 0 || m.idx < 0 || m.idx >= len(rows) {
		return models.Note{}, false
	}
	return rows[m.idx], true
}

func (m mainLoopModel) noteByID(id string) (models.Note, bool) {
	for _, n := range m.notes {
		if n.ID == id {
			return n, true
		}
	}
	return models.Note{}, false
}

func (m *mainLoopModel) clampIdx() {
	n := len(m.visible())
	if m.idx >= n {
		m.idx = n - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m mainLoopModel) cmdMount() tea.Cmd {
	ctx := m.ctx
	sub := m.services.Subscriber

	return func() tea.Msg {
		return mountDoneMsg{err: sub.Mount(ctx)}
	}
}

// cmdWaitForChanges blocks until the subscriber signals; Update re-arms it.
func (m mainLoopModel) cmdWaitForChanges() tea.Cmd {
	ctx := m.ctx
	changes := m.services.Subscriber.Changes()

	return func() tea.Msg {
		select {
		case <-changes:
			return notesChangedMsg{}
		case <-ctx.Done():
			return nil
		}
	}
}

func (m mainLoopModel) cmdWrite(op writeOp, write func(ctx context.Context) error) tea.Cmd {
	ctx := m.ctx
	gen := m.editorGen

	return func() tea.Msg {
		return writeDoneMsg{op: op, err: write(ctx), editorGen: gen}
	}
}

func (m mainLoopModel) cmdServerVersion() tea.Cmd {
	ctx := m.ctx
	svc := m.services.ServerInfo

	return func() tea.Msg {
		v, err := svc.GetServerVersion(ctx)
		return serverVersionMsg{version: v, err: err}
	}
}

func cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(text)}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m mainLoopModel) View() string {
	switch {
	case m.showError:
		return m.errorOverlay.View()
	case m.showConfirm:
		return m.confirm.View()
	case m.showBuildInfo:
		return renderBuildInfoWindow(m.buildInfo, m.appVersion, m.serverVersion, m.serverErr)
	case m.editing:
		return m.editor.View()
	case m.detail:
		return m.viewDetail()
	}
	return m.viewList()
}

func (m mainLoopModel) viewList() string {
	var b strings.Builder

	switch {
	case m.mounting:
		b.WriteString("Подключение к серверу...\n")
	case m.liveErr != nil:
		b.WriteString(errorStyle.Render("Обновления в реальном времени потеряны: "+humanizeError(m.liveErr)) + "\n")
		b.WriteString("r: переподключиться\n")
	}
	if m.status != "" {
		b.WriteString("Статус: " + m.status + "\n")
	}
	if m.searching || m.search.Value() != "" {
		b.WriteString(m.search.View() + "\n")
	}
	if b.Len() > 0 {
		b.WriteString("\n")
	}

	title := "ЗАМЕТКИ"
	hotKeys := "n: новая │ enter: открыть │ e: изм. │ p: закрепить │ a: в архив │ ctrl+d: уд. │ /: поиск │ tab: архив │ c: копировать │ v: о программе"

	if m.view == viewArchive {
		title = "АРХИВ"
		hotKeys = "enter: открыть │ e: изм. │ a: из архива │ ctrl+d: уд. │ /: поиск │ tab: заметки │ c: копировать"
		m.renderRows(&b, service.ProjectArchive(m.notes, m.search.Value()), 0, "В архиве пусто")
		return renderPage(title, strings.TrimRight(b.String(), "\n"), hotKeys)
	}

	p := m.projection()
	switch {
	case p.Len() == 0 && m.search.Value() != "":
		b.WriteString("Ничего не найдено\n")
	case p.Len() == 0:
		b.WriteString("Заметок пока нет. n: создать первую\n")
	case len(p.Pinned) > 0:
		b.WriteString("[ ЗАКРЕПЛЁННЫЕ ]\n")
		m.renderRows(&b, p.Pinned, 0, "")
		if len(p.Unpinned) > 0 {
			b.WriteString("\n[ ДРУГИЕ ]\n")
			m.renderRows(&b, p.Unpinned, len(p.Pinned), "")
		}
	default:
		m.renderRows(&b, p.Unpinned, 0, "")
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"), hotKeys)
}

// renderRows writes notes as list rows; offset is the index of the first row
// in the whole view.
func (m mainLoopModel) renderRows(b *strings.Builder, notes []models.Note, offset int, empty string) {
	if len(notes) == 0 && empty != "" {
		b.WriteString(empty + "\n")
		return
	}
	for i, n := range notes {
		row := fmt.Sprintf("%s %-24s │ %s", swatch(n.Color), fitText(noteTitle(n), 24), notePreview(n, 40))
		if offset+i == m.idx {
			row = "> " + selectedStyle.Render(row)
		} else {
			row = "  " + row
		}
		b.WriteString(row + "\n")
	}
}

func (m mainLoopModel) viewDetail() string {
	note, ok := m.noteByID(m.detailID)
	if !ok {
		return renderPage("ПРОСМОТР ЗАМЕТКИ", "Заметка не найдена", "esc: назад")
	}

	var b strings.Builder
	b.WriteString("Заголовок : " + noteTitle(note) + "\n")
	b.WriteString("Цвет      : " + colorLabel(note.Color) + "\n")
	b.WriteString("Закреплена: " + yesNo(note.IsPinned) + "\n")
	b.WriteString("В архиве  : " + yesNo(note.IsArchived) + "\n")
	b.WriteString("Создана   : " + formatCreatedAt(note.CreatedAt) + "\n\n")
	b.WriteString(noteMarkdown(note))
	if m.status != "" {
		b.WriteString("\n\nСтатус: " + m.status)
	}

	return renderPage("ПРОСМОТР ЗАМЕТКИ", b.String(), "esc: назад │ e: изм. │ p: закрепить │ a: архив │ ctrl+d: уд. │ c: копировать")
}
