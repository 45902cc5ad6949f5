// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/mock"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/models"
)

var testNotes = []models.Note{
	{ID: "n1", Title: "Shopping", Content: "<p>milk</p>", CreatedAt: 50},
	{ID: "n2", Title: "Pinned idea", Content: "<p><strong>big</strong></p>", IsPinned: true, CreatedAt: 40},
	{ID: "n3", Title: "Old", Content: "<p>archived</p>", IsArchived: true, CreatedAt: 30},
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// newTestModel монтирует подписчика на мок-хранилище, отдаёт ему снимок
// notes и возвращает модель, уже получившую этот список.
func newTestModel(t *testing.T, notes []models.Note) (mainLoopModel, *mock.MockNoteStoreAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := mock.NewMockNoteStoreAdapter(ctrl)
	sub := mock.NewMockSubscription(ctrl)

	ch := make(chan models.Snapshot, 1)
	ch <- models.Snapshot{Seq: 1, Notes: notes}

	store.EXPECT().Subscribe(gomock.Any()).Return(sub, nil).AnyTimes()
	sub.EXPECT().Snapshots().Return((<-chan models.Snapshot)(ch)).AnyTimes()
	sub.EXPECT().Err().Return(nil).AnyTimes()
	sub.EXPECT().Close().Return(nil).AnyTimes()

	services := service.NewClientServices(store, func() time.Time { return time.UnixMilli(1000) }, logger.Nop())
	require.NoError(t, services.Subscriber.Mount(context.Background()))
	t.Cleanup(services.Subscriber.Unmount)
	require.Eventually(t, func() bool { return len(services.Subscriber.Notes()) == len(notes) }, time.Second, 5*time.Millisecond)

	m := newMainLoopModel(context.Background(), services, models.NewAppBuildInfo("v1", "d", "c"), "1.0.0")
	return update(t, m, notesChangedMsg{}), store
}

func update(t *testing.T, m mainLoopModel, msg tea.Msg) mainLoopModel {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(mainLoopModel)
	require.True(t, ok)
	return out
}

func updateCmd(t *testing.T, m mainLoopModel, msg tea.Msg) (mainLoopModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(mainLoopModel)
	require.True(t, ok)
	return out, cmd
}

func visibleIDs(m mainLoopModel) []string {
	var out []string
	for _, n := range m.visible() {
		out = append(out, n.ID)
	}
	return out
}

func TestMainLoop_PinnedFirstArchivedHidden(t *testing.T) {
	m, _ := newTestModel(t, testNotes)

	assert.Equal(t, []string{"n2", "n1"}, visibleIDs(m))
	view := m.View()
	assert.Contains(t, view, "ЗАКРЕПЛЁННЫЕ")
	assert.Contains(t, view, "Pinned idea")
	assert.NotContains(t, view, "Old")
}

func TestMainLoop_TabShowsArchive(t *testing.T) {
	m, _ := newTestModel(t, testNotes)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, []string{"n3"}, visibleIDs(m))
	assert.Contains(t, m.View(), "АРХИВ")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, viewNotes, m.view)
}

func TestMainLoop_Search(t *testing.T) {
	m, _ := newTestModel(t, testNotes)

	m = update(t, m, runes("/"))
	require.True(t, m.searching)
	m = update(t, m, runes("MILK"))
	assert.Equal(t, []string{"n1"}, visibleIDs(m))

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.searching)
	assert.Equal(t, []string{"n1"}, visibleIDs(m), "term stays after enter")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, []string{"n2", "n1"}, visibleIDs(m))
}

func TestMainLoop_Navigation(t *testing.T) {
	m, _ := newTestModel(t, testNotes)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.idx, "cursor stops at the last row")

	m = update(t, m, runes("k"))
	assert.Equal(t, 0, m.idx)
}

func TestMainLoop_TogglePin(t *testing.T) {
	m, store := newTestModel(t, testNotes)

	store.EXPECT().UpdateNote(gomock.Any(), "n2", models.NoteUpdate{IsPinned: models.Ptr(false)}).Return(nil)

	m, cmd := updateCmd(t, m, runes("p"))
	require.NotNil(t, cmd)
	msg := cmd()
	assert.Equal(t, writeDoneMsg{op: opPin}, msg)

	m = update(t, m, msg)
	assert.Equal(t, "Закрепление изменено", m.status)
}

func TestMainLoop_ToggleArchive(t *testing.T) {
	m, store := newTestModel(t, testNotes)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})

	store.EXPECT().UpdateNote(gomock.Any(), "n1", models.NoteUpdate{IsArchived: models.Ptr(true)}).Return(nil)

	_, cmd := updateCmd(t, m, runes("a"))
	require.NotNil(t, cmd)
	assert.Equal(t, writeDoneMsg{op: opArchive}, cmd())
}

func TestMainLoop_DeleteNeedsConfirmation(t *testing.T) {
	m, store := newTestModel(t, testNotes)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlD})
	require.True(t, m.showConfirm)
	assert.Contains(t, m.View(), "Pinned idea")

	// отказ: записи нет
	m = update(t, m, runes("n"))
	assert.False(t, m.showConfirm)
	assert.False(t, m.editing, "n in the dialog does not open the editor")

	store.EXPECT().DeleteNote(gomock.Any(), "n2").Return(nil)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlD})
	m, cmd := updateCmd(t, m, runes("y"))
	require.NotNil(t, cmd)
	assert.False(t, m.showConfirm)
	assert.Equal(t, writeDoneMsg{op: opDelete}, cmd())
}

func TestMainLoop_ComposeAndSave(t *testing.T) {
	m, store := newTestModel(t, testNotes)

	m = update(t, m, runes("n"))
	require.True(t, m.editing)
	assert.Equal(t, models.DraftComposing, m.services.EditSession.Draft().Mode)

	m = update(t, m, runes("Hello"))
	assert.Equal(t, "Hello", m.services.EditSession.Draft().Title)

	store.EXPECT().CreateNote(gomock.Any(), models.CreateNoteRequest{
		NoteFields: models.NoteFields{Title: "Hello", Color: models.ColorNeutral},
		CreatedAt:  1000,
	}).Return(models.Note{ID: "new"}, nil)

	m, cmd := updateCmd(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)
	assert.True(t, m.editor.saving)

	m = update(t, m, cmd())
	assert.False(t, m.editing)
	assert.Equal(t, models.DraftEmpty, m.services.EditSession.Draft().Mode)
}

func TestMainLoop_EditorColorAndPin(t *testing.T) {
	m, _ := newTestModel(t, testNotes)

	m = update(t, m, runes("n"))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight, Alt: true})
	assert.Equal(t, models.ColorRed, m.services.EditSession.Draft().Color)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft, Alt: true})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft, Alt: true})
	assert.Equal(t, models.ColorGray, m.services.EditSession.Draft().Color)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p"), Alt: true})
	assert.True(t, m.services.EditSession.Draft().IsPinned)
}

func TestMainLoop_EditorContentIsHTML(t *testing.T) {
	m, _ := newTestModel(t, testNotes)

	m = update(t, m, runes("n"))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("b"), Alt: true})
	m = update(t, m, runes("bold"))

	assert.Equal(t, "**bold**", m.editor.content.Markdown())
	assert.Equal(t, "<p><strong>bold</strong></p>", m.services.EditSession.Draft().Content)
}

func TestMainLoop_EditExistingAndCancel(t *testing.T) {
	// мок без UpdateNote: отмена не должна ничего писать
	m, _ := newTestModel(t, testNotes)

	m = update(t, m, runes("e"))
	require.True(t, m.editing)
	draft := m.services.EditSession.Draft()
	assert.Equal(t, models.DraftEditing, draft.Mode)
	assert.Equal(t, "n2", draft.NoteID)
	assert.Contains(t, m.editor.content.Markdown(), "**big**")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.editing)
	assert.Equal(t, models.DraftEmpty, m.services.EditSession.Draft().Mode)
}

func TestMainLoop_BlankSaveClosesWithoutWrite(t *testing.T) {
	m, _ := newTestModel(t, testNotes)

	m = update(t, m, runes("n"))
	m, cmd := updateCmd(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)

	m = update(t, m, cmd())
	assert.False(t, m.editing)
	assert.Equal(t, models.DraftEmpty, m.services.EditSession.Draft().Mode)
}

func TestMainLoop_SaveFailureKeepsEditor(t *testing.T) {
	m, store := newTestModel(t, testNotes)

	m = update(t, m, runes("n"))
	m = update(t, m, runes("x"))

	store.EXPECT().CreateNote(gomock.Any(), gomock.Any()).Return(models.Note{}, adapter.ErrServerUnavailable)

	m, cmd := updateCmd(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	m = update(t, m, cmd())

	assert.True(t, m.editing)
	assert.True(t, m.showError)
	assert.Contains(t, m.View(), "Сервер недоступен")
	assert.Equal(t, "x", m.services.EditSession.Draft().Title)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.showError)
	assert.True(t, m.editing)
}

// сохранение завершилось уже после того, как пользователь закрыл редактор
// и начал новую заметку: новый редактор должен остаться открытым
func TestMainLoop_LateSaveDoesNotCloseNewEditor(t *testing.T) {
	m, store := newTestModel(t, testNotes)

	started := make(chan struct{})
	release := make(chan struct{})
	store.EXPECT().CreateNote(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, models.CreateNoteRequest) (models.Note, error) {
			close(started)
			<-release
			return models.Note{ID: "new"}, nil
		})

	m = update(t, m, runes("n"))
	m = update(t, m, runes("first"))
	m, cmd := updateCmd(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)

	result := make(chan tea.Msg, 1)
	go func() { result <- cmd() }()
	<-started

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m = update(t, m, runes("n"))
	require.True(t, m.editing)
	require.Equal(t, models.DraftComposing, m.services.EditSession.Draft().Mode)

	close(release)
	var msg tea.Msg
	select {
	case msg = <-result:
	case <-time.After(time.Second):
		t.Fatal("save did not finish")
	}

	m = update(t, m, msg)
	assert.True(t, m.editing)
	assert.False(t, m.showError)
	assert.Equal(t, models.DraftComposing, m.services.EditSession.Draft().Mode)
	assert.Equal(t, "Заметка сохранена", m.status)

	// новый редактор по-прежнему принимает ввод
	m = update(t, m, runes("second"))
	assert.Equal(t, "second", m.services.EditSession.Draft().Title)
}

func TestMainLoop_LateSaveFailureIsStillReported(t *testing.T) {
	m, store := newTestModel(t, testNotes)

	store.EXPECT().CreateNote(gomock.Any(), gomock.Any()).Return(models.Note{}, adapter.ErrServerUnavailable)

	m = update(t, m, runes("n"))
	m = update(t, m, runes("x"))
	m, cmd := updateCmd(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	msg := cmd()

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m = update(t, m, msg)

	assert.False(t, m.editing)
	assert.True(t, m.showError)
	assert.Contains(t, m.View(), "Сервер недоступен")
}

func TestMainLoop_DetailFollowsList(t *testing.T) {
	m, _ := newTestModel(t, testNotes)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.detail)
	assert.Equal(t, "n2", m.detailID)
	assert.Contains(t, m.View(), "**big**")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.detail)
}

func TestMainLoop_LiveUpdatesLostIndicator(t *testing.T) {
	m, _ := newTestModel(t, testNotes)

	m = update(t, m, mountDoneMsg{err: errors.Join(service.ErrSubscriptionClosed, errors.New("eof"))})
	view := m.View()
	assert.Contains(t, view, "Обновления в реальном времени потеряны")
	assert.Contains(t, view, "r: переподключиться")

	m, cmd := updateCmd(t, m, runes("r"))
	require.NotNil(t, cmd)
	assert.True(t, m.mounting)
	assert.Equal(t, mountDoneMsg{}, cmd(), "subscriber is already running, mount is a no-op")
}

func TestMainLoop_BuildInfo(t *testing.T) {
	m, store := newTestModel(t, testNotes)

	store.EXPECT().GetServerVersion(gomock.Any()).Return(models.ServerVersion{Version: "9.9.9"}, nil)

	m, cmd := updateCmd(t, m, runes("v"))
	require.True(t, m.showBuildInfo)
	m = update(t, m, cmd())

	view := m.View()
	assert.Contains(t, view, "GoNotesKeeper")
	assert.Contains(t, view, "9.9.9")
	assert.Contains(t, view, "1.0.0")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.showBuildInfo)
}

func TestMainLoop_Quit(t *testing.T) {
	m, _ := newTestModel(t, testNotes)

	_, cmd := updateCmd(t, m, runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "abc", fitText("abc", 5))
	assert.Equal(t, "привет...", fitText("приветствие мир", 9))
	assert.Equal(t, "ab", fitText("abcdef", 2))
}
