// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
)

type editSession struct {
	store adapter.NoteStoreAdapter
	clock Clock

	mu    sync.Mutex
	draft models.Draft
	// base holds the note fields as they were at StartEdit.
	base models.NoteFields
	// rev changes on every Draft mutation so Submit can tell whether the
	// user kept typing while the write was in flight.
	rev uint64

	logger *logger.Logger
}

// NewEditSession returns an EditSession writing through store. clock stamps
// createdAt on new notes; nil means time.Now.
func NewEditSession(store adapter.NoteStoreAdapter, clock Clock, logger *logger.Logger) EditSession {
	if clock == nil {
		clock = time.Now
	}
	return &editSession{
		store:  store,
		clock:  clock,
		logger: logger,
	}
}

func (e *editSession) StartCompose() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.draft.Mode == models.DraftComposing {
		return
	}
	e.reset(models.DraftComposing)
}

func (e *editSession) StartEdit(note models.Note) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.base = note.Fields()
	e.draft = models.Draft{
		NoteFields: note.Fields(),
		Mode:       models.DraftEditing,
		NoteID:     note.ID,
	}
	e.rev++
}

func (e *editSession) CancelEdit() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.reset(models.DraftEmpty)
}

// reset replaces the Draft with a blank one in mode. Callers hold mu.
func (e *editSession) reset(mode models.DraftMode) {
	e.draft = models.Draft{Mode: mode}
	if mode == models.DraftComposing {
		e.draft.Color = models.ColorNeutral
	}
	e.base = models.NoteFields{}
	e.rev++
}

// edit applies fn to the Draft, moving an empty Draft into composing first.
func (e *editSession) edit(fn func(d *models.Draft)) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.draft.Mode == models.DraftEmpty {
		e.reset(models.DraftComposing)
	}
	fn(&e.draft)
	e.rev++
}

func (e *editSession) SetTitle(title string) {
	e.edit(func(d *models.Draft) { d.Title = title })
}

func (e *editSession) SetContent(content string) {
	e.edit(func(d *models.Draft) { d.Content = content })
}

func (e *editSession) SetColor(color models.Color) {
	e.edit(func(d *models.Draft) { d.Color = color.OrDefault() })
}

func (e *editSession) SetPinned(pinned bool) {
	e.edit(func(d *models.Draft) { d.IsPinned = pinned })
}

func (e *editSession) Submit(ctx context.Context) error {
	e.mu.Lock()
	draft, base, rev := e.draft, e.base, e.rev
	e.mu.Unlock()

	if draft.IsBlank() {
		e.logger.Debug().Str("mode", draft.Mode.String()).Msg("blank draft dropped")
		return nil
	}

	var err error
	switch draft.Mode {
	case models.DraftEditing:
		err = e.store.UpdateNote(ctx, draft.NoteID, draftUpdate(draft, base))
	default:
		req := models.CreateNoteRequest{
			NoteFields: draft.NoteFields,
			CreatedAt:  e.clock().UnixMilli(),
		}
		_, err = e.store.CreateNote(ctx, req)
	}
	if err != nil {
		err = mapAdapterError(err)
		e.logger.Err(err).
			Str("func", "editSession.Submit").
			Str("mode", draft.Mode.String()).
			Str("note_id", draft.NoteID).
			Msg("draft write failed, draft kept")
		return fmt.Errorf("submit %s draft: %w", draft.Mode, err)
	}

	e.mu.Lock()
	if e.rev == rev {
		e.reset(models.DraftEmpty)
	}
	e.mu.Unlock()

	return nil
}

// draftUpdate always carries the text fields and the color; the flags are
// sent only when the user changed them, so a concurrent toggle from the list
// is not undone by saving the editor.
func draftUpdate(draft models.Draft, base models.NoteFields) models.NoteUpdate {
	update := models.NoteUpdate{
		Title:   models.Ptr(draft.Title),
		Content: models.Ptr(draft.Content),
		Color:   models.Ptr(draft.Color.OrDefault()),
	}
	if draft.IsPinned != base.IsPinned {
		update.IsPinned = models.Ptr(draft.IsPinned)
	}
	if draft.IsArchived != base.IsArchived {
		update.IsArchived = models.Ptr(draft.IsArchived)
	}
	return update
}

func (e *editSession) TogglePin(ctx context.Context, note models.Note) error {
	update := models.NoteUpdate{IsPinned: models.Ptr(!note.IsPinned)}
	if err := e.store.UpdateNote(ctx, note.ID, update); err != nil {
		return fmt.Errorf("toggle pin of %s: %w", note.ID, mapAdapterError(err))
	}
	return nil
}

func (e *editSession) ToggleArchive(ctx context.Context, note models.Note) error {
	update := models.NoteUpdate{IsArchived: models.Ptr(!note.IsArchived)}
	if err := e.store.UpdateNote(ctx, note.ID, update); err != nil {
		return fmt.Errorf("toggle archive of %s: %w", note.ID, mapAdapterError(err))
	}
	return nil
}

func (e *editSession) Delete(ctx context.Context, id string) error {
	if err := e.store.DeleteNote(ctx, id); err != nil {
		return fmt.Errorf("delete note %s: %w", id, mapAdapterError(err))
	}
	return nil
}

func (e *editSession) Draft() models.Draft {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.draft
}
