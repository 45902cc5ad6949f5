// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
)

type noteService struct {
	noteRepository store.NoteRepository
	notifier       ChangeNotifier
	ids            utils.IDGenerator

	logger *logger.Logger
}

// NewNoteService returns a NoteService over noteRepository. notifier is
// signalled after every write that reached the database.
func NewNoteService(noteRepository store.NoteRepository, notifier ChangeNotifier, ids utils.IDGenerator, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository: noteRepository,
		notifier:       notifier,
		ids:            ids,
		logger:         logger,
	}
}

func (n *noteService) CreateNote(ctx context.Context, req models.CreateNoteRequest) (models.Note, error) {
	note := models.Note{
		ID:         n.ids.Generate(),
		Title:      req.Title,
		Content:    req.Content,
		Color:      req.Color.OrDefault(),
		IsPinned:   req.IsPinned,
		IsArchived: req.IsArchived,
		CreatedAt:  req.CreatedAt,
	}

	if err := n.noteRepository.CreateNote(ctx, note); err != nil {
		return models.Note{}, fmt.Errorf("create note: %w", err)
	}
	noteWritesTotal.WithLabelValues("create").Inc()
	n.notifier.Notify()

	logger.FromContext(ctx).Debug().
		Str("func", "noteService.CreateNote").
		Str("note_id", note.ID).
		Msg("note created")

	return note, nil
}

func (n *noteService) ListNotes(ctx context.Context) ([]models.Note, error) {
	notes, err := n.noteRepository.ListNotes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return notes, nil
}

func (n *noteService) UpdateNote(ctx context.Context, id string, update models.NoteUpdate) error {
	if update.Color != nil {
		update.Color = models.Ptr(update.Color.OrDefault())
	}

	if err := n.noteRepository.UpdateNote(ctx, id, update); err != nil {
		return fmt.Errorf("update note %s: %w", id, err)
	}
	noteWritesTotal.WithLabelValues("update").Inc()
	n.notifier.Notify()
	return nil
}

func (n *noteService) DeleteNote(ctx context.Context, id string) error {
	if err := n.noteRepository.DeleteNote(ctx, id); err != nil {
		return fmt.Errorf("delete note %s: %w", id, err)
	}
	noteWritesTotal.WithLabelValues("delete").Inc()
	n.notifier.Notify()
	return nil
}
