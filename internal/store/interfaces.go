// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/note_repository_mock.go -package=mock

// NoteRepository persists notes.
//
// Implementations never enforce the "title or content" rule; that belongs to
// the writer. ListNotes always returns notes ordered by CreatedAt descending.
type NoteRepository interface {
	// CreateNote inserts a fully populated note (ID and CreatedAt included).
	CreateNote(ctx context.Context, note models.Note) error

	// ListNotes returns the whole collection, newest first.
	ListNotes(ctx context.Context) ([]models.Note, error)

	// UpdateNote writes the non-nil fields of update. Returns
	// [ErrNoteNotFound] when no row has the given id and
	// [ErrNothingToUpdate] when update carries no field.
	UpdateNote(ctx context.Context, id string, update models.NoteUpdate) error

	// DeleteNote removes a note permanently. Returns [ErrNoteNotFound] when
	// no row has the given id.
	DeleteNote(ctx context.Context, id string) error
}

// ErrorClassification says whether a failed database operation may succeed
// when attempted again.
type ErrorClassification int

const (
	// NonRetryable is the default for unrecognised errors.
	NonRetryable ErrorClassification = iota

	// Retryable marks transient failures (lost connection, deadlock, busy file).
	Retryable
)

// ErrorClassificator classifies backend-specific errors.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
