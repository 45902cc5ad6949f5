// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/models"
)

// NoteService is the write and read surface of the notes collection.
// Every successful write signals the snapshot hub so live subscribers
// receive the new collection.
type NoteService interface {
	// CreateNote assigns an id, normalises the color and persists the note.
	// Returns the stored note.
	CreateNote(ctx context.Context, req models.CreateNoteRequest) (models.Note, error)

	// ListNotes returns the collection ordered by createdAt descending.
	ListNotes(ctx context.Context) ([]models.Note, error)

	// UpdateNote writes the non-nil fields of update to note id.
	UpdateNote(ctx context.Context, id string, update models.NoteUpdate) error

	// DeleteNote removes note id permanently.
	DeleteNote(ctx context.Context, id string) error
}

// NoteServiceWrapper defines middleware composition for NoteService.
// Implementations wrap an existing NoteService to add behavior such as
// logging or validating.
type NoteServiceWrapper interface {
	Wrap(NoteService) NoteService // returns a decorated NoteService applying additional behavior
}

// ChangeNotifier is told that the collection changed.
type ChangeNotifier interface {
	// Notify never blocks. Signals issued while a refresh is pending are
	// coalesced into that refresh.
	Notify()
}

// SnapshotHub fans full snapshots of the collection out to live subscribers.
type SnapshotHub interface {
	ChangeNotifier

	// Subscribe registers a subscriber. The returned channel holds at most
	// one undelivered snapshot: a newer snapshot replaces an older one the
	// subscriber has not read yet. The current snapshot, if any, is
	// delivered immediately. The channel is closed by unsubscribe or when
	// the hub stops. unsubscribe is idempotent.
	Subscribe() (snapshots <-chan models.Snapshot, unsubscribe func())

	// Run queries and broadcasts on every change until ctx is done.
	Run(ctx context.Context) error
}

// AppInfoService exposes build metadata of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
