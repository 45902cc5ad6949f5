// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-notes-keeper/models"
)

// Clock returns the current time. Submit stamps createdAt from it.
type Clock func() time.Time

// NoteSubscriber keeps the client's copy of the notes collection in sync with
// the store. The list is written only by the subscriber's snapshot loop and
// every snapshot replaces it wholesale.
type NoteSubscriber interface {
	// Mount opens the live subscription. It is a no-op while a subscription
	// is running; after a failure it dials again, which is how the user
	// resubscribes. The subscription stops when ctx is cancelled.
	Mount(ctx context.Context) error

	// Unmount stops the subscription and waits for the snapshot loop to exit.
	// No snapshot is applied and no change is signalled after it returns.
	// Safe to call more than once.
	Unmount()

	// Notes returns a copy of the current list in snapshot order.
	Notes() []models.Note

	// Changes signals that the list or the subscription state changed.
	// Signals coalesce; the channel is never closed.
	Changes() <-chan struct{}

	// Err returns the last subscription failure, nil while healthy.
	Err() error
}

// EditSession owns the single in-flight Draft and issues the writes that
// turn it into a note. Writes go straight to the store; the result becomes
// visible only through the next snapshot.
type EditSession interface {
	// StartCompose switches to composing a new note. A composing Draft is
	// kept as is.
	StartCompose()

	// StartEdit copies note's editable fields into the Draft and binds it to
	// note.ID, discarding any composing Draft.
	StartEdit(note models.Note)

	// CancelEdit empties the Draft without writing anything.
	CancelEdit()

	SetTitle(title string)
	SetContent(content string)
	SetColor(color models.Color)
	SetPinned(pinned bool)

	// Submit writes the Draft. A Draft whose title and content are both
	// blank is silently dropped. On failure the Draft is kept.
	Submit(ctx context.Context) error

	// TogglePin flips the pin flag of note with a single-field update.
	TogglePin(ctx context.Context, note models.Note) error

	// ToggleArchive flips the archive flag of note with a single-field update.
	ToggleArchive(ctx context.Context, note models.Note) error

	// Delete removes the note permanently.
	Delete(ctx context.Context, id string) error

	// Draft returns a copy of the current Draft.
	Draft() models.Draft
}

// ServerInfoService reports which notes server the client talks to.
type ServerInfoService interface {
	GetServerVersion(ctx context.Context) (models.ServerVersion, error)
}
