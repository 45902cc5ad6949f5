// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the notes server.
//
// The primary abstraction is [NoteStoreAdapter], which decouples the client
// services from the underlying protocol. Writes travel over HTTP/REST via
// resty; the live collection arrives over a websocket as full snapshots.
//
// Error values defined in errors.go are mapped from HTTP status codes and
// transport failures by mapHTTPError and classifyTransportError, so callers
// can use [errors.Is] for transport-agnostic error handling (e.g.
// [ErrNotFound] for 404, [ErrRequestTimeout] for a write that timed out).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/note_store_adapter_mock.go -package=mock

// NoteStoreAdapter defines transport-agnostic communication with the notes
// server.
type NoteStoreAdapter interface {
	// CreateNote sends a create write. Returns the stored note with the id
	// assigned by the server.
	CreateNote(ctx context.Context, req models.CreateNoteRequest) (models.Note, error)

	// UpdateNote sends a partial update for note id. Only non-nil fields of
	// update are transmitted.
	UpdateNote(ctx context.Context, id string, update models.NoteUpdate) error

	// DeleteNote removes note id permanently.
	DeleteNote(ctx context.Context, id string) error

	// Subscribe opens a live subscription to the collection ordered by
	// createdAt descending. The first snapshot is the current collection.
	// ctx bounds only the handshake; the subscription lives until Close.
	Subscribe(ctx context.Context) (Subscription, error)

	// GetServerVersion fetches the server build information.
	GetServerVersion(ctx context.Context) (models.ServerVersion, error)
}

// Subscription is a standing stream of full collection snapshots.
type Subscription interface {
	// Snapshots delivers snapshots in the order the server pushed them. The
	// channel is closed when the stream ends for any reason.
	Snapshots() <-chan models.Snapshot

	// Err reports why the stream ended. It is nil while the stream is open
	// and after a Close initiated by the caller.
	Err() error

	// Close tears the stream down. Safe to call more than once.
	Close() error
}
