// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// TestNoteRepository_SQLiteRoundTrip runs the repository against a real
// SQLite file with the embedded migrations applied.
func TestNoteRepository_SQLiteRoundTrip(t *testing.T) {
	ctx := testContext()
	dsn := filepath.Join(t.TempDir(), "nested", "notes.db")

	storages, err := NewStorages(ctx, config.Storage{DB: config.DB{DSN: dsn}}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	repo := storages.NoteRepository

	require.NoError(t, repo.CreateNote(ctx, models.Note{ID: "old", Title: "old", CreatedAt: 100}))
	require.NoError(t, repo.CreateNote(ctx, models.Note{ID: "new", Content: "<p>new</p>", Color: models.ColorTeal, CreatedAt: 200}))
	assert.ErrorIs(t, repo.CreateNote(ctx, models.Note{ID: "new", CreatedAt: 300}), ErrNoteAlreadyExists)

	notes, err := repo.ListNotes(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "new", notes[0].ID)
	assert.Equal(t, "old", notes[1].ID)
	assert.Equal(t, models.ColorNeutral, notes[1].Color)

	require.NoError(t, repo.UpdateNote(ctx, "old", models.NoteUpdate{IsPinned: models.Ptr(true)}))
	notes, err = repo.ListNotes(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.True(t, notes[1].IsPinned)
	assert.Equal(t, "old", notes[1].Title)

	assert.ErrorIs(t, repo.UpdateNote(ctx, "ghost", models.NoteUpdate{IsPinned: models.Ptr(true)}), ErrNoteNotFound)

	require.NoError(t, repo.DeleteNote(ctx, "old"))
	assert.ErrorIs(t, repo.DeleteNote(ctx, "old"), ErrNoteNotFound)

	notes, err = repo.ListNotes(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "new", notes[0].ID)
}

func TestStorages_CloseNil(t *testing.T) {
	var s *Storages
	assert.NoError(t, s.Close())
}
