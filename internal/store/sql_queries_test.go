// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-notes-keeper/models"
)

var (
	dollarBuilder   = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	questionBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

func TestBuildInsertNoteQuery(t *testing.T) {
	note := models.Note{ID: "n1", Title: "A", Content: "<p>x</p>", CreatedAt: 42}

	query, args, err := buildInsertNoteQuery(dollarBuilder, note)
	require.NoError(t, err)

	assert.Equal(t,
		"INSERT INTO notes (id,title,content,color,is_pinned,is_archived,created_at) VALUES ($1,$2,$3,$4,$5,$6,$7)",
		query)
	// пустой цвет превращается в neutral
	assert.Equal(t, []any{"n1", "A", "<p>x</p>", "neutral", false, false, int64(42)}, args)
}

func TestBuildListNotesQuery(t *testing.T) {
	query, args, err := buildListNotesQuery(questionBuilder)
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT id, title, content, color, is_pinned, is_archived, created_at FROM notes ORDER BY created_at DESC, id DESC",
		query)
	assert.Empty(t, args)
}

func TestBuildUpdateNoteQuery(t *testing.T) {
	tests := []struct {
		name      string
		builder   sq.StatementBuilderType
		update    models.NoteUpdate
		wantQuery string
		wantArgs  []any
	}{
		{
			name:      "single pin toggle",
			builder:   dollarBuilder,
			update:    models.NoteUpdate{IsPinned: models.Ptr(true)},
			wantQuery: "UPDATE notes SET is_pinned = $1 WHERE id = $2",
			wantArgs:  []any{true, "n1"},
		},
		{
			name:    "full edit",
			builder: dollarBuilder,
			update: models.NoteUpdate{
				Title:   models.Ptr("T"),
				Content: models.Ptr("C"),
				Color:   models.Ptr(models.ColorBlue),
			},
			wantQuery: "UPDATE notes SET title = $1, content = $2, color = $3 WHERE id = $4",
			wantArgs:  []any{"T", "C", "blue", "n1"},
		},
		{
			name:      "archive with question placeholders",
			builder:   questionBuilder,
			update:    models.NoteUpdate{IsArchived: models.Ptr(true)},
			wantQuery: "UPDATE notes SET is_archived = ? WHERE id = ?",
			wantArgs:  []any{true, "n1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildUpdateNoteQuery(tt.builder, "n1", tt.update)
			require.NoError(t, err)
			assert.Equal(t, tt.wantQuery, query)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestBuildUpdateNoteQuery_EmptyUpdateFails(t *testing.T) {
	_, _, err := buildUpdateNoteQuery(dollarBuilder, "n1", models.NoteUpdate{})
	assert.Error(t, err)
}

func TestBuildDeleteNoteQuery(t *testing.T) {
	query, args, err := buildDeleteNoteQuery(dollarBuilder, "n1")
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM notes WHERE id = $1", query)
	assert.Equal(t, []any{"n1"}, args)
}
