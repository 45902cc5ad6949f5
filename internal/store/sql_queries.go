// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-notes-keeper/models"
)

const notesTable = "notes"

var noteColumns = []string{
	"id",
	"title",
	"content",
	"color",
	"is_pinned",
	"is_archived",
	"created_at",
}

// buildInsertNoteQuery renders the INSERT for a single note.
func buildInsertNoteQuery(b sq.StatementBuilderType, note models.Note) (string, []any, error) {
	return b.Insert(notesTable).
		Columns(noteColumns...).
		Values(
			note.ID,
			note.Title,
			note.Content,
			string(note.Color.OrDefault()),
			note.IsPinned,
			note.IsArchived,
			note.CreatedAt,
		).
		ToSql()
}

// buildListNotesQuery selects the whole collection newest first. id breaks
// ties between notes created in the same millisecond.
func buildListNotesQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(noteColumns...).
		From(notesTable).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
}

func buildUpdateNoteQuery(b sq.StatementBuilderType, id string, update models.NoteUpdate) (string, []any, error) {
	query := b.Update(notesTable)

	if update.Title != nil {
		query = query.Set("title", *update.Title)
	}
	if update.Content != nil {
		query = query.Set("content", *update.Content)
	}
	if update.Color != nil {
		query = query.Set("color", string(update.Color.OrDefault()))
	}
	if update.IsPinned != nil {
		query = query.Set("is_pinned", *update.IsPinned)
	}
	if update.IsArchived != nil {
		query = query.Set("is_archived", *update.IsArchived)
	}

	return query.Where(sq.Eq{"id": id}).ToSql()
}

func buildDeleteNoteQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return b.Delete(notesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}
