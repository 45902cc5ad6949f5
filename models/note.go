// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Note is a single user-authored entry stored in the notes collection.
//
// ID and CreatedAt are immutable once the store has accepted the note.
// CreatedAt is the only sort key of the collection (descending).
type Note struct {
	// ID is assigned by the store on creation.
	ID string `json:"id"`

	// Title is optional and may be empty.
	Title string `json:"title"`

	// Content is an HTML fragment produced by the rich-text editor.
	// It may be empty.
	Content string `json:"content"`

	// Color is a tag from the fixed palette. Empty means ColorNeutral.
	Color Color `json:"color"`

	// IsPinned places the note in the pinned group of the main view.
	IsPinned bool `json:"isPinned"`

	// IsArchived hides the note from the main view.
	IsArchived bool `json:"isArchived"`

	// CreatedAt is the creation time in epoch milliseconds.
	CreatedAt int64 `json:"createdAt"`
}

// Fields returns the editable part of the note.
func (n Note) Fields() NoteFields {
	return NoteFields{
		Title:      n.Title,
		Content:    n.Content,
		Color:      n.Color,
		IsPinned:   n.IsPinned,
		IsArchived: n.IsArchived,
	}
}

// NoteFields is the shape of a Note without its identity and creation stamp.
type NoteFields struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	Color      Color  `json:"color"`
	IsPinned   bool   `json:"isPinned"`
	IsArchived bool   `json:"isArchived"`
}

// CreateNoteRequest is the payload of a create write.
type CreateNoteRequest struct {
	NoteFields

	// CreatedAt is stamped by the writer at submit time (epoch ms).
	CreatedAt int64 `json:"createdAt"`
}

// NoteUpdate is a partial update of a single note.
// Only non-nil fields are written.
type NoteUpdate struct {
	Title      *string `json:"title,omitempty"`
	Content    *string `json:"content,omitempty"`
	Color      *Color  `json:"color,omitempty"`
	IsPinned   *bool   `json:"isPinned,omitempty"`
	IsArchived *bool   `json:"isArchived,omitempty"`
}

// IsEmpty reports whether the update carries no field at all.
func (u NoteUpdate) IsEmpty() bool {
	return u.Title == nil && u.Content == nil && u.Color == nil && u.IsPinned == nil && u.IsArchived == nil
}

// Apply returns a copy of n with every non-nil field of u written over it.
func (u NoteUpdate) Apply(n Note) Note {
	if u.Title != nil {
		n.Title = *u.Title
	}
	if u.Content != nil {
		n.Content = *u.Content
	}
	if u.Color != nil {
		n.Color = *u.Color
	}
	if u.IsPinned != nil {
		n.IsPinned = *u.IsPinned
	}
	if u.IsArchived != nil {
		n.IsArchived = *u.IsArchived
	}
	return n
}

// Ptr returns a pointer to v. Handy for building NoteUpdate literals.
func Ptr[T any](v T) *T {
	return &v
}
