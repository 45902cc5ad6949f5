// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// DraftMode describes what the local edit buffer is currently doing.
type DraftMode int

const (
	// DraftEmpty means no composition is active.
	DraftEmpty DraftMode = iota
	// DraftComposing means a new note is being built.
	DraftComposing
	// DraftEditing means an existing note is being edited.
	DraftEditing
)

// String returns a short human-readable mode name.
func (m DraftMode) String() string {
	switch m {
	case DraftComposing:
		return "composing"
	case DraftEditing:
		return "editing"
	default:
		return "empty"
	}
}

// Draft is the transient local edit buffer. It is never persisted as its own
// entity. In editing mode it holds a copy of the note fields and the note id,
// never a reference to the note itself.
type Draft struct {
	NoteFields

	Mode DraftMode

	// NoteID is the bound note in DraftEditing mode and empty otherwise.
	NoteID string
}

// IsBlank reports whether both title and content are blank after trimming.
func (d Draft) IsBlank() bool {
	return strings.TrimSpace(d.Title) == "" && strings.TrimSpace(d.Content) == ""
}
