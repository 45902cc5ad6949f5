// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"strings"

	"github.com/MKhiriev/go-notes-keeper/models"
)

// ProjectNotes derives the main view from notes: archived notes are dropped,
// the rest are filtered by search and split into pinned and unpinned groups.
// Input order is kept inside each group. An empty search matches every note.
func ProjectNotes(notes []models.Note, search string) models.Projection {
	term := strings.ToLower(search)

	p := models.Projection{
		Pinned:   []models.Note{},
		Unpinned: []models.Note{},
	}
	for _, n := range notes {
		if n.IsArchived || !matches(n, term) {
			continue
		}
		if n.IsPinned {
			p.Pinned = append(p.Pinned, n)
		} else {
			p.Unpinned = append(p.Unpinned, n)
		}
	}
	return p
}

// ProjectArchive returns the archived notes matching search, in input order.
func ProjectArchive(notes []models.Note, search string) []models.Note {
	term := strings.ToLower(search)

	out := []models.Note{}
	for _, n := range notes {
		if n.IsArchived && matches(n, term) {
			out = append(out, n)
		}
	}
	return out
}

// matches expects term already lower-cased.
func matches(n models.Note, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(n.Title), term) ||
		strings.Contains(strings.ToLower(n.Content), term)
}
