// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Projection is the rendered partition of the main notes view.
// Pinned is always rendered above Unpinned.
type Projection struct {
	Pinned   []Note
	Unpinned []Note
}

// All returns pinned notes followed by unpinned notes.
func (p Projection) All() []Note {
	out := make([]Note, 0, p.Len())
	out = append(out, p.Pinned...)
	return append(out, p.Unpinned...)
}

// Len returns the total number of projected notes.
func (p Projection) Len() int {
	return len(p.Pinned) + len(p.Unpinned)
}
