// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/go-notes-keeper/models"

// notesChangedMsg means the subscriber has a new list or a new error.
type notesChangedMsg struct{}

type mountDoneMsg struct {
	err error
}

type writeOp int

const (
	opSave writeOp = iota
	opPin
	opArchive
	opDelete
)

type writeDoneMsg struct {
	op  writeOp
	err error

	// editorGen is the editor generation the write was issued from.
	editorGen int
}

type serverVersionMsg struct {
	version models.ServerVersion
	err     error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
