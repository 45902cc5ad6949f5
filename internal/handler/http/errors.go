// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrHijackNotSupported is returned by the logging response writer when
	// the underlying writer cannot hand over its connection.
	ErrHijackNotSupported = errors.New("underlying response writer does not support hijacking")

	// ErrEmptyNoteID is returned when a note route is hit without an id.
	ErrEmptyNoteID = errors.New("empty note id")
)
