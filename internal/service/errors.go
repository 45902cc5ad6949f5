// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrVersionIsNotSpecified = errors.New("application version is not specified")
	ErrNilRepository         = errors.New("note repository is nil")
)

// Client-side errors.
var (
	ErrNoteNotFound       = errors.New("note not found")
	ErrNoteRejected       = errors.New("note rejected by the server")
	ErrServerUnavailable  = errors.New("notes server is unavailable")
	ErrWriteTimedOut      = errors.New("write timed out")
	ErrSubscriptionClosed = errors.New("live updates were interrupted")
)
