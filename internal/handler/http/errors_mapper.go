// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	utils.ErrBodyTooLarge:          http.StatusRequestEntityTooLarge,
	context.DeadlineExceeded:       http.StatusGatewayTimeout,

	store.ErrNoteNotFound:      http.StatusNotFound,
	store.ErrNoteAlreadyExists: http.StatusConflict,
	store.ErrNothingToUpdate:   http.StatusBadRequest,
	store.ErrNoteNotSaved:      http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and answers with its mapped status. Client errors
// carry the error text so the caller sees what was rejected; server errors
// carry only msg.
func writeError(w http.ResponseWriter, r *http.Request, fn, msg string, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Str("func", fn).Int("status", status).Msg(msg)

	body := msg
	if status < http.StatusInternalServerError {
		body = err.Error()
	}
	http.Error(w, body, status)
}
