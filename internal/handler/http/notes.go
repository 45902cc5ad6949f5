// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// listNotes answers with the whole collection, newest first. The body is
// tagged with an ETag so a polling caller can revalidate cheaply.
func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := h.services.NoteService.ListNotes(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.listNotes", "error listing notes", err)
		return
	}
	if notes == nil {
		notes = []models.Note{}
	}

	body, err := json.Marshal(notes)
	if err != nil {
		writeError(w, r, "*Handler.listNotes", "error encoding notes", err)
		return
	}

	etag := utils.ETag(body)
	w.Header().Set("ETag", etag)
	if utils.ETagMatches(r.Header.Get("If-None-Match"), etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	var req models.CreateNoteRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, "*Handler.createNote", "invalid JSON was passed", err)
		return
	}

	note, err := h.services.NoteService.CreateNote(r.Context(), req)
	if err != nil {
		writeError(w, r, "*Handler.createNote", "error creating note", err)
		return
	}

	utils.WriteJSON(w, note, http.StatusCreated)
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		http.Error(w, ErrEmptyNoteID.Error(), http.StatusBadRequest)
		return
	}

	var update models.NoteUpdate
	if err := decodeBody(r, &update); err != nil {
		writeError(w, r, "*Handler.updateNote", "invalid JSON was passed", err)
		return
	}

	if err := h.services.NoteService.UpdateNote(r.Context(), id, update); err != nil {
		writeError(w, r, "*Handler.updateNote", "error updating note", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		http.Error(w, ErrEmptyNoteID.Error(), http.StatusBadRequest)
		return
	}

	if err := h.services.NoteService.DeleteNote(r.Context(), id); err != nil {
		writeError(w, r, "*Handler.deleteNote", "error deleting note", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// decodeBody decodes the JSON body into dst. Malformed JSON is reported as
// invalid data so it maps to 400.
func decodeBody(r *http.Request, dst any) error {
	err := utils.DecodeJSON(r, dst)
	if err == nil || errors.Is(err, utils.ErrBodyTooLarge) {
		return err
	}
	return fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err)
}
