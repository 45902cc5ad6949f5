// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
)

const (
	notesPath     = "/api/notes/"
	subscribePath = "/api/notes/subscribe"
	versionPath   = "/api/version/"

	handshakeTimeout = 10 * time.Second
)

type httpNoteStoreAdapter struct {
	client *utils.HTTPClient

	wsURL  string
	dialer *websocket.Dialer

	logger *logger.Logger
}

// NewHTTPNoteStoreAdapter constructs the HTTP/websocket implementation of
// [NoteStoreAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress, derives the websocket URL from it, and bounds every
// write with adapterCfg.RequestTimeout.
//
// Returns an error wrapping [ErrInvalidAddress] if the address cannot be
// parsed as an http(s) URL.
func NewHTTPNoteStoreAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (NoteStoreAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	wsURL, err := websocketURL(baseURL, subscribePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	return &httpNoteStoreAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		wsURL:  wsURL,
		dialer: &websocket.Dialer{
			HandshakeTimeout: handshakeTimeout,
		},
		logger: logger.Component("adapter"),
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("address must include host")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// websocketURL maps http to ws and https to wss and appends path.
func websocketURL(baseURL, path string) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", err
	}

	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	default:
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	u.Path = strings.TrimRight(u.Path, "/") + path

	return u.String(), nil
}

// CreateNote implements [NoteStoreAdapter]. It POSTs req to /api/notes/ and
// decodes the stored note from the 201 response.
func (h *httpNoteStoreAdapter) CreateNote(ctx context.Context, req models.CreateNoteRequest) (models.Note, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		Post(notesPath)
	if err != nil {
		return models.Note{}, classifyTransportError("create note request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	var note models.Note
	if err = json.Unmarshal(resp.Body(), &note); err != nil {
		return models.Note{}, fmt.Errorf("decode created note: %w", err)
	}
	return note, nil
}

// UpdateNote implements [NoteStoreAdapter]. It PATCHes /api/notes/{id}.
func (h *httpNoteStoreAdapter) UpdateNote(ctx context.Context, id string, update models.NoteUpdate) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(update).
		SetPathParam("id", id).
		Patch(notesPath + "{id}")
	if err != nil {
		return classifyTransportError("update note request", err)
	}

	return mapHTTPError(resp)
}

// DeleteNote implements [NoteStoreAdapter]. It DELETEs /api/notes/{id}.
func (h *httpNoteStoreAdapter) DeleteNote(ctx context.Context, id string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", id).
		Delete(notesPath + "{id}")
	if err != nil {
		return classifyTransportError("delete note request", err)
	}

	return mapHTTPError(resp)
}

// GetServerVersion implements [NoteStoreAdapter].
func (h *httpNoteStoreAdapter) GetServerVersion(ctx context.Context) (models.ServerVersion, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(versionPath)
	if err != nil {
		return models.ServerVersion{}, classifyTransportError("server version request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ServerVersion{}, err
	}

	var version models.ServerVersion
	if err = json.Unmarshal(resp.Body(), &version); err != nil {
		return models.ServerVersion{}, fmt.Errorf("decode server version response: %w", err)
	}
	return version, nil
}
