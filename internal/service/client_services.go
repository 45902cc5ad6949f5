// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
)

type ClientServices struct {
	Subscriber  NoteSubscriber
	EditSession EditSession
	ServerInfo  ServerInfoService
}

func NewClientServices(store adapter.NoteStoreAdapter, clock Clock, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		Subscriber:  NewNoteSubscriber(store, logger.Component("subscriber")),
		EditSession: NewEditSession(store, clock, logger.Component("edit_session")),
		ServerInfo:  NewServerInfoService(store),
	}
}
