// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// Services aggregates the server-side services.
type Services struct {
	NoteService    NoteService
	SnapshotHub    SnapshotHub
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	if storages == nil || storages.NoteRepository == nil {
		return nil, ErrNilRepository
	}

	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	hub := NewSnapshotHub(storages.NoteRepository, cfg.Workers.SnapshotDebounce, logger)
	noteService := NewNoteValidationService().
		Wrap(NewNoteService(storages.NoteRepository, hub, utils.NewUUIDGenerator(), logger))

	return &Services{
		NoteService:    noteService,
		SnapshotHub:    hub,
		AppInfoService: appInfoService,
	}, nil
}
