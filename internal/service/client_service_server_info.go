// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/models"
)

type serverInfoService struct {
	store adapter.NoteStoreAdapter
}

func NewServerInfoService(store adapter.NoteStoreAdapter) ServerInfoService {
	return &serverInfoService{store: store}
}

func (s *serverInfoService) GetServerVersion(ctx context.Context) (models.ServerVersion, error) {
	v, err := s.store.GetServerVersion(ctx)
	if err != nil {
		return models.ServerVersion{}, fmt.Errorf("get server version: %w", mapAdapterError(err))
	}
	return v, nil
}
