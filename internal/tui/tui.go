// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal front end of the notes client: the live note
// list, the archive, the note detail view and the compose/edit form.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/models"
)

var ErrNilServices = errors.New("client services are nil")

type TUI struct {
	services   *service.ClientServices
	buildInfo  models.AppBuildInfo
	appVersion string
	logger     *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, appVersion string, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, ErrNilServices
	}
	return &TUI{
		services:   services,
		buildInfo:  buildInfo,
		appVersion: appVersion,
		logger:     logger,
	}, nil
}

// MainLoop runs the notes screen until the user quits or ctx is cancelled.
// The live subscription is mounted on start and unmounted on return.
func (t *TUI) MainLoop(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer t.services.Subscriber.Unmount()

	model := newMainLoopModel(ctx, t.services, t.buildInfo, t.appVersion)
	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		t.logger.Err(err).Str("func", "TUI.MainLoop").Msg("terminal UI stopped with error")
		return err
	}

	t.logger.Info().Msg("terminal UI closed")
	return nil
}
