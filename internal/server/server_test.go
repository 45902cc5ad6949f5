// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/handler"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/workers"
	"github.com/MKhiriev/go-notes-keeper/models"
)

const (
	waitFor = 5 * time.Second
	tick    = 10 * time.Millisecond
)

// startServer поднимает полный сервер поверх временной SQLite базы и
// возвращает его базовый URL.
func startServer(t *testing.T) string {
	t.Helper()
	log := logger.Nop()
	ctx, cancel := context.WithCancel(context.Background())

	cfg := config.StructuredConfig{
		App:     config.App{Version: "test"},
		Storage: config.Storage{DB: config.DB{DSN: filepath.Join(t.TempDir(), "notes.db")}},
		Server:  config.Server{HTTPAddress: "127.0.0.1:0", RequestTimeout: 5 * time.Second},
		Workers: config.Workers{SnapshotDebounce: 5 * time.Millisecond},
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	require.NoError(t, err)

	services, err := service.NewServices(storages, cfg, models.NewAppBuildInfo("v0.0.1", "today", "abc123"), log)
	require.NoError(t, err)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	require.NoError(t, err)

	srv, err := NewServer(handlers, workers.NewWorkers(services.SnapshotHub), cfg.Server, log)
	require.NoError(t, err)

	runErr := make(chan error, 1)
	go func() { runErr <- srv.Run(ctx) }()

	s := srv.(*server)
	select {
	case <-s.httpServer.ready:
	case err = <-runErr:
		t.Fatalf("server stopped before listening: %v", err)
	case <-time.After(waitFor):
		t.Fatal("server did not start listening")
	}

	t.Cleanup(func() {
		cancel()
		select {
		case err := <-runErr:
			assert.NoError(t, err)
		case <-time.After(waitFor):
			t.Error("server did not shut down")
		}
		assert.NoError(t, storages.Close())
	})

	return "http://" + s.httpServer.addr.String()
}

func newClient(t *testing.T, baseURL string) (adapter.NoteStoreAdapter, *service.ClientServices) {
	t.Helper()
	noteStore, err := adapter.NewHTTPNoteStoreAdapter(config.ClientAdapter{
		HTTPAddress:    baseURL,
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	clock := func() time.Time { return time.UnixMilli(1_700_000_000_000) }
	return noteStore, service.NewClientServices(noteStore, clock, logger.Nop())
}

func TestNewServer_NoHandlers(t *testing.T) {
	_, err := NewServer(nil, nil, config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestServer_ListenError(t *testing.T) {
	h := newHTTPServer(nil, config.Server{HTTPAddress: "256.0.0.1:99999"}, logger.Nop())
	err := h.RunServer()
	require.Error(t, err)
	assert.True(t, errors.Is(err, errListen))
}

func TestServer_EndToEnd_CreatePinArchive(t *testing.T) {
	baseURL := startServer(t)
	_, client := newClient(t, baseURL)
	ctx := context.Background()

	require.NoError(t, client.Subscriber.Mount(ctx))
	t.Cleanup(client.Subscriber.Unmount)

	client.EditSession.StartCompose()
	client.EditSession.SetTitle("A")
	client.EditSession.SetContent("x")
	require.NoError(t, client.EditSession.Submit(ctx))

	require.Eventually(t, func() bool { return len(client.Subscriber.Notes()) == 1 }, waitFor, tick)
	note := client.Subscriber.Notes()[0]
	assert.Equal(t, "A", note.Title)
	assert.Equal(t, "x", note.Content)
	assert.Equal(t, models.ColorNeutral, note.Color)
	assert.Equal(t, int64(1_700_000_000_000), note.CreatedAt)
	assert.NotEmpty(t, note.ID)

	require.NoError(t, client.EditSession.TogglePin(ctx, note))
	require.Eventually(t, func() bool {
		notes := client.Subscriber.Notes()
		return len(notes) == 1 && notes[0].IsPinned
	}, waitFor, tick)
	assert.Len(t, service.ProjectNotes(client.Subscriber.Notes(), "").Pinned, 1)

	require.NoError(t, client.EditSession.ToggleArchive(ctx, client.Subscriber.Notes()[0]))
	require.Eventually(t, func() bool {
		return service.ProjectNotes(client.Subscriber.Notes(), "").Len() == 0
	}, waitFor, tick)
	assert.Len(t, service.ProjectArchive(client.Subscriber.Notes(), ""), 1)
}

func TestServer_EndToEnd_EditAndDelete(t *testing.T) {
	baseURL := startServer(t)
	_, client := newClient(t, baseURL)
	ctx := context.Background()

	require.NoError(t, client.Subscriber.Mount(ctx))
	t.Cleanup(client.Subscriber.Unmount)

	client.EditSession.SetTitle("draft")
	require.NoError(t, client.EditSession.Submit(ctx))
	require.Eventually(t, func() bool { return len(client.Subscriber.Notes()) == 1 }, waitFor, tick)

	client.EditSession.StartEdit(client.Subscriber.Notes()[0])
	client.EditSession.SetContent("<p><strong>done</strong></p>")
	client.EditSession.SetColor(models.ColorTeal)
	require.NoError(t, client.EditSession.Submit(ctx))

	require.Eventually(t, func() bool {
		notes := client.Subscriber.Notes()
		return len(notes) == 1 && notes[0].Color == models.ColorTeal
	}, waitFor, tick)
	note := client.Subscriber.Notes()[0]
	assert.Equal(t, "draft", note.Title)
	assert.Equal(t, "<p><strong>done</strong></p>", note.Content)

	require.NoError(t, client.EditSession.Delete(ctx, note.ID))
	require.Eventually(t, func() bool { return len(client.Subscriber.Notes()) == 0 }, waitFor, tick)

	err := client.EditSession.Delete(ctx, note.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrNoteNotFound)
}

func TestServer_EndToEnd_TwoClientsSeeSameList(t *testing.T) {
	baseURL := startServer(t)
	_, writer := newClient(t, baseURL)
	_, reader := newClient(t, baseURL)
	ctx := context.Background()

	require.NoError(t, reader.Subscriber.Mount(ctx))
	t.Cleanup(reader.Subscriber.Unmount)

	writer.EditSession.SetTitle("from another terminal")
	require.NoError(t, writer.EditSession.Submit(ctx))

	require.Eventually(t, func() bool {
		notes := reader.Subscriber.Notes()
		return len(notes) == 1 && notes[0].Title == "from another terminal"
	}, waitFor, tick)
}

func TestServer_EndToEnd_ShutdownEndsSubscription(t *testing.T) {
	log := logger.Nop()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.StructuredConfig{
		App:     config.App{Version: "test"},
		Storage: config.Storage{DB: config.DB{DSN: filepath.Join(t.TempDir(), "notes.db")}},
		Server:  config.Server{HTTPAddress: "127.0.0.1:0"},
	}
	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	require.NoError(t, err)
	defer storages.Close()

	services, err := service.NewServices(storages, cfg, models.NewAppBuildInfo("", "", ""), log)
	require.NoError(t, err)
	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	require.NoError(t, err)
	srv, err := NewServer(handlers, workers.NewWorkers(services.SnapshotHub), cfg.Server, log)
	require.NoError(t, err)

	runErr := make(chan error, 1)
	go func() { runErr <- srv.Run(ctx) }()
	<-srv.(*server).httpServer.ready

	_, client := newClient(t, "http://"+srv.(*server).httpServer.addr.String())
	require.NoError(t, client.Subscriber.Mount(context.Background()))
	defer client.Subscriber.Unmount()

	cancel()
	require.NoError(t, <-runErr)

	require.Eventually(t, func() bool { return client.Subscriber.Err() != nil }, waitFor, tick)
	assert.ErrorIs(t, client.Subscriber.Err(), service.ErrSubscriptionClosed)
}

func TestServer_EndToEnd_ServerVersion(t *testing.T) {
	baseURL := startServer(t)
	noteStore, _ := newClient(t, baseURL)

	v, err := noteStore.GetServerVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "test", v.Version)
	assert.Equal(t, "v0.0.1", v.BuildVersion)
	assert.Equal(t, "abc123", v.BuildCommit)
}
