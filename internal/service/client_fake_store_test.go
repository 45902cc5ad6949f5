// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// fakeNoteStore: in-memory хранилище заметок, которое как настоящий сервер
// рассылает полный снимок коллекции после каждой записи.
type fakeNoteStore struct {
	mu     sync.Mutex
	notes  []models.Note
	seq    uint64
	nextID int
	subs   []*fakeSubscription

	writes       atomic.Int64
	subscribes   atomic.Int64
	subscribeErr error
}

func newFakeNoteStore() *fakeNoteStore {
	return &fakeNoteStore{}
}

func (f *fakeNoteStore) CreateNote(_ context.Context, req models.CreateNoteRequest) (models.Note, error) {
	f.writes.Add(1)

	f.mu.Lock()
	defer f.mu.Unlock()

	f.nextID++
	note := models.Note{
		ID:         fmt.Sprintf("note-%d", f.nextID),
		Title:      req.Title,
		Content:    req.Content,
		Color:      req.Color.OrDefault(),
		IsPinned:   req.IsPinned,
		IsArchived: req.IsArchived,
		CreatedAt:  req.CreatedAt,
	}
	f.notes = append(f.notes, note)
	slices.SortStableFunc(f.notes, func(a, b models.Note) int { return cmp.Compare(b.CreatedAt, a.CreatedAt) })
	f.broadcastLocked()
	return note, nil
}

func (f *fakeNoteStore) UpdateNote(_ context.Context, id string, update models.NoteUpdate) error {
	f.writes.Add(1)

	f.mu.Lock()
	defer f.mu.Unlock()

	i := slices.IndexFunc(f.notes, func(n models.Note) bool { return n.ID == id })
	if i < 0 {
		return fmt.Errorf("%w: note %s", adapter.ErrNotFound, id)
	}
	f.notes[i] = update.Apply(f.notes[i])
	f.broadcastLocked()
	return nil
}

func (f *fakeNoteStore) DeleteNote(_ context.Context, id string) error {
	f.writes.Add(1)

	f.mu.Lock()
	defer f.mu.Unlock()

	i := slices.IndexFunc(f.notes, func(n models.Note) bool { return n.ID == id })
	if i < 0 {
		return fmt.Errorf("%w: note %s", adapter.ErrNotFound, id)
	}
	f.notes = slices.Delete(f.notes, i, i+1)
	f.broadcastLocked()
	return nil
}

func (f *fakeNoteStore) GetServerVersion(context.Context) (models.ServerVersion, error) {
	return models.ServerVersion{Version: "test"}, nil
}

func (f *fakeNoteStore) Subscribe(context.Context) (adapter.Subscription, error) {
	f.subscribes.Add(1)

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.subscribeErr != nil {
		return nil, f.subscribeErr
	}

	sub := &fakeSubscription{store: f, ch: make(chan models.Snapshot, 64)}
	f.subs = append(f.subs, sub)
	sub.ch <- f.snapshotLocked()
	return sub, nil
}

// push рассылает произвольный снимок, минуя хранилище.
func (f *fakeNoteStore) push(notes []models.Note) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.seq++
	for _, s := range f.subs {
		s.ch <- models.Snapshot{Seq: f.seq, Notes: slices.Clone(notes)}
	}
}

// fail обрывает все подписки с ошибкой err.
func (f *fakeNoteStore) fail(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, s := range f.subs {
		s.err.Store(&err)
		close(s.ch)
	}
	f.subs = nil
}

func (f *fakeNoteStore) subscribers() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.subs)
}

func (f *fakeNoteStore) snapshotLocked() models.Snapshot {
	f.seq++
	return models.Snapshot{Seq: f.seq, Notes: slices.Clone(f.notes)}
}

func (f *fakeNoteStore) broadcastLocked() {
	snapshot := f.snapshotLocked()
	for _, s := range f.subs {
		s.ch <- snapshot
	}
}

type fakeSubscription struct {
	store *fakeNoteStore
	ch    chan models.Snapshot
	err   atomic.Pointer[error]
}

func (s *fakeSubscription) Snapshots() <-chan models.Snapshot { return s.ch }

func (s *fakeSubscription) Err() error {
	if p := s.err.Load(); p != nil {
		return *p
	}
	return nil
}

func (s *fakeSubscription) Close() error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	i := slices.Index(s.store.subs, s)
	if i < 0 {
		return nil
	}
	s.store.subs = slices.Delete(s.store.subs, i, i+1)
	close(s.ch)
	return nil
}
