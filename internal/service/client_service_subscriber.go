// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
)

type noteSubscriber struct {
	store adapter.NoteStoreAdapter

	// mu serialises Mount and Unmount.
	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
	wg     sync.WaitGroup

	stateMu sync.RWMutex
	notes   []models.Note
	seq     uint64
	err     error

	changes chan struct{}

	logger *logger.Logger
}

// NewNoteSubscriber creates a NoteSubscriber reading snapshots from store.
// It is idle until Mount is called.
func NewNoteSubscriber(store adapter.NoteStoreAdapter, logger *logger.Logger) NoteSubscriber {
	return &noteSubscriber{
		store:   store,
		notes:   []models.Note{},
		changes: make(chan struct{}, 1),
		logger:  logger,
	}
}

func (s *noteSubscriber) Mount(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running() {
		return nil
	}
	s.stop()

	sub, err := s.store.Subscribe(ctx)
	if err != nil {
		err = mapAdapterError(err)
		s.logger.Err(err).Str("func", "noteSubscriber.Mount").Msg("failed to subscribe to notes collection")
		s.setErr(err)
		return fmt.Errorf("subscribe to notes: %w", err)
	}
	s.setErr(nil)

	loopCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	s.cancel = cancel
	s.done = done

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer close(done)
		defer sub.Close()

		s.loop(loopCtx, sub)
	}()

	return nil
}

func (s *noteSubscriber) Unmount() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stop()
}

// stop cancels the loop and waits for it. Callers hold mu.
func (s *noteSubscriber) stop() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.wg.Wait()
}

func (s *noteSubscriber) running() bool {
	if s.done == nil {
		return false
	}
	select {
	case <-s.done:
		return false
	default:
		return true
	}
}

func (s *noteSubscriber) loop(ctx context.Context, sub adapter.Subscription) {
	for {
		select {
		case <-ctx.Done():
			return
		case snapshot, ok := <-sub.Snapshots():
			if !ok {
				if ctx.Err() != nil {
					return
				}
				err := sub.Err()
				if err == nil {
					err = adapter.ErrSubscriptionClosed
				}
				err = mapAdapterError(err)
				s.logger.Err(err).Str("func", "noteSubscriber.loop").Msg("live subscription ended")
				s.setErr(err)
				return
			}
			s.apply(ctx, snapshot)
		}
	}
}

// apply replaces the list with exactly the snapshot's documents.
func (s *noteSubscriber) apply(ctx context.Context, snapshot models.Snapshot) {
	notes := slices.Clone(snapshot.Notes)
	if notes == nil {
		notes = []models.Note{}
	}

	s.stateMu.Lock()
	if ctx.Err() != nil {
		s.stateMu.Unlock()
		return
	}
	s.notes = notes
	s.seq = snapshot.Seq
	s.stateMu.Unlock()

	s.logger.Debug().Uint64("seq", snapshot.Seq).Int("notes", len(notes)).Msg("snapshot applied")
	s.notify()
}

func (s *noteSubscriber) setErr(err error) {
	s.stateMu.Lock()
	s.err = err
	s.stateMu.Unlock()
	s.notify()
}

func (s *noteSubscriber) notify() {
	select {
	case s.changes <- struct{}{}:
	default:
	}
}

func (s *noteSubscriber) Notes() []models.Note {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return slices.Clone(s.notes)
}

func (s *noteSubscriber) Changes() <-chan struct{} {
	return s.changes
}

func (s *noteSubscriber) Err() error {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return s.err
}
