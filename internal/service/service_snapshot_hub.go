// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// NoteLister is the read side the hub needs to build a snapshot.
type NoteLister interface {
	ListNotes(ctx context.Context) ([]models.Note, error)
}

type snapshotHub struct {
	lister   NoteLister
	debounce time.Duration

	// dirty holds at most one pending "collection changed" signal.
	dirty chan struct{}

	mu     sync.Mutex
	subs   map[uint64]chan models.Snapshot
	nextID uint64
	seq    uint64
	last   *models.Snapshot
	closed bool

	logger *logger.Logger
}

// NewSnapshotHub returns a hub that reads the collection through lister.
// When debounce is positive the hub waits that long after a change before
// querying, so a burst of writes produces one snapshot.
func NewSnapshotHub(lister NoteLister, debounce time.Duration, logger *logger.Logger) SnapshotHub {
	return &snapshotHub{
		lister:   lister,
		debounce: debounce,
		dirty:    make(chan struct{}, 1),
		subs:     make(map[uint64]chan models.Snapshot),
		logger:   logger.Component("snapshot_hub"),
	}
}

func (h *snapshotHub) Notify() {
	select {
	case h.dirty <- struct{}{}:
	default:
	}
}

func (h *snapshotHub) Subscribe() (<-chan models.Snapshot, func()) {
	ch := make(chan models.Snapshot, 1)

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		close(ch)
		return ch, func() {}
	}

	id := h.nextID
	h.nextID++
	h.subs[id] = ch
	hasLast := h.last != nil
	if hasLast {
		ch <- *h.last
	}
	h.mu.Unlock()

	hubSubscribers.Inc()
	if !hasLast {
		h.Notify()
	}

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()

			if sub, ok := h.subs[id]; ok {
				delete(h.subs, id)
				close(sub)
				hubSubscribers.Dec()
			}
		})
	}

	return ch, unsubscribe
}

// Run implements workers.Worker. The first snapshot is built right away.
// On return every subscriber channel is closed and later Subscribe calls
// receive a closed channel.
func (h *snapshotHub) Run(ctx context.Context) error {
	h.logger.Info().Dur("debounce", h.debounce).Msg("snapshot hub started")
	defer h.shutdown()

	h.Notify()
	for {
		select {
		case <-ctx.Done():
			h.logger.Info().Msg("snapshot hub stopped")
			return nil
		case <-h.dirty:
		}

		if h.debounce > 0 {
			timer := time.NewTimer(h.debounce)
			select {
			case <-ctx.Done():
				timer.Stop()
				h.logger.Info().Msg("snapshot hub stopped")
				return nil
			case <-timer.C:
			}
			// changes signalled inside the window are covered by the query below
			select {
			case <-h.dirty:
			default:
			}
		}

		h.refresh(ctx)
	}
}

func (h *snapshotHub) refresh(ctx context.Context) {
	notes, err := h.lister.ListNotes(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		hubSnapshotErrorsTotal.Inc()
		h.logger.Err(err).Str("func", "snapshotHub.refresh").Msg("failed to query collection for snapshot")
		return
	}

	h.broadcast(notes)
}

func (h *snapshotHub) broadcast(notes []models.Note) {
	if notes == nil {
		notes = []models.Note{}
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.seq++
	snapshot := models.Snapshot{Seq: h.seq, Notes: notes}
	h.last = &snapshot

	for _, ch := range h.subs {
		deliverNewest(ch, snapshot)
	}
	hubSnapshotsTotal.Inc()

	h.logger.Debug().
		Uint64("seq", snapshot.Seq).
		Int("notes", len(notes)).
		Int("subscribers", len(h.subs)).
		Msg("snapshot broadcast")
}

// deliverNewest puts s into ch, replacing an unread older snapshot.
// Callers hold h.mu, so no other goroutine sends on ch concurrently.
func deliverNewest(ch chan models.Snapshot, s models.Snapshot) {
	select {
	case ch <- s:
		return
	default:
	}

	select {
	case <-ch:
		hubDroppedSnapshotsTotal.Inc()
	default:
	}

	select {
	case ch <- s:
	default:
	}
}

func (h *snapshotHub) shutdown() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	for id, ch := range h.subs {
		delete(h.subs, id)
		close(ch)
		hubSubscribers.Dec()
	}
}
