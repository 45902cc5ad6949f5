// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
)

const (
	// readTimeout must exceed the server ping period; each ping or frame
	// extends it.
	readTimeout = 2 * time.Minute

	closeWait = time.Second
)

// Subscribe implements [NoteStoreAdapter]. The handshake carries the trace
// id from ctx so server logs of the stream can be correlated.
func (h *httpNoteStoreAdapter) Subscribe(ctx context.Context) (Subscription, error) {
	traceID, ok := utils.GetTraceIDFromContext(ctx)
	if !ok {
		traceID = uuid.NewString()
	}
	header := http.Header{}
	header.Set(utils.TraceIDHeader, traceID)

	conn, resp, err := h.dialer.DialContext(ctx, h.wsURL, header)
	if err != nil {
		if resp != nil {
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
			_ = resp.Body.Close()
			if mapped := mapStatus(resp.StatusCode, body); mapped != nil {
				return nil, fmt.Errorf("subscribe handshake: %w", mapped)
			}
		}
		return nil, classifyTransportError("subscribe handshake", err)
	}

	log := h.logger.With().Str("trace_id", traceID).Logger()
	sub := newWSSubscription(conn, &logger.Logger{Logger: log})
	go sub.readLoop()

	log.Info().Str("url", h.wsURL).Msg("subscribed to notes collection")
	return sub, nil
}

type wsSubscription struct {
	conn      *websocket.Conn
	snapshots chan models.Snapshot

	done      chan struct{}
	closeOnce sync.Once

	mu  sync.Mutex
	err error

	logger *logger.Logger
}

func newWSSubscription(conn *websocket.Conn, logger *logger.Logger) *wsSubscription {
	s := &wsSubscription{
		conn:      conn,
		snapshots: make(chan models.Snapshot),
		done:      make(chan struct{}),
		logger:    logger,
	}

	conn.SetPingHandler(func(appData string) error {
		_ = conn.SetReadDeadline(time.Now().Add(readTimeout))
		err := conn.WriteControl(websocket.PongMessage, []byte(appData), time.Now().Add(closeWait))
		if errors.Is(err, websocket.ErrCloseSent) {
			return nil
		}
		return err
	})

	return s
}

func (s *wsSubscription) Snapshots() <-chan models.Snapshot {
	return s.snapshots
}

func (s *wsSubscription) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *wsSubscription) Close() error {
	var err error
	s.closeOnce.Do(func() {
		close(s.done)
		msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
		_ = s.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(closeWait))
		err = s.conn.Close()
	})
	return err
}

func (s *wsSubscription) closing() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}

func (s *wsSubscription) readLoop() {
	defer close(s.snapshots)

	for {
		_ = s.conn.SetReadDeadline(time.Now().Add(readTimeout))

		_, frame, err := s.conn.ReadMessage()
		if err != nil {
			s.finish(err)
			return
		}

		snapshot, err := decodeSnapshot(frame, s.logger)
		if err != nil {
			s.finish(err)
			_ = s.conn.Close()
			return
		}

		select {
		case s.snapshots <- snapshot:
		case <-s.done:
			return
		}
	}
}

// finish records why the stream ended unless the caller closed it.
func (s *wsSubscription) finish(err error) {
	if s.closing() {
		return
	}

	switch {
	case errors.Is(err, ErrMalformedSnapshot):
	case websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway):
		err = fmt.Errorf("%w: %w", ErrSubscriptionClosed, err)
	default:
		err = classifyTransportError("read snapshot", err)
	}

	s.logger.Err(err).Str("func", "wsSubscription.readLoop").Msg("subscription ended")

	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
}

// wireSnapshot defers note decoding so one odd document does not drop the
// whole snapshot.
type wireSnapshot struct {
	Seq   uint64            `json:"seq"`
	Notes []json.RawMessage `json:"notes"`
}

// decodeSnapshot is lenient: missing fields become zero values and a note
// with a mistyped field keeps the fields that did decode. Only a frame that
// is not a snapshot object at all is an error.
//
// Positions are preserved so the server ordering survives.
func decodeSnapshot(frame []byte, log *logger.Logger) (models.Snapshot, error) {
	var wire wireSnapshot
	if err := json.Unmarshal(frame, &wire); err != nil {
		return models.Snapshot{}, fmt.Errorf("%w: %w", ErrMalformedSnapshot, err)
	}

	snapshot := models.Snapshot{
		Seq:   wire.Seq,
		Notes: make([]models.Note, 0, len(wire.Notes)),
	}
	for i, raw := range wire.Notes {
		var note models.Note
		if err := json.Unmarshal(raw, &note); err != nil {
			var typeErr *json.UnmarshalTypeError
			if !errors.As(err, &typeErr) {
				log.Warn().Err(err).Int("index", i).Uint64("seq", wire.Seq).Msg("skipping undecodable note")
				continue
			}
			log.Warn().Err(err).Int("index", i).Str("note_id", note.ID).Msg("note decoded partially")
		}
		snapshot.Notes = append(snapshot.Notes, note)
	}

	return snapshot, nil
}
