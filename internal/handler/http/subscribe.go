// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
)

const (
	// writeWait is the time allowed to write one frame to the peer.
	writeWait = 10 * time.Second

	// pongWait is the time allowed to read the next pong from the peer.
	pongWait = 60 * time.Second

	// pingPeriod must be less than pongWait.
	pingPeriod = pongWait * 9 / 10

	// maxInboundMessageSize caps frames sent by subscribers. The stream is
	// one-way, so anything but control frames is ignored.
	maxInboundMessageSize = 512
)

// subscribe upgrades to a websocket and streams every collection snapshot
// as one JSON text frame. The current snapshot is sent first.
func (h *Handler) subscribe(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	// the handshake is written on the hijacked connection, so headers set on
	// w earlier would be lost
	respHeader := http.Header{}
	if traceID := w.Header().Get(utils.TraceIDHeader); traceID != "" {
		respHeader.Set(utils.TraceIDHeader, traceID)
	}

	conn, err := h.upgrader.Upgrade(w, r, respHeader)
	if err != nil {
		// the upgrader has already answered the request
		log.Err(err).Str("func", "*Handler.subscribe").Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	snapshots, unsubscribe := h.services.SnapshotHub.Subscribe()
	defer unsubscribe()

	log.Info().Str("remote", r.RemoteAddr).Msg("subscriber connected")
	defer log.Info().Str("remote", r.RemoteAddr).Msg("subscriber disconnected")

	peerGone := make(chan struct{})
	go readPump(conn, peerGone)

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-peerGone:
			return

		case snapshot, ok := <-snapshots:
			if !ok {
				closeMsg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "server is shutting down")
				_ = conn.WriteControl(websocket.CloseMessage, closeMsg, time.Now().Add(writeWait))
				return
			}

			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(snapshot); err != nil {
				log.Err(err).Str("func", "*Handler.subscribe").Uint64("seq", snapshot.Seq).Msg("failed to write snapshot")
				return
			}

		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				log.Debug().Err(err).Str("func", "*Handler.subscribe").Msg("ping failed")
				return
			}
		}
	}
}

// readPump consumes inbound frames so control frames (pong, close) are
// processed, and closes peerGone once the peer is unreachable.
func readPump(conn *websocket.Conn, peerGone chan<- struct{}) {
	defer close(peerGone)

	conn.SetReadLimit(maxInboundMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := conn.NextReader(); err != nil {
			return
		}
	}
}
