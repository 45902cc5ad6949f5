// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the notes server.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API and the websocket snapshot stream. Cross-cutting concerns such as
// request tracing, access logging, metrics, and per-request timeouts are
// handled in this package before requests are delegated to the service layer.
package http
