// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server wires and runs the notes server.
//
// It runs the HTTP transport next to the background workers (the snapshot
// hub), handles stop signals and shuts everything down gracefully.
package server
