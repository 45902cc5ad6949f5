// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle contract of the notes server.
type Server interface {
	// RunServer serves until SIGTERM, SIGINT or SIGQUIT, then shuts down
	// gracefully.
	RunServer() error

	// Run serves until ctx is done or a component fails. Every component is
	// stopped before Run returns.
	Run(ctx context.Context) error
}
