// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	defaultHTTPAddress      = "localhost:8080"
	defaultServerTimeout    = 30 * time.Second
	defaultDSN              = "notes.db"
	defaultAdapterAddress   = "http://localhost:8080"
	defaultAdapterTimeout   = 10 * time.Second
	defaultSnapshotDebounce = 50 * time.Millisecond
	defaultAppVersion       = "dev"
)

// defaults returns the lowest-priority layer of the configuration.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{Version: defaultAppVersion},
		Storage: Storage{
			DB: DB{DSN: defaultDSN},
		},
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultServerTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    defaultAdapterAddress,
			RequestTimeout: defaultAdapterTimeout,
		},
		Workers: Workers{SnapshotDebounce: defaultSnapshotDebounce},
	}
}
