// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Snapshot is a full push of the notes collection to a subscriber.
//
// Notes are ordered by CreatedAt descending. A subscriber replaces its whole
// list with Notes; snapshots are never patches.
type Snapshot struct {
	// Seq grows monotonically for the lifetime of the server process.
	Seq uint64 `json:"seq"`

	// Notes is the complete collection at the time of the snapshot.
	Notes []Note `json:"notes"`
}
