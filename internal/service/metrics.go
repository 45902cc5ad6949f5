// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "notes"

var (
	hubSubscribers = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Subsystem: "hub",
		Name:      "subscribers",
		Help:      "Number of live snapshot subscribers.",
	})

	hubSnapshotsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Subsystem: "hub",
		Name:      "snapshots_total",
		Help:      "Snapshots broadcast to subscribers.",
	})

	hubSnapshotErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Subsystem: "hub",
		Name:      "snapshot_errors_total",
		Help:      "Failed collection queries while building a snapshot.",
	})

	hubDroppedSnapshotsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Subsystem: "hub",
		Name:      "replaced_snapshots_total",
		Help:      "Undelivered snapshots replaced by a newer one for a slow subscriber.",
	})
)

var noteWritesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: metricsNamespace,
	Subsystem: "store",
	Name:      "writes_total",
	Help:      "Note writes accepted by the database, by operation.",
}, []string{"op"})
