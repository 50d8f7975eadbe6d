// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package wfp

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	metricSessions = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "ipconfig",
		Subsystem: "wfp",
		Name:      "sessions_opened_total",
		Help:      "Filtering engine sessions opened.",
	})
	metricObjects = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ipconfig",
		Subsystem: "wfp",
		Name:      "objects_enumerated_total",
		Help:      "Objects returned by enumerations, by kind.",
	}, []string{"kind"})
)
