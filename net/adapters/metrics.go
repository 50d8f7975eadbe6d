// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package adapters

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	metricFetchAttempts = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "ipconfig",
		Subsystem: "adapters",
		Name:      "fetch_attempts_total",
		Help:      "Table queries issued, including retries after buffer overflow.",
	})
	metricFetchOverflows = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "ipconfig",
		Subsystem: "adapters",
		Name:      "fetch_overflows_total",
		Help:      "Table queries that reported a too-small buffer.",
	})
	metricEnumerations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ipconfig",
		Subsystem: "adapters",
		Name:      "enumerations_total",
		Help:      "Adapter enumerations by outcome.",
	}, []string{"result"})
)
