// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package ifindex

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	metricCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "ipconfig",
		Subsystem: "ifindex",
		Name:      "cache_hits_total",
		Help:      "Resolutions served from the cache.",
	})
	metricCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "ipconfig",
		Subsystem: "ifindex",
		Name:      "cache_misses_total",
		Help:      "Resolutions that enumerated adapters.",
	})
	metricFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "ipconfig",
		Subsystem: "ifindex",
		Name:      "nametoindex_fallbacks_total",
		Help:      "Resolutions that fell back to if_nametoindex.",
	})
)
