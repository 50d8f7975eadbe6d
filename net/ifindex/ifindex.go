// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

// Package ifindex resolves interface names to interface indexes, with a
// short-lived cache in front of the adapter enumeration.
package ifindex

import (
	"fmt"
	"sync"
	"time"

	"github.com/ipconfig2/ipconfig/envknob"
	"github.com/ipconfig2/ipconfig/net/adapters"
	"github.com/ipconfig2/ipconfig/tstime"
	"github.com/ipconfig2/ipconfig/types/logger"
	"github.com/ipconfig2/ipconfig/types/syserr"
	"github.com/ipconfig2/ipconfig/util/cache"
)

// CacheTTL is how long a resolved index is reused without asking the OS.
const CacheTTL = 5 * time.Second

// noCache turns off both lookups in and stores to the cache.
var noCache = envknob.RegisterBool("IPCONFIG_NO_INDEX_CACHE")

// Resolver maps interface names to indexes.
//
// Its cache is keyed by name alone. An index resolved for one address
// family is served for the other until it expires.
type Resolver struct {
	// Adapters lists adapters. If nil, adapters.Get is used.
	Adapters func() ([]adapters.Adapter, error)

	// NameToIndex is the fallback for names that match no adapter. If
	// nil, the OS's if_nametoindex is used. A zero index means unknown.
	NameToIndex func(name string) (uint32, error)

	// Clock, if non-nil, replaces the wall clock for cache expiry.
	Clock tstime.Clock

	// Logf, if non-nil, receives rate-limited diagnostics.
	Logf logger.Logf

	initOnce sync.Once
	logf     logger.Logf
	cache    cache.Keyed[string, uint32]
}

// Default is the Resolver used by Resolve.
var Default = &Resolver{}

// Resolve resolves name using Default.
func Resolve(name string, ipv6 bool) (uint32, error) {
	return Default.Resolve(name, ipv6)
}

func (r *Resolver) init() {
	r.initOnce.Do(func() {
		r.cache.TTL = CacheTTL
		r.cache.Clock = r.Clock
		r.logf = logger.Discard
		if r.Logf != nil {
			r.logf = logger.RateLimitedFn(r.Logf, time.Minute, 5, 100)
		}
	})
}

// Resolve returns the index of the interface whose friendly name or
// adapter name is name, for IPv6 if ipv6 is set and IPv4 otherwise.
//
// Names that match no adapter with that family enabled go to the
// NameToIndex fallback. If that finds nothing either, the error is an
// *syserr.InputError. Failures listing adapters are returned as is.
func (r *Resolver) Resolve(name string, ipv6 bool) (uint32, error) {
	r.init()
	useCache := !noCache()
	if useCache {
		if idx, ok := r.cache.Peek(name); ok {
			metricCacheHits.Inc()
			return idx, nil
		}
	}
	metricCacheMisses.Inc()
	idx, err := r.lookup(name, ipv6)
	if err != nil {
		return 0, err
	}
	if useCache {
		r.cache.Put(name, idx)
	}
	return idx, nil
}

func (r *Resolver) lookup(name string, ipv6 bool) (uint32, error) {
	list := r.Adapters
	if list == nil {
		list = adapters.Get
	}
	ads, err := list()
	if err != nil {
		return 0, fmt.Errorf("ifindex: %w", err)
	}
	for _, a := range ads {
		if a.FriendlyName != name && a.Name != name {
			continue
		}
		idx := a.IPv4Index
		if ipv6 {
			idx = a.IPv6Index
		}
		if idx != 0 {
			return idx, nil
		}
	}

	metricFallbacks.Inc()
	n2i := r.NameToIndex
	if n2i == nil {
		n2i = osNameToIndex
	}
	idx, err := n2i(name)
	if err != nil {
		r.logf("ifindex: if_nametoindex(%q): %v", name, err)
		idx = 0
	}
	if idx == 0 {
		return 0, &syserr.InputError{Input: name, Reason: "invalid interface name"}
	}
	return idx, nil
}
