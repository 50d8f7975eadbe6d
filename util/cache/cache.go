// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

// Package cache contains a time-bounded keyed cache.
package cache

import (
	"sync"
	"time"

	"github.com/ipconfig2/ipconfig/tstime"
)

// FillFunc is the signature of a function for filling a cache. It returns
// the value to cache or an error. Errors are not cached.
type FillFunc[V any] func() (V, error)

// Keyed caches values per key for a fixed TTL measured from when each
// value was stored. Storing a key overwrites its previous entry; there is
// no other eviction, so expired entries linger until overwritten or
// forgotten.
//
// A Keyed is safe for concurrent use. The zero value is not usable; set
// TTL before first use.
type Keyed[K comparable, V any] struct {
	// TTL is how long an entry is served after it was stored.
	TTL time.Duration
	// Clock, if non-nil, replaces the wall clock.
	Clock tstime.Clock

	mu      sync.Mutex
	entries map[K]entry[V]
}

type entry[V any] struct {
	val    V
	stored time.Time
}

func (c *Keyed[K, V]) now() time.Time {
	return tstime.DefaultClock(c.Clock).Now()
}

// Peek returns the value for key if it is present and unexpired.
func (c *Keyed[K, V]) Peek(key K) (V, bool) {
	now := c.now()
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok || !tstime.Fresh(e.stored, now, c.TTL) {
		var zero V
		return zero, false
	}
	return e.val, true
}

// Put stores val for key, stamped with the current time.
func (c *Keyed[K, V]) Put(key K, val V) {
	now := c.now()
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.entries == nil {
		c.entries = make(map[K]entry[V])
	}
	c.entries[key] = entry[V]{val: val, stored: now}
}

// Get returns the unexpired value for key, or calls fill and stores its
// result. fill runs without the cache lock held, so concurrent misses on
// the same key may each call it; the last one to finish wins.
func (c *Keyed[K, V]) Get(key K, fill FillFunc[V]) (V, error) {
	if v, ok := c.Peek(key); ok {
		return v, nil
	}
	v, err := fill()
	if err != nil {
		var zero V
		return zero, err
	}
	c.Put(key, v)
	return v, nil
}

// Forget removes key from the cache.
func (c *Keyed[K, V]) Forget(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Len reports the number of entries held, expired or not.
func (c *Keyed[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
