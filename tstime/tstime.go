// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

// Package tstime defines the clock abstraction used by time-based caches,
// so tests can substitute a fake clock.
package tstime

import "time"

// Clock offers a subset of the functionality from the std/time package.
// Normally, applications will use the StdClock implementation that calls
// the appropriate std/time exported funcs. The advantage of using Clock is
// that tests can substitute a different implementation.
type Clock interface {
	// Now returns the current time, as in time.Now.
	Now() time.Time
	// Since returns the time elapsed since t, as in time.Since.
	Since(t time.Time) time.Duration
}

// StdClock is a simple implementation of Clock using the relevant funcs
// in the std/time package.
type StdClock struct{}

func (StdClock) Now() time.Time                  { return time.Now() }
func (StdClock) Since(t time.Time) time.Duration { return time.Since(t) }

// DefaultClock returns c, or a StdClock if c is nil.
func DefaultClock(c Clock) Clock {
	if c == nil {
		return StdClock{}
	}
	return c
}

// Fresh reports whether something stamped at stamp is still within ttl
// of now. An entry is fresh for exactly ttl and no longer; a stamp in the
// future counts as fresh.
func Fresh(stamp, now time.Time, ttl time.Duration) bool {
	return now.Sub(stamp) < ttl
}
