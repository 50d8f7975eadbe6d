// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package tstest

import (
	"sync"
	"time"

	"github.com/ipconfig2/ipconfig/tstime"
)

// ClockOpts configures a Clock.
type ClockOpts struct {
	// Start is the first value returned by Now. If zero, an arbitrary
	// fixed UTC time is used so tests stay deterministic across time
	// zones.
	Start time.Time

	// Step is how far the Clock advances after each call to Now. If zero,
	// the Clock only moves when Advance or AdvanceTo is called.
	Step time.Duration
}

// NewClock returns a Clock configured by co.
func NewClock(co ClockOpts) *Clock {
	c := &Clock{present: co.Start, step: co.Step}
	if c.present.IsZero() {
		c.present = time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)
	}
	return c
}

// Clock is a tstime.Clock whose time only moves when told to.
type Clock struct {
	mu      sync.Mutex
	present time.Time
	step    time.Duration
}

var _ tstime.Clock = (*Clock)(nil)

// Now returns the current time, then advances it by the configured step.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.present
	c.present = c.present.Add(c.step)
	return now
}

// PeekNow returns the current time without stepping the clock.
func (c *Clock) PeekNow() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.present
}

// Advance moves the clock forward by d and returns the new time.
func (c *Clock) Advance(d time.Duration) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.present = c.present.Add(d)
	return c.present
}

// AdvanceTo sets the clock to t. It panics if t is before the current
// time.
func (c *Clock) AdvanceTo(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if t.Before(c.present) {
		panic("tstest: Clock.AdvanceTo moved time backwards")
	}
	c.present = t
}

// Since returns the time elapsed between t and the current time. It does
// not step the clock.
func (c *Clock) Since(t time.Time) time.Duration {
	return c.PeekNow().Sub(t)
}
