// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package logger

import (
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
)

type collector struct {
	mu    sync.Mutex
	lines []string
}

func (c *collector) logf(format string, args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = append(c.lines, fmt.Sprintf(format, args...))
}

func TestStdLogger(t *testing.T) {
	var col collector
	lg := StdLogger(col.logf)
	lg.Printf("plumbed %s", "through")
	qt.Assert(t, col.lines, qt.DeepEquals, []string{"plumbed through\n"})
}

func TestWithPrefix(t *testing.T) {
	var col collector
	WithPrefix(col.logf, "adapters: ")("found %d", 3)
	qt.Assert(t, col.lines, qt.DeepEquals, []string{"adapters: found 3"})
}

func TestFilteredAndDebug(t *testing.T) {
	c := qt.New(t)
	var col collector
	lf := Filtered(col.logf, func(s string) bool { return !strings.Contains(s, "noise") })
	lf("keep %d", 1)
	lf("noise %d", 2)
	Debug(col.logf, false)("dropped")
	Debug(col.logf, true)("kept")
	c.Assert(col.lines, qt.DeepEquals, []string{"keep 1", "kept"})
}

func TestRateLimitedFn(t *testing.T) {
	c := qt.New(t)
	var col collector
	lf := RateLimitedFn(col.logf, time.Hour, 2, 50)
	for i := range 5 {
		lf("fallback lookup for %q", fmt.Sprint("eth", i))
		lf("other %d", i)
	}
	c.Assert(col.lines, qt.DeepEquals, []string{
		`fallback lookup for "eth0"`,
		`other 0`,
		`fallback lookup for "eth1"`,
		`other 1`,
		`[RATE LIMITED] "fallback lookup for %q" (example: "fallback lookup for \"eth2\"")`,
		`[RATE LIMITED] "other %d" (example: "other 2")`,
	})
}

func TestRateLimitedFnEvicts(t *testing.T) {
	c := qt.New(t)
	var col collector
	lf := RateLimitedFn(col.logf, time.Hour, 1, 1)
	lf("a")
	lf("b") // evicts "a"
	lf("a") // fresh limiter again
	c.Assert(col.lines, qt.DeepEquals, []string{"a", "b", "a"})
}
