// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package tstime

import (
	"testing"
	"time"
)

func TestFresh(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	ttl := 5 * time.Second
	tests := []struct {
		elapsed time.Duration
		want    bool
	}{
		{0, true},
		{4999 * time.Millisecond, true},
		{5 * time.Second, false},
		{time.Minute, false},
		{-time.Second, true},
	}
	for _, tt := range tests {
		if got := Fresh(base, base.Add(tt.elapsed), ttl); got != tt.want {
			t.Errorf("Fresh after %v = %v; want %v", tt.elapsed, got, tt.want)
		}
	}
}

func TestDefaultClock(t *testing.T) {
	if _, ok := DefaultClock(nil).(StdClock); !ok {
		t.Errorf("DefaultClock(nil) is not a StdClock")
	}
	var c Clock = StdClock{}
	if DefaultClock(c) != c {
		t.Errorf("DefaultClock replaced a non-nil clock")
	}
	start := StdClock{}.Now()
	if d := (StdClock{}).Since(start); d < 0 {
		t.Errorf("Since went backwards: %v", d)
	}
}
