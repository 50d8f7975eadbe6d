// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

// Package logger defines the printf-style logging func used throughout
// the enumerators, so that callers can plug in their own sink.
package logger

import (
	"container/list"
	"fmt"
	"io"
	"log"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Logf is a printf-like logging func. The format need not end in a
// newline. Logf funcs must be safe for concurrent use.
//
// Wrappers must pass the original format and args through, possibly
// augmented. Flattening them with fmt.Sprintf and "%s" defeats rate
// limiting.
type Logf func(format string, args ...any)

// WithPrefix wraps f, prefixing each format with prefix.
func WithPrefix(f Logf, prefix string) Logf {
	return func(format string, args ...any) {
		f(prefix+format, args...)
	}
}

// Discard is a Logf that throws away the logs given to it.
func Discard(string, ...any) {}

// FuncWriter returns an io.Writer that writes each Write call to f.
func FuncWriter(f Logf) io.Writer {
	return funcWriter{f}
}

type funcWriter struct{ f Logf }

func (w funcWriter) Write(p []byte) (int, error) {
	w.f("%s", p)
	return len(p), nil
}

// StdLogger returns a standard library logger writing to f.
func StdLogger(f Logf) *log.Logger {
	return log.New(FuncWriter(f), "", 0)
}

// Filtered returns a Logf that passes format and args to logf only when
// allow accepts the formatted line.
func Filtered(logf Logf, allow func(line string) bool) Logf {
	return func(format string, args ...any) {
		if !allow(fmt.Sprintf(format, args...)) {
			return
		}
		logf(format, args...)
	}
}

// Debug returns logf when on is true and Discard otherwise.
func Debug(logf Logf, on bool) Logf {
	if on {
		return logf
	}
	return Discard
}

type limitState struct {
	lim     *rate.Limiter
	warned  bool
	element *list.Element
}

// RateLimitedFn returns a Logf that lets each distinct format through
// at most once every every, in bursts of up to burst. At most maxCache
// formats are tracked; the least recently used is forgotten first.
// The first suppressed line of a format is replaced by a single notice.
func RateLimitedFn(logf Logf, every time.Duration, burst int, maxCache int) Logf {
	var (
		mu    sync.Mutex
		state = map[string]*limitState{}
		lru   = list.New()
	)
	limit := rate.Every(every)

	// allow reports whether the line may be logged, and whether a
	// suppression notice is due instead.
	allow := func(format string) (ok, notice bool) {
		mu.Lock()
		defer mu.Unlock()
		st, found := state[format]
		if found {
			lru.MoveToFront(st.element)
		} else {
			st = &limitState{
				lim:     rate.NewLimiter(limit, burst),
				element: lru.PushFront(format),
			}
			state[format] = st
			if lru.Len() > maxCache {
				oldest := lru.Back()
				delete(state, oldest.Value.(string))
				lru.Remove(oldest)
			}
		}
		if st.lim.Allow() {
			st.warned = false
			return true, false
		}
		if !st.warned {
			st.warned = true
			return false, true
		}
		return false, false
	}

	return func(format string, args ...any) {
		switch ok, notice := allow(format); {
		case ok:
			logf(format, args...)
		case notice:
			logf("[RATE LIMITED] %q (example: %q)", format, strings.TrimSpace(fmt.Sprintf(format, args...)))
		}
	}
}
