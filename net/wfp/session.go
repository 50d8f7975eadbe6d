// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package wfp

import (
	"fmt"
	"sync"

	"github.com/ipconfig2/ipconfig/types/ifid"
	"github.com/ipconfig2/ipconfig/types/logger"
	"github.com/ipconfig2/ipconfig/types/syserr"
)

// Session is an open filtering engine session. It is safe for concurrent
// use; calls are serialized.
type Session struct {
	eng  engine
	logf logger.Logf

	mu     sync.Mutex
	handle uintptr
	closed bool
}

// Open opens a filtering engine session. A nil opts opens a dynamic
// session, so anything added through it disappears on Close.
func Open(opts *Options) (*Session, error) {
	eng, err := newOSEngine()
	if err != nil {
		return nil, err
	}
	return openWith(eng, opts, logger.Discard)
}

func openWith(eng engine, opts *Options, logf logger.Logf) (*Session, error) {
	o := defaultOptions
	if opts != nil {
		o = *opts
	}
	h, err := eng.open(o)
	if err != nil {
		return nil, fmt.Errorf("wfp: open session: %w", err)
	}
	metricSessions.Inc()
	logf("wfp: session opened (dynamic=%v)", o.Dynamic)
	return &Session{eng: eng, logf: logf, handle: h}, nil
}

// SetLogf sets where the session logs. A nil logf discards.
func (s *Session) SetLogf(logf logger.Logf) {
	if logf == nil {
		logf = logger.Discard
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logf = logf
}

// SubLayers lists all sub-layers known to the engine.
func (s *Session) SubLayers() ([]SubLayer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, syserr.ErrSessionClosed
	}
	ret, err := enumerate(s.eng, cursor{
		kind:   "sub-layer",
		size:   wtFwpmSublayer0_Size,
		create: func() (uintptr, error) { return s.eng.createSubLayerEnum(s.handle) },
		enum: func(c uintptr, limit uint32) (uint64, uint32, error) {
			return s.eng.enumSubLayers(s.handle, c, limit)
		},
		destroy: func(c uintptr) error { return s.eng.destroySubLayerEnum(s.handle, c) },
	}, decodeSubLayer)
	if err != nil {
		return nil, fmt.Errorf("wfp: sub-layers: %w", err)
	}
	metricObjects.WithLabelValues("sublayer").Add(float64(len(ret)))
	s.logf("wfp: %d sub-layers", len(ret))
	return ret, nil
}

// Filters lists the filters in layer.
func (s *Session) Filters(layer ifid.GUID) ([]Filter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, syserr.ErrSessionClosed
	}
	ret, err := enumerate(s.eng, cursor{
		kind:   "filter",
		size:   wtFwpmFilter0_Size,
		create: func() (uintptr, error) { return s.eng.createFilterEnum(s.handle, layer) },
		enum: func(c uintptr, limit uint32) (uint64, uint32, error) {
			return s.eng.enumFilters(s.handle, c, limit)
		},
		destroy: func(c uintptr) error { return s.eng.destroyFilterEnum(s.handle, c) },
	}, decodeFilter)
	if err != nil {
		return nil, fmt.Errorf("wfp: filters in %v: %w", layer, err)
	}
	metricObjects.WithLabelValues("filter").Add(float64(len(ret)))
	s.logf("wfp: %d filters in %v", len(ret), layer)
	return ret, nil
}

// AddSubLayer adds sl to the engine with the maximum weight and no
// provider. Weight and ProviderKey in sl are ignored.
func (s *Session) AddSubLayer(sl SubLayer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return syserr.ErrSessionClosed
	}
	if err := s.eng.addSubLayer(s.handle, sl); err != nil {
		return fmt.Errorf("wfp: add sub-layer %v: %w", sl.Key, err)
	}
	s.logf("wfp: added sub-layer %v %q", sl.Key, sl.Display.Name)
	return nil
}

// Close closes the session. Closing a closed session does nothing.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	if err := s.eng.close(s.handle); err != nil {
		return fmt.Errorf("wfp: close session: %w", err)
	}
	return nil
}

// SubLayers lists all sub-layers through a short-lived session.
func SubLayers() ([]SubLayer, error) {
	s, err := Open(nil)
	if err != nil {
		return nil, err
	}
	defer s.Close()
	return s.SubLayers()
}

// Filters lists the filters in layer through a short-lived session.
func Filters(layer ifid.GUID) ([]Filter, error) {
	s, err := Open(nil)
	if err != nil {
		return nil, err
	}
	defer s.Close()
	return s.Filters(layer)
}
