// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package wfp

import (
	"errors"
	"math"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/ipconfig2/ipconfig/types/ifid"
	"github.com/ipconfig2/ipconfig/types/logger"
	"github.com/ipconfig2/ipconfig/types/syserr"
	"github.com/ipconfig2/ipconfig/util/foreignmem"
)

func ptr[T any](v T) *T { return &v }

func openFake(t *testing.T, e *fakeEngine) *Session {
	t.Helper()
	s, err := openWith(e, nil, logger.Discard)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestOpenOptions(t *testing.T) {
	c := qt.New(t)
	before := testutil.ToFloat64(metricSessions)

	e := &fakeEngine{}
	openFake(t, e)
	c.Assert(e.opts.Dynamic, qt.IsTrue)
	c.Assert(e.opts.Name, qt.Equals, "ipconfig")

	e = &fakeEngine{}
	_, err := openWith(e, &Options{Name: "persist"}, logger.Discard)
	c.Assert(err, qt.IsNil)
	c.Assert(e.opts, qt.Equals, Options{Name: "persist"})
	c.Assert(testutil.ToFloat64(metricSessions)-before, qt.Equals, float64(2))

	e = &fakeEngine{openErr: syserr.NewOSError("FwpmEngineOpen0", 5)}
	_, err = openWith(e, nil, logger.Discard)
	c.Assert(syserr.IsOS(err), qt.IsTrue)
}

func TestSubLayers(t *testing.T) {
	c := qt.New(t)
	e := &fakeEngine{}
	provider := ifid.MustParseGUID("{DECAFBAD-0000-4000-8000-000000000001}")
	want := []SubLayer{
		{
			Key:     ifid.MustParseGUID("{B3CDD441-AF90-41BA-A745-7C6008FF2300}"),
			Display: DisplayData{Name: "IPsec Security Realm Sublayer", Description: ptr("Sublayer for IPsec")},
			Flags:   0,
			Weight:  0x7FFF,
		},
		{
			Key:         ifid.MustParseGUID("{0E7C5B2E-17F3-4E19-9D9A-3AC0E2D5A2B1}"),
			Display:     DisplayData{Name: "Tailscale filters"},
			Flags:       1,
			Weight:      0xFFFF,
			ProviderKey: &provider,
		},
	}
	p0 := e.heap.subLayer(want[0])
	p1 := e.heap.subLayer(want[1])
	e.array = e.heap.array(p0, 0, p1)
	e.n = 3

	s := openFake(t, e)
	got, err := s.SubLayers()
	c.Assert(err, qt.IsNil)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SubLayers mismatch (-want +got):\n%s", diff)
	}
	c.Assert(e.limit, qt.Equals, uint32(math.MaxUint32))
	c.Assert(e.calls, qt.DeepEquals, []string{"open", "create", "enum", "free", "destroy"})
	c.Assert(e.freed, qt.DeepEquals, []uint64{e.array})
}

func TestEnumerateEmpty(t *testing.T) {
	e := &fakeEngine{}
	s := openFake(t, e)
	got, err := s.SubLayers()
	qt.Assert(t, err, qt.IsNil)
	qt.Assert(t, got, qt.IsNotNil)
	qt.Assert(t, got, qt.HasLen, 0)
	qt.Assert(t, e.calls, qt.DeepEquals, []string{"open", "create", "enum", "destroy"})
}

func TestEnumerateReleasesOnError(t *testing.T) {
	t.Run("enum", func(t *testing.T) {
		e := &fakeEngine{enumErr: syserr.NewOSError("FwpmSubLayerEnum0", 6)}
		s := openFake(t, e)
		_, err := s.SubLayers()
		qt.Assert(t, syserr.IsOS(err), qt.IsTrue)
		qt.Assert(t, e.calls, qt.DeepEquals, []string{"open", "create", "enum", "destroy"})
	})
	t.Run("create", func(t *testing.T) {
		e := &fakeEngine{createErr: syserr.NewOSError("FwpmSubLayerCreateEnumHandle0", 6)}
		s := openFake(t, e)
		_, err := s.SubLayers()
		qt.Assert(t, syserr.IsOS(err), qt.IsTrue)
		qt.Assert(t, e.calls, qt.DeepEquals, []string{"open", "create"})
	})
	t.Run("decode", func(t *testing.T) {
		e := &fakeEngine{}
		good := e.heap.subLayer(SubLayer{Display: DisplayData{Name: "ok"}})
		bad := e.heap.subLayer(SubLayer{})
		// Point the bad record's name at an unpaired surrogate.
		badRec := findBlock(e, bad)
		putPtr(badRec, wtFwpmSublayer0_displayData_Offset, e.heap.wunits([]uint16{0xDC00, 0}))
		e.array = e.heap.array(good, bad)
		e.n = 2

		s := openFake(t, e)
		_, err := s.SubLayers()
		qt.Assert(t, syserr.IsDecode(err), qt.IsTrue)
		qt.Assert(t, e.calls, qt.DeepEquals, []string{"open", "create", "enum", "free", "destroy"})
	})
	t.Run("short-array", func(t *testing.T) {
		e := &fakeEngine{}
		e.array = e.heap.array(e.heap.subLayer(SubLayer{}))
		e.n = 2 // more entries than the array holds
		s := openFake(t, e)
		_, err := s.SubLayers()
		qt.Assert(t, syserr.IsDecode(err), qt.IsTrue)
		qt.Assert(t, e.calls, qt.DeepEquals, []string{"open", "create", "enum", "free", "destroy"})
	})
}

// findBlock returns the allocation starting at addr.
func findBlock(e *fakeEngine, addr uint64) []byte {
	for _, b := range e.heap.blocks {
		if len(b) > 0 && foreignmem.AddrOf(b) == addr {
			return b
		}
	}
	panic("no block")
}

func TestFilters(t *testing.T) {
	c := qt.New(t)
	e := &fakeEngine{}
	want := Filter{
		Key:           ifid.MustParseGUID("{11111111-2222-3333-4444-555555555555}"),
		Display:       DisplayData{Name: "Block outbound", Description: ptr("")},
		Flags:         0x2,
		LayerKey:      LayerALEAuthConnectV4,
		SubLayerKey:   ifid.MustParseGUID("{B3CDD441-AF90-41BA-A745-7C6008FF2300}"),
		NumConditions: 3,
		ActionType:    0x1001, // FWP_ACTION_BLOCK
		ID:            70123,
	}
	e.array = e.heap.array(e.heap.filter(want))
	e.n = 1

	s := openFake(t, e)
	got, err := s.Filters(LayerALEAuthConnectV4)
	c.Assert(err, qt.IsNil)
	c.Assert(e.layer, qt.Equals, LayerALEAuthConnectV4)
	c.Assert(got, qt.HasLen, 1)
	c.Assert(got[0].Raw, qt.HasLen, wtFwpmFilter0_Size)
	got[0].Raw = nil
	if diff := cmp.Diff(want, got[0]); diff != "" {
		t.Errorf("Filters mismatch (-want +got):\n%s", diff)
	}
}

func TestAddSubLayer(t *testing.T) {
	c := qt.New(t)
	e := &fakeEngine{}
	s := openFake(t, e)
	sl, err := NewSubLayer("ipconfig test", nil)
	c.Assert(err, qt.IsNil)
	c.Assert(sl.Key.IsZero(), qt.IsFalse)
	c.Assert(s.AddSubLayer(sl), qt.IsNil)
	c.Assert(e.added, qt.DeepEquals, []SubLayer{sl})

	other, err := NewSubLayer("ipconfig test", ptr("second"))
	c.Assert(err, qt.IsNil)
	c.Assert(other.Key, qt.Not(qt.Equals), sl.Key)
}

func TestClose(t *testing.T) {
	c := qt.New(t)
	e := &fakeEngine{}
	s := openFake(t, e)
	c.Assert(s.Close(), qt.IsNil)
	c.Assert(s.Close(), qt.IsNil)
	c.Assert(e.calls, qt.DeepEquals, []string{"open", "close"})

	_, err := s.SubLayers()
	c.Assert(errors.Is(err, syserr.ErrSessionClosed), qt.IsTrue)
	_, err = s.Filters(LayerALEAuthConnectV4)
	c.Assert(errors.Is(err, syserr.ErrSessionClosed), qt.IsTrue)
	c.Assert(errors.Is(s.AddSubLayer(SubLayer{}), syserr.ErrSessionClosed), qt.IsTrue)
}

func TestDisplayDataString(t *testing.T) {
	qt.Assert(t, DisplayData{Name: "a"}.String(), qt.Equals, "a")
	qt.Assert(t, DisplayData{Name: "a", Description: ptr("b")}.String(), qt.Equals, "a (b)")
}
