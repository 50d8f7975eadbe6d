// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package wfp

import (
	"testing"
	"unsafe"

	"github.com/tailscale/wf"
	"golang.org/x/sys/windows"

	"github.com/ipconfig2/ipconfig/types/ifid"
)

func TestWtFwpmSublayer0Layout(t *testing.T) {
	var s wtFwpmSublayer0
	if got := unsafe.Sizeof(s); got != wtFwpmSublayer0_Size {
		t.Errorf("Size of FwpmSublayer0 is %d, although %d is expected.", got, wtFwpmSublayer0_Size)
	}
	offs := []struct {
		name      string
		got, want uintptr
	}{
		{"displayData", unsafe.Offsetof(s.displayData), wtFwpmSublayer0_displayData_Offset},
		{"flags", unsafe.Offsetof(s.flags), wtFwpmSublayer0_flags_Offset},
		{"providerKey", unsafe.Offsetof(s.providerKey), wtFwpmSublayer0_providerKey_Offset},
		{"providerData", unsafe.Offsetof(s.providerData), wtFwpmSublayer0_providerData_Offset},
		{"weight", unsafe.Offsetof(s.weight), wtFwpmSublayer0_weight_Offset},
	}
	for _, o := range offs {
		if o.got != o.want {
			t.Errorf("FwpmSublayer0.%s offset is %d although %d is expected", o.name, o.got, o.want)
		}
	}
}

func TestWtFwpmDisplayData0Layout(t *testing.T) {
	var d wtFwpmDisplayData0
	if got := unsafe.Sizeof(d); got != wtFwpmDisplayData0_Size {
		t.Errorf("Size of FwpmDisplayData0 is %d, although %d is expected.", got, wtFwpmDisplayData0_Size)
	}
	if got := unsafe.Offsetof(d.description); got != wtFwpmDisplayData0_description_Offset {
		t.Errorf("FwpmDisplayData0.description offset is %d although %d is expected", got, wtFwpmDisplayData0_description_Offset)
	}
	var b wtFwpByteBlob
	if got := unsafe.Sizeof(b); got != wtFwpByteBlob_Size {
		t.Errorf("Size of FwpByteBlob is %d, although %d is expected.", got, wtFwpByteBlob_Size)
	}
	if got := unsafe.Offsetof(b.data); got != wtFwpByteBlob_data_Offset {
		t.Errorf("FwpByteBlob.data offset is %d although %d is expected", got, wtFwpByteBlob_data_Offset)
	}
}

// TestSubLayersMatchWF checks the live sub-layer list against an
// independent implementation.
func TestSubLayersMatchWF(t *testing.T) {
	ours, err := SubLayers()
	if err != nil {
		t.Skipf("opening filter engine: %v", err)
	}
	sess, err := wf.New(&wf.Options{Name: "ipconfig test", Dynamic: true})
	if err != nil {
		t.Skipf("wf.New: %v", err)
	}
	defer sess.Close()
	theirs, err := sess.Sublayers(wf.ProviderID{})
	if err != nil {
		t.Fatal(err)
	}

	names := make(map[ifid.GUID]string)
	for _, sl := range theirs {
		names[ifid.FromWindows(windows.GUID(sl.ID))] = sl.Name
	}
	if len(ours) != len(theirs) {
		t.Errorf("got %d sub-layers, wf sees %d", len(ours), len(theirs))
	}
	for _, sl := range ours {
		name, ok := names[sl.Key]
		if !ok {
			t.Errorf("sub-layer %v not seen by wf", sl.Key)
			continue
		}
		if name != sl.Display.Name {
			t.Errorf("sub-layer %v name = %q; wf says %q", sl.Key, sl.Display.Name, name)
		}
	}
}

func TestAddSubLayerLive(t *testing.T) {
	s, err := Open(nil)
	if err != nil {
		t.Skipf("opening filter engine: %v", err)
	}
	defer s.Close()
	sl, err := NewSubLayer("ipconfig test sub-layer", nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.AddSubLayer(sl); err != nil {
		t.Skipf("AddSubLayer: %v", err)
	}
	all, err := s.SubLayers()
	if err != nil {
		t.Fatal(err)
	}
	for _, got := range all {
		if got.Key == sl.Key {
			if got.Weight != 0xFFFF || got.ProviderKey != nil {
				t.Errorf("added sub-layer read back as weight=%#x provider=%v", got.Weight, got.ProviderKey)
			}
			return
		}
	}
	t.Errorf("added sub-layer %v not enumerated", sl.Key)
}
