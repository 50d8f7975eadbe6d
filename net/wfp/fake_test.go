// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package wfp

import (
	"unicode/utf16"

	"github.com/ipconfig2/ipconfig/types/ifid"
	"github.com/ipconfig2/ipconfig/util/endian"
	"github.com/ipconfig2/ipconfig/util/foreignmem"
)

// fakeHeap stands in for memory the filtering engine allocates.
type fakeHeap struct {
	space  foreignmem.Space
	blocks [][]byte // keeps allocations alive
}

// alloc returns n bytes of fake OS memory. Each allocation is followed
// by unmapped guard bytes, so reads past its end fail.
func (h *fakeHeap) alloc(n int) (uint64, []byte) {
	const guard = 16
	full := make([]byte, n+guard)
	b := full[:n:n]
	h.blocks = append(h.blocks, b)
	r := foreignmem.Region{Base: foreignmem.AddrOf(full), Data: b}
	h.space.Add(r)
	return r.Base, b
}

func (h *fakeHeap) wstring(s string) uint64 {
	return h.wunits(append(utf16.Encode([]rune(s)), 0))
}

func (h *fakeHeap) wunits(u []uint16) uint64 {
	addr, b := h.alloc(2 * len(u))
	for i, x := range u {
		endian.Native.PutUint16(b[2*i:], x)
	}
	return addr
}

func (h *fakeHeap) guid(g ifid.GUID) uint64 {
	addr, b := h.alloc(16)
	raw := g.Bytes()
	copy(b, raw[:])
	return addr
}

func putPtr(b []byte, off int, addr uint64) {
	if foreignmem.PtrSize == 8 {
		endian.Native.PutUint64(b[off:], addr)
	} else {
		endian.Native.PutUint32(b[off:], uint32(addr))
	}
}

func putGUID(b []byte, off int, g ifid.GUID) {
	raw := g.Bytes()
	copy(b[off:], raw[:])
}

func (h *fakeHeap) displayData(b []byte, off int, d DisplayData) {
	putPtr(b, off, h.wstring(d.Name))
	if d.Description != nil {
		putPtr(b, off+wtFwpmDisplayData0_description_Offset, h.wstring(*d.Description))
	}
}

func (h *fakeHeap) subLayer(sl SubLayer) uint64 {
	addr, b := h.alloc(wtFwpmSublayer0_Size)
	putGUID(b, 0, sl.Key)
	h.displayData(b, wtFwpmSublayer0_displayData_Offset, sl.Display)
	endian.Native.PutUint32(b[wtFwpmSublayer0_flags_Offset:], sl.Flags)
	if sl.ProviderKey != nil {
		putPtr(b, wtFwpmSublayer0_providerKey_Offset, h.guid(*sl.ProviderKey))
	}
	endian.Native.PutUint16(b[wtFwpmSublayer0_weight_Offset:], sl.Weight)
	return addr
}

func (h *fakeHeap) filter(f Filter) uint64 {
	addr, b := h.alloc(wtFwpmFilter0_Size)
	putGUID(b, 0, f.Key)
	h.displayData(b, wtFwpmFilter0_displayData_Offset, f.Display)
	endian.Native.PutUint32(b[wtFwpmFilter0_flags_Offset:], f.Flags)
	if f.ProviderKey != nil {
		putPtr(b, wtFwpmFilter0_providerKey_Offset, h.guid(*f.ProviderKey))
	}
	putGUID(b, wtFwpmFilter0_layerKey_Offset, f.LayerKey)
	putGUID(b, wtFwpmFilter0_subLayerKey_Offset, f.SubLayerKey)
	endian.Native.PutUint32(b[wtFwpmFilter0_numFilterConditions_Offset:], f.NumConditions)
	endian.Native.PutUint32(b[wtFwpmFilter0_action_Offset:], f.ActionType)
	endian.Native.PutUint64(b[wtFwpmFilter0_filterID_Offset:], f.ID)
	return addr
}

// array returns an OS-style array of object pointers.
func (h *fakeHeap) array(ptrs ...uint64) uint64 {
	addr, b := h.alloc(len(ptrs) * foreignmem.PtrSize)
	for i, p := range ptrs {
		putPtr(b, i*foreignmem.PtrSize, p)
	}
	return addr
}

// fakeEngine records the calls made on it in order.
type fakeEngine struct {
	heap  fakeHeap
	calls []string

	opts      Options
	added     []SubLayer
	layer     ifid.GUID
	array     uint64 // returned by both enum calls
	n         uint32
	limit     uint32
	freed     []uint64
	openErr   error
	enumErr   error
	createErr error
}

const (
	fakeSession = 0x5e55
	fakeCursor  = 0xc0c0
)

func (e *fakeEngine) open(o Options) (uintptr, error) {
	e.calls = append(e.calls, "open")
	e.opts = o
	return fakeSession, e.openErr
}

func (e *fakeEngine) close(uintptr) error {
	e.calls = append(e.calls, "close")
	return nil
}

func (e *fakeEngine) createSubLayerEnum(uintptr) (uintptr, error) {
	e.calls = append(e.calls, "create")
	return fakeCursor, e.createErr
}

func (e *fakeEngine) enumSubLayers(_, _ uintptr, limit uint32) (uint64, uint32, error) {
	e.calls = append(e.calls, "enum")
	e.limit = limit
	if e.enumErr != nil {
		return 0, 0, e.enumErr
	}
	return e.array, e.n, nil
}

func (e *fakeEngine) destroySubLayerEnum(uintptr, uintptr) error {
	e.calls = append(e.calls, "destroy")
	return nil
}

func (e *fakeEngine) createFilterEnum(_ uintptr, layer ifid.GUID) (uintptr, error) {
	e.layer = layer
	return e.createSubLayerEnum(0)
}

func (e *fakeEngine) enumFilters(s, c uintptr, limit uint32) (uint64, uint32, error) {
	return e.enumSubLayers(s, c, limit)
}

func (e *fakeEngine) destroyFilterEnum(s, c uintptr) error {
	return e.destroySubLayerEnum(s, c)
}

func (e *fakeEngine) free(array uint64) {
	e.calls = append(e.calls, "free")
	e.freed = append(e.freed, array)
}

func (e *fakeEngine) addSubLayer(_ uintptr, sl SubLayer) error {
	e.calls = append(e.calls, "add")
	e.added = append(e.added, sl)
	return nil
}

func (e *fakeEngine) memory() foreignmem.Reader { return &e.heap.space }
