// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

// Package foreignmem reads memory the OS filled in: tables returned into a
// caller buffer and objects the OS allocated itself. Reads are copies.
// Nothing here hands out a pointer or slice aliasing foreign memory, and
// every read is checked against the memory the Reader knows about.
package foreignmem

import (
	"fmt"
	"sort"
	"unsafe"

	"github.com/ipconfig2/ipconfig/types/ifid"
	"github.com/ipconfig2/ipconfig/types/syserr"
	"github.com/ipconfig2/ipconfig/util/endian"
)

// PtrSize is the width of a pointer inside OS structures on this platform.
const PtrSize = int(unsafe.Sizeof(uintptr(0)))

// A Reader copies foreign memory into caller-owned buffers.
type Reader interface {
	// ReadAt fills p with the len(p) bytes starting at addr. It fails
	// without a partial copy if any of those bytes is not readable.
	ReadAt(p []byte, addr uint64) error
}

// Copy reads n bytes at addr into a new Block.
func Copy(r Reader, addr uint64, n int) (Block, error) {
	if addr == 0 {
		return nil, syserr.Decodef("memory", "read of %d bytes through null pointer", n)
	}
	b := make(Block, n)
	if err := r.ReadAt(b, addr); err != nil {
		return nil, err
	}
	return b, nil
}

// Region is one contiguous buffer whose first byte lives at address Base.
// Reads outside [Base, Base+len(Data)) fail.
type Region struct {
	Base uint64
	Data []byte
}

// AddrOf returns the address of b's first byte, or 0 if b is empty.
func AddrOf(b []byte) uint64 {
	if len(b) == 0 {
		return 0
	}
	return uint64(uintptr(unsafe.Pointer(&b[0])))
}

// RegionOf returns a Region for b at its real address. OS tables written
// into b carry absolute pointers into b, so they resolve against this
// Region.
func RegionOf(b []byte) Region {
	return Region{Base: AddrOf(b), Data: b}
}

// Contains reports whether [addr, addr+n) lies inside r.
func (r Region) Contains(addr uint64, n int) bool {
	if n < 0 || addr < r.Base {
		return false
	}
	off := addr - r.Base
	return off <= uint64(len(r.Data)) && uint64(n) <= uint64(len(r.Data))-off
}

func (r Region) ReadAt(p []byte, addr uint64) error {
	if !r.Contains(addr, len(p)) {
		return syserr.Decodef("memory", "read of %d bytes at %#x outside [%#x, %#x)",
			len(p), addr, r.Base, r.Base+uint64(len(r.Data)))
	}
	copy(p, r.Data[addr-r.Base:])
	return nil
}

// Space is a set of disjoint Regions, such as the separate allocations
// behind an array of object pointers.
type Space struct {
	regions []Region // sorted by Base
}

// Add adds r to s. It panics if r overlaps a region already in s.
func (s *Space) Add(r Region) {
	i := sort.Search(len(s.regions), func(i int) bool { return s.regions[i].Base >= r.Base })
	end := r.Base + uint64(len(r.Data))
	if i > 0 {
		prev := s.regions[i-1]
		if prev.Base+uint64(len(prev.Data)) > r.Base {
			panic(fmt.Sprintf("foreignmem: region at %#x overlaps %#x", r.Base, prev.Base))
		}
	}
	if i < len(s.regions) && s.regions[i].Base < end {
		panic(fmt.Sprintf("foreignmem: region at %#x overlaps %#x", r.Base, s.regions[i].Base))
	}
	s.regions = append(s.regions, Region{})
	copy(s.regions[i+1:], s.regions[i:])
	s.regions[i] = r
}

func (s *Space) ReadAt(p []byte, addr uint64) error {
	i := sort.Search(len(s.regions), func(i int) bool { return s.regions[i].Base > addr })
	if i == 0 {
		return syserr.Decodef("memory", "read of %d bytes at unmapped address %#x", len(p), addr)
	}
	return s.regions[i-1].ReadAt(p, addr)
}

// Block is a fixed-size record copied out of foreign memory. Accessors
// decode fields in host byte order at byte offsets, so they do not care
// about the alignment the OS used.
type Block []byte

func (b Block) Uint8(off int) uint8   { return b[off] }
func (b Block) Uint16(off int) uint16 { return endian.Native.Uint16(b[off : off+2]) }
func (b Block) Uint32(off int) uint32 { return endian.Native.Uint32(b[off : off+4]) }
func (b Block) Int32(off int) int32   { return int32(b.Uint32(off)) }
func (b Block) Uint64(off int) uint64 { return endian.Native.Uint64(b[off : off+8]) }

// Ptr reads a PtrSize-wide pointer at off.
func (b Block) Ptr(off int) uint64 {
	if PtrSize == 4 {
		return uint64(b.Uint32(off))
	}
	return b.Uint64(off)
}

// GUID reads a 16-byte identifier at off.
func (b Block) GUID(off int) ifid.GUID {
	var raw [16]byte
	copy(raw[:], b[off:off+16])
	return ifid.GUIDFromBytes(raw)
}

// Bytes returns a copy of the n bytes at off.
func (b Block) Bytes(off, n int) []byte {
	return append([]byte(nil), b[off:off+n]...)
}
