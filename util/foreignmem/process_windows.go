// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package foreignmem

import (
	"unsafe"

	"github.com/ipconfig2/ipconfig/types/syserr"
)

// Process reads memory the OS allocated inside this process, such as
// the arrays WFP enumeration functions return. The caller vouches that
// every non-null address it follows points at live OS memory, so only
// null and wraparound are checked.
type Process struct{}

func (Process) ReadAt(p []byte, addr uint64) error {
	if addr == 0 {
		return syserr.Decodef("memory", "read through null pointer")
	}
	if addr+uint64(len(p)) < addr || uint64(uintptr(addr)) != addr {
		return syserr.Decodef("memory", "address %#x out of range", addr)
	}
	if len(p) == 0 {
		return nil
	}
	copy(p, unsafe.Slice((*byte)(osPointer(uintptr(addr))), len(p)))
	return nil
}

// osPointer turns an address the OS handed back as an integer into a
// pointer. It is the only place this package does so.
func osPointer(addr uintptr) unsafe.Pointer {
	return *(*unsafe.Pointer)(unsafe.Pointer(&addr))
}
