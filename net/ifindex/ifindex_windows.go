// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package ifindex

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	modiphlpapi       = windows.NewLazySystemDLL("iphlpapi.dll")
	procIfNameToIndex = modiphlpapi.NewProc("if_nametoindex")
)

// osNameToIndex calls if_nametoindex, which takes an ANSI name and
// reports failure only as a zero index.
func osNameToIndex(name string) (uint32, error) {
	if err := procIfNameToIndex.Find(); err != nil {
		return 0, err
	}
	p, err := windows.BytePtrFromString(name)
	if err != nil {
		return 0, err
	}
	r1, _, _ := procIfNameToIndex.Call(uintptr(unsafe.Pointer(p)))
	return uint32(r1), nil
}
