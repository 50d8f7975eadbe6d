// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

//go:build !windows

package syserr

import "fmt"

// Win32 codes do not map onto unix errnos, so there is nothing to unwrap.
func errno(Code) error { return nil }

var names = map[Code]string{
	CodeNotSupported:   "ERROR_NOT_SUPPORTED",
	CodeBufferOverflow: "ERROR_BUFFER_OVERFLOW",
	CodeNoData:         "ERROR_NO_DATA",
	CodeNotFound:       "ERROR_NOT_FOUND",
}

func describe(c Code) string {
	if n, ok := names[c]; ok {
		return fmt.Sprintf("%s (%#x)", n, uint32(c))
	}
	return fmt.Sprintf("status %#x", uint32(c))
}
