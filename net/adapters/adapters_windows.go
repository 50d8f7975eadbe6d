// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package adapters

import (
	"errors"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/ipconfig2/ipconfig/types/syserr"
)

const (
	gaaFlagIncludePrefix   = 0x10
	gaaFlagIncludeGateways = 0x80
)

func osQuery(buf []byte) (uint32, error) {
	size := uint32(len(buf))
	err := windows.GetAdaptersAddresses(windows.AF_UNSPEC,
		gaaFlagIncludePrefix|gaaFlagIncludeGateways, 0,
		(*windows.IpAdapterAddresses)(unsafe.Pointer(&buf[0])), &size)
	var errno windows.Errno
	switch {
	case err == nil:
		return uint32(len(buf)), nil
	case errors.Is(err, windows.ERROR_BUFFER_OVERFLOW):
		return size, syserr.ErrBufferOverflow
	case errors.Is(err, windows.ERROR_NO_DATA):
		return 0, nil
	case errors.As(err, &errno):
		return 0, syserr.NewOSError("GetAdaptersAddresses", syserr.Code(errno))
	default:
		return 0, err
	}
}
