// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

//go:build !windows

package dnsconfig

import (
	"net/netip"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/ipconfig2/ipconfig/types/syserr"
)

func TestNotSupported(t *testing.T) {
	_, err := Get(1)
	qt.Assert(t, err, qt.ErrorIs, syserr.ErrNotSupported)
	err = Set(1, false, []netip.Addr{netip.MustParseAddr("1.1.1.1")}, nil)
	qt.Assert(t, err, qt.ErrorIs, syserr.ErrNotSupported)

	// Input is checked before the OS is asked.
	err = Set(1, true, []netip.Addr{netip.MustParseAddr("1.1.1.1")}, nil)
	qt.Assert(t, syserr.IsInput(err), qt.IsTrue)
}
