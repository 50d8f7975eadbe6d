// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package ifid

import (
	"errors"
	"fmt"

	"golang.org/x/sys/windows"
	"golang.zx2c4.com/wireguard/windows/tunnel/winipcfg"
)

// Windows returns g as a windows.GUID.
func (g GUID) Windows() windows.GUID {
	return windows.GUID(g)
}

// FromWindows converts a windows.GUID.
func FromWindows(g windows.GUID) GUID {
	return GUID(g)
}

// GUID asks the OS for the interface GUID that corresponds to l.
func (l LUID) GUID() (GUID, error) {
	g, err := winipcfg.LUID(l).GUID()
	if err != nil {
		return GUID{}, fmt.Errorf("ConvertInterfaceLuidToGuid(%v): %w", l, err)
	}
	return FromWindows(*g), nil
}

// LUIDFromGUID asks the OS for the LUID of the interface identified by g.
func LUIDFromGUID(g GUID) (LUID, error) {
	wg := g.Windows()
	l, err := winipcfg.LUIDFromGUID(&wg)
	if err != nil {
		if errors.Is(err, windows.ERROR_NOT_FOUND) {
			return 0, ErrNoLUID
		}
		return 0, fmt.Errorf("ConvertInterfaceGuidToLuid(%v): %w", g, err)
	}
	return LUID(l), nil
}
