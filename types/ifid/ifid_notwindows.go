// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

//go:build !windows

package ifid

import "github.com/ipconfig2/ipconfig/types/syserr"

// GUID asks the OS for the interface GUID that corresponds to l.
func (l LUID) GUID() (GUID, error) { return GUID{}, syserr.ErrNotSupported }

// LUIDFromGUID asks the OS for the LUID of the interface identified by g.
func LUIDFromGUID(g GUID) (LUID, error) { return 0, syserr.ErrNotSupported }
