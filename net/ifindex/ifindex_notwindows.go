// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

//go:build !windows

package ifindex

import "github.com/ipconfig2/ipconfig/types/syserr"

func osNameToIndex(string) (uint32, error) {
	return 0, syserr.ErrNotSupported
}
