// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

//go:build !windows

package sockbind

import "github.com/ipconfig2/ipconfig/types/syserr"

func osSetsockopt(fd uintptr, level, opt, val int) error {
	return syserr.ErrNotSupported
}
