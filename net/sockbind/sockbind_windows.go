// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package sockbind

import "golang.org/x/sys/windows"

func osSetsockopt(fd uintptr, level, opt, val int) error {
	return windows.SetsockoptInt(windows.Handle(fd), level, opt, val)
}
