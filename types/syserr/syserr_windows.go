// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package syserr

import (
	"fmt"

	"golang.org/x/sys/windows"
)

func errno(c Code) error { return windows.Errno(c) }

func describe(c Code) string {
	return fmt.Sprintf("%v (%#x)", windows.Errno(c), uint32(c))
}
