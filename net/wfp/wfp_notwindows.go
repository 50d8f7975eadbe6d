// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

//go:build !windows

package wfp

import "github.com/ipconfig2/ipconfig/types/syserr"

func newOSEngine() (engine, error) {
	return nil, syserr.ErrNotSupported
}
