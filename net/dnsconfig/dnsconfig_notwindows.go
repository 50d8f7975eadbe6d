// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

//go:build !windows

package dnsconfig

import (
	"github.com/ipconfig2/ipconfig/types/ifid"
	"github.com/ipconfig2/ipconfig/types/syserr"
)

func osGet(ifid.GUID) (*Settings, error) { return nil, syserr.ErrNotSupported }

func osSet(ifid.GUID, request) error { return syserr.ErrNotSupported }
