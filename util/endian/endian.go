// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

// Package endian exposes the host byte order. OS tables and identifiers
// are laid out in host order, so decoders read them through Native.
package endian
