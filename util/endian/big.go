// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

//go:build mips || mips64 || ppc64 || s390x

package endian

import "encoding/binary"

// Big is whether the current platform is big endian.
const Big = true

// Native is the platform's native byte order.
var Native = binary.BigEndian

// Hton32 converts a host-order uint32 into network order.
func Hton32(v uint32) uint32 { return v }

// Ntoh16 converts a network-order uint16 into host order.
func Ntoh16(v uint16) uint16 { return v }
