// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

//go:build 386 || amd64 || arm || arm64 || loong64 || mips64le || mipsle || ppc64le || riscv64 || wasm

package endian

import (
	"encoding/binary"
	"math/bits"
)

// Big is whether the current platform is big endian.
const Big = false

// Native is the platform's native byte order.
var Native = binary.LittleEndian

// Hton32 converts a host-order uint32 into network order.
func Hton32(v uint32) uint32 { return bits.ReverseBytes32(v) }

// Ntoh16 converts a network-order uint16 into host order.
func Ntoh16(v uint16) uint16 { return bits.ReverseBytes16(v) }
