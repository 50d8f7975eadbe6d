// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package adapters

import (
	"net/netip"

	"github.com/ipconfig2/ipconfig/types/syserr"
	"github.com/ipconfig2/ipconfig/util/endian"
	"github.com/ipconfig2/ipconfig/util/foreignmem"
)

const (
	afInet  = 2  // AF_INET
	afInet6 = 23 // AF_INET6 on Windows

	// maxSockaddrLen is sizeof(SOCKADDR_STORAGE).
	maxSockaddrLen = 128

	sockaddrInLen  = 16 // sizeof(SOCKADDR_IN)
	sockaddrIn6Len = 28 // sizeof(SOCKADDR_IN6)
)

// decodeSocketAddress decodes the SOCKET_ADDRESS embedded in b at off.
// Exactly the advertised number of bytes is copied into a staging
// buffer; the zone of an IPv6 address is dropped.
func decodeSocketAddress(r foreignmem.Reader, b foreignmem.Block, off int) (netip.Addr, error) {
	ptr := b.Ptr(off + _SOCKET_ADDRESS_lpSockaddr_Offset)
	n := b.Int32(off + _SOCKET_ADDRESS_iSockaddrLength_Offset)
	if n < 0 || n > maxSockaddrLen {
		return netip.Addr{}, syserr.Decodef("SOCKET_ADDRESS", "length %d out of range", n)
	}
	if n < 2 {
		return netip.Addr{}, syserr.Decodef("SOCKET_ADDRESS", "length %d too short for a family", n)
	}
	var stage [maxSockaddrLen]byte
	if ptr == 0 {
		return netip.Addr{}, syserr.Decodef("SOCKET_ADDRESS", "null sockaddr with length %d", n)
	}
	if err := r.ReadAt(stage[:n], ptr); err != nil {
		return netip.Addr{}, err
	}
	switch fam := endian.Native.Uint16(stage[:2]); fam {
	case afInet:
		if n < sockaddrInLen {
			return netip.Addr{}, syserr.Decodef("SOCKADDR_IN", "length %d", n)
		}
		return netip.AddrFrom4([4]byte(stage[4:8])), nil
	case afInet6:
		if n < sockaddrIn6Len {
			return netip.Addr{}, syserr.Decodef("SOCKADDR_IN6", "length %d", n)
		}
		return netip.AddrFrom16([16]byte(stage[8:24])), nil
	default:
		return netip.Addr{}, syserr.Decodef("SOCKET_ADDRESS", "unsupported address family %d", fam)
	}
}
