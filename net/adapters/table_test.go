// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package adapters

import (
	"net/netip"
	"unicode/utf16"

	"github.com/ipconfig2/ipconfig/types/ifid"
	"github.com/ipconfig2/ipconfig/util/endian"
	"github.com/ipconfig2/ipconfig/util/foreignmem"
)

// tableBuilder lays out an adapter table the way GetAdaptersAddresses
// does: records inside one buffer, linked by absolute pointers.
type tableBuilder struct {
	buf  []byte
	base uint64
	off  int
}

func newTableBuilder(buf []byte) *tableBuilder {
	return &tableBuilder{buf: buf, base: foreignmem.AddrOf(buf)}
}

func (tb *tableBuilder) alloc(n int) (uint64, foreignmem.Block) {
	off := (tb.off + 7) &^ 7
	if off+n > len(tb.buf) {
		panic("tableBuilder: buffer full")
	}
	tb.off = off + n
	return tb.base + uint64(off), foreignmem.Block(tb.buf[off : off+n])
}

func (tb *tableBuilder) used() uint32 { return uint32(tb.off) }

func (tb *tableBuilder) region() foreignmem.Region {
	return foreignmem.Region{Base: tb.base, Data: tb.buf[:tb.off]}
}

func putPtr(b []byte, off int, addr uint64) {
	if foreignmem.PtrSize == 8 {
		endian.Native.PutUint64(b[off:], addr)
	} else {
		endian.Native.PutUint32(b[off:], uint32(addr))
	}
}

func (tb *tableBuilder) cstring(s string) uint64 {
	addr, b := tb.alloc(len(s) + 1)
	copy(b, s)
	return addr
}

func (tb *tableBuilder) wstring(s string) uint64 {
	u := utf16.Encode([]rune(s))
	addr, b := tb.alloc(2 * (len(u) + 1))
	for i, x := range u {
		endian.Native.PutUint16(b[2*i:], x)
	}
	return addr
}

func (tb *tableBuilder) sockaddr(ip netip.Addr) (uint64, int32) {
	if ip.Is4() {
		addr, b := tb.alloc(sockaddrInLen)
		endian.Native.PutUint16(b, afInet)
		a4 := ip.As4()
		copy(b[4:], a4[:])
		return addr, sockaddrInLen
	}
	addr, b := tb.alloc(sockaddrIn6Len)
	endian.Native.PutUint16(b, afInet6)
	a16 := ip.As16()
	copy(b[8:], a16[:])
	return addr, sockaddrIn6Len
}

// putSocketAddress points the SOCKET_ADDRESS at off in b to raw bytes.
func putSocketAddress(b []byte, off int, ptr uint64, n int32) {
	putPtr(b, off+_SOCKET_ADDRESS_lpSockaddr_Offset, ptr)
	endian.Native.PutUint32(b[off+_SOCKET_ADDRESS_iSockaddrLength_Offset:], uint32(n))
}

// chain writes a linked list of size-byte records, calling fill for each
// one, and returns the head.
func (tb *tableBuilder) chain(n, size int, fill func(i int, b foreignmem.Block)) uint64 {
	addrs := make([]uint64, n)
	blocks := make([]foreignmem.Block, n)
	for i := range n {
		addrs[i], blocks[i] = tb.alloc(size)
		endian.Native.PutUint32(blocks[i], uint32(size))
	}
	for i := range n {
		if i+1 < n {
			putPtr(blocks[i], _IP_ADAPTER_RECORD_Next_Offset, addrs[i+1])
		}
		fill(i, blocks[i])
	}
	if n == 0 {
		return 0
	}
	return addrs[0]
}

func (tb *tableBuilder) addrChain(ips []netip.Addr, size int) uint64 {
	return tb.chain(len(ips), size, func(i int, b foreignmem.Block) {
		ptr, n := tb.sockaddr(ips[i])
		putSocketAddress(b, _IP_ADAPTER_RECORD_Address_Offset, ptr, n)
	})
}

type fakeAdapter struct {
	name, friendly, desc, suffix string

	guid         ifid.GUID
	luid         uint64
	v4idx, v6idx uint32
	metric4      uint32
	metric6      uint32
	mac          []byte
	oper, ifType uint32
	mtu          uint32
	rxSpeed      uint64
	txSpeed      uint64
	unicast      []netip.Addr
	gateways     []netip.Addr
	dns          []netip.Addr
	prefixes     []netip.Prefix
	nullName     bool
	nullFriendly bool
}

// writeAdapters writes the adapters with the first record at the start
// of the buffer and returns the head address.
func (tb *tableBuilder) writeAdapters(ads []fakeAdapter) uint64 {
	if len(ads) == 0 {
		return 0
	}
	addrs := make([]uint64, len(ads))
	blocks := make([]foreignmem.Block, len(ads))
	for i := range ads {
		addrs[i], blocks[i] = tb.alloc(_IP_ADAPTER_ADDRESSES_Size)
	}
	for i, a := range ads {
		b := blocks[i]
		n := endian.Native
		n.PutUint32(b[_IP_ADAPTER_ADDRESSES_Length_Offset:], _IP_ADAPTER_ADDRESSES_Size)
		n.PutUint32(b[_IP_ADAPTER_ADDRESSES_IfIndex_Offset:], a.v4idx)
		if i+1 < len(ads) {
			putPtr(b, _IP_ADAPTER_ADDRESSES_Next_Offset, addrs[i+1])
		}
		if !a.nullName {
			putPtr(b, _IP_ADAPTER_ADDRESSES_AdapterName_Offset, tb.cstring(a.name))
		}
		if !a.nullFriendly {
			putPtr(b, _IP_ADAPTER_ADDRESSES_FriendlyName_Offset, tb.wstring(a.friendly))
		}
		putPtr(b, _IP_ADAPTER_ADDRESSES_Description_Offset, tb.wstring(a.desc))
		putPtr(b, _IP_ADAPTER_ADDRESSES_DnsSuffix_Offset, tb.wstring(a.suffix))
		copy(b[_IP_ADAPTER_ADDRESSES_PhysicalAddress_Offset:], a.mac)
		n.PutUint32(b[_IP_ADAPTER_ADDRESSES_PhysicalAddressLength_Offset:], uint32(len(a.mac)))
		n.PutUint32(b[_IP_ADAPTER_ADDRESSES_Mtu_Offset:], a.mtu)
		n.PutUint32(b[_IP_ADAPTER_ADDRESSES_IfType_Offset:], a.ifType)
		n.PutUint32(b[_IP_ADAPTER_ADDRESSES_OperStatus_Offset:], a.oper)
		n.PutUint32(b[_IP_ADAPTER_ADDRESSES_Ipv6IfIndex_Offset:], a.v6idx)
		n.PutUint64(b[_IP_ADAPTER_ADDRESSES_TransmitLinkSpeed_Offset:], a.txSpeed)
		n.PutUint64(b[_IP_ADAPTER_ADDRESSES_ReceiveLinkSpeed_Offset:], a.rxSpeed)
		n.PutUint32(b[_IP_ADAPTER_ADDRESSES_Ipv4Metric_Offset:], a.metric4)
		n.PutUint32(b[_IP_ADAPTER_ADDRESSES_Ipv6Metric_Offset:], a.metric6)
		n.PutUint64(b[_IP_ADAPTER_ADDRESSES_Luid_Offset:], a.luid)
		g := a.guid.Bytes()
		copy(b[_IP_ADAPTER_ADDRESSES_NetworkGuid_Offset:], g[:])

		putPtr(b, _IP_ADAPTER_ADDRESSES_FirstUnicastAddress_Offset, tb.addrChain(a.unicast, _IP_ADAPTER_UNICAST_ADDRESS_Size))
		putPtr(b, _IP_ADAPTER_ADDRESSES_FirstGatewayAddress_Offset, tb.addrChain(a.gateways, _IP_ADAPTER_GATEWAY_ADDRESS_Size))
		putPtr(b, _IP_ADAPTER_ADDRESSES_FirstDnsServerAddress_Offset, tb.addrChain(a.dns, _IP_ADAPTER_DNS_SERVER_ADDRESS_Size))
		putPtr(b, _IP_ADAPTER_ADDRESSES_FirstPrefix_Offset, tb.chain(len(a.prefixes), _IP_ADAPTER_PREFIX_Size, func(i int, pb foreignmem.Block) {
			p := a.prefixes[i]
			ptr, sl := tb.sockaddr(p.Addr())
			putSocketAddress(pb, _IP_ADAPTER_RECORD_Address_Offset, ptr, sl)
			endian.Native.PutUint32(pb[_IP_ADAPTER_PREFIX_PrefixLength_Offset:], uint32(p.Bits()))
		}))
	}
	return addrs[0]
}

// ethernet is a typical wired adapter with both families enabled.
var ethernet = fakeAdapter{
	name:     "{4D36E972-E325-11CE-BFC1-08002BE10318}",
	friendly: "Ethernet",
	desc:     "Intel(R) Ethernet Connection I219-V",
	suffix:   "corp.example.com",
	guid:     ifid.MustParseGUID("{6B29FC40-CA47-1067-B31D-00DD010662DA}"),
	luid:     0x0006000001000000,
	v4idx:    12,
	v6idx:    12,
	metric4:  25,
	metric6:  25,
	mac:      []byte{0x00, 0x15, 0x5d, 0x01, 0x02, 0x03},
	oper:     1,
	ifType:   6,
	mtu:      1500,
	rxSpeed:  1_000_000_000,
	txSpeed:  1_000_000_000,
	unicast: []netip.Addr{
		netip.MustParseAddr("fe80::1c2d:3e4f:5a6b:7c8d"),
		netip.MustParseAddr("192.168.1.20"),
	},
	gateways: []netip.Addr{netip.MustParseAddr("192.168.1.1")},
	dns: []netip.Addr{
		netip.MustParseAddr("192.168.1.1"),
		netip.MustParseAddr("2001:4860:4860::8888"),
	},
	prefixes: []netip.Prefix{
		netip.MustParsePrefix("192.168.1.0/24"),
		netip.MustParsePrefix("192.168.1.20/32"),
		netip.MustParsePrefix("fe80::/64"),
	},
}

var loopback = fakeAdapter{
	name:     "{2F5B8E11-0000-0000-0000-000000000001}",
	friendly: "Loopback Pseudo-Interface 1",
	desc:     "Software Loopback Interface 1",
	luid:     0x0018000000000000,
	v4idx:    1,
	v6idx:    1,
	metric4:  75,
	metric6:  75,
	oper:     1,
	ifType:   24,
	mtu:      0xFFFFFFFF,
	unicast: []netip.Addr{
		netip.MustParseAddr("::1"),
		netip.MustParseAddr("127.0.0.1"),
	},
	prefixes: []netip.Prefix{netip.MustParsePrefix("127.0.0.0/8")},
}
