// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package adapters

import (
	"fmt"
	"net"
	"net/netip"

	"github.com/ipconfig2/ipconfig/types/ifid"
	"github.com/ipconfig2/ipconfig/types/syserr"
	"github.com/ipconfig2/ipconfig/util/foreignmem"
)

// maxPhysicalAddressLen is MAX_ADAPTER_ADDRESS_LENGTH.
const maxPhysicalAddressLen = 8

// Decode decodes the IP_ADAPTER_ADDRESSES chain starting at head. All
// memory, including the records the chain points to, is read through r.
// Any malformed record fails the whole decode.
func Decode(r foreignmem.Reader, head uint64) ([]Adapter, error) {
	return Walk(r, head, adapterShape, func(b foreignmem.Block) (Adapter, error) {
		return decodeAdapter(r, b)
	})
}

func decodeAdapter(r foreignmem.Reader, b foreignmem.Block) (Adapter, error) {
	if l := b.Uint32(_IP_ADAPTER_ADDRESSES_Length_Offset); l < _IP_ADAPTER_ADDRESSES_Size {
		return Adapter{}, syserr.Decodef("IP_ADAPTER_ADDRESSES", "record length %d, want at least %d", l, _IP_ADAPTER_ADDRESSES_Size)
	}
	a := Adapter{
		NetworkGUID:       b.GUID(_IP_ADAPTER_ADDRESSES_NetworkGuid_Offset),
		LUID:              ifid.LUID(b.Uint64(_IP_ADAPTER_ADDRESSES_Luid_Offset)),
		IPv4Index:         b.Uint32(_IP_ADAPTER_ADDRESSES_IfIndex_Offset),
		IPv6Index:         b.Uint32(_IP_ADAPTER_ADDRESSES_Ipv6IfIndex_Offset),
		IPv4Metric:        b.Uint32(_IP_ADAPTER_ADDRESSES_Ipv4Metric_Offset),
		IPv6Metric:        b.Uint32(_IP_ADAPTER_ADDRESSES_Ipv6Metric_Offset),
		ReceiveLinkSpeed:  b.Uint64(_IP_ADAPTER_ADDRESSES_ReceiveLinkSpeed_Offset),
		TransmitLinkSpeed: b.Uint64(_IP_ADAPTER_ADDRESSES_TransmitLinkSpeed_Offset),
		IfType:            parseIfType(b.Uint32(_IP_ADAPTER_ADDRESSES_IfType_Offset)),
		MTU:               b.Uint32(_IP_ADAPTER_ADDRESSES_Mtu_Offset),
	}
	var err error
	if a.OperStatus, err = parseOperStatus(b.Uint32(_IP_ADAPTER_ADDRESSES_OperStatus_Offset)); err != nil {
		return Adapter{}, err
	}
	if a.Name, err = optString(r, b.Ptr(_IP_ADAPTER_ADDRESSES_AdapterName_Offset), foreignmem.ReadCString); err != nil {
		return Adapter{}, fmt.Errorf("AdapterName: %w", err)
	}
	if a.Description, err = optString(r, b.Ptr(_IP_ADAPTER_ADDRESSES_Description_Offset), foreignmem.ReadWString); err != nil {
		return Adapter{}, fmt.Errorf("Description: %w", err)
	}
	if a.FriendlyName, err = optString(r, b.Ptr(_IP_ADAPTER_ADDRESSES_FriendlyName_Offset), foreignmem.ReadWString); err != nil {
		return Adapter{}, fmt.Errorf("FriendlyName: %w", err)
	}
	if a.DNSSuffix, err = optString(r, b.Ptr(_IP_ADAPTER_ADDRESSES_DnsSuffix_Offset), foreignmem.ReadWString); err != nil {
		return Adapter{}, fmt.Errorf("DnsSuffix: %w", err)
	}
	if a.PhysicalAddress, err = decodePhysicalAddress(b); err != nil {
		return Adapter{}, err
	}
	if a.Addresses, err = walkAddrs(r, b.Ptr(_IP_ADAPTER_ADDRESSES_FirstUnicastAddress_Offset), unicastShape); err != nil {
		return Adapter{}, err
	}
	if a.Gateways, err = walkAddrs(r, b.Ptr(_IP_ADAPTER_ADDRESSES_FirstGatewayAddress_Offset), gatewayShape); err != nil {
		return Adapter{}, err
	}
	if a.DNSServers, err = walkAddrs(r, b.Ptr(_IP_ADAPTER_ADDRESSES_FirstDnsServerAddress_Offset), dnsServerShape); err != nil {
		return Adapter{}, err
	}
	a.Prefixes, err = Walk(r, b.Ptr(_IP_ADAPTER_ADDRESSES_FirstPrefix_Offset), prefixShape, func(pb foreignmem.Block) (netip.Prefix, error) {
		ip, err := decodeSocketAddress(r, pb, _IP_ADAPTER_RECORD_Address_Offset)
		if err != nil {
			return netip.Prefix{}, err
		}
		bits := pb.Uint32(_IP_ADAPTER_PREFIX_PrefixLength_Offset)
		p := netip.PrefixFrom(ip, int(bits))
		if bits > uint32(ip.BitLen()) || !p.IsValid() {
			return netip.Prefix{}, syserr.Decodef("IP_ADAPTER_PREFIX", "length %d invalid for %v", bits, ip)
		}
		return p, nil
	})
	if err != nil {
		return Adapter{}, err
	}
	return a, nil
}

// walkAddrs decodes a chain of records that carry only an address.
func walkAddrs(r foreignmem.Reader, head uint64, s Shape) ([]netip.Addr, error) {
	return Walk(r, head, s, func(b foreignmem.Block) (netip.Addr, error) {
		return decodeSocketAddress(r, b, _IP_ADAPTER_RECORD_Address_Offset)
	})
}

// optString reads a string field, treating a null pointer as empty.
func optString(r foreignmem.Reader, addr uint64, read func(foreignmem.Reader, uint64) (string, error)) (string, error) {
	if addr == 0 {
		return "", nil
	}
	return read(r, addr)
}

func decodePhysicalAddress(b foreignmem.Block) (net.HardwareAddr, error) {
	n := b.Uint32(_IP_ADAPTER_ADDRESSES_PhysicalAddressLength_Offset)
	if n > maxPhysicalAddressLen {
		return nil, syserr.Decodef("PhysicalAddress", "length %d exceeds %d", n, maxPhysicalAddressLen)
	}
	if n == 0 {
		return nil, nil
	}
	return net.HardwareAddr(b.Bytes(_IP_ADAPTER_ADDRESSES_PhysicalAddress_Offset, int(n))), nil
}
