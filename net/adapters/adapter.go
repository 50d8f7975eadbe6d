// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

// Package adapters lists the host's network adapters as reported by the
// Windows IP helper API (GetAdaptersAddresses).
//
// Every call returns freshly built values that own all of their data;
// nothing refers back into OS memory. Decoding is platform independent
// and works on any table laid out like the OS's, which is how it is
// tested off Windows.
package adapters

import (
	"fmt"
	"net"
	"net/netip"

	"github.com/ipconfig2/ipconfig/types/ifid"
	"github.com/ipconfig2/ipconfig/types/syserr"
)

// Adapter is one network adapter.
type Adapter struct {
	// Name is the adapter's stable name, a brace-form GUID string.
	Name        string
	NetworkGUID ifid.GUID
	LUID        ifid.LUID

	// IPv4Index and IPv6Index are the interface indexes for each family.
	// Zero means the family is not enabled on the adapter.
	IPv4Index  uint32
	IPv6Index  uint32
	IPv4Metric uint32
	IPv6Metric uint32

	Addresses  []netip.Addr // unicast
	Prefixes   []netip.Prefix
	Gateways   []netip.Addr
	DNSServers []netip.Addr

	Description  string
	FriendlyName string
	DNSSuffix    string

	// PhysicalAddress is nil when the adapter has none.
	PhysicalAddress net.HardwareAddr

	// Link speeds are in bits per second.
	ReceiveLinkSpeed  uint64
	TransmitLinkSpeed uint64

	OperStatus OperStatus
	IfType     IfType
	MTU        uint32
}

// OperStatus is the RFC 2863 operational status of an adapter.
type OperStatus uint32

const (
	OperStatusUp             OperStatus = 1
	OperStatusDown           OperStatus = 2
	OperStatusTesting        OperStatus = 3
	OperStatusUnknown        OperStatus = 4
	OperStatusDormant        OperStatus = 5
	OperStatusNotPresent     OperStatus = 6
	OperStatusLowerLayerDown OperStatus = 7
)

var operStatusNames = map[OperStatus]string{
	OperStatusUp:             "Up",
	OperStatusDown:           "Down",
	OperStatusTesting:        "Testing",
	OperStatusUnknown:        "Unknown",
	OperStatusDormant:        "Dormant",
	OperStatusNotPresent:     "NotPresent",
	OperStatusLowerLayerDown: "LowerLayerDown",
}

func (s OperStatus) String() string {
	if n, ok := operStatusNames[s]; ok {
		return n
	}
	return fmt.Sprintf("OperStatus(%d)", uint32(s))
}

// parseOperStatus maps a raw status code. The set is closed; any other
// code means the table is not what we think it is.
func parseOperStatus(v uint32) (OperStatus, error) {
	s := OperStatus(v)
	if _, ok := operStatusNames[s]; !ok {
		return 0, syserr.Decodef("OperStatus", "unknown code %d", v)
	}
	return s, nil
}

// MarshalText implements encoding.TextMarshaler.
func (s OperStatus) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// IfType is an IANA interface type. Only a handful of the hundreds of
// IANA values are named; the rest decode as IfTypeUnsupported. Callers
// must not assume this set is complete.
type IfType uint32

const (
	// IfTypeUnsupported stands for any IANA type not listed below.
	// It is not itself an IANA code.
	IfTypeUnsupported IfType = 0

	IfTypeOther             IfType = 1
	IfTypeEthernetCSMACD    IfType = 6
	IfTypeISO88025TokenRing IfType = 9
	IfTypePPP               IfType = 23
	IfTypeSoftwareLoopback  IfType = 24
	IfTypeATM               IfType = 37
	IfTypeIEEE80211         IfType = 71
	IfTypeTunnel            IfType = 131
	IfTypeIEEE1394          IfType = 144
)

var ifTypeNames = map[IfType]string{
	IfTypeUnsupported:       "Unsupported",
	IfTypeOther:             "Other",
	IfTypeEthernetCSMACD:    "EthernetCSMACD",
	IfTypeISO88025TokenRing: "ISO88025TokenRing",
	IfTypePPP:               "PPP",
	IfTypeSoftwareLoopback:  "SoftwareLoopback",
	IfTypeATM:               "ATM",
	IfTypeIEEE80211:         "IEEE80211",
	IfTypeTunnel:            "Tunnel",
	IfTypeIEEE1394:          "IEEE1394",
}

func (t IfType) String() string {
	if n, ok := ifTypeNames[t]; ok {
		return n
	}
	return fmt.Sprintf("IfType(%d)", uint32(t))
}

// MarshalText implements encoding.TextMarshaler.
func (t IfType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func parseIfType(v uint32) IfType {
	t := IfType(v)
	if t == IfTypeUnsupported {
		return IfTypeUnsupported
	}
	if _, ok := ifTypeNames[t]; ok {
		return t
	}
	return IfTypeUnsupported
}
