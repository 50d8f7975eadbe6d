// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

//go:build !386 && !arm

package adapters

// Field offsets of the iphlpapi records on 64-bit Windows.
const (
	_IP_ADAPTER_ADDRESSES_Size                         = 448
	_IP_ADAPTER_ADDRESSES_Length_Offset                = 0
	_IP_ADAPTER_ADDRESSES_IfIndex_Offset               = 4
	_IP_ADAPTER_ADDRESSES_Next_Offset                  = 8
	_IP_ADAPTER_ADDRESSES_AdapterName_Offset           = 16
	_IP_ADAPTER_ADDRESSES_FirstUnicastAddress_Offset   = 24
	_IP_ADAPTER_ADDRESSES_FirstDnsServerAddress_Offset = 48
	_IP_ADAPTER_ADDRESSES_DnsSuffix_Offset             = 56
	_IP_ADAPTER_ADDRESSES_Description_Offset           = 64
	_IP_ADAPTER_ADDRESSES_FriendlyName_Offset          = 72
	_IP_ADAPTER_ADDRESSES_PhysicalAddress_Offset       = 80
	_IP_ADAPTER_ADDRESSES_PhysicalAddressLength_Offset = 88
	_IP_ADAPTER_ADDRESSES_Mtu_Offset                   = 96
	_IP_ADAPTER_ADDRESSES_IfType_Offset                = 100
	_IP_ADAPTER_ADDRESSES_OperStatus_Offset            = 104
	_IP_ADAPTER_ADDRESSES_Ipv6IfIndex_Offset           = 108
	_IP_ADAPTER_ADDRESSES_FirstPrefix_Offset           = 176
	_IP_ADAPTER_ADDRESSES_TransmitLinkSpeed_Offset     = 184
	_IP_ADAPTER_ADDRESSES_ReceiveLinkSpeed_Offset      = 192
	_IP_ADAPTER_ADDRESSES_FirstGatewayAddress_Offset   = 208
	_IP_ADAPTER_ADDRESSES_Ipv4Metric_Offset            = 216
	_IP_ADAPTER_ADDRESSES_Ipv6Metric_Offset            = 220
	_IP_ADAPTER_ADDRESSES_Luid_Offset                  = 224
	_IP_ADAPTER_ADDRESSES_NetworkGuid_Offset           = 252

	// Unicast, gateway, DNS server and prefix records share a header:
	// an 8-byte Length/Flags union, then Next, then a SOCKET_ADDRESS.
	_IP_ADAPTER_RECORD_Next_Offset    = 8
	_IP_ADAPTER_RECORD_Address_Offset = 16

	_IP_ADAPTER_UNICAST_ADDRESS_Size       = 64
	_IP_ADAPTER_GATEWAY_ADDRESS_Size       = 32
	_IP_ADAPTER_DNS_SERVER_ADDRESS_Size    = 32
	_IP_ADAPTER_PREFIX_Size                = 40
	_IP_ADAPTER_PREFIX_PrefixLength_Offset = 32

	_SOCKET_ADDRESS_Size                   = 16
	_SOCKET_ADDRESS_lpSockaddr_Offset      = 0
	_SOCKET_ADDRESS_iSockaddrLength_Offset = 8
)
