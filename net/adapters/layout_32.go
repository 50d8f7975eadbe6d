// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

//go:build 386 || arm

package adapters

// Field offsets of the iphlpapi records on 32-bit Windows.
const (
	_IP_ADAPTER_ADDRESSES_Size                         = 376
	_IP_ADAPTER_ADDRESSES_Length_Offset                = 0
	_IP_ADAPTER_ADDRESSES_IfIndex_Offset               = 4
	_IP_ADAPTER_ADDRESSES_Next_Offset                  = 8
	_IP_ADAPTER_ADDRESSES_AdapterName_Offset           = 12
	_IP_ADAPTER_ADDRESSES_FirstUnicastAddress_Offset   = 16
	_IP_ADAPTER_ADDRESSES_FirstDnsServerAddress_Offset = 28
	_IP_ADAPTER_ADDRESSES_DnsSuffix_Offset             = 32
	_IP_ADAPTER_ADDRESSES_Description_Offset           = 36
	_IP_ADAPTER_ADDRESSES_FriendlyName_Offset          = 40
	_IP_ADAPTER_ADDRESSES_PhysicalAddress_Offset       = 44
	_IP_ADAPTER_ADDRESSES_PhysicalAddressLength_Offset = 52
	_IP_ADAPTER_ADDRESSES_Mtu_Offset                   = 60
	_IP_ADAPTER_ADDRESSES_IfType_Offset                = 64
	_IP_ADAPTER_ADDRESSES_OperStatus_Offset            = 68
	_IP_ADAPTER_ADDRESSES_Ipv6IfIndex_Offset           = 72
	_IP_ADAPTER_ADDRESSES_FirstPrefix_Offset           = 140
	_IP_ADAPTER_ADDRESSES_TransmitLinkSpeed_Offset     = 144
	_IP_ADAPTER_ADDRESSES_ReceiveLinkSpeed_Offset      = 152
	_IP_ADAPTER_ADDRESSES_FirstGatewayAddress_Offset   = 164
	_IP_ADAPTER_ADDRESSES_Ipv4Metric_Offset            = 168
	_IP_ADAPTER_ADDRESSES_Ipv6Metric_Offset            = 172
	_IP_ADAPTER_ADDRESSES_Luid_Offset                  = 176
	_IP_ADAPTER_ADDRESSES_NetworkGuid_Offset           = 196

	_IP_ADAPTER_RECORD_Next_Offset    = 8
	_IP_ADAPTER_RECORD_Address_Offset = 12

	_IP_ADAPTER_UNICAST_ADDRESS_Size       = 48
	_IP_ADAPTER_GATEWAY_ADDRESS_Size       = 24
	_IP_ADAPTER_DNS_SERVER_ADDRESS_Size    = 24
	_IP_ADAPTER_PREFIX_Size                = 24
	_IP_ADAPTER_PREFIX_PrefixLength_Offset = 20

	_SOCKET_ADDRESS_Size                   = 8
	_SOCKET_ADDRESS_lpSockaddr_Offset      = 0
	_SOCKET_ADDRESS_iSockaddrLength_Offset = 4
)
