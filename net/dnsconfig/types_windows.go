// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package dnsconfig

// DNS_INTERFACE_SETTINGS is declared in netioapi.h. Version 1 is the
// oldest layout, understood by every Windows that has the call.
type wtDnsInterfaceSettings struct {
	Version             uint32
	_                   uint32 // ULONG64 alignment
	Flags               uint64
	Domain              *uint16
	NameServer          *uint16
	SearchList          *uint16
	RegistrationEnabled uint32
	RegisterAdapterName uint32
	EnableLLMNR         uint32
	QueryAdapterName    uint32
	ProfileNameServer   *uint16
}
