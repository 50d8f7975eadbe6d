// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

//go:build !386 && !arm

package dnsconfig

// Offsets of DNS_INTERFACE_SETTINGS (version 1) from netioapi.h.
const (
	wtDnsInterfaceSettings_Size                       = 64
	wtDnsInterfaceSettings_Flags_Offset               = 8
	wtDnsInterfaceSettings_Domain_Offset              = 16
	wtDnsInterfaceSettings_NameServer_Offset          = 24
	wtDnsInterfaceSettings_SearchList_Offset          = 32
	wtDnsInterfaceSettings_RegistrationEnabled_Offset = 40
	wtDnsInterfaceSettings_RegisterAdapterName_Offset = 44
	wtDnsInterfaceSettings_EnableLLMNR_Offset         = 48
	wtDnsInterfaceSettings_QueryAdapterName_Offset    = 52
	wtDnsInterfaceSettings_ProfileNameServer_Offset   = 56
)
