// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package dnsconfig

//go:generate go run golang.org/x/sys/windows/mkwinsyscall -output zsyscall_windows.go syscall_windows.go

// The GUID argument of these calls is passed by value. On amd64 that is a
// pointer; on arm64 two quadwords; on 386 and arm four doublewords.

// https://learn.microsoft.com/en-us/windows/win32/api/netioapi/nf-netioapi-getinterfacednssettings
//sys getInterfaceDnsSettingsByPtr(guid *windows.GUID, settings *wtDnsInterfaceSettings) (ret error) = iphlpapi.GetInterfaceDnsSettings?
//sys getInterfaceDnsSettingsByQwords(guid1 uintptr, guid2 uintptr, settings *wtDnsInterfaceSettings) (ret error) = iphlpapi.GetInterfaceDnsSettings?
//sys getInterfaceDnsSettingsByDwords(guid1 uintptr, guid2 uintptr, guid3 uintptr, guid4 uintptr, settings *wtDnsInterfaceSettings) (ret error) = iphlpapi.GetInterfaceDnsSettings?

// https://learn.microsoft.com/en-us/windows/win32/api/netioapi/nf-netioapi-setinterfacednssettings
//sys setInterfaceDnsSettingsByPtr(guid *windows.GUID, settings *wtDnsInterfaceSettings) (ret error) = iphlpapi.SetInterfaceDnsSettings?
//sys setInterfaceDnsSettingsByQwords(guid1 uintptr, guid2 uintptr, settings *wtDnsInterfaceSettings) (ret error) = iphlpapi.SetInterfaceDnsSettings?
//sys setInterfaceDnsSettingsByDwords(guid1 uintptr, guid2 uintptr, guid3 uintptr, guid4 uintptr, settings *wtDnsInterfaceSettings) (ret error) = iphlpapi.SetInterfaceDnsSettings?

// https://learn.microsoft.com/en-us/windows/win32/api/netioapi/nf-netioapi-freeinterfacednssettings
//sys freeInterfaceDnsSettings(settings *wtDnsInterfaceSettings) = iphlpapi.FreeInterfaceDnsSettings
