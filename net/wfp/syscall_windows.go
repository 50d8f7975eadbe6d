// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package wfp

//go:generate go run golang.org/x/sys/windows/mkwinsyscall -output zsyscall_windows.go syscall_windows.go

// https://docs.microsoft.com/en-us/windows/desktop/api/fwpmu/nf-fwpmu-fwpmengineopen0
//sys fwpmEngineOpen0(serverName *uint16, authnService wtRpcCAuthN, authIdentity uintptr, session *wtFwpmSession0, engineHandle *uintptr) (err error) [failretval!=0] = fwpuclnt.FwpmEngineOpen0

// https://docs.microsoft.com/en-us/windows/desktop/api/fwpmu/nf-fwpmu-fwpmengineclose0
//sys fwpmEngineClose0(engineHandle uintptr) (err error) [failretval!=0] = fwpuclnt.FwpmEngineClose0

// https://docs.microsoft.com/en-us/windows/desktop/api/fwpmu/nf-fwpmu-fwpmsublayeradd0
//sys fwpmSubLayerAdd0(engineHandle uintptr, subLayer *wtFwpmSublayer0, sd uintptr) (err error) [failretval!=0] = fwpuclnt.FwpmSubLayerAdd0

// https://docs.microsoft.com/en-us/windows/desktop/api/fwpmu/nf-fwpmu-fwpmsublayercreateenumhandle0
//sys fwpmSubLayerCreateEnumHandle0(engineHandle uintptr, enumTemplate uintptr, enumHandle *uintptr) (err error) [failretval!=0] = fwpuclnt.FwpmSubLayerCreateEnumHandle0

// https://docs.microsoft.com/en-us/windows/desktop/api/fwpmu/nf-fwpmu-fwpmsublayerenum0
//sys fwpmSubLayerEnum0(engineHandle uintptr, enumHandle uintptr, numEntriesRequested uint32, entries *uintptr, numEntriesReturned *uint32) (err error) [failretval!=0] = fwpuclnt.FwpmSubLayerEnum0

// https://docs.microsoft.com/en-us/windows/desktop/api/fwpmu/nf-fwpmu-fwpmsublayerdestroyenumhandle0
//sys fwpmSubLayerDestroyEnumHandle0(engineHandle uintptr, enumHandle uintptr) (err error) [failretval!=0] = fwpuclnt.FwpmSubLayerDestroyEnumHandle0

// https://docs.microsoft.com/en-us/windows/desktop/api/fwpmu/nf-fwpmu-fwpmfiltercreateenumhandle0
//sys fwpmFilterCreateEnumHandle0(engineHandle uintptr, enumTemplate *wtFwpmFilterEnumTemplate0, enumHandle *uintptr) (err error) [failretval!=0] = fwpuclnt.FwpmFilterCreateEnumHandle0

// https://docs.microsoft.com/en-us/windows/desktop/api/fwpmu/nf-fwpmu-fwpmfilterenum0
//sys fwpmFilterEnum0(engineHandle uintptr, enumHandle uintptr, numEntriesRequested uint32, entries *uintptr, numEntriesReturned *uint32) (err error) [failretval!=0] = fwpuclnt.FwpmFilterEnum0

// https://docs.microsoft.com/en-us/windows/desktop/api/fwpmu/nf-fwpmu-fwpmfilterdestroyenumhandle0
//sys fwpmFilterDestroyEnumHandle0(engineHandle uintptr, enumHandle uintptr) (err error) [failretval!=0] = fwpuclnt.FwpmFilterDestroyEnumHandle0

// https://docs.microsoft.com/en-us/windows/desktop/api/fwpmu/nf-fwpmu-fwpmfreememory0
//sys fwpmFreeMemory0(p *uintptr) = fwpuclnt.FwpmFreeMemory0
