// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package wfp

import "golang.org/x/sys/windows"

// Defined in rpcdce.h
type wtRpcCAuthN uint32

const cRPC_C_AUTHN_DEFAULT wtRpcCAuthN = 0xFFFFFFFF

type wtFwpmSessionFlagsValue uint32

const cFWPM_SESSION_FLAG_DYNAMIC wtFwpmSessionFlagsValue = 0x00000001 // FWPM_SESSION_FLAG_DYNAMIC defined in fwpmtypes.h

// FWP_FILTER_ENUM_TYPE defined in fwpmtypes.h
type wtFwpFilterEnumType uint32

const cFWP_FILTER_ENUM_FULLY_CONTAINED wtFwpFilterEnumType = 0

// FWP_BYTE_BLOB defined in fwptypes.h
type wtFwpByteBlob struct {
	size uint32
	data *uint8
}

// FWPM_DISPLAY_DATA0 defined in fwptypes.h
type wtFwpmDisplayData0 struct {
	name        *uint16 // Windows type: *wchar_t
	description *uint16 // Windows type: *wchar_t
}

// FWPM_SESSION0 defined in fwpmtypes.h
type wtFwpmSession0 struct {
	sessionKey           windows.GUID
	displayData          wtFwpmDisplayData0
	flags                wtFwpmSessionFlagsValue // Windows type: UINT32
	txnWaitTimeoutInMSec uint32
	processId            uint32 // Windows type: DWORD
	sid                  *windows.SID
	username             *uint16 // Windows type: *wchar_t
	kernelMode           uint8   // Windows type: BOOL
}

// FWPM_SUBLAYER0 defined in fwpmtypes.h
type wtFwpmSublayer0 struct {
	subLayerKey  windows.GUID
	displayData  wtFwpmDisplayData0
	flags        uint32
	providerKey  *windows.GUID
	providerData wtFwpByteBlob
	weight       uint16
}

// FWPM_FILTER_ENUM_TEMPLATE0 defined in fwpmtypes.h
type wtFwpmFilterEnumTemplate0 struct {
	providerKey             *windows.GUID
	layerKey                windows.GUID
	enumType                wtFwpFilterEnumType
	flags                   uint32
	providerContextTemplate uintptr // Windows type: *FWPM_PROVIDER_CONTEXT_ENUM_TEMPLATE0
	numFilterConditions     uint32
	filterCondition         uintptr // Windows type: *FWPM_FILTER_CONDITION0
	actionMask              uint32
	calloutKey              *windows.GUID
}
