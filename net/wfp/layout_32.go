// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

//go:build 386 || arm

package wfp

// Offsets of the fwpmtypes.h records returned by the enumeration calls.
// FWP_VALUE0 holds a UINT64, so it stays 8-byte aligned even here.
const (
	wtFwpByteBlob_Size        = 8
	wtFwpByteBlob_data_Offset = 4

	wtFwpmDisplayData0_Size               = 8
	wtFwpmDisplayData0_description_Offset = 4

	wtFwpmSublayer0_Size                = 44
	wtFwpmSublayer0_displayData_Offset  = 16
	wtFwpmSublayer0_flags_Offset        = 24
	wtFwpmSublayer0_providerKey_Offset  = 28
	wtFwpmSublayer0_providerData_Offset = 32
	wtFwpmSublayer0_weight_Offset       = 40

	wtFwpmFilter0_Size                       = 168
	wtFwpmFilter0_displayData_Offset         = 16
	wtFwpmFilter0_flags_Offset               = 24
	wtFwpmFilter0_providerKey_Offset         = 28
	wtFwpmFilter0_providerData_Offset        = 32
	wtFwpmFilter0_layerKey_Offset            = 40
	wtFwpmFilter0_subLayerKey_Offset         = 56
	wtFwpmFilter0_weight_Offset              = 72
	wtFwpmFilter0_numFilterConditions_Offset = 88
	wtFwpmFilter0_filterCondition_Offset     = 92
	wtFwpmFilter0_action_Offset              = 96
	wtFwpmFilter0_providerContextKey_Offset  = 120
	wtFwpmFilter0_reserved_Offset            = 136
	wtFwpmFilter0_filterID_Offset            = 144
	wtFwpmFilter0_effectiveWeight_Offset     = 152
)
