// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

//go:build !386 && !arm

package wfp

// Offsets of the fwpmtypes.h records returned by the enumeration calls.
const (
	wtFwpByteBlob_Size        = 16
	wtFwpByteBlob_data_Offset = 8

	wtFwpmDisplayData0_Size               = 16
	wtFwpmDisplayData0_description_Offset = 8

	wtFwpmSublayer0_Size                = 72
	wtFwpmSublayer0_displayData_Offset  = 16
	wtFwpmSublayer0_flags_Offset        = 32
	wtFwpmSublayer0_providerKey_Offset  = 40
	wtFwpmSublayer0_providerData_Offset = 48
	wtFwpmSublayer0_weight_Offset       = 64

	wtFwpmFilter0_Size                       = 200
	wtFwpmFilter0_displayData_Offset         = 16
	wtFwpmFilter0_flags_Offset               = 32
	wtFwpmFilter0_providerKey_Offset         = 40
	wtFwpmFilter0_providerData_Offset        = 48
	wtFwpmFilter0_layerKey_Offset            = 64
	wtFwpmFilter0_subLayerKey_Offset         = 80
	wtFwpmFilter0_weight_Offset              = 96
	wtFwpmFilter0_numFilterConditions_Offset = 112
	wtFwpmFilter0_filterCondition_Offset     = 120
	wtFwpmFilter0_action_Offset              = 128
	wtFwpmFilter0_providerContextKey_Offset  = 152
	wtFwpmFilter0_reserved_Offset            = 168
	wtFwpmFilter0_filterID_Offset            = 176
	wtFwpmFilter0_effectiveWeight_Offset     = 184
)
