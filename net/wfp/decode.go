// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package wfp

import (
	"fmt"

	"github.com/ipconfig2/ipconfig/types/ifid"
	"github.com/ipconfig2/ipconfig/util/foreignmem"
)

// decodeDisplayData decodes the FWPM_DISPLAY_DATA0 embedded in b at off.
// A null name decodes as empty and a null description as absent.
func decodeDisplayData(r foreignmem.Reader, b foreignmem.Block, off int) (DisplayData, error) {
	var d DisplayData
	if p := b.Ptr(off); p != 0 {
		name, err := foreignmem.ReadWString(r, p)
		if err != nil {
			return DisplayData{}, fmt.Errorf("display name: %w", err)
		}
		d.Name = name
	}
	if p := b.Ptr(off + wtFwpmDisplayData0_description_Offset); p != 0 {
		desc, err := foreignmem.ReadWString(r, p)
		if err != nil {
			return DisplayData{}, fmt.Errorf("display description: %w", err)
		}
		d.Description = &desc
	}
	return d, nil
}

// decodeGUIDPtr follows an optional GUID pointer.
func decodeGUIDPtr(r foreignmem.Reader, p uint64) (*ifid.GUID, error) {
	if p == 0 {
		return nil, nil
	}
	b, err := foreignmem.Copy(r, p, 16)
	if err != nil {
		return nil, err
	}
	g := b.GUID(0)
	return &g, nil
}

func decodeSubLayer(r foreignmem.Reader, b foreignmem.Block) (SubLayer, error) {
	disp, err := decodeDisplayData(r, b, wtFwpmSublayer0_displayData_Offset)
	if err != nil {
		return SubLayer{}, err
	}
	provider, err := decodeGUIDPtr(r, b.Ptr(wtFwpmSublayer0_providerKey_Offset))
	if err != nil {
		return SubLayer{}, fmt.Errorf("provider key: %w", err)
	}
	return SubLayer{
		Key:         b.GUID(0),
		Display:     disp,
		Flags:       b.Uint32(wtFwpmSublayer0_flags_Offset),
		Weight:      b.Uint16(wtFwpmSublayer0_weight_Offset),
		ProviderKey: provider,
	}, nil
}

func decodeFilter(r foreignmem.Reader, b foreignmem.Block) (Filter, error) {
	disp, err := decodeDisplayData(r, b, wtFwpmFilter0_displayData_Offset)
	if err != nil {
		return Filter{}, err
	}
	provider, err := decodeGUIDPtr(r, b.Ptr(wtFwpmFilter0_providerKey_Offset))
	if err != nil {
		return Filter{}, fmt.Errorf("provider key: %w", err)
	}
	return Filter{
		Key:           b.GUID(0),
		Display:       disp,
		Flags:         b.Uint32(wtFwpmFilter0_flags_Offset),
		ProviderKey:   provider,
		LayerKey:      b.GUID(wtFwpmFilter0_layerKey_Offset),
		SubLayerKey:   b.GUID(wtFwpmFilter0_subLayerKey_Offset),
		NumConditions: b.Uint32(wtFwpmFilter0_numFilterConditions_Offset),
		ActionType:    b.Uint32(wtFwpmFilter0_action_Offset),
		ID:            b.Uint64(wtFwpmFilter0_filterID_Offset),
		Raw:           b.Bytes(0, len(b)),
	}, nil
}
