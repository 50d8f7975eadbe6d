// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

// Package wfp enumerates and adds objects in the Windows Filtering
// Platform: sub-layers and filters.
//
// Objects are read through an engine session. Every enumeration copies
// the objects it returns out of OS memory and releases the OS cursor and
// array before returning, whatever the outcome.
package wfp

import (
	"fmt"

	"github.com/ipconfig2/ipconfig/types/ifid"
)

// LayerALEAuthConnectV4 is FWPM_LAYER_ALE_AUTH_CONNECT_V4, the layer
// holding outbound IPv4 connection filters. It is the default layer
// for filter listings.
var LayerALEAuthConnectV4 = ifid.MustParseGUID("{c38d57d1-05a7-4c33-904f-7fbceee60e82}")

// DisplayData is the human-readable name and optional description of a
// WFP object.
type DisplayData struct {
	Name        string
	Description *string // nil if absent
}

func (d DisplayData) String() string {
	if d.Description == nil {
		return d.Name
	}
	return fmt.Sprintf("%s (%s)", d.Name, *d.Description)
}

// SubLayer is a WFP sub-layer.
type SubLayer struct {
	Key     ifid.GUID
	Display DisplayData
	Flags   uint32

	// Weight and ProviderKey are only filled in on enumeration. Added
	// sub-layers always get the maximum weight and no provider.
	Weight      uint16
	ProviderKey *ifid.GUID
}

// NewSubLayer returns a SubLayer with a fresh random key.
func NewSubLayer(name string, description *string) (SubLayer, error) {
	key, err := ifid.NewRandomGUID()
	if err != nil {
		return SubLayer{}, err
	}
	return SubLayer{
		Key:     key,
		Display: DisplayData{Name: name, Description: description},
	}, nil
}

// Filter is the fixed header of a WFP filter. Conditions are counted but
// not decoded; Raw holds the copied record for callers that need more.
type Filter struct {
	Key           ifid.GUID
	Display       DisplayData
	Flags         uint32
	ProviderKey   *ifid.GUID
	LayerKey      ifid.GUID
	SubLayerKey   ifid.GUID
	NumConditions uint32
	ActionType    uint32
	ID            uint64

	Raw []byte `json:"-" yaml:"-"`
}

// Options configures a session opened by Open.
type Options struct {
	// Name and Description label the session in WFP diagnostics.
	Name        string
	Description string

	// Dynamic sessions have every object they added removed when they
	// close.
	Dynamic bool
}

var defaultOptions = Options{
	Name:        "ipconfig",
	Description: "ipconfig session",
	Dynamic:     true,
}
