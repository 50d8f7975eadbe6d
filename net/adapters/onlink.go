// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package adapters

import (
	"net/netip"

	"go4.org/netipx"
)

// OnLink returns the addresses covered by a's prefixes.
func (a Adapter) OnLink() (*netipx.IPSet, error) {
	var b netipx.IPSetBuilder
	for _, p := range a.Prefixes {
		b.AddPrefix(p.Masked())
	}
	return b.IPSet()
}

// Reaching returns the adapters whose prefixes cover ip, in OS order.
func Reaching(ads []Adapter, ip netip.Addr) ([]Adapter, error) {
	ret := []Adapter{}
	for _, a := range ads {
		set, err := a.OnLink()
		if err != nil {
			return nil, err
		}
		if set.Contains(ip) {
			ret = append(ret, a)
		}
	}
	return ret, nil
}
