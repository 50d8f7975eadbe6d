// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package cli

import (
	"github.com/ipconfig2/ipconfig/net/adapters"
	"github.com/ipconfig2/ipconfig/net/dnsconfig"
	"github.com/ipconfig2/ipconfig/net/ifindex"
	"github.com/ipconfig2/ipconfig/net/wfp"
	"github.com/ipconfig2/ipconfig/types/ifid"
	"github.com/ipconfig2/ipconfig/types/logger"
	"github.com/ipconfig2/ipconfig/types/syserr"
)

// The OS calls made by the subcommands. Tests replace them.
var (
	listAdapters = func(logf logger.Logf) ([]adapters.Adapter, error) {
		e := &adapters.Enumerator{Logf: logf}
		return e.Adapters()
	}

	resolveIndex = func(logf logger.Logf, name string, ipv6 bool) (uint32, error) {
		r := &ifindex.Resolver{Logf: logf}
		return r.Resolve(name, ipv6)
	}

	listSubLayers = func(logf logger.Logf) ([]wfp.SubLayer, error) {
		s, err := openSession(nil, logf)
		if err != nil {
			return nil, err
		}
		defer s.Close()
		return s.SubLayers()
	}

	listFilters = func(logf logger.Logf, layer ifid.GUID) ([]wfp.Filter, error) {
		s, err := openSession(nil, logf)
		if err != nil {
			return nil, err
		}
		defer s.Close()
		return s.Filters(layer)
	}

	// addSubLayer uses a non-dynamic session so the sub-layer outlives
	// the process.
	addSubLayer = func(logf logger.Logf, sl wfp.SubLayer) error {
		s, err := openSession(&wfp.Options{
			Name:        "ipconfig",
			Description: "ipconfig add-sublayer",
		}, logf)
		if err != nil {
			return err
		}
		defer s.Close()
		return s.AddSubLayer(sl)
	}

	getDNS = dnsconfig.Get
	setDNS = dnsconfig.Set
)

func openSession(opts *wfp.Options, logf logger.Logf) (*wfp.Session, error) {
	s, err := wfp.Open(opts)
	if err != nil {
		return nil, err
	}
	s.SetLogf(logf)
	return s, nil
}

// findAdapter returns the adapter whose friendly name or adapter name is
// name, matching the way interface names resolve to indexes.
func findAdapter(logf logger.Logf, name string) (adapters.Adapter, error) {
	ads, err := listAdapters(logf)
	if err != nil {
		return adapters.Adapter{}, err
	}
	for _, a := range ads {
		if a.FriendlyName == name || a.Name == name {
			return a, nil
		}
	}
	return adapters.Adapter{}, &syserr.InputError{Input: name, Reason: "no such adapter"}
}
