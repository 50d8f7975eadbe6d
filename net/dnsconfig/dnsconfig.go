// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

// Package dnsconfig reads and writes the per-interface DNS settings kept
// by the OS resolver.
package dnsconfig

import (
	"fmt"
	"net/netip"
	"strings"

	"github.com/ipconfig2/ipconfig/types/ifid"
	"github.com/ipconfig2/ipconfig/types/syserr"
	"github.com/ipconfig2/ipconfig/util/foreignmem"
)

const settingsVersion1 = 1

// DNS_SETTING_* flags.
const (
	flagIPv6       = 0x0001
	flagNameServer = 0x0002
	flagSearchList = 0x0004
)

// Settings is a copy of an interface's DNS settings.
type Settings struct {
	Domain             string   `json:",omitempty" yaml:",omitempty"`
	NameServers        []string `json:",omitempty" yaml:",omitempty"`
	SearchList         []string `json:",omitempty" yaml:",omitempty"`
	ProfileNameServers []string `json:",omitempty" yaml:",omitempty"`

	RegistrationEnabled bool
	RegisterAdapterName bool
	EnableLLMNR         bool
	QueryAdapterName    bool
}

// Get returns the DNS settings of the interface identified by luid.
func Get(luid ifid.LUID) (*Settings, error) {
	g, err := luid.GUID()
	if err != nil {
		return nil, fmt.Errorf("dnsconfig: %w", err)
	}
	s, err := osGet(g)
	if err != nil {
		return nil, fmt.Errorf("dnsconfig: %w", err)
	}
	return s, nil
}

// Set replaces the name servers and search list of the interface
// identified by luid for one address family. Every server must belong
// to that family. Empty lists clear the setting.
func Set(luid ifid.LUID, ipv6 bool, servers []netip.Addr, searchList []string) error {
	req, err := newRequest(ipv6, servers, searchList)
	if err != nil {
		return err
	}
	g, err := luid.GUID()
	if err != nil {
		return fmt.Errorf("dnsconfig: %w", err)
	}
	if err := osSet(g, req); err != nil {
		return fmt.Errorf("dnsconfig: %w", err)
	}
	return nil
}

// request is a validated Set call in the form the OS takes it.
type request struct {
	flags      uint64
	nameServer string
	searchList string
}

func newRequest(ipv6 bool, servers []netip.Addr, searchList []string) (request, error) {
	req := request{flags: flagNameServer | flagSearchList}
	if ipv6 {
		req.flags |= flagIPv6
	}
	names := make([]string, 0, len(servers))
	for _, ip := range servers {
		if !ip.IsValid() {
			return request{}, &syserr.InputError{Input: "", Reason: "invalid name server"}
		}
		if ip.Unmap().Is4() == ipv6 {
			return request{}, &syserr.InputError{Input: ip.String(), Reason: "name server of the wrong address family"}
		}
		names = append(names, ip.Unmap().String())
	}
	for _, d := range searchList {
		if d == "" || strings.ContainsAny(d, ", ") {
			return request{}, &syserr.InputError{Input: d, Reason: "invalid search domain"}
		}
	}
	req.nameServer = JoinList(names)
	req.searchList = JoinList(searchList)
	return req, nil
}

// SplitList splits a comma or space separated list as found in the
// NameServer, SearchList and ProfileNameServer settings.
func SplitList(s string) []string {
	f := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	if len(f) == 0 {
		return nil
	}
	return f
}

// JoinList is the inverse of SplitList.
func JoinList(l []string) string {
	return strings.Join(l, ",")
}

// decodeSettings decodes a DNS_INTERFACE_SETTINGS block, following its
// string pointers through r. Null strings decode as empty.
func decodeSettings(r foreignmem.Reader, b foreignmem.Block) (*Settings, error) {
	if len(b) < wtDnsInterfaceSettings_Size {
		return nil, syserr.Decodef("DNS_INTERFACE_SETTINGS", "short block of %d bytes", len(b))
	}
	str := func(field string, off int) (string, error) {
		p := b.Ptr(off)
		if p == 0 {
			return "", nil
		}
		s, err := foreignmem.ReadWString(r, p)
		if err != nil {
			return "", fmt.Errorf("%s: %w", field, err)
		}
		return s, nil
	}
	domain, err := str("Domain", wtDnsInterfaceSettings_Domain_Offset)
	if err != nil {
		return nil, err
	}
	ns, err := str("NameServer", wtDnsInterfaceSettings_NameServer_Offset)
	if err != nil {
		return nil, err
	}
	search, err := str("SearchList", wtDnsInterfaceSettings_SearchList_Offset)
	if err != nil {
		return nil, err
	}
	profile, err := str("ProfileNameServer", wtDnsInterfaceSettings_ProfileNameServer_Offset)
	if err != nil {
		return nil, err
	}
	return &Settings{
		Domain:              domain,
		NameServers:         SplitList(ns),
		SearchList:          SplitList(search),
		ProfileNameServers:  SplitList(profile),
		RegistrationEnabled: b.Uint32(wtDnsInterfaceSettings_RegistrationEnabled_Offset) != 0,
		RegisterAdapterName: b.Uint32(wtDnsInterfaceSettings_RegisterAdapterName_Offset) != 0,
		EnableLLMNR:         b.Uint32(wtDnsInterfaceSettings_EnableLLMNR_Offset) != 0,
		QueryAdapterName:    b.Uint32(wtDnsInterfaceSettings_QueryAdapterName_Offset) != 0,
	}, nil
}
