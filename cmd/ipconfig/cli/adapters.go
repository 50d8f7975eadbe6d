// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/netip"

	"github.com/peterbourgon/ff/v3/ffcli"

	"github.com/ipconfig2/ipconfig/net/adapters"
	"github.com/ipconfig2/ipconfig/types/ifid"
	"github.com/ipconfig2/ipconfig/types/syserr"
)

// adapterView is the printed form of an adapters.Adapter.
type adapterView struct {
	Name              string              `json:"name" yaml:"name"`
	FriendlyName      string              `json:"friendlyName" yaml:"friendlyName"`
	Description       string              `json:"description" yaml:"description"`
	NetworkGUID       ifid.GUID           `json:"networkGUID" yaml:"networkGUID"`
	LUID              ifid.LUID           `json:"luid" yaml:"luid"`
	IPv4Index         uint32              `json:"ipv4Index" yaml:"ipv4Index"`
	IPv6Index         uint32              `json:"ipv6Index" yaml:"ipv6Index"`
	IPv4Metric        uint32              `json:"ipv4Metric" yaml:"ipv4Metric"`
	IPv6Metric        uint32              `json:"ipv6Metric" yaml:"ipv6Metric"`
	OperStatus        adapters.OperStatus `json:"operStatus" yaml:"operStatus"`
	IfType            adapters.IfType     `json:"ifType" yaml:"ifType"`
	MTU               uint32              `json:"mtu" yaml:"mtu"`
	PhysicalAddress   string              `json:"physicalAddress,omitempty" yaml:"physicalAddress,omitempty"`
	ReceiveLinkSpeed  uint64              `json:"receiveLinkSpeed" yaml:"receiveLinkSpeed"`
	TransmitLinkSpeed uint64              `json:"transmitLinkSpeed" yaml:"transmitLinkSpeed"`
	DNSSuffix         string              `json:"dnsSuffix,omitempty" yaml:"dnsSuffix,omitempty"`
	Addresses         []netip.Addr        `json:"addresses,omitempty" yaml:"addresses,omitempty"`
	Prefixes          []netip.Prefix      `json:"prefixes,omitempty" yaml:"prefixes,omitempty"`
	Gateways          []netip.Addr        `json:"gateways,omitempty" yaml:"gateways,omitempty"`
	DNSServers        []netip.Addr        `json:"dnsServers,omitempty" yaml:"dnsServers,omitempty"`
}

func viewAdapter(a adapters.Adapter) adapterView {
	v := adapterView{
		Name:              a.Name,
		FriendlyName:      a.FriendlyName,
		Description:       a.Description,
		NetworkGUID:       a.NetworkGUID,
		LUID:              a.LUID,
		IPv4Index:         a.IPv4Index,
		IPv6Index:         a.IPv6Index,
		IPv4Metric:        a.IPv4Metric,
		IPv6Metric:        a.IPv6Metric,
		OperStatus:        a.OperStatus,
		IfType:            a.IfType,
		MTU:               a.MTU,
		ReceiveLinkSpeed:  a.ReceiveLinkSpeed,
		TransmitLinkSpeed: a.TransmitLinkSpeed,
		DNSSuffix:         a.DNSSuffix,
		Addresses:         a.Addresses,
		Prefixes:          a.Prefixes,
		Gateways:          a.Gateways,
		DNSServers:        a.DNSServers,
	}
	if a.PhysicalAddress != nil {
		v.PhysicalAddress = a.PhysicalAddress.String()
	}
	return v
}

func adaptersCmd(ra *rootArgs) *ffcli.Command {
	var (
		all bool
		to  string
	)
	fs := newFlagSet("adapters")
	fs.BoolVar(&all, "all", false, "include adapters that are not up")
	fs.StringVar(&to, "for", "", "only show adapters with a prefix covering this IP address")
	return &ffcli.Command{
		Name:       "adapters",
		ShortUsage: "ipconfig adapters [-all] [-for <ip>]",
		ShortHelp:  "List network adapters",
		LongHelp:   "List network adapters in OS order with their addresses, gateways and DNS servers.",
		FlagSet:    fs,
		Exec: func(ctx context.Context, args []string) error {
			if len(args) > 0 {
				return errors.New("unexpected arguments")
			}
			ads, err := listAdapters(ra.logf)
			if err != nil {
				return err
			}
			if to != "" {
				ip, err := netip.ParseAddr(to)
				if err != nil {
					return &syserr.InputError{Input: to, Reason: "invalid IP address"}
				}
				if ads, err = adapters.Reaching(ads, ip); err != nil {
					return err
				}
			}
			views := make([]adapterView, 0, len(ads))
			for _, a := range ads {
				if all || a.OperStatus == adapters.OperStatusUp {
					views = append(views, viewAdapter(a))
				}
			}
			return ra.emit(views, func(w io.Writer) {
				fmt.Fprintln(w, "IDX4\tIDX6\tNAME\tSTATUS\tTYPE\tMTU\tADDRESSES\tGATEWAYS\tDNS")
				for _, v := range views {
					fmt.Fprintf(w, "%d\t%d\t%s\t%v\t%v\t%d\t%s\t%s\t%s\n",
						v.IPv4Index, v.IPv6Index, v.FriendlyName, v.OperStatus, v.IfType, v.MTU,
						joinStrings(v.Addresses), joinStrings(v.Gateways), joinStrings(v.DNSServers))
				}
			})
		},
	}
}

// guidView shows the identifiers of one adapter.
type guidView struct {
	FriendlyName string    `json:"friendlyName" yaml:"friendlyName"`
	Name         string    `json:"name" yaml:"name"`
	NetworkGUID  ifid.GUID `json:"networkGUID" yaml:"networkGUID"`
	UUID         string    `json:"uuid" yaml:"uuid"`
	LUID         ifid.LUID `json:"luid" yaml:"luid"`
	LUIDIndex    uint32    `json:"luidIndex" yaml:"luidIndex"`
}

func guidsCmd(ra *rootArgs) *ffcli.Command {
	var newGUID bool
	fs := newFlagSet("guids")
	fs.BoolVar(&newGUID, "new", false, "print a new random GUID instead")
	return &ffcli.Command{
		Name:       "guids",
		ShortUsage: "ipconfig guids [-new]",
		ShortHelp:  "Show adapter GUIDs and LUIDs",
		LongHelp: `Show each adapter's network GUID in Windows brace form and in RFC 4122
byte order, along with its LUID.`,
		FlagSet: fs,
		Exec: func(ctx context.Context, args []string) error {
			if len(args) > 0 {
				return errors.New("unexpected arguments")
			}
			if newGUID {
				g, err := ifid.NewRandomGUID()
				if err != nil {
					return err
				}
				outln(g)
				return nil
			}
			ads, err := listAdapters(ra.logf)
			if err != nil {
				return err
			}
			views := make([]guidView, len(ads))
			for i, a := range ads {
				views[i] = guidView{
					FriendlyName: a.FriendlyName,
					Name:         a.Name,
					NetworkGUID:  a.NetworkGUID,
					UUID:         a.NetworkGUID.UUID().String(),
					LUID:         a.LUID,
					LUIDIndex:    a.LUID.NetLuidIndex(),
				}
			}
			return ra.emit(views, func(w io.Writer) {
				fmt.Fprintln(w, "NAME\tADAPTER\tNETWORK GUID\tUUID\tLUID")
				for _, v := range views {
					fmt.Fprintf(w, "%s\t%s\t%v\t%s\t%v\n", v.FriendlyName, v.Name, v.NetworkGUID, v.UUID, v.LUID)
				}
			})
		},
	}
}

func indexCmd(ra *rootArgs) *ffcli.Command {
	var ipv6 bool
	fs := newFlagSet("index")
	fs.BoolVar(&ipv6, "6", false, "print the IPv6 interface index")
	return &ffcli.Command{
		Name:       "index",
		ShortUsage: "ipconfig index [-6] <interface name>",
		ShortHelp:  "Print an interface's index",
		LongHelp: `Print the interface index for an adapter's friendly name or adapter name.
Names no adapter has are looked up with if_nametoindex.`,
		FlagSet: fs,
		Exec: func(ctx context.Context, args []string) error {
			if len(args) != 1 {
				return errors.New("usage: ipconfig index [-6] <interface name>")
			}
			idx, err := resolveIndex(ra.logf, args[0], ipv6)
			if err != nil {
				return err
			}
			outln(idx)
			return nil
		},
	}
}
