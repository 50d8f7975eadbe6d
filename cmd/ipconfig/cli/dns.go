// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/netip"
	"strings"

	"github.com/peterbourgon/ff/v3/ffcli"

	"github.com/ipconfig2/ipconfig/net/dnsconfig"
	"github.com/ipconfig2/ipconfig/types/syserr"
)

func dnsCmd(ra *rootArgs) *ffcli.Command {
	return &ffcli.Command{
		Name:       "dns",
		ShortUsage: "ipconfig dns <get|set> ...",
		ShortHelp:  "Show or change an adapter's DNS settings",
		FlagSet:    newFlagSet("dns"),
		Subcommands: []*ffcli.Command{
			dnsGetCmd(ra),
			dnsSetCmd(ra),
		},
		Exec: func(context.Context, []string) error { return flag.ErrHelp },
	}
}

func dnsGetCmd(ra *rootArgs) *ffcli.Command {
	return &ffcli.Command{
		Name:       "get",
		ShortUsage: "ipconfig dns get <interface name>",
		ShortHelp:  "Show an adapter's DNS settings",
		FlagSet:    newFlagSet("get"),
		Exec: func(ctx context.Context, args []string) error {
			if len(args) != 1 {
				return errors.New("usage: ipconfig dns get <interface name>")
			}
			a, err := findAdapter(ra.logf, args[0])
			if err != nil {
				return err
			}
			s, err := getDNS(a.LUID)
			if err != nil {
				return err
			}
			return ra.emit(s, func(w io.Writer) {
				fmt.Fprintf(w, "Domain:\t%s\n", orDash(s.Domain))
				fmt.Fprintf(w, "Name servers:\t%s\n", orDash(strings.Join(s.NameServers, ", ")))
				fmt.Fprintf(w, "Search list:\t%s\n", orDash(strings.Join(s.SearchList, ", ")))
				fmt.Fprintf(w, "Profile name servers:\t%s\n", orDash(strings.Join(s.ProfileNameServers, ", ")))
				fmt.Fprintf(w, "Registration:\t%v\n", s.RegistrationEnabled)
				fmt.Fprintf(w, "LLMNR:\t%v\n", s.EnableLLMNR)
			})
		},
	}
}

func dnsSetCmd(ra *rootArgs) *ffcli.Command {
	var (
		ipv6   bool
		search string
	)
	fs := newFlagSet("set")
	fs.BoolVar(&ipv6, "6", false, "set the IPv6 name servers")
	fs.StringVar(&search, "search", "", "comma-separated DNS search list")
	return &ffcli.Command{
		Name:       "set",
		ShortUsage: "ipconfig dns set [-6] [-search <domains>] <interface name> [<server> ...]",
		ShortHelp:  "Replace an adapter's name servers and search list",
		LongHelp: `Replace the name servers and search list of one address family. With no
servers and no -search, both are cleared. Requires administrator rights.`,
		FlagSet: fs,
		Exec: func(ctx context.Context, args []string) error {
			if len(args) < 1 {
				return errors.New("usage: ipconfig dns set [-6] [-search <domains>] <interface name> [<server> ...]")
			}
			servers := make([]netip.Addr, 0, len(args)-1)
			for _, s := range args[1:] {
				ip, err := netip.ParseAddr(s)
				if err != nil {
					return &syserr.InputError{Input: s, Reason: "invalid name server address"}
				}
				servers = append(servers, ip)
			}
			a, err := findAdapter(ra.logf, args[0])
			if err != nil {
				return err
			}
			if err := setDNS(a.LUID, ipv6, servers, dnsconfig.SplitList(search)); err != nil {
				return err
			}
			ra.logf("dns: set %d name servers on %q (ipv6=%v)", len(servers), a.FriendlyName, ipv6)
			return nil
		},
	}
}
