// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

// Package sockbind pins outgoing sockets to a named interface with the
// IP_UNICAST_IF and IPV6_UNICAST_IF socket options.
package sockbind

import (
	"fmt"
	"log"
	"strings"
	"syscall"

	"github.com/ipconfig2/ipconfig/net/ifindex"
	"github.com/ipconfig2/ipconfig/types/logger"
	"github.com/ipconfig2/ipconfig/util/endian"
)

// Socket option levels and names, as in ws2ipdef.h.
const (
	levelIP   = 0  // IPPROTO_IP
	levelIPv6 = 41 // IPPROTO_IPV6

	sockoptUnicastIf = 31 // IP_UNICAST_IF and IPV6_UNICAST_IF
)

// setsockopt is the platform's integer setsockopt. Tests replace it.
var setsockopt = osSetsockopt

// Binder binds sockets to interfaces by name.
type Binder struct {
	// Resolver maps names to indexes. If nil, ifindex.Default is used.
	Resolver *ifindex.Resolver

	// Logf receives failures. If nil, they are not logged.
	Logf logger.Logf
}

// Bind binds c to the interface called name using r, logging failures
// with the log package.
func Bind(c syscall.RawConn, r *ifindex.Resolver, name string, ipv6 bool) error {
	b := &Binder{Resolver: r, Logf: log.Printf}
	return b.Bind(c, name, ipv6)
}

func (b *Binder) resolver() *ifindex.Resolver {
	if b.Resolver != nil {
		return b.Resolver
	}
	return ifindex.Default
}

func (b *Binder) logf(format string, args ...any) {
	if b.Logf != nil {
		b.Logf(format, args...)
	}
}

// Bind sets the unicast interface of c to the interface called name.
// The option is set for IPv6 if ipv6 is true and for IPv4 otherwise.
func (b *Binder) Bind(c syscall.RawConn, name string, ipv6 bool) error {
	idx, err := b.resolver().Resolve(name, ipv6)
	if err != nil {
		return err
	}
	level, opt, val := unicastIfOption(idx, ipv6)
	var sockErr error
	if err := c.Control(func(fd uintptr) {
		sockErr = setsockopt(fd, level, opt, val)
	}); err != nil {
		return err
	}
	if sockErr != nil {
		b.logf("sockbind: set unicast interface %q (index %d, ipv6=%v): %v", name, idx, ipv6, sockErr)
		return fmt.Errorf("sockbind: %w", sockErr)
	}
	return nil
}

// Control returns a func for net.Dialer.Control or net.ListenConfig.Control
// that binds each socket to the interface called name. Sockets that are
// neither IPv4 nor IPv6 are left alone.
func (b *Binder) Control(name string) func(network, address string, c syscall.RawConn) error {
	return func(network, address string, c syscall.RawConn) error {
		switch {
		case strings.HasSuffix(network, "4"):
			return b.Bind(c, name, false)
		case strings.HasSuffix(network, "6"):
			return b.Bind(c, name, true)
		}
		return nil
	}
}

// unicastIfOption returns the setsockopt arguments that bind a socket to
// interface idx. IPv4 takes the index in network byte order and IPv6 in
// host order.
func unicastIfOption(idx uint32, ipv6 bool) (level, opt, val int) {
	if ipv6 {
		return levelIPv6, sockoptUnicastIf, int(idx)
	}
	return levelIP, sockoptUnicastIf, int(int32(endian.Hton32(idx)))
}
