// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package adapters

import (
	"fmt"

	"github.com/ipconfig2/ipconfig/types/syserr"
	"github.com/ipconfig2/ipconfig/util/foreignmem"
)

// Shape describes a singly linked OS record type.
type Shape struct {
	Name       string // for errors
	Size       int    // bytes copied per record
	NextOffset int    // offset of the pointer to the next record
}

var (
	adapterShape = Shape{
		Name:       "IP_ADAPTER_ADDRESSES",
		Size:       _IP_ADAPTER_ADDRESSES_Size,
		NextOffset: _IP_ADAPTER_ADDRESSES_Next_Offset,
	}
	unicastShape = Shape{
		Name:       "IP_ADAPTER_UNICAST_ADDRESS",
		Size:       _IP_ADAPTER_UNICAST_ADDRESS_Size,
		NextOffset: _IP_ADAPTER_RECORD_Next_Offset,
	}
	gatewayShape = Shape{
		Name:       "IP_ADAPTER_GATEWAY_ADDRESS",
		Size:       _IP_ADAPTER_GATEWAY_ADDRESS_Size,
		NextOffset: _IP_ADAPTER_RECORD_Next_Offset,
	}
	dnsServerShape = Shape{
		Name:       "IP_ADAPTER_DNS_SERVER_ADDRESS",
		Size:       _IP_ADAPTER_DNS_SERVER_ADDRESS_Size,
		NextOffset: _IP_ADAPTER_RECORD_Next_Offset,
	}
	prefixShape = Shape{
		Name:       "IP_ADAPTER_PREFIX",
		Size:       _IP_ADAPTER_PREFIX_Size,
		NextOffset: _IP_ADAPTER_RECORD_Next_Offset,
	}
)

// Walk decodes the chain of records starting at head, in link order.
// Each record is copied out of r before decode sees it. A head of 0 is
// an empty chain and yields an empty, non-nil slice.
func Walk[T any](r foreignmem.Reader, head uint64, s Shape, decode func(foreignmem.Block) (T, error)) ([]T, error) {
	out := []T{}
	seen := make(map[uint64]bool)
	for addr := head; addr != 0; {
		if seen[addr] {
			return nil, syserr.Decodef(s.Name, "chain revisits %#x", addr)
		}
		seen[addr] = true
		b, err := foreignmem.Copy(r, addr, s.Size)
		if err != nil {
			return nil, fmt.Errorf("%s #%d: %w", s.Name, len(out), err)
		}
		v, err := decode(b)
		if err != nil {
			return nil, fmt.Errorf("%s #%d: %w", s.Name, len(out), err)
		}
		out = append(out, v)
		addr = b.Ptr(s.NextOffset)
	}
	return out, nil
}
