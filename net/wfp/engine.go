// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package wfp

import (
	"fmt"
	"math"

	"github.com/ipconfig2/ipconfig/types/ifid"
	"github.com/ipconfig2/ipconfig/util/foreignmem"
)

// engine is the set of filtering engine calls the package makes. The
// Windows implementation wraps fwpuclnt.dll; tests supply a fake.
//
// Enum calls return the address of an OS-allocated array of object
// pointers, which stays valid until passed to free.
type engine interface {
	open(opts Options) (session uintptr, err error)
	close(session uintptr) error

	createSubLayerEnum(session uintptr) (enumHandle uintptr, err error)
	enumSubLayers(session, enumHandle uintptr, limit uint32) (array uint64, n uint32, err error)
	destroySubLayerEnum(session, enumHandle uintptr) error

	createFilterEnum(session uintptr, layer ifid.GUID) (enumHandle uintptr, err error)
	enumFilters(session, enumHandle uintptr, limit uint32) (array uint64, n uint32, err error)
	destroyFilterEnum(session, enumHandle uintptr) error

	free(array uint64)
	addSubLayer(session uintptr, sl SubLayer) error

	// memory reads the objects enum calls return.
	memory() foreignmem.Reader
}

// cursor binds one object kind's enum calls to a session.
type cursor struct {
	kind    string
	size    int
	create  func() (uintptr, error)
	enum    func(c uintptr, limit uint32) (uint64, uint32, error)
	destroy func(c uintptr) error
}

// enumerate runs one cursor to completion: create, a single enum call
// for as many objects as the OS has, decode, free, destroy. Null entries
// in the returned array are skipped. Each object's fixed record is
// copied before decode, and strings are read before the array is freed.
func enumerate[T any](e engine, c cursor, decode func(foreignmem.Reader, foreignmem.Block) (T, error)) (ret []T, err error) {
	h, err := c.create()
	if err != nil {
		return nil, err
	}
	defer func() {
		if derr := c.destroy(h); derr != nil && err == nil {
			ret, err = nil, derr
		}
	}()

	array, n, err := c.enum(h, math.MaxUint32)
	if err != nil {
		return nil, err
	}
	if array == 0 {
		return []T{}, nil
	}
	defer e.free(array)

	mem := e.memory()
	ret = make([]T, 0, n)
	for i := range n {
		slot, err := foreignmem.Copy(mem, array+uint64(i)*uint64(foreignmem.PtrSize), foreignmem.PtrSize)
		if err != nil {
			return nil, fmt.Errorf("%s array entry %d: %w", c.kind, i, err)
		}
		p := slot.Ptr(0)
		if p == 0 {
			continue
		}
		b, err := foreignmem.Copy(mem, p, c.size)
		if err != nil {
			return nil, fmt.Errorf("%s %d: %w", c.kind, i, err)
		}
		v, err := decode(mem, b)
		if err != nil {
			return nil, fmt.Errorf("%s %d: %w", c.kind, i, err)
		}
		ret = append(ret, v)
	}
	return ret, nil
}
