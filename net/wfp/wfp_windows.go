// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package wfp

import (
	"errors"
	"fmt"

	"golang.org/x/sys/windows"

	"github.com/ipconfig2/ipconfig/types/ifid"
	"github.com/ipconfig2/ipconfig/types/syserr"
	"github.com/ipconfig2/ipconfig/util/foreignmem"
)

type osEngine struct{}

func newOSEngine() (engine, error) {
	if err := modfwpuclnt.Load(); err != nil {
		return nil, fmt.Errorf("wfp: %w", err)
	}
	return osEngine{}, nil
}

// osErr converts an errno from fwpuclnt into an *syserr.OSError.
func osErr(op string, err error) error {
	var errno windows.Errno
	if errors.As(err, &errno) {
		return syserr.NewOSError(op, syserr.Code(errno))
	}
	return err
}

// wire returns the OS form of d. The returned pointers reference Go
// memory, so the result must stay reachable until the call using it
// returns.
func (d DisplayData) wire() (wtFwpmDisplayData0, error) {
	name, err := windows.UTF16PtrFromString(d.Name)
	if err != nil {
		return wtFwpmDisplayData0{}, err
	}
	ret := wtFwpmDisplayData0{name: name}
	if d.Description != nil {
		if ret.description, err = windows.UTF16PtrFromString(*d.Description); err != nil {
			return wtFwpmDisplayData0{}, err
		}
	}
	return ret, nil
}

func (osEngine) open(o Options) (uintptr, error) {
	dd, err := DisplayData{Name: o.Name, Description: &o.Description}.wire()
	if err != nil {
		return 0, err
	}
	session := wtFwpmSession0{
		displayData:          dd,
		txnWaitTimeoutInMSec: windows.INFINITE,
	}
	if o.Dynamic {
		session.flags = cFWPM_SESSION_FLAG_DYNAMIC
	}
	var h uintptr
	if err := fwpmEngineOpen0(nil, cRPC_C_AUTHN_DEFAULT, 0, &session, &h); err != nil {
		return 0, osErr("FwpmEngineOpen0", err)
	}
	return h, nil
}

func (osEngine) close(session uintptr) error {
	return osErr("FwpmEngineClose0", fwpmEngineClose0(session))
}

func (osEngine) createSubLayerEnum(session uintptr) (uintptr, error) {
	var h uintptr
	if err := fwpmSubLayerCreateEnumHandle0(session, 0, &h); err != nil {
		return 0, osErr("FwpmSubLayerCreateEnumHandle0", err)
	}
	return h, nil
}

func (osEngine) enumSubLayers(session, enumHandle uintptr, limit uint32) (uint64, uint32, error) {
	var (
		entries uintptr
		n       uint32
	)
	if err := fwpmSubLayerEnum0(session, enumHandle, limit, &entries, &n); err != nil {
		return 0, 0, osErr("FwpmSubLayerEnum0", err)
	}
	return uint64(entries), n, nil
}

func (osEngine) destroySubLayerEnum(session, enumHandle uintptr) error {
	return osErr("FwpmSubLayerDestroyEnumHandle0", fwpmSubLayerDestroyEnumHandle0(session, enumHandle))
}

func (osEngine) createFilterEnum(session uintptr, layer ifid.GUID) (uintptr, error) {
	tmpl := wtFwpmFilterEnumTemplate0{
		layerKey:   layer.Windows(),
		enumType:   cFWP_FILTER_ENUM_FULLY_CONTAINED,
		actionMask: 0xFFFFFFFF,
	}
	var h uintptr
	if err := fwpmFilterCreateEnumHandle0(session, &tmpl, &h); err != nil {
		return 0, osErr("FwpmFilterCreateEnumHandle0", err)
	}
	return h, nil
}

func (osEngine) enumFilters(session, enumHandle uintptr, limit uint32) (uint64, uint32, error) {
	var (
		entries uintptr
		n       uint32
	)
	if err := fwpmFilterEnum0(session, enumHandle, limit, &entries, &n); err != nil {
		return 0, 0, osErr("FwpmFilterEnum0", err)
	}
	return uint64(entries), n, nil
}

func (osEngine) destroyFilterEnum(session, enumHandle uintptr) error {
	return osErr("FwpmFilterDestroyEnumHandle0", fwpmFilterDestroyEnumHandle0(session, enumHandle))
}

func (osEngine) free(array uint64) {
	p := uintptr(array)
	fwpmFreeMemory0(&p)
}

func (osEngine) addSubLayer(session uintptr, sl SubLayer) error {
	dd, err := sl.Display.wire()
	if err != nil {
		return err
	}
	w := wtFwpmSublayer0{
		subLayerKey: sl.Key.Windows(),
		displayData: dd,
		flags:       sl.Flags,
		weight:      ^uint16(0),
	}
	return osErr("FwpmSubLayerAdd0", fwpmSubLayerAdd0(session, &w, 0))
}

func (osEngine) memory() foreignmem.Reader { return foreignmem.Process{} }
