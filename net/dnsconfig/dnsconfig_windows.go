// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package dnsconfig

import (
	"errors"
	"fmt"
	"runtime"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/ipconfig2/ipconfig/types/ifid"
	"github.com/ipconfig2/ipconfig/types/syserr"
	"github.com/ipconfig2/ipconfig/util/foreignmem"
)

func osErr(op string, err error) error {
	var errno windows.Errno
	if errors.As(err, &errno) {
		return syserr.NewOSError(op, syserr.Code(errno))
	}
	var dllErr *windows.DLLError
	if errors.As(err, &dllErr) {
		return fmt.Errorf("%s: %w: %v", op, syserr.ErrNotSupported, err)
	}
	return err
}

func getInterfaceDnsSettings(guid windows.GUID, s *wtDnsInterfaceSettings) error {
	words := (*[4]uintptr)(unsafe.Pointer(&guid))
	switch runtime.GOARCH {
	case "amd64":
		return getInterfaceDnsSettingsByPtr(&guid, s)
	case "arm64":
		return getInterfaceDnsSettingsByQwords(words[0], words[1], s)
	case "arm", "386":
		return getInterfaceDnsSettingsByDwords(words[0], words[1], words[2], words[3], s)
	default:
		panic("unknown calling convention")
	}
}

func setInterfaceDnsSettings(guid windows.GUID, s *wtDnsInterfaceSettings) error {
	words := (*[4]uintptr)(unsafe.Pointer(&guid))
	switch runtime.GOARCH {
	case "amd64":
		return setInterfaceDnsSettingsByPtr(&guid, s)
	case "arm64":
		return setInterfaceDnsSettingsByQwords(words[0], words[1], s)
	case "arm", "386":
		return setInterfaceDnsSettingsByDwords(words[0], words[1], words[2], words[3], s)
	default:
		panic("unknown calling convention")
	}
}

func osGet(g ifid.GUID) (*Settings, error) {
	s := &wtDnsInterfaceSettings{Version: settingsVersion1}
	if err := getInterfaceDnsSettings(g.Windows(), s); err != nil {
		return nil, osErr("GetInterfaceDnsSettings", err)
	}
	defer freeInterfaceDnsSettings(s)
	b := unsafe.Slice((*byte)(unsafe.Pointer(s)), unsafe.Sizeof(*s))
	return decodeSettings(foreignmem.Process{}, foreignmem.Block(b))
}

func osSet(g ifid.GUID, req request) error {
	ns, err := windows.UTF16PtrFromString(req.nameServer)
	if err != nil {
		return err
	}
	search, err := windows.UTF16PtrFromString(req.searchList)
	if err != nil {
		return err
	}
	s := &wtDnsInterfaceSettings{
		Version:    settingsVersion1,
		Flags:      req.flags,
		NameServer: ns,
		SearchList: search,
	}
	if err := setInterfaceDnsSettings(g.Windows(), s); err != nil {
		return osErr("SetInterfaceDnsSettings", err)
	}
	return nil
}
