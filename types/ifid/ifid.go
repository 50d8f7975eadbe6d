// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

// Package ifid converts between the 16-byte identifiers handed out by the
// OS and their native multi-field form, and models the 64-bit interface
// LUID.
//
// A GUID's byte form is its in-memory representation: Data1, Data2 and
// Data3 are stored in host byte order followed by the eight Data4 bytes.
// GUIDFromBytes and GUID.Bytes are exact inverses of each other.
package ifid

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/ipconfig2/ipconfig/util/endian"
)

// GUID is the OS-native identifier: a 4-byte field, two 2-byte fields and
// an 8-byte tail. Its memory layout matches windows.GUID.
type GUID struct {
	Data1 uint32
	Data2 uint16
	Data3 uint16
	Data4 [8]byte
}

// GUIDFromBytes decodes the in-memory form b into a GUID.
func GUIDFromBytes(b [16]byte) GUID {
	var g GUID
	g.Data1 = endian.Native.Uint32(b[0:4])
	g.Data2 = endian.Native.Uint16(b[4:6])
	g.Data3 = endian.Native.Uint16(b[6:8])
	copy(g.Data4[:], b[8:16])
	return g
}

// Bytes returns the in-memory form of g.
func (g GUID) Bytes() [16]byte {
	var b [16]byte
	endian.Native.PutUint32(b[0:4], g.Data1)
	endian.Native.PutUint16(b[4:6], g.Data2)
	endian.Native.PutUint16(b[6:8], g.Data3)
	copy(b[8:16], g.Data4[:])
	return b
}

// IsZero reports whether g is the nil GUID.
func (g GUID) IsZero() bool { return g == GUID{} }

// String returns g in the registry form used by Windows,
// {XXXXXXXX-XXXX-XXXX-XXXX-XXXXXXXXXXXX}.
func (g GUID) String() string {
	return fmt.Sprintf("{%08X-%04X-%04X-%02X%02X-%02X%02X%02X%02X%02X%02X}",
		g.Data1, g.Data2, g.Data3,
		g.Data4[0], g.Data4[1], g.Data4[2], g.Data4[3],
		g.Data4[4], g.Data4[5], g.Data4[6], g.Data4[7])
}

// MarshalText implements encoding.TextMarshaler using String.
func (g GUID) MarshalText() ([]byte, error) { return []byte(g.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler using ParseGUID.
func (g *GUID) UnmarshalText(b []byte) error {
	v, err := ParseGUID(string(b))
	if err != nil {
		return err
	}
	*g = v
	return nil
}

// UUID returns g as an RFC 4122 UUID. The UUID's byte order is the
// big-endian rendering of the fields, so it prints the same as String
// without braces.
func (g GUID) UUID() uuid.UUID {
	var u uuid.UUID
	u[0], u[1], u[2], u[3] = byte(g.Data1>>24), byte(g.Data1>>16), byte(g.Data1>>8), byte(g.Data1)
	u[4], u[5] = byte(g.Data2>>8), byte(g.Data2)
	u[6], u[7] = byte(g.Data3>>8), byte(g.Data3)
	copy(u[8:], g.Data4[:])
	return u
}

// FromUUID is the inverse of GUID.UUID.
func FromUUID(u uuid.UUID) GUID {
	var g GUID
	g.Data1 = uint32(u[0])<<24 | uint32(u[1])<<16 | uint32(u[2])<<8 | uint32(u[3])
	g.Data2 = uint16(u[4])<<8 | uint16(u[5])
	g.Data3 = uint16(u[6])<<8 | uint16(u[7])
	copy(g.Data4[:], u[8:])
	return g
}

// ParseGUID parses s with or without surrounding braces.
func ParseGUID(s string) (GUID, error) {
	t := s
	if strings.HasPrefix(t, "{") {
		if !strings.HasSuffix(t, "}") {
			return GUID{}, fmt.Errorf("ifid: malformed GUID %q", s)
		}
		t = t[1 : len(t)-1]
	}
	if len(t) != 36 {
		return GUID{}, fmt.Errorf("ifid: malformed GUID %q", s)
	}
	u, err := uuid.Parse(t)
	if err != nil {
		return GUID{}, fmt.Errorf("ifid: malformed GUID %q: %w", s, err)
	}
	return FromUUID(u), nil
}

// MustParseGUID is like ParseGUID but panics on error. It is meant for
// package-level well-known identifiers.
func MustParseGUID(s string) GUID {
	g, err := ParseGUID(s)
	if err != nil {
		panic(err)
	}
	return g
}

// NewRandomGUID returns a GUID built from 16 random bytes (a version 4
// UUID).
func NewRandomGUID() (GUID, error) {
	u, err := uuid.NewRandom()
	if err != nil {
		return GUID{}, err
	}
	return FromUUID(u), nil
}

// LUID is a NET_LUID: a locally unique interface identifier. Bits 0-23
// are reserved, 24-47 hold the per-type index and 48-63 the IANA
// interface type.
type LUID uint64

// NetLuidIndex returns the per-type interface index stored in l.
func (l LUID) NetLuidIndex() uint32 { return uint32(l>>24) & 0xFFFFFF }

// IfType returns the IANA interface type stored in l.
func (l LUID) IfType() uint16 { return uint16(l >> 48) }

func (l LUID) String() string { return "0x" + strconv.FormatUint(uint64(l), 16) }

// ErrNoLUID is returned when a GUID does not belong to any interface.
var ErrNoLUID = errors.New("ifid: no interface with that GUID")
