// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package foreignmem

import (
	"strconv"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/ipconfig2/ipconfig/types/syserr"
	"github.com/ipconfig2/ipconfig/util/endian"
)

// MaxStringLen bounds the number of code units read for one
// NUL-terminated string.
const MaxStringLen = 32767

// ReadCString reads a NUL-terminated narrow string at addr. The bytes
// must be valid UTF-8.
func ReadCString(r Reader, addr uint64) (string, error) {
	if addr == 0 {
		return "", syserr.Decodef("string", "null pointer")
	}
	var buf []byte
	var c [1]byte
	for i := 0; ; i++ {
		if i == MaxStringLen {
			return "", syserr.Decodef("string", "no terminator within %d bytes at %#x", MaxStringLen, addr)
		}
		if err := r.ReadAt(c[:], addr+uint64(i)); err != nil {
			return "", err
		}
		if c[0] == 0 {
			break
		}
		buf = append(buf, c[0])
	}
	if !utf8.Valid(buf) {
		return "", syserr.Decodef("string", "invalid UTF-8 at %#x", addr)
	}
	return string(buf), nil
}

// ReadWString reads a NUL-terminated UTF-16 string at addr. Unpaired
// surrogates are a decode error rather than being replaced.
func ReadWString(r Reader, addr uint64) (string, error) {
	if addr == 0 {
		return "", syserr.Decodef("wide string", "null pointer")
	}
	var units []uint16
	var c [2]byte
	for i := 0; ; i++ {
		if i == MaxStringLen {
			return "", syserr.Decodef("wide string", "no terminator within %d units at %#x", MaxStringLen, addr)
		}
		if err := r.ReadAt(c[:], addr+uint64(2*i)); err != nil {
			return "", err
		}
		u := endian.Native.Uint16(c[:])
		if u == 0 {
			break
		}
		units = append(units, u)
	}
	if err := validUTF16(units); err != nil {
		return "", syserr.Decodef("wide string", "at %#x: %v", addr, err)
	}
	return string(utf16.Decode(units)), nil
}

type badSurrogate int

func (e badSurrogate) Error() string { return "unpaired surrogate at unit " + strconv.Itoa(int(e)) }

func validUTF16(s []uint16) error {
	for i := 0; i < len(s); i++ {
		switch u := s[i]; {
		case 0xD800 <= u && u < 0xDC00:
			if i+1 >= len(s) || s[i+1] < 0xDC00 || s[i+1] >= 0xE000 {
				return badSurrogate(i)
			}
			i++
		case 0xDC00 <= u && u < 0xE000:
			return badSurrogate(i)
		}
	}
	return nil
}
