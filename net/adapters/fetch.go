// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package adapters

import (
	"errors"
	"unsafe"

	"github.com/ipconfig2/ipconfig/types/syserr"
)

// InitialBufferSize is the first buffer size tried by Fetch when the
// caller has no better hint.
const InitialBufferSize = 16 << 10

// Query fills buf with an OS table.
//
// On success it returns the number of bytes of buf the table occupies
// and a nil error. If buf is too small it returns the size the OS asked
// for and an error matching syserr.ErrBufferOverflow. Any other error is
// final.
type Query func(buf []byte) (need uint32, err error)

// Fetch runs q with a growing buffer until it succeeds. It returns the
// buffer and the number of bytes q reported using.
//
// The buffer is 8-byte aligned so OS records written into it are
// naturally aligned. Only ErrBufferOverflow is retried, and only while
// the OS keeps asking for more room.
func Fetch(q Query, hint uint32) (buf []byte, n uint32, err error) {
	size := hint
	if size == 0 {
		size = InitialBufferSize
	}
	for {
		buf = alignedBuffer(size)
		metricFetchAttempts.Inc()
		var need uint32
		need, err = q(buf)
		if err == nil {
			if need > uint32(len(buf)) {
				return nil, 0, syserr.Decodef("table", "query used %d bytes of a %d-byte buffer", need, len(buf))
			}
			return buf, need, nil
		}
		if !errors.Is(err, syserr.ErrBufferOverflow) {
			return nil, 0, err
		}
		metricFetchOverflows.Inc()
		if need <= uint32(len(buf)) {
			return nil, 0, syserr.NewOSError("fetch table", syserr.CodeBufferOverflow)
		}
		size = need
	}
}

func alignedBuffer(size uint32) []byte {
	words := make([]uint64, (uint64(size)+7)/8)
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(words))), int(size))
}
