// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

// Package syserr defines the error types returned by the enumeration
// packages: failures reported by the OS, malformed data found while
// decoding OS-owned memory, and caller input that cannot be resolved.
package syserr

import (
	"errors"
	"fmt"
)

// Code is a raw Win32 status code.
type Code uint32

// Status codes the enumerators treat specially.
const (
	CodeSuccess        Code = 0
	CodeNotSupported   Code = 50  // ERROR_NOT_SUPPORTED
	CodeBufferOverflow Code = 111 // ERROR_BUFFER_OVERFLOW
	CodeNoData         Code = 232 // ERROR_NO_DATA
	CodeNotFound       Code = 1168
)

var (
	// ErrBufferOverflow is returned by table queries whose buffer was too
	// small. It is the only condition that is retried.
	ErrBufferOverflow = errors.New("buffer too small")

	// ErrNotSupported is returned by OS entry points on platforms without
	// the IP helper and filtering engine APIs.
	ErrNotSupported = errors.New("not supported on this platform")

	// ErrSessionClosed is returned by operations on a closed filter
	// engine session.
	ErrSessionClosed = errors.New("filter engine session closed")
)

// OSError is a failed OS call. Code is the status the call returned.
type OSError struct {
	Op   string
	Code Code
}

func (e *OSError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, describe(e.Code))
}

// Unwrap returns the platform errno for Code, so errors.Is works against
// windows.ERROR_* values.
func (e *OSError) Unwrap() error {
	return errno(e.Code)
}

// NewOSError returns an *OSError for op, or nil if code is CodeSuccess.
func NewOSError(op string, code Code) error {
	if code == CodeSuccess {
		return nil
	}
	return &OSError{Op: op, Code: code}
}

// DecodeError reports OS-owned data that could not be converted into an
// owned value: bad text encoding, pointers outside the table, unknown
// enum codes and the like.
type DecodeError struct {
	What string
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Err == nil {
		return "decode " + e.What
	}
	return fmt.Sprintf("decode %s: %v", e.What, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Decodef returns a *DecodeError for what with a formatted cause.
func Decodef(what, format string, args ...any) error {
	return &DecodeError{What: what, Err: fmt.Errorf(format, args...)}
}

// InputError reports caller input that does not name anything the OS
// knows about.
type InputError struct {
	Input  string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %q", e.Reason, e.Input)
}

// IsOS reports whether err is or wraps an *OSError.
func IsOS(err error) bool {
	var oe *OSError
	return errors.As(err, &oe)
}

// IsDecode reports whether err is or wraps a *DecodeError.
func IsDecode(err error) bool {
	var de *DecodeError
	return errors.As(err, &de)
}

// IsInput reports whether err is or wraps an *InputError.
func IsInput(err error) bool {
	var ie *InputError
	return errors.As(err, &ie)
}
