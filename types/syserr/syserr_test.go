// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package syserr

import (
	"errors"
	"fmt"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name                string
		err                 error
		isOS, isDec, isInpt bool
	}{
		{"os", &OSError{Op: "FwpmEngineOpen0", Code: 5}, true, false, false},
		{"wrapped-os", fmt.Errorf("sublayers: %w", &OSError{Op: "x", Code: 5}), true, false, false},
		{"decode", Decodef("adapter", "bad oper status %d", 9), false, true, false},
		{"input", &InputError{Input: "eth0", Reason: "invalid interface name"}, false, false, true},
		{"plain", errors.New("boom"), false, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsOS(tt.err); got != tt.isOS {
				t.Errorf("IsOS = %v; want %v", got, tt.isOS)
			}
			if got := IsDecode(tt.err); got != tt.isDec {
				t.Errorf("IsDecode = %v; want %v", got, tt.isDec)
			}
			if got := IsInput(tt.err); got != tt.isInpt {
				t.Errorf("IsInput = %v; want %v", got, tt.isInpt)
			}
		})
	}
}

func TestNewOSErrorSuccess(t *testing.T) {
	if err := NewOSError("op", CodeSuccess); err != nil {
		t.Fatalf("NewOSError(success) = %v; want nil", err)
	}
	err := NewOSError("GetAdaptersAddresses", CodeNoData)
	var oe *OSError
	if !errors.As(err, &oe) || oe.Code != CodeNoData {
		t.Fatalf("NewOSError = %#v; want code %d", err, CodeNoData)
	}
}

func TestInputErrorText(t *testing.T) {
	err := &InputError{Input: "eth0", Reason: "invalid interface name"}
	if got, want := err.Error(), `invalid interface name: "eth0"`; got != want {
		t.Errorf("Error() = %q; want %q", got, want)
	}
}
