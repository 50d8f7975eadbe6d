// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package envknob

import (
	"fmt"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
)

func TestRegisterAndSetenv(t *testing.T) {
	c := qt.New(t)
	const (
		boolKey = "IPCONFIG_TEST_KNOB_BOOL"
		durKey  = "IPCONFIG_TEST_KNOB_DUR"
		strKey  = "IPCONFIG_TEST_KNOB_STR"
	)
	t.Setenv(boolKey, "")
	t.Setenv(durKey, "")
	t.Setenv(strKey, "")

	b := RegisterBool(boolKey)
	d := RegisterDuration(durKey)
	s := RegisterString(strKey)
	c.Assert(b(), qt.IsFalse)
	c.Assert(d(), qt.Equals, time.Duration(0))
	c.Assert(s(), qt.Equals, "")

	Setenv(boolKey, "true")
	Setenv(durKey, "250ms")
	Setenv(strKey, "x")
	c.Assert(b(), qt.IsTrue)
	c.Assert(d(), qt.Equals, 250*time.Millisecond)
	c.Assert(s(), qt.Equals, "x")
	c.Assert(Bool(boolKey), qt.IsTrue)
	c.Assert(String(strKey), qt.Equals, "x")

	var lines []string
	LogCurrent(func(format string, args ...any) {
		lines = append(lines, fmt.Sprintf(format, args...))
	})
	c.Assert(lines, qt.Contains, `envknob: IPCONFIG_TEST_KNOB_BOOL="true"`)
	c.Assert(lines, qt.Contains, `envknob: IPCONFIG_TEST_KNOB_DUR="250ms"`)

	Setenv(boolKey, "")
	Setenv(durKey, "")
	Setenv(strKey, "")
	c.Assert(b(), qt.IsFalse)
	c.Assert(d(), qt.Equals, time.Duration(0))
}
