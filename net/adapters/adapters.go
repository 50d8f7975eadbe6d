// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package adapters

import (
	"fmt"

	"github.com/ipconfig2/ipconfig/envknob"
	"github.com/ipconfig2/ipconfig/types/logger"
	"github.com/ipconfig2/ipconfig/util/foreignmem"
)

var debugEnum = envknob.RegisterBool("IPCONFIG_DEBUG_ENUM")

// Enumerator lists adapters through a table Query.
type Enumerator struct {
	// Query fetches the raw adapter table. If nil, the OS is asked
	// (GetAdaptersAddresses with prefixes and gateways, both families).
	Query Query

	// Logf, if non-nil, receives debug output when IPCONFIG_DEBUG_ENUM
	// is set.
	Logf logger.Logf
}

// Default is the Enumerator used by Get.
var Default = &Enumerator{}

// Get lists the host's adapters in OS order.
func Get() ([]Adapter, error) {
	return Default.Adapters()
}

func (e *Enumerator) logf(format string, args ...any) {
	if e.Logf == nil || !debugEnum() {
		return
	}
	e.Logf("adapters: "+format, args...)
}

// Adapters lists adapters in OS order. It fails as a whole if the query
// or any record fails.
func (e *Enumerator) Adapters() ([]Adapter, error) {
	q := e.Query
	if q == nil {
		q = osQuery
	}
	buf, n, err := Fetch(q, 0)
	if err != nil {
		metricEnumerations.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("adapters: %w", err)
	}
	e.logf("table of %d bytes in a %d-byte buffer", n, len(buf))
	if n == 0 {
		metricEnumerations.WithLabelValues("ok").Inc()
		return []Adapter{}, nil
	}
	region := foreignmem.RegionOf(buf[:n])
	ret, err := Decode(region, region.Base)
	if err != nil {
		metricEnumerations.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("adapters: %w", err)
	}
	metricEnumerations.WithLabelValues("ok").Inc()
	e.logf("decoded %d adapters", len(ret))
	return ret, nil
}
