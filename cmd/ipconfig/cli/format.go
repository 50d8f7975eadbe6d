// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/mattn/go-isatty"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
	"gopkg.in/yaml.v3"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

// outputFormat resolves the -format flag. "auto" is a table when Stdout
// is a terminal and JSON otherwise.
func (ra *rootArgs) outputFormat() (string, error) {
	switch ra.format {
	case formatTable, formatJSON, formatYAML:
		return ra.format, nil
	case "auto", "":
		if f, ok := Stdout.(interface{ Fd() uintptr }); ok && isatty.IsTerminal(f.Fd()) {
			return formatTable, nil
		}
		return formatJSON, nil
	}
	return "", fmt.Errorf("unknown -format %q; want table, json, yaml or auto", ra.format)
}

// emit writes v in the selected format. table renders the table form
// onto a tabwriter.
func (ra *rootArgs) emit(v any, table func(w io.Writer)) error {
	format, err := ra.outputFormat()
	if err != nil {
		return err
	}
	switch format {
	case formatJSON:
		enc := json.NewEncoder(Stdout)
		enc.SetIndent("", "\t")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(Stdout)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	tw := tabwriter.NewWriter(Stdout, 0, 0, 2, ' ', 0)
	table(tw)
	return tw.Flush()
}

// metricPrefix selects this program's metrics from the default registry,
// leaving out the Go runtime collectors.
const metricPrefix = "ipconfig_"

// writeMetrics writes this program's metrics from the default registry
// in the Prometheus text format.
func writeMetrics(w io.Writer) error {
	mfs, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		return fmt.Errorf("could not gather metrics from DefaultGatherer: %w", err)
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range ownMetrics(mfs) {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("could not encode metric %v: %w", mf.GetName(), err)
		}
	}
	if closer, ok := enc.(expfmt.Closer); ok {
		return closer.Close()
	}
	return nil
}

func ownMetrics(mfs []*dto.MetricFamily) []*dto.MetricFamily {
	var ret []*dto.MetricFamily
	for _, mf := range mfs {
		if strings.HasPrefix(mf.GetName(), metricPrefix) {
			ret = append(ret, mf)
		}
	}
	return ret
}

// orDash returns s, or "-" if s is empty, for table cells.
func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// joinStrings joins the String forms of vs with commas.
func joinStrings[T fmt.Stringer](vs []T) string {
	s := make([]string, len(vs))
	for i, v := range vs {
		s[i] = v.String()
	}
	return orDash(strings.Join(s, ","))
}
