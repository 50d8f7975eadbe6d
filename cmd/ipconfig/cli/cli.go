// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

// Package cli contains the cmd/ipconfig CLI code.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/peterbourgon/ff/v3"
	"github.com/peterbourgon/ff/v3/ffcli"

	"github.com/ipconfig2/ipconfig/envknob"
	"github.com/ipconfig2/ipconfig/types/logger"
)

var Stderr io.Writer = os.Stderr
var Stdout io.Writer = os.Stdout

func printf(format string, a ...any) {
	fmt.Fprintf(Stdout, format, a...)
}

// outln is like fmt.Println but writes to Stdout.
func outln(a ...any) {
	fmt.Fprintln(Stdout, a...)
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(Stderr)
	return fs
}

// rootArgs holds the flags shared by every subcommand.
type rootArgs struct {
	verbose bool
	format  string
	metrics bool

	logf logger.Logf
}

// Run runs the CLI. The args do not include the binary name.
func Run(args []string) error {
	ra := &rootArgs{logf: logger.Discard}

	rootfs := newFlagSet("ipconfig")
	rootfs.BoolVar(&ra.verbose, "verbose", false, "log what the OS calls are doing to stderr")
	rootfs.StringVar(&ra.format, "format", "auto", `output format: "table", "json", "yaml", or "auto" for a table on a terminal and JSON otherwise`)
	rootfs.BoolVar(&ra.metrics, "metrics", false, "print the command's metrics after its output")

	rootCmd := &ffcli.Command{
		Name:       "ipconfig",
		ShortUsage: "ipconfig [flags] <subcommand> [command flags]",
		ShortHelp:  "Show network adapters, interface indexes, DNS and filter state.",
		LongHelp: strings.TrimSpace(`
For help on subcommands, add --help after: "ipconfig adapters --help".

Root flags may also be set from the environment with an IPCONFIG_
prefix, as in IPCONFIG_FORMAT=yaml.
`),
		Subcommands: []*ffcli.Command{
			adaptersCmd(ra),
			guidsCmd(ra),
			indexCmd(ra),
			dnsCmd(ra),
			sublayersCmd(ra),
			addSubLayerCmd(ra),
			filtersCmd(ra),
		},
		FlagSet:   rootfs,
		Options:   []ff.Option{ff.WithEnvVarPrefix("IPCONFIG")},
		Exec:      func(context.Context, []string) error { return flag.ErrHelp },
		UsageFunc: usageFunc,
	}
	for _, c := range rootCmd.Subcommands {
		setUsage(c)
	}

	if err := rootCmd.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if ra.verbose {
		ra.logf = log.New(Stderr, "", log.LstdFlags).Printf
		envknob.LogCurrent(ra.logf)
	}
	if _, err := ra.outputFormat(); err != nil {
		return err
	}

	err := rootCmd.Run(context.Background())
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	if ra.metrics {
		return writeMetrics(Stdout)
	}
	return nil
}

func setUsage(c *ffcli.Command) {
	if c.UsageFunc == nil {
		c.UsageFunc = usageFunc
	}
	for _, sub := range c.Subcommands {
		setUsage(sub)
	}
}

func usageFunc(c *ffcli.Command) string {
	var b strings.Builder

	fmt.Fprintf(&b, "USAGE\n")
	if c.ShortUsage != "" {
		fmt.Fprintf(&b, "  %s\n", c.ShortUsage)
	} else {
		fmt.Fprintf(&b, "  %s\n", c.Name)
	}
	fmt.Fprintf(&b, "\n")

	if c.LongHelp != "" {
		fmt.Fprintf(&b, "%s\n\n", c.LongHelp)
	}

	if len(c.Subcommands) > 0 {
		fmt.Fprintf(&b, "SUBCOMMANDS\n")
		tw := tabwriter.NewWriter(&b, 0, 2, 2, ' ', 0)
		for _, subcommand := range c.Subcommands {
			fmt.Fprintf(tw, "  %s\t%s\n", subcommand.Name, subcommand.ShortHelp)
		}
		tw.Flush()
		fmt.Fprintf(&b, "\n")
	}

	if countFlags(c.FlagSet) > 0 {
		fmt.Fprintf(&b, "FLAGS\n")
		c.FlagSet.VisitAll(func(f *flag.Flag) {
			name, usage := flag.UnquoteUsage(f)
			s := fmt.Sprintf("  -%s", f.Name)
			if isBoolFlag(f) {
				s = fmt.Sprintf("  -%s, -%s=false", f.Name, f.Name)
			} else if name != "" {
				s += " " + name
			}
			// Four spaces before the tab align for both 4- and 8-space
			// tab stops.
			s += "\n    \t"
			s += strings.ReplaceAll(usage, "\n", "\n    \t")
			if f.DefValue != "" && !isBoolFlag(f) {
				s += fmt.Sprintf(" (default %s)", f.DefValue)
			}
			fmt.Fprintln(&b, s)
		})
		fmt.Fprintf(&b, "\n")
	}

	return strings.TrimSpace(b.String())
}

func isBoolFlag(f *flag.Flag) bool {
	bf, ok := f.Value.(interface {
		IsBoolFlag() bool
	})
	return ok && bf.IsBoolFlag()
}

func countFlags(fs *flag.FlagSet) (n int) {
	if fs == nil {
		return 0
	}
	fs.VisitAll(func(*flag.Flag) { n++ })
	return n
}
