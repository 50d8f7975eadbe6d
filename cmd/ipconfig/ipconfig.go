// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

// The ipconfig command shows the host's network adapters, interface
// indexes, DNS settings and packet filter state.
package main // import "github.com/ipconfig2/ipconfig/cmd/ipconfig"

import (
	"fmt"
	"os"

	"github.com/ipconfig2/ipconfig/cmd/ipconfig/cli"
)

func main() {
	if err := cli.Run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
