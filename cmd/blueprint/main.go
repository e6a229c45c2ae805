// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Command blueprint converts game blueprint strings to and from JSON.
// See "blueprint --help" for the command list.
package main

import (
	"fmt"
	"os"

	"github.com/bureau-foundation/blueprint/cmd/blueprint/commands"
)

func main() {
	if err := run(); err != nil {
		// Commands that report their own outcome (like fingerprint
		// --expect) return an error with the desired exit code. Don't
		// print a redundant "error:" line for those.
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	streams := commands.StandardStreams()
	return commands.Root(streams).Execute(os.Args[1:], streams.Stderr)
}
