// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/bureau-foundation/blueprint/cmd/blueprint/cli"
	"github.com/bureau-foundation/blueprint/lib/version"
)

// Streams are the standard streams the command tree reads and writes.
type Streams struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// StandardStreams returns the process's stdin, stdout, and stderr.
func StandardStreams() Streams {
	return Streams{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// Root builds and returns the complete blueprint command tree.
func Root(streams Streams) *cli.Command {
	return &cli.Command{
		Name: "blueprint",
		Description: `blueprint: convert game blueprint strings to and from JSON.

A blueprint string is a document (blueprint, blueprint book, or
deconstruction or upgrade planner) serialized as JSON, compressed with
zlib, encoded as base64, and prefixed with the version character '0'.`,
		Subcommands: []*cli.Command{
			encodeCommand(streams),
			decodeCommand(streams),
			fingerprintCommand(streams),
			inspectCommand(streams),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(args []string) error {
					if len(args) > 0 {
						return cli.Validation("version takes no arguments, got %q", args[0])
					}
					_, err := fmt.Fprintf(streams.Stdout, "blueprint %s\n", version.Full())
					return err
				},
			},
		},
		Examples: []cli.Example{
			{
				Description: "Decode a blueprint string copied from the game",
				Command:     "blueprint decode --data '0eNqrVkrKKU0t...'",
			},
			{
				Description: "Decode to JSON for editing, then encode the result",
				Command:     "blueprint decode --file station.txt > station.json && blueprint encode --file station.json",
			},
			{
				Description: "List every document in a blueprint book",
				Command:     "blueprint inspect --file book.txt",
			},
			{
				Description: "Check that two strings carry the same document",
				Command:     "blueprint fingerprint --file a.txt --expect $(blueprint fingerprint --file b.txt)",
			},
		},
	}
}
