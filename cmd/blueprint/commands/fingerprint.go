// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"strings"

	"github.com/bureau-foundation/blueprint/cmd/blueprint/cli"
	"github.com/bureau-foundation/blueprint/lib/fingerprint"
)

type fingerprintParams struct {
	globalParams
	inputParams
	Short  bool   `flag:"short,s" desc:"print the abbreviated bp- form"`
	Expect string `flag:"expect" desc:"exit 1 unless the fingerprint matches this value (full or bp- form)"`
}

func fingerprintCommand(streams Streams) *cli.Command {
	var params fingerprintParams
	var flags flagTracker

	return &cli.Command{
		Name:    "fingerprint",
		Summary: "Print the content hash of a blueprint string",
		Description: `Decode a blueprint string and print a hash of the document it carries.

The hash covers the canonical JSON of the document, so two strings
that differ only in compression level, whitespace, or key order have
the same fingerprint. With --expect the command prints nothing on a
match and exits 1 with a message on stderr otherwise.`,
		Usage: "blueprint fingerprint [--file F | --data S] [flags]",
		Examples: []cli.Example{
			{
				Description: "Print the short fingerprint",
				Command:     "blueprint fingerprint --short --file station.txt",
			},
			{
				Description: "Fail a script when a blueprint changed",
				Command:     "blueprint fingerprint --file station.txt --expect bp-1a2b3c4d5e6f",
			},
		},
		Flags: flags.bind("fingerprint", &params),
		Run: func(args []string) error {
			session, err := params.begin(streams, "fingerprint")
			if err != nil {
				return err
			}
			decoder, err := session.codec()
			if err != nil {
				return err
			}
			input, source, err := params.open(streams.Stdin, args)
			if err != nil {
				return err
			}
			defer input.Close()

			container, err := decoder.Decode(input)
			if err != nil {
				return codecError(source, err)
			}
			hash, err := fingerprint.Compute(container)
			if err != nil {
				return cli.Internal("%s: %w", source, err)
			}
			session.logger.Debug("fingerprinted", "source", source, "kind", container.Kind(), "fingerprint", hash.String())

			if flags.changed("expect") {
				return compareFingerprint(streams, hash, params.Expect)
			}

			text := hash.String()
			if params.Short {
				text = hash.Short()
			}
			_, err = fmt.Fprintln(streams.Stdout, text)
			return err
		},
	}
}

// compareFingerprint checks hash against expected, which is either the
// full hex form or the abbreviated bp- form.
func compareFingerprint(streams Streams, hash fingerprint.Hash, expected string) error {
	expected = strings.ToLower(strings.TrimSpace(expected))
	var matched bool
	var got string
	if strings.HasPrefix(expected, "bp-") {
		got = hash.Short()
		matched = got == expected
	} else {
		want, err := fingerprint.Parse(expected)
		if err != nil {
			return cli.Validation("--expect: %w", err)
		}
		got = hash.String()
		matched = want == hash
	}
	if matched {
		return nil
	}
	fmt.Fprintf(streams.Stderr, "fingerprint mismatch: got %s, want %s\n", got, expected)
	return &cli.ExitError{Code: 1}
}
