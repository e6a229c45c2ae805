// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"bytes"
	"io"

	"github.com/tidwall/jsonc"

	"github.com/bureau-foundation/blueprint/cmd/blueprint/cli"
	"github.com/bureau-foundation/blueprint/lib/codec"
	"github.com/bureau-foundation/blueprint/lib/schema"
)

type encodeParams struct {
	globalParams
	inputParams
	Level int  `flag:"level" desc:"zlib compression level from -2 (Huffman only) to 9 (default: from config)"`
	Raw   bool `flag:"raw" desc:"encode the input bytes as they are, without checking the document"`
}

func encodeCommand(streams Streams) *cli.Command {
	var params encodeParams
	var flags flagTracker

	return &cli.Command{
		Name:    "encode",
		Summary: "Encode a JSON document as a blueprint string",
		Description: `Read a document as JSON and print its blueprint string.

The input may contain // and /* */ comments and trailing commas. It
must be a single container object with exactly one of the keys
blueprint, blueprint_book, deconstruction_planner, or upgrade_planner.
The document is checked against the schema before anything is
written; with --raw the bytes are compressed as they are.`,
		Usage: "blueprint encode [--file F | --data S] [flags]",
		Examples: []cli.Example{
			{
				Description: "Encode a document from a file",
				Command:     "blueprint encode --file station.json",
			},
			{
				Description: "Encode at a lower compression level",
				Command:     "blueprint encode --level 6 < station.json",
			},
		},
		Flags: flags.bind("encode", &params),
		Run: func(args []string) error {
			session, err := params.begin(streams, "encode")
			if err != nil {
				return err
			}
			input, source, err := params.open(streams.Stdin, args)
			if err != nil {
				return err
			}
			defer input.Close()

			data, err := io.ReadAll(input)
			if err != nil {
				return cli.Internal("reading %s: %w", source, err)
			}

			options := session.config.CodecOptions()
			if flags.changed("level") {
				options.CompressionLevel = params.Level
			}
			encoder, err := codec.New(options)
			if err != nil {
				return cli.Validation("--level: %w", err)
			}

			var output bytes.Buffer
			if params.Raw {
				err = encoder.EncodeStream(&output, func(payload io.Writer) error {
					_, err := payload.Write(data)
					return err
				})
			} else {
				container, parseErr := schema.Unmarshal(jsonc.ToJSON(data))
				if parseErr != nil {
					return cli.Validation("%s: %w", source, parseErr)
				}
				session.logger.Debug("parsed document",
					"source", source,
					"kind", container.Kind(),
					"label", container.Label(),
				)
				err = encoder.Encode(&output, container)
			}
			if err != nil {
				return codecError(source, err)
			}

			session.logger.Debug("encoded",
				"source", source,
				"payload_bytes", len(data),
				"transport_bytes", output.Len(),
				"compression_level", options.CompressionLevel,
				"raw", params.Raw,
			)

			output.WriteByte('\n')
			if _, err := streams.Stdout.Write(output.Bytes()); err != nil {
				return cli.Internal("writing output: %w", err)
			}
			return nil
		},
	}
}
