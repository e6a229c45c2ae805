// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"io"

	"github.com/bureau-foundation/blueprint/cmd/blueprint/cli"
	"github.com/bureau-foundation/blueprint/lib/render"
)

type decodeParams struct {
	globalParams
	inputParams
	Format  string `flag:"format" desc:"output format: json, yaml, or cbor (default: from config)"`
	Compact bool   `flag:"compact,c" desc:"single-line JSON output"`
	Indent  int    `flag:"indent" desc:"indentation width (default: from config)"`
	Color   string `flag:"color" desc:"syntax highlighting: auto, always, or never (default: from config)"`
	Raw     bool   `flag:"raw" desc:"render the decompressed payload without checking it against the schema"`
}

func decodeCommand(streams Streams) *cli.Command {
	var params decodeParams
	var flags flagTracker

	return &cli.Command{
		Name:    "decode",
		Summary: "Decode a blueprint string to JSON, YAML, or CBOR",
		Description: `Read a blueprint string and print the document it carries.

Whitespace anywhere in the string is ignored, so strings wrapped by a
chat client or an editor decode unchanged. The document is checked
against the schema and printed in canonical form: unknown keys are
dropped and defaults are filled in. With --raw the decompressed JSON
is printed as it was stored.

Output settings default to the configuration file; flags override it.`,
		Usage: "blueprint decode [--file F | --data S] [flags]",
		Examples: []cli.Example{
			{
				Description: "Decode a string from the clipboard",
				Command:     "xclip -o | blueprint decode",
			},
			{
				Description: "Print a book as YAML",
				Command:     "blueprint decode --file book.txt --format yaml",
			},
			{
				Description: "Show the payload exactly as the game wrote it",
				Command:     "blueprint decode --raw --compact --file station.txt",
			},
		},
		Flags: flags.bind("decode", &params),
		Run: func(args []string) error {
			session, err := params.begin(streams, "decode")
			if err != nil {
				return err
			}
			options, err := decodeRenderOptions(session, &params, &flags)
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

			if params.Raw {
				var payload []byte
				err := decoder.DecodeStream(input, func(reader io.Reader) error {
					var err error
					payload, err = io.ReadAll(reader)
					return err
				})
				if err != nil {
					return codecError(source, err)
				}
				session.logger.Debug("decoded raw payload", "source", source, "payload_bytes", len(payload))
				if err := render.RenderPayload(streams.Stdout, payload, options); err != nil {
					return cli.Validation("%s: rendering payload: %w", source, err)
				}
				return nil
			}

			container, err := decoder.Decode(input)
			if err != nil {
				return codecError(source, err)
			}
			session.logger.Debug("decoded",
				"source", source,
				"kind", container.Kind(),
				"label", container.Label(),
				"format", options.Format,
			)
			if err := render.Render(streams.Stdout, container, options); err != nil {
				return cli.Internal("writing output: %w", err)
			}
			return nil
		},
	}
}

// decodeRenderOptions starts from the configured output settings and
// applies the flags given on the command line.
func decodeRenderOptions(session *session, params *decodeParams, flags *flagTracker) (render.Options, error) {
	options, err := session.config.RenderOptions()
	if err != nil {
		return render.Options{}, cli.Validation("%w", err)
	}
	if flags.changed("format") {
		format, err := render.ParseFormat(params.Format)
		if err != nil {
			return render.Options{}, cli.Validation("--format: %w", err)
		}
		options.Format = format
	}
	if flags.changed("color") {
		color, err := render.ParseColorMode(params.Color)
		if err != nil {
			return render.Options{}, cli.Validation("--color: %w", err)
		}
		options.Color = color
	}
	if flags.changed("compact") {
		options.Compact = params.Compact
	}
	if flags.changed("indent") {
		options.Indent = params.Indent
	}
	if err := options.Validate(); err != nil {
		return render.Options{}, cli.Validation("%w", err)
	}
	return options, nil
}
