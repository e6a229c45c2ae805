// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package render writes decoded blueprint documents in formats meant
// for people and other tools: indented or compact JSON, YAML, and
// deterministic CBOR. JSON and YAML can be syntax highlighted for a
// terminal.
//
// Every format is derived from the exact JSON payload a transport
// string carries, so object keys keep the order the game writes them
// (except in CBOR, whose deterministic encoding sorts them) and
// integral numbers stay integers.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/blueprint/lib/schema"
)

// Format is an output format.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCBOR Format = "cbor"
)

// Formats lists the accepted formats in the order help text shows
// them.
var Formats = []Format{FormatJSON, FormatYAML, FormatCBOR}

// ParseFormat returns the Format named by text.
func ParseFormat(text string) (Format, error) {
	for _, format := range Formats {
		if string(format) == text {
			return format, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q (valid: %s)", text, joinFormats())
}

func joinFormats() string {
	names := make([]string, len(Formats))
	for i, format := range Formats {
		names[i] = string(format)
	}
	return strings.Join(names, ", ")
}

// ColorMode controls syntax highlighting.
type ColorMode string

const (
	// ColorAuto highlights when the output is a terminal that supports
	// color, honoring NO_COLOR and CLICOLOR_FORCE.
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode returns the ColorMode named by text.
func ParseColorMode(text string) (ColorMode, error) {
	switch mode := ColorMode(text); mode {
	case ColorAuto, ColorAlways, ColorNever:
		return mode, nil
	default:
		return "", fmt.Errorf("unknown color mode %q (valid: auto, always, never)", text)
	}
}

// MaxIndent is the widest indentation Render accepts.
const MaxIndent = 8

// Options configures [Render].
type Options struct {
	Format Format
	// Compact writes JSON on one line. It has no effect on YAML or
	// CBOR.
	Compact bool
	// Indent is the number of spaces per nesting level for JSON and
	// YAML.
	Indent int
	Color  ColorMode
}

// DefaultOptions returns indented, uncolored JSON.
func DefaultOptions() Options {
	return Options{Format: FormatJSON, Indent: 2, Color: ColorNever}
}

// Validate checks that every option holds an accepted value.
func (o Options) Validate() error {
	if _, err := ParseFormat(string(o.Format)); err != nil {
		return err
	}
	if _, err := ParseColorMode(string(o.Color)); err != nil {
		return err
	}
	if o.Indent < 0 || o.Indent > MaxIndent {
		return fmt.Errorf("indent %d out of range [0, %d]", o.Indent, MaxIndent)
	}
	if o.Format == FormatYAML && o.Indent < 2 {
		return fmt.Errorf("yaml indent must be at least 2, got %d", o.Indent)
	}
	return nil
}

// Render writes container to writer as options describe. JSON and
// YAML output ends with a newline; CBOR is written as raw bytes.
func Render(writer io.Writer, container schema.Container, options Options) error {
	payload, err := schema.Marshal(container)
	if err != nil {
		return fmt.Errorf("serializing document: %w", err)
	}
	return RenderPayload(writer, payload, options)
}

// RenderPayload is [Render] for a JSON payload that has not been
// decoded into a [schema.Container], such as the raw output of a
// codec.DecodeStream callback. payload must be a single JSON value.
func RenderPayload(writer io.Writer, payload []byte, options Options) error {
	if err := options.Validate(); err != nil {
		return err
	}

	var text bytes.Buffer
	language := string(options.Format)
	switch options.Format {
	case FormatJSON:
		if options.Compact {
			if err := json.Compact(&text, payload); err != nil {
				return fmt.Errorf("compacting JSON: %w", err)
			}
		} else if err := json.Indent(&text, payload, "", strings.Repeat(" ", options.Indent)); err != nil {
			return fmt.Errorf("indenting JSON: %w", err)
		}
		text.WriteByte('\n')
	case FormatYAML:
		tree, err := decodeTree(payload)
		if err != nil {
			return fmt.Errorf("reading JSON payload: %w", err)
		}
		node, err := yamlNode(tree)
		if err != nil {
			return err
		}
		encoder := yaml.NewEncoder(&text)
		encoder.SetIndent(options.Indent)
		if err := encoder.Encode(node); err != nil {
			return fmt.Errorf("encoding YAML: %w", err)
		}
		if err := encoder.Close(); err != nil {
			return fmt.Errorf("encoding YAML: %w", err)
		}
	case FormatCBOR:
		tree, err := decodeTree(payload)
		if err != nil {
			return fmt.Errorf("reading JSON payload: %w", err)
		}
		if err := writeCBOR(writer, tree); err != nil {
			return fmt.Errorf("encoding CBOR: %w", err)
		}
		return nil
	}

	formatter := terminalFormatter(writer, options.Color)
	if formatter == "" {
		_, err := writer.Write(text.Bytes())
		return err
	}
	return quick.Highlight(writer, text.String(), language, formatter, "monokai")
}

// terminalFormatter returns the chroma formatter for the color depth
// writer supports under mode, or "" for plain output.
func terminalFormatter(writer io.Writer, mode ColorMode) string {
	switch mode {
	case ColorNever:
		return ""
	case ColorAlways:
		return "terminal256"
	}
	file, ok := writer.(*os.File)
	if !ok {
		return ""
	}
	switch termenv.NewOutput(file).EnvColorProfile() {
	case termenv.TrueColor:
		return "terminal16m"
	case termenv.ANSI256:
		return "terminal256"
	case termenv.ANSI:
		return "terminal16"
	default:
		return ""
	}
}
