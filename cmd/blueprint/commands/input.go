// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/bureau-foundation/blueprint/cmd/blueprint/cli"
)

// inputParams select where a command reads its input from. With
// neither flag set, input comes from stdin.
type inputParams struct {
	File string `flag:"file,f" desc:"read input from a file"`
	Data string `flag:"data,d" desc:"read input from this argument"`
}

// open returns the selected input and a short description of it for
// log lines and error messages. The caller closes the reader.
func (p inputParams) open(stdin io.Reader, args []string) (io.ReadCloser, string, error) {
	if len(args) > 0 {
		return nil, "", cli.Validation("unexpected argument %q", args[0]).
			WithHint("Pass input with --file or --data, or pipe it to stdin.")
	}
	if p.File != "" && p.Data != "" {
		return nil, "", cli.Validation("--file and --data are mutually exclusive")
	}

	switch {
	case p.File != "":
		file, err := os.Open(p.File)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, "", cli.NotFound("input file %s does not exist", p.File)
			}
			return nil, "", cli.Internal("opening input: %w", err)
		}
		return file, p.File, nil
	case p.Data != "":
		return io.NopCloser(strings.NewReader(p.Data)), "--data", nil
	default:
		return io.NopCloser(stdin), "stdin", nil
	}
}
