// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"errors"
	"io/fs"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/blueprint/cmd/blueprint/cli"
	"github.com/bureau-foundation/blueprint/lib/codec"
	"github.com/bureau-foundation/blueprint/lib/config"
)

// globalParams are the flags every command accepts.
type globalParams struct {
	Config  string `flag:"config" desc:"YAML configuration file (default: $BLUEPRINT_CONFIG)"`
	Verbose bool   `flag:"verbose,v" desc:"log diagnostics at debug level"`
}

// session is the per-invocation state shared by the commands.
type session struct {
	config *config.Config
	logger *slog.Logger
}

// begin loads configuration and builds the command logger.
func (g globalParams) begin(streams Streams, command string) (*session, error) {
	var cfg *config.Config
	var err error
	if g.Config != "" {
		cfg, err = config.LoadFile(g.Config)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, cli.NotFound("%w", err).
				WithHint("Pass an existing file with --config, or unset " + config.EnvironmentVariable + ".")
		}
		return nil, cli.Validation("%w", err)
	}

	level := cfg.LogLevel()
	if g.Verbose {
		level = slog.LevelDebug
	}
	logger := cli.NewCommandLogger(streams.Stderr, level, cfg.Logging.Format).With("command", command)
	return &session{config: cfg, logger: logger}, nil
}

// codec returns a codec configured from the session's configuration.
func (s *session) codec() (*codec.Codec, error) {
	encoder, err := codec.New(s.config.CodecOptions())
	if err != nil {
		return nil, cli.Validation("codec.compression_level: %w", err)
	}
	return encoder, nil
}

// flagTracker remembers the most recently built flag set so a command
// can tell an explicit flag from its default. Explicit flags override
// configuration; defaults do not.
type flagTracker struct {
	flagSet *pflag.FlagSet
}

// bind returns a Flags function for params that records the flag set
// it builds.
func (t *flagTracker) bind(name string, params any) func() *pflag.FlagSet {
	return func() *pflag.FlagSet {
		t.flagSet = cli.FlagsFromParams(name, params)
		return t.flagSet
	}
}

// changed reports whether the named flag was set on the command line.
func (t *flagTracker) changed(name string) bool {
	return t.flagSet != nil && t.flagSet.Changed(name)
}
