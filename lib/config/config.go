// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/blueprint/lib/codec"
	"github.com/bureau-foundation/blueprint/lib/render"
)

// EnvironmentVariable names the variable [Load] reads the config path
// from.
const EnvironmentVariable = "BLUEPRINT_CONFIG"

// Config is the configuration of the blueprint command.
type Config struct {
	// Codec configures transport string encoding.
	Codec CodecConfig `yaml:"codec"`

	// Output configures how decoded documents are rendered.
	Output OutputConfig `yaml:"output"`

	// Logging configures the diagnostic log on stderr.
	Logging LoggingConfig `yaml:"logging"`
}

// CodecConfig configures transport string encoding.
type CodecConfig struct {
	// CompressionLevel is the zlib level, -2 (Huffman only) through 9.
	// Default: 9, matching the game.
	CompressionLevel int `yaml:"compression_level"`
}

// OutputConfig configures rendering of decoded documents.
type OutputConfig struct {
	// Format is json, yaml, or cbor. Default: json
	Format string `yaml:"format"`

	// Indent is the number of spaces per nesting level. Default: 2
	Indent int `yaml:"indent"`

	// Compact writes JSON on a single line. Default: false
	Compact bool `yaml:"compact"`

	// Color is auto, always, or never. Default: auto
	Color string `yaml:"color"`
}

// LoggingConfig configures the diagnostic log.
type LoggingConfig struct {
	// Level is debug, info, warn, or error. Default: warn
	Level string `yaml:"level"`

	// Format is auto (text on a terminal, JSON otherwise), text, or
	// json. Default: auto
	Format string `yaml:"format"`
}

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"auto", "text", "json"}
)

// Default returns the built-in configuration, used when no config file
// is named. Values loaded from a file are merged over it.
func Default() *Config {
	return &Config{
		Codec: CodecConfig{
			CompressionLevel: codec.DefaultCompressionLevel,
		},
		Output: OutputConfig{
			Format: string(render.FormatJSON),
			Indent: 2,
			Color:  string(render.ColorAuto),
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "auto",
		},
	}
}

// Load loads configuration from the file named by BLUEPRINT_CONFIG,
// or returns [Default] when the variable is unset or empty. There is
// no other discovery.
func Load() (*Config, error) {
	path := os.Getenv(EnvironmentVariable)
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile loads configuration from path, merged over [Default], and
// validates it. Unknown keys are rejected so a typo cannot silently
// fall back to a default.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if err := cfg.loadFile(path); err != nil {
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Validate checks the configuration for errors, reporting all of them.
func (c *Config) Validate() error {
	var errs []error

	if _, err := codec.New(c.CodecOptions()); err != nil {
		errs = append(errs, fmt.Errorf("codec.compression_level: %w", err))
	}
	if _, err := render.ParseFormat(c.Output.Format); err != nil {
		errs = append(errs, fmt.Errorf("output.format: %w", err))
	}
	if _, err := render.ParseColorMode(c.Output.Color); err != nil {
		errs = append(errs, fmt.Errorf("output.color: %w", err))
	}
	if c.Output.Indent < 0 || c.Output.Indent > render.MaxIndent {
		errs = append(errs, fmt.Errorf("output.indent must be between 0 and %d, got %d", render.MaxIndent, c.Output.Indent))
	}
	if !slices.Contains(logLevels, c.Logging.Level) {
		errs = append(errs, fmt.Errorf("logging.level must be one of: %v", logLevels))
	}
	if !slices.Contains(logFormats, c.Logging.Format) {
		errs = append(errs, fmt.Errorf("logging.format must be one of: %v", logFormats))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// CodecOptions returns the codec options the configuration selects.
func (c *Config) CodecOptions() codec.Options {
	return codec.Options{CompressionLevel: c.Codec.CompressionLevel}
}

// RenderOptions returns the render options the configuration selects.
// Call [Config.Validate] first; invalid names are reported here too.
func (c *Config) RenderOptions() (render.Options, error) {
	format, err := render.ParseFormat(c.Output.Format)
	if err != nil {
		return render.Options{}, err
	}
	color, err := render.ParseColorMode(c.Output.Color)
	if err != nil {
		return render.Options{}, err
	}
	return render.Options{
		Format:  format,
		Compact: c.Output.Compact,
		Indent:  c.Output.Indent,
		Color:   color,
	}, nil
}

// LogLevel returns the configured slog level.
func (c *Config) LogLevel() slog.Level {
	switch c.Logging.Level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
