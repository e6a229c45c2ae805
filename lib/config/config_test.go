// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/bureau-foundation/blueprint/lib/render"
	"github.com/bureau-foundation/blueprint/lib/testutil"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default() does not validate: %v", err)
	}
	if cfg.Codec.CompressionLevel != 9 {
		t.Errorf("expected compression_level=9, got %d", cfg.Codec.CompressionLevel)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("expected format=json, got %s", cfg.Output.Format)
	}
	if cfg.LogLevel() != slog.LevelWarn {
		t.Errorf("expected log level warn, got %s", cfg.LogLevel())
	}
}

func TestLoad_WithoutBlueprintConfig(t *testing.T) {
	t.Setenv(EnvironmentVariable, "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("Load() without %s = %+v, want defaults", EnvironmentVariable, cfg)
	}
}

func TestLoad_WithBlueprintConfig(t *testing.T) {
	path := testutil.WriteFile(t, "blueprint.yaml", `
codec:
  compression_level: 1
output:
  format: yaml
  indent: 4
logging:
  level: debug
`)
	t.Setenv(EnvironmentVariable, path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Codec.CompressionLevel != 1 {
		t.Errorf("expected compression_level=1, got %d", cfg.Codec.CompressionLevel)
	}
	if cfg.LogLevel() != slog.LevelDebug {
		t.Errorf("expected log level debug, got %s", cfg.LogLevel())
	}

	// Keys the file does not mention keep their defaults.
	if cfg.Output.Color != "auto" {
		t.Errorf("expected color=auto, got %s", cfg.Output.Color)
	}
	if cfg.Logging.Format != "auto" {
		t.Errorf("expected logging format=auto, got %s", cfg.Logging.Format)
	}

	options, err := cfg.RenderOptions()
	if err != nil {
		t.Fatalf("RenderOptions: %v", err)
	}
	want := render.Options{Format: render.FormatYAML, Indent: 4, Color: render.ColorAuto}
	if options != want {
		t.Errorf("RenderOptions() = %+v, want %+v", options, want)
	}
	if cfg.CodecOptions().CompressionLevel != 1 {
		t.Errorf("CodecOptions() = %+v", cfg.CodecOptions())
	}
}

func TestLoadFile_Empty(t *testing.T) {
	cfg, err := LoadFile(testutil.WriteFile(t, "empty.yaml", ""))
	if err != nil {
		t.Fatalf("LoadFile() failed: %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("empty file = %+v, want defaults", cfg)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	if _, err := LoadFile("/nonexistent/blueprint.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadFile_UnknownKey(t *testing.T) {
	path := testutil.WriteFile(t, "typo.yaml", "output:\n  fromat: yaml\n")
	_, err := LoadFile(path)
	if err == nil {
		t.Fatal("expected error for unknown key")
	}
	if !strings.Contains(err.Error(), "fromat") {
		t.Errorf("error %q does not name the unknown key", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{"compression level too high", func(c *Config) { c.Codec.CompressionLevel = 10 }, "codec.compression_level"},
		{"compression level too low", func(c *Config) { c.Codec.CompressionLevel = -3 }, "codec.compression_level"},
		{"unknown format", func(c *Config) { c.Output.Format = "xml" }, "output.format"},
		{"unknown color", func(c *Config) { c.Output.Color = "rainbow" }, "output.color"},
		{"negative indent", func(c *Config) { c.Output.Indent = -1 }, "output.indent"},
		{"unknown level", func(c *Config) { c.Logging.Level = "trace" }, "logging.level"},
		{"unknown log format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() succeeded")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %q, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_ReportsEveryError(t *testing.T) {
	cfg := Default()
	cfg.Output.Format = "xml"
	cfg.Logging.Level = "trace"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() succeeded")
	}
	for _, field := range []string{"output.format", "logging.level"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("Validate() = %q, want it to mention %s", err, field)
		}
	}
}
