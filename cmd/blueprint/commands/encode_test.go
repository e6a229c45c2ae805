// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/bureau-foundation/blueprint/cmd/blueprint/cli"
	"github.com/bureau-foundation/blueprint/lib/codec"
	"github.com/bureau-foundation/blueprint/lib/config"
	"github.com/bureau-foundation/blueprint/lib/schema"
	"github.com/bureau-foundation/blueprint/lib/testutil"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for _, fixture := range testutil.Fixtures() {
		t.Run(fixture.Name, func(t *testing.T) {
			want, err := codec.DecodeString(fixture.Transport)
			if err != nil {
				t.Fatalf("DecodeString: %v", err)
			}

			document, _, err := execute(t, fixture.Transport, "decode")
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			transport, _, err := execute(t, document, "encode")
			if err != nil {
				t.Fatalf("encode: %v", err)
			}
			if !strings.HasPrefix(transport, "0") || !strings.HasSuffix(transport, "\n") {
				t.Fatalf("encode output = %q", transport)
			}

			got, err := codec.DecodeString(transport)
			if err != nil {
				t.Fatalf("DecodeString(encode output): %v", err)
			}
			if !schema.Equal(got, want) {
				t.Error("document changed across decode and encode")
			}
		})
	}
}

func TestEncodeAcceptsCommentsAndTrailingCommas(t *testing.T) {
	input := `{
	// exported from the test world
	"blueprint": {
		"label": "commented", /* inline */
		"item": "blueprint",
	},
}`
	transport, _, err := execute(t, input, "encode")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	container, err := codec.DecodeString(transport)
	if err != nil {
		t.Fatalf("DecodeString: %v", err)
	}
	if container.Label() != "commented" {
		t.Errorf("label = %q, want %q", container.Label(), "commented")
	}
}

func TestEncodeRaw(t *testing.T) {
	payload := `{"anything":[1,2,3],"not":"a blueprint"}`
	transport, _, err := execute(t, payload, "encode", "--raw")
	if err != nil {
		t.Fatalf("encode --raw: %v", err)
	}

	var got []byte
	err = codec.DecodeStream(strings.NewReader(transport), func(reader io.Reader) error {
		var readErr error
		got, readErr = io.ReadAll(reader)
		return readErr
	})
	if err != nil {
		t.Fatalf("DecodeStream: %v", err)
	}
	if string(got) != payload {
		t.Errorf("payload = %s, want %s", got, payload)
	}
}

func TestEncodeCompressionLevel(t *testing.T) {
	document := `{"blueprint":{"label":"levels"}}`
	for _, level := range []string{"-2", "0", "1", "9"} {
		transport, _, err := execute(t, document, "encode", "--level", level)
		if err != nil {
			t.Fatalf("encode --level %s: %v", level, err)
		}
		container, err := codec.DecodeString(transport)
		if err != nil {
			t.Fatalf("DecodeString (level %s): %v", level, err)
		}
		if container.Label() != "levels" {
			t.Errorf("level %s: label = %q", level, container.Label())
		}
	}

	_, _, err := execute(t, document, "encode", "--level", "10")
	requireCategory(t, err, cli.CategoryValidation)
}

func TestEncodeLevelFromConfig(t *testing.T) {
	configPath := testutil.WriteFile(t, "blueprint.yaml", "codec:\n  compression_level: 0\n")
	document := `{"blueprint":{"label":"stored"}}`

	stored, _, err := execute(t, document, "encode", "--config", configPath)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	compressed, _, err := execute(t, document, "encode")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	// The zlib header records the level class: 0x78 0x01 for stored
	// and fastest output, 0x78 0xDA for best compression.
	if !strings.HasPrefix(stored, "0eA") {
		t.Errorf("level 0 output = %q, want a fastest-class zlib header", stored)
	}
	if !strings.HasPrefix(compressed, "0eN") {
		t.Errorf("default output = %q, want a best-class zlib header", compressed)
	}
}

func TestEncodeRejectsInvalidDocuments(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty input", ""},
		{"not json", "blueprint"},
		{"no document", `{}`},
		{"two documents", `{"blueprint":{},"upgrade_planner":{}}`},
		{"zero entity number", `{"blueprint":{"entities":[{"entity_number":0,"name":"chest","position":{"x":0,"y":0}}]}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(t, tt.input, "encode")
			requireCategory(t, err, cli.CategoryValidation)
			if stdout != "" {
				t.Errorf("stdout = %q, want nothing on failure", stdout)
			}
		})
	}
}

func TestEncodeWriteFailure(t *testing.T) {
	t.Setenv(config.EnvironmentVariable, "")
	failing := &testutil.FailingWriter{}
	streams := Streams{
		Stdin:  strings.NewReader(`{"blueprint":{}}`),
		Stdout: failing,
		Stderr: io.Discard,
	}
	err := Root(streams).Execute([]string{"encode"}, io.Discard)
	requireCategory(t, err, cli.CategoryInternal)
	if !errors.Is(err, testutil.ErrInjected) {
		t.Errorf("err = %v, want the injected write failure", err)
	}
}
