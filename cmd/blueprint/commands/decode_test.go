// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/bureau-foundation/blueprint/cmd/blueprint/cli"
	"github.com/bureau-foundation/blueprint/lib/codec"
	"github.com/bureau-foundation/blueprint/lib/schema"
	"github.com/bureau-foundation/blueprint/lib/testutil"
)

func TestDecodePrintsCanonicalJSON(t *testing.T) {
	transport := testutil.LookupFixture(t, "chest-and-tile")
	want, err := codec.DecodeString(transport)
	if err != nil {
		t.Fatalf("DecodeString: %v", err)
	}

	stdout, _, err := execute(t, testutil.InjectWhitespace(transport, 7), "decode")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !strings.HasPrefix(stdout, "{\n  \"blueprint\": {") {
		t.Errorf("stdout does not start with indented JSON: %q", stdout)
	}
	got, err := schema.Unmarshal([]byte(stdout))
	if err != nil {
		t.Fatalf("Unmarshal(decode output): %v", err)
	}
	if !schema.Equal(got, want) {
		t.Error("decode output differs from the decoded document")
	}
}

func TestDecodeFormats(t *testing.T) {
	transport := testutil.LookupFixture(t, "labeled-book")

	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, stdout string)
	}{
		{
			name: "compact",
			args: []string{"--compact"},
			check: func(t *testing.T, stdout string) {
				if strings.Count(stdout, "\n") != 1 || !strings.HasSuffix(stdout, "}\n") {
					t.Errorf("stdout = %q, want one compact line", stdout)
				}
			},
		},
		{
			name: "indent",
			args: []string{"--indent", "4"},
			check: func(t *testing.T, stdout string) {
				if !strings.HasPrefix(stdout, "{\n    \"blueprint_book\"") {
					t.Errorf("stdout = %q, want four-space indentation", stdout)
				}
			},
		},
		{
			name: "yaml",
			args: []string{"--format", "yaml"},
			check: func(t *testing.T, stdout string) {
				if !strings.HasPrefix(stdout, "blueprint_book:\n") {
					t.Errorf("stdout = %q, want YAML", stdout)
				}
			},
		},
		{
			name: "cbor",
			args: []string{"--format", "cbor"},
			check: func(t *testing.T, stdout string) {
				// A one-entry map header: major type 5, length 1.
				if len(stdout) == 0 || stdout[0] != 0xa1 {
					t.Errorf("stdout = %x, want a CBOR map with one key", stdout)
				}
			},
		},
		{
			name: "color always",
			args: []string{"--color", "always"},
			check: func(t *testing.T, stdout string) {
				if !strings.Contains(stdout, "\x1b[") {
					t.Errorf("stdout = %q, want ANSI escapes", stdout)
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(t, transport, append([]string{"decode"}, tt.args...)...)
			if err != nil {
				t.Fatalf("decode %v: %v", tt.args, err)
			}
			tt.check(t, stdout)
		})
	}
}

func TestDecodeRejectsBadRenderFlags(t *testing.T) {
	transport := testutil.LookupFixture(t, "empty-book")
	for _, args := range [][]string{
		{"--format", "xml"},
		{"--color", "sometimes"},
		{"--indent", "9"},
		{"--format", "yaml", "--indent", "1"},
	} {
		_, _, err := execute(t, transport, append([]string{"decode"}, args...)...)
		requireCategory(t, err, cli.CategoryValidation)
	}
}

func TestDecodeRaw(t *testing.T) {
	transport := testutil.LookupFixture(t, "train-one-station")

	var payload []byte
	err := codec.DecodeStream(strings.NewReader(transport), func(reader io.Reader) error {
		var readErr error
		payload, readErr = io.ReadAll(reader)
		return readErr
	})
	if err != nil {
		t.Fatalf("DecodeStream: %v", err)
	}
	var want bytes.Buffer
	if err := json.Compact(&want, payload); err != nil {
		t.Fatalf("Compact: %v", err)
	}
	want.WriteByte('\n')

	stdout, _, err := execute(t, transport, "decode", "--raw", "--compact")
	if err != nil {
		t.Fatalf("decode --raw: %v", err)
	}
	if stdout != want.String() {
		t.Errorf("stdout =\n%s\nwant\n%s", stdout, want.String())
	}
}

func TestDecodeRawAcceptsAnyJSON(t *testing.T) {
	transport, _, err := execute(t, `{"not":"a blueprint"}`, "encode", "--raw")
	if err != nil {
		t.Fatalf("encode --raw: %v", err)
	}

	_, _, err = execute(t, transport, "decode")
	requireCategory(t, err, cli.CategoryValidation)

	stdout, _, err := execute(t, transport, "decode", "--raw", "--compact")
	if err != nil {
		t.Fatalf("decode --raw: %v", err)
	}
	if stdout != "{\"not\":\"a blueprint\"}\n" {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestDecodeErrors(t *testing.T) {
	transport := testutil.LookupFixture(t, "empty-book")

	tests := []struct {
		name     string
		input    string
		category cli.ErrorCategory
		kind     error
		hint     string
	}{
		{"empty input", "", cli.CategoryValidation, codec.ErrNoData, "--data"},
		{"whitespace only", " \n\t", cli.CategoryValidation, codec.ErrNoData, "--data"},
		{"version mismatch", "1" + transport[1:], cli.CategoryValidation, codec.ErrVersionMismatch, "character '0'"},
		{"corrupt base64", "0!!!!", cli.CategoryInternal, codec.ErrIO, "whole string"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(t, tt.input, "decode")
			toolErr := requireCategory(t, err, tt.category)
			if !errors.Is(err, tt.kind) {
				t.Errorf("err = %v, want %v", err, tt.kind)
			}
			if !strings.Contains(toolErr.Hint, tt.hint) {
				t.Errorf("hint = %q, want it to mention %q", toolErr.Hint, tt.hint)
			}
			if stdout != "" {
				t.Errorf("stdout = %q, want nothing on failure", stdout)
			}
		})
	}
}

func TestDecodeRejectsInvalidDocument(t *testing.T) {
	transport, _, err := execute(t, `{"blueprint":{"entities":[{"entity_number":1}]}}`, "encode", "--raw")
	if err != nil {
		t.Fatalf("encode --raw: %v", err)
	}
	_, _, err = execute(t, transport, "decode")
	requireCategory(t, err, cli.CategoryValidation)
	if !errors.Is(err, codec.ErrStructuredData) {
		t.Errorf("err = %v, want ErrStructuredData", err)
	}
	var missing *schema.MissingFieldError
	if !errors.As(err, &missing) {
		t.Errorf("err = %v, want a *schema.MissingFieldError in the chain", err)
	}
}
