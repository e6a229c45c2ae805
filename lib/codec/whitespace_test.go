// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/bureau-foundation/blueprint/lib/testutil"
)

func TestWhitespaceFilterStripsWhitespace(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "mixed",
			input: " t/prau0INWoWUQ0LgQ\tMUdJRcCetBZP\nAyD+DCpn 01yWZT/LBo3Ogk0INwwuAtKNI ",
			want:  "t/prau0INWoWUQ0LgQMUdJRcCetBZPAyD+DCpn01yWZT/LBo3Ogk0INwwuAtKNI",
		},
		{
			name:  "long run between payload bytes",
			input: "a" + strings.Repeat(" ", 160) + "b",
			want:  "ab",
		},
		{
			name:  "all whitespace kinds",
			input: "\r\n0\f1\t2 3\n",
			want:  "0123",
		},
		{
			name:  "vertical tab is payload",
			input: "a\vb",
			want:  "a\vb",
		},
		{
			name:  "only whitespace",
			input: " \t\r\n\f ",
			want:  "",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := io.ReadAll(NewWhitespaceFilter(strings.NewReader(tt.input)))
			if err != nil {
				t.Fatalf("ReadAll: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("filtered = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWhitespaceFilterNeverReturnsEmptyReadBeforeEOF(t *testing.T) {
	// One byte per underlying read, with most reads landing on
	// whitespace: every Read on the filter must still deliver data
	// until the end of the stream.
	input := "a" + strings.Repeat(" ", 50) + "b" + strings.Repeat("\n", 50) + "c"
	filter := NewWhitespaceFilter(&testutil.ChunkReader{
		Reader: strings.NewReader(input),
		Size:   1,
	})

	var collected []byte
	buffer := make([]byte, 8)
	for {
		count, err := filter.Read(buffer)
		if count == 0 && err == nil {
			t.Fatal("Read returned (0, nil) for a non-empty buffer")
		}
		collected = append(collected, buffer[:count]...)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("Read: %v", err)
		}
	}
	if string(collected) != "abc" {
		t.Errorf("collected %q, want %q", collected, "abc")
	}
}

func TestWhitespaceFilterToleratesStalls(t *testing.T) {
	reader := &testutil.ChunkReader{
		Reader: strings.NewReader("x y z"),
		Size:   2,
		Stall:  3,
	}
	got, err := io.ReadAll(NewWhitespaceFilter(reader))
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(got) != "xyz" {
		t.Errorf("filtered = %q, want %q", got, "xyz")
	}
}

func TestWhitespaceFilterGivesUpOnEndlessEmptyReads(t *testing.T) {
	source := &testutil.EmptyReader{}
	count, err := NewWhitespaceFilter(source).Read(make([]byte, 16))
	if count != 0 {
		t.Errorf("count = %d, want 0", count)
	}
	if !errors.Is(err, io.ErrNoProgress) {
		t.Errorf("err = %v, want io.ErrNoProgress", err)
	}
	if source.Reads != maxEmptyReads {
		t.Errorf("underlying reads = %d, want %d", source.Reads, maxEmptyReads)
	}
}

func TestWhitespaceFilterPropagatesErrors(t *testing.T) {
	reader := &testutil.FailingReader{Data: []byte("ab  cd"), After: 3}
	got, err := io.ReadAll(NewWhitespaceFilter(reader))
	if !errors.Is(err, testutil.ErrInjected) {
		t.Fatalf("err = %v, want injected failure", err)
	}
	if string(got) != "ab" {
		t.Errorf("delivered %q before the failure, want %q", got, "ab")
	}
}

func TestWhitespaceFilterZeroLengthBuffer(t *testing.T) {
	source := &testutil.EmptyReader{}
	count, err := NewWhitespaceFilter(source).Read(nil)
	if count != 0 || err != nil {
		t.Errorf("Read(nil) = (%d, %v), want (0, nil)", count, err)
	}
	if source.Reads != 0 {
		t.Errorf("zero-length Read touched the underlying reader %d times", source.Reads)
	}
}
