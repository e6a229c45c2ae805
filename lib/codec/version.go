// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"errors"
	"io"
)

// VersionWriter prepends a single marker byte to everything written
// through it. The marker lands exactly once, as the first byte of the
// output, no matter how the payload is chunked into Write calls.
//
// A VersionWriter is not safe for concurrent use.
type VersionWriter struct {
	writer  io.Writer
	marker  byte
	written bool
}

// NewVersionWriter returns a writer that emits marker ahead of the
// first payload byte written to writer.
func NewVersionWriter(writer io.Writer, marker byte) *VersionWriter {
	return &VersionWriter{writer: writer, marker: marker}
}

// Write writes data to the underlying writer, preceded by the marker
// on the first non-empty call. The returned count covers only bytes
// of data, never the marker, so callers can still detect short writes
// of their own payload. Empty writes never emit the marker.
func (v *VersionWriter) Write(data []byte) (int, error) {
	if len(data) == 0 {
		return 0, nil
	}
	if v.written {
		return v.writer.Write(data)
	}

	framed := make([]byte, 0, len(data)+1)
	framed = append(framed, v.marker)
	framed = append(framed, data...)

	count, err := v.writer.Write(framed)
	if count > 0 {
		v.written = true
	}
	payload := max(count-1, 0)
	if err == nil && count < len(framed) {
		err = io.ErrShortWrite
	}
	return payload, err
}

// Flush propagates a flush to the underlying writer when it supports
// one. It never writes the marker on its own.
func (v *VersionWriter) Flush() error {
	if flusher, ok := v.writer.(interface{ Flush() error }); ok {
		return flusher.Flush()
	}
	return nil
}

// MarkerWritten reports whether the marker byte has reached the
// underlying writer.
func (v *VersionWriter) MarkerWritten() bool {
	return v.written
}

// VersionReader strips a single leading marker byte from a stream and
// records it for later inspection.
//
// The first Read, whatever the size of its buffer, pulls exactly one
// byte from the underlying reader. That byte is never delivered as
// payload. Every later Read passes straight through. Whether the
// observed byte matched the expected marker can only be answered after
// that first Read, which is why [Codec.DecodeStream] checks it only
// once the payload has been consumed.
//
// A VersionReader is not safe for concurrent use.
type VersionReader struct {
	reader   io.Reader
	expected byte

	consumed bool
	observed byte
	known    bool
}

// NewVersionReader returns a reader that consumes the leading marker
// byte of reader and expects it to equal expected.
func NewVersionReader(reader io.Reader, expected byte) *VersionReader {
	return &VersionReader{reader: reader, expected: expected}
}

// Read consumes the marker on the first call, then reads payload into
// buffer. If the underlying stream is empty, the first Read fails
// with ErrNoData and no byte is recorded. Any other failure leaves the
// marker unconsumed for the next Read.
func (v *VersionReader) Read(buffer []byte) (int, error) {
	if !v.consumed {
		var head [1]byte
		if _, err := io.ReadFull(v.reader, head[:]); err != nil {
			// The marker is still unread after any other failure, so a
			// retried Read tries for it again.
			if errors.Is(err, io.EOF) {
				v.consumed = true
				return 0, ErrNoData
			}
			return 0, err
		}
		v.consumed = true
		v.observed = head[0]
		v.known = true
	}
	return v.reader.Read(buffer)
}

// Observed returns the leading byte read from the stream. ok is false
// until a first Read has successfully consumed it.
func (v *VersionReader) Observed() (marker byte, ok bool) {
	return v.observed, v.known
}

// HadExpectedVersion reports whether the observed leading byte equals
// the expected marker. known is false when no byte has been read yet,
// in which case matched is meaningless.
func (v *VersionReader) HadExpectedVersion() (matched, known bool) {
	if !v.known {
		return false, false
	}
	return v.observed == v.expected, true
}
