// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import "io"

// maxEmptyReads bounds how many consecutive (0, nil) reads the filter
// tolerates from the wrapped reader before giving up with
// io.ErrNoProgress. Same limit bufio uses.
const maxEmptyReads = 100

// WhitespaceFilter is an io.Reader that drops ASCII whitespace from the
// wrapped stream. Non-whitespace bytes are delivered in their original
// order.
//
// Read never returns (0, nil) for a non-empty buffer: when a read of
// the underlying stream produces nothing but whitespace, the filter
// reads again until it has at least one byte to deliver or the
// underlying reader reports an error (including io.EOF). Base64 text
// contains no whitespace, so removing it before transcoding is always
// safe.
//
// A WhitespaceFilter is not safe for concurrent use.
type WhitespaceFilter struct {
	reader io.Reader
}

// NewWhitespaceFilter returns a filter reading from reader.
func NewWhitespaceFilter(reader io.Reader) *WhitespaceFilter {
	return &WhitespaceFilter{reader: reader}
}

// Read fills buffer with the next non-whitespace bytes. Filtering
// happens in place in buffer.
func (f *WhitespaceFilter) Read(buffer []byte) (int, error) {
	if len(buffer) == 0 {
		return 0, nil
	}

	for empty := 0; empty < maxEmptyReads; {
		count, err := f.reader.Read(buffer)
		kept := compactWhitespace(buffer[:count])
		if kept > 0 || err != nil {
			return kept, err
		}
		if count == 0 {
			empty++
		}
	}
	return 0, io.ErrNoProgress
}

// compactWhitespace removes whitespace from data in place and returns
// the number of bytes kept at the front of data.
func compactWhitespace(data []byte) int {
	kept := 0
	for _, b := range data {
		if isASCIIWhitespace(b) {
			continue
		}
		data[kept] = b
		kept++
	}
	return kept
}

// isASCIIWhitespace reports whether b is space, tab, line feed, form
// feed, or carriage return. Vertical tab is deliberately not included.
func isASCIIWhitespace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}
