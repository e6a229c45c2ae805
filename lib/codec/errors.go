// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by this package wraps exactly one
// of these, so callers can discriminate with errors.Is while the
// underlying cause stays reachable through errors.Unwrap/errors.As.
var (
	// ErrStructuredData means the JSON payload does not match the
	// document shape: wrong type, unknown enum value, missing required
	// field, or a document that cannot be serialized.
	ErrStructuredData = errors.New("document does not match the blueprint schema")

	// ErrTextEncoding means the decompressed payload is not valid UTF-8.
	ErrTextEncoding = errors.New("payload is not valid utf-8")

	// ErrIO means an underlying read or write failed, including corrupt
	// base64 or zlib data surfaced by the stream filters. Probably
	// transient when it comes from the caller's source or sink; this
	// package never retries.
	ErrIO = errors.New("i/o failure")

	// ErrVersionMismatch means the leading byte of the transport string
	// was not the expected version marker. It is reported only after
	// the rest of the stream has been consumed.
	ErrVersionMismatch = errors.New("unexpected version byte")

	// ErrNoData means the input yielded no bytes at all, so there was
	// no version byte to check.
	ErrNoData = errors.New("no data in input")
)

// Kind classifies codec errors.
type Kind int

const (
	// KindUnknown is returned by [KindOf] for errors this package did
	// not produce (and for nil).
	KindUnknown Kind = iota
	KindStructuredData
	KindTextEncoding
	KindIO
	KindVersionMismatch
	KindNoData
)

// String returns the snake_case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindStructuredData:
		return "structured_data"
	case KindTextEncoding:
		return "text_encoding"
	case KindIO:
		return "io"
	case KindVersionMismatch:
		return "version_mismatch"
	case KindNoData:
		return "no_data"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// KindOf returns the kind of a codec error. Version and no-data errors
// are checked first because they take precedence over payload errors.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrNoData):
		return KindNoData
	case errors.Is(err, ErrVersionMismatch):
		return KindVersionMismatch
	case errors.Is(err, ErrTextEncoding):
		return KindTextEncoding
	case errors.Is(err, ErrStructuredData):
		return KindStructuredData
	case errors.Is(err, ErrIO):
		return KindIO
	default:
		return KindUnknown
	}
}

// structuredError wraps a JSON shape problem.
func structuredError(cause error) error {
	return fmt.Errorf("%w: %w", ErrStructuredData, cause)
}

// ioError wraps cause as an I/O failure during operation. Errors that
// already carry a codec kind pass through untouched so a single error
// never wraps two kinds.
func ioError(operation string, cause error) error {
	if KindOf(cause) != KindUnknown {
		return cause
	}
	return fmt.Errorf("%w: %s: %w", ErrIO, operation, cause)
}
