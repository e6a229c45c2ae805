// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec converts blueprint documents to and from transport
// strings: the single-line ASCII form the game uses for copy and paste.
//
// A transport string is built in four layers, outermost first:
//
//	'0' | base64( zlib( json( container ) ) )
//
//   - A one-byte version marker, [VersionByte].
//   - Standard padded base64 with no line wrapping.
//   - A zlib stream, at [DefaultCompressionLevel] unless configured.
//   - The UTF-8 JSON payload produced by schema.Marshal.
//
// Each layer is an io.Writer or io.Reader wrapping the next, so
// encoding never holds more than the JSON payload in memory and
// [EncodeStream] and [DecodeStream] let callers work with the payload
// stream directly:
//
//	err := codec.EncodeStream(os.Stdout, func(w io.Writer) error {
//		_, err := io.Copy(w, jsonFile)
//		return err
//	})
//
// # Decoding
//
// Whitespace anywhere in the input, including before the version byte,
// is dropped by a [WhitespaceFilter] before any other layer sees it.
// The version byte is stripped by a [VersionReader] but only checked
// after the payload has been consumed: a decode that fails inside the
// payload of a string with the wrong marker still reports
// [ErrVersionMismatch], and input with no bytes at all reports
// [ErrNoData].
//
// # Errors
//
// Every error returned by [Encode], [Decode], and their variants wraps
// exactly one of [ErrStructuredData], [ErrTextEncoding], [ErrIO],
// [ErrVersionMismatch], or [ErrNoData]; [KindOf] maps an error to its
// [Kind]. Corrupt base64 or zlib data surfaces as [ErrIO], since it is
// reported by the stream layers.
//
// Nothing in this package retries, logs, or spawns goroutines. A
// [Codec] may be shared, but the adapters and the streams handed to
// callbacks are for one goroutine and one call.
package codec
