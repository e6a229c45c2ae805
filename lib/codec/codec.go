// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/klauspost/compress/zlib"

	"github.com/bureau-foundation/blueprint/lib/schema"
)

// VersionByte is the marker that starts every transport string this
// package produces and accepts.
const VersionByte byte = '0'

// DefaultCompressionLevel is the zlib level used unless configured
// otherwise. The game itself exports at maximum compression.
const DefaultCompressionLevel = zlib.BestCompression

// Options configures a [Codec].
type Options struct {
	// CompressionLevel is the zlib level used when encoding, from
	// zlib.HuffmanOnly (-2) through zlib.BestCompression (9). Decoding
	// accepts any level.
	CompressionLevel int
}

// DefaultOptions returns the options used by the package-level
// functions.
func DefaultOptions() Options {
	return Options{CompressionLevel: DefaultCompressionLevel}
}

// Codec converts between [schema.Container] documents and transport
// strings. A Codec holds no per-call state: each Encode or Decode
// builds a fresh layer stack, so one Codec may be shared, but the
// streams handed to callbacks must not be.
type Codec struct {
	level int
}

// New returns a Codec configured by options.
func New(options Options) (*Codec, error) {
	if options.CompressionLevel < zlib.HuffmanOnly || options.CompressionLevel > zlib.BestCompression {
		return nil, fmt.Errorf("compression level %d out of range [%d, %d]",
			options.CompressionLevel, zlib.HuffmanOnly, zlib.BestCompression)
	}
	return &Codec{level: options.CompressionLevel}, nil
}

var defaultCodec = &Codec{level: DefaultCompressionLevel}

// Encode writes the transport string for container to writer.
func Encode(writer io.Writer, container schema.Container) error {
	return defaultCodec.Encode(writer, container)
}

// EncodeString returns the transport string for container.
func EncodeString(container schema.Container) (string, error) {
	return defaultCodec.EncodeString(container)
}

// EncodeStream runs populate against the composed encoding writer. See
// [Codec.EncodeStream].
func EncodeStream(writer io.Writer, populate func(io.Writer) error) error {
	return defaultCodec.EncodeStream(writer, populate)
}

// Decode reads a transport string from reader.
func Decode(reader io.Reader) (schema.Container, error) {
	return defaultCodec.Decode(reader)
}

// DecodeString parses a transport string.
func DecodeString(transport string) (schema.Container, error) {
	return defaultCodec.DecodeString(transport)
}

// DecodeStream hands the decoded JSON payload stream to consume. See
// [Codec.DecodeStream].
func DecodeStream(reader io.Reader, consume func(io.Reader) error) error {
	return defaultCodec.DecodeStream(reader, consume)
}

// Encode serializes container to JSON and writes its transport string
// to writer. Serialization finishes before any byte is written, so a
// document that cannot be serialized leaves writer untouched.
func (c *Codec) Encode(writer io.Writer, container schema.Container) error {
	payload, err := schema.Marshal(container)
	if err != nil {
		return structuredError(err)
	}
	return c.EncodeStream(writer, func(compressed io.Writer) error {
		_, err := compressed.Write(payload)
		return err
	})
}

// EncodeString returns the transport string for container.
func (c *Codec) EncodeString(container schema.Container) (string, error) {
	var output bytes.Buffer
	if err := c.Encode(&output, container); err != nil {
		return "", err
	}
	return output.String(), nil
}

// EncodeStream composes the encoding layers over writer (version frame,
// then base64, then zlib) and passes the innermost writer to populate,
// which writes the raw JSON payload into it.
//
// After populate returns, the layers are finished innermost first: the
// zlib trailer is flushed while still wrapped by base64 and the frame,
// then the final base64 quantum is padded and written, then the frame
// is flushed. If populate fails, nothing is finished and its error is
// returned; the partial output must not be used.
//
// populate must not retain the writer or call back into the Codec.
func (c *Codec) EncodeStream(writer io.Writer, populate func(io.Writer) error) error {
	frame := NewVersionWriter(writer, VersionByte)
	transcoder := base64.NewEncoder(base64.StdEncoding, frame)
	compressor, err := zlib.NewWriterLevel(transcoder, c.level)
	if err != nil {
		return ioError("create compressor", err)
	}

	if err := populate(compressor); err != nil {
		return ioError("write payload", err)
	}

	if err := compressor.Close(); err != nil {
		return ioError("finish compression", err)
	}
	if err := transcoder.Close(); err != nil {
		return ioError("finish base64", err)
	}
	if err := frame.Flush(); err != nil {
		return ioError("flush output", err)
	}
	return nil
}

// Decode reads a transport string from reader and parses the document
// it carries. The whole payload is decompressed and checked for valid
// UTF-8 before parsing. A wrong version byte fails with
// ErrVersionMismatch even when the payload parsed cleanly.
func (c *Codec) Decode(reader io.Reader) (schema.Container, error) {
	var container schema.Container
	err := c.DecodeStream(reader, func(payload io.Reader) error {
		data, err := io.ReadAll(payload)
		if err != nil {
			return ioError("decompress payload", err)
		}
		if !utf8.Valid(data) {
			return ErrTextEncoding
		}
		container, err = schema.Unmarshal(data)
		if err != nil {
			return structuredError(err)
		}
		return nil
	})
	if err != nil {
		return schema.Container{}, err
	}
	return container, nil
}

// DecodeString parses a transport string.
func (c *Codec) DecodeString(transport string) (schema.Container, error) {
	return c.Decode(strings.NewReader(transport))
}

// DecodeStream composes the decoding layers over reader (whitespace
// filter, version frame, base64, zlib) and passes the decompressed
// JSON stream to consume.
//
// The version byte is checked only after consume returns. This is
// deliberate: the payload is extracted first and validated second, so
// a caller can still read a payload whose marker is wrong, while the
// mismatch is always reported. Precedence of the returned error:
// ErrNoData when no byte was ever read, then ErrVersionMismatch, then
// whatever consume or the payload layers failed with.
//
// consume must not retain the reader or call back into the Codec.
func (c *Codec) DecodeStream(reader io.Reader, consume func(io.Reader) error) error {
	frame := NewVersionReader(NewWhitespaceFilter(reader), VersionByte)
	payloadErr := consumePayload(frame, consume)

	matched, known := frame.HadExpectedVersion()
	if !known {
		if payloadErr != nil && KindOf(payloadErr) != KindNoData {
			return fmt.Errorf("%w (%v)", ErrNoData, payloadErr)
		}
		return ErrNoData
	}
	if !matched {
		observed, _ := frame.Observed()
		return fmt.Errorf("%w: got %q, want %q", ErrVersionMismatch, observed, VersionByte)
	}
	return payloadErr
}

// consumePayload runs consume over the base64 and zlib layers stacked
// on frame.
func consumePayload(frame io.Reader, consume func(io.Reader) error) error {
	transcoder := base64.NewDecoder(base64.StdEncoding, frame)
	decompressor, err := zlib.NewReader(transcoder)
	if err != nil {
		return ioError("read zlib header", err)
	}
	defer decompressor.Close()

	if err := consume(decompressor); err != nil {
		return ioError("read payload", err)
	}
	return nil
}
