// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"errors"
	"io"
	"math/rand/v2"
	"strings"
)

// ErrInjected is the error returned by the failing readers and writers
// in this package.
var ErrInjected = errors.New("injected failure")

// ChunkReader delivers at most Size bytes per Read from the wrapped
// reader. When Stall is positive, every Read that would deliver data is
// preceded by Stall reads returning (0, nil), exercising callers that
// must tolerate empty reads.
type ChunkReader struct {
	Reader io.Reader
	Size   int
	Stall  int

	stalled int
}

func (r *ChunkReader) Read(buffer []byte) (int, error) {
	if r.stalled < r.Stall {
		r.stalled++
		return 0, nil
	}
	r.stalled = 0
	if r.Size > 0 && len(buffer) > r.Size {
		buffer = buffer[:r.Size]
	}
	return r.Reader.Read(buffer)
}

// EmptyReader returns (0, nil) forever.
type EmptyReader struct {
	Reads int
}

func (r *EmptyReader) Read([]byte) (int, error) {
	r.Reads++
	return 0, nil
}

// FailingReader delivers the first After bytes of Data and then fails
// with ErrInjected.
type FailingReader struct {
	Data  []byte
	After int

	offset int
}

func (r *FailingReader) Read(buffer []byte) (int, error) {
	limit := min(r.After, len(r.Data))
	if r.offset >= limit {
		return 0, ErrInjected
	}
	count := copy(buffer, r.Data[r.offset:limit])
	r.offset += count
	return count, nil
}

// FlakyReader fails the first Failures reads with ErrInjected and then
// delivers from the wrapped reader.
type FlakyReader struct {
	Reader   io.Reader
	Failures int

	failed int
}

func (r *FlakyReader) Read(buffer []byte) (int, error) {
	if r.failed < r.Failures {
		r.failed++
		return 0, ErrInjected
	}
	return r.Reader.Read(buffer)
}

// RecordingWriter accepts everything and records each Write call
// separately, so tests can assert on call boundaries as well as on the
// concatenated output.
type RecordingWriter struct {
	Calls   [][]byte
	Flushes int
}

func (w *RecordingWriter) Write(data []byte) (int, error) {
	w.Calls = append(w.Calls, append([]byte(nil), data...))
	return len(data), nil
}

// Flush counts flushes.
func (w *RecordingWriter) Flush() error {
	w.Flushes++
	return nil
}

// String returns everything written so far.
func (w *RecordingWriter) String() string {
	var builder strings.Builder
	for _, call := range w.Calls {
		builder.Write(call)
	}
	return builder.String()
}

// FailingWriter accepts Limit bytes and then fails. With Short set,
// the write that crosses the limit reports a short count and no error
// instead of failing.
type FailingWriter struct {
	Limit int
	Short bool

	written []byte
}

func (w *FailingWriter) Write(data []byte) (int, error) {
	room := w.Limit - len(w.written)
	if room >= len(data) {
		w.written = append(w.written, data...)
		return len(data), nil
	}
	room = max(room, 0)
	w.written = append(w.written, data[:room]...)
	if w.Short {
		return room, nil
	}
	return room, ErrInjected
}

// Bytes returns the bytes accepted so far.
func (w *FailingWriter) Bytes() []byte {
	return w.written
}

// whitespace is the set InjectWhitespace draws from: every byte the
// decoder's filter removes.
const whitespace = " \t\n\f\r"

// InjectWhitespace returns transport with runs of ASCII whitespace
// inserted at pseudo-random positions, including before the version
// byte and after the last character. The output depends only on
// transport and seed.
func InjectWhitespace(transport string, seed uint64) string {
	random := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	var builder strings.Builder
	builder.Grow(len(transport) * 2)
	writeRun := func() {
		for range random.IntN(4) {
			builder.WriteByte(whitespace[random.IntN(len(whitespace))])
		}
	}
	for i := 0; i < len(transport); i++ {
		writeRun()
		builder.WriteByte(transport[i])
	}
	writeRun()
	return builder.String()
}
