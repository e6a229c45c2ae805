// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for blueprint packages.
//
// [Fixtures] and [LookupFixture] expose transport strings exported from
// the game. Tests decode them, re-encode them, and compare the
// documents; they are the only source of payloads not produced by this
// repository's own encoder.
//
// [InjectWhitespace] scatters whitespace through a transport string
// deterministically from a seed, for exercising the decoder's
// whitespace filter without flaky randomness.
//
// [ChunkReader], [EmptyReader], [FailingReader], [RecordingWriter], and
// [FailingWriter] are io adapters with controlled chunking, stalls,
// and failures, for testing the stream layers in isolation.
//
// [RequireNoError] and [RequireErrorIs] call t.Fatalf on failure
// rather than returning, since test setup failures are not
// recoverable. [WriteFile] puts content in a temporary file for
// command tests that read from --file.
//
// This package depends on no other blueprint packages.
package testutil
