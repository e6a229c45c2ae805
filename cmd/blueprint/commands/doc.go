// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the blueprint command tree: encode, decode,
// fingerprint, inspect, and version.
//
// Every command reads its input from --file, --data, or stdin, loads
// configuration through lib/config, and logs diagnostics to stderr
// with a logger from [cli.NewCommandLogger]. The tree is built over an
// injected [Streams] value so tests can drive commands without
// touching the process's standard streams.
package commands
