// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command-line framework for the blueprint
// command.
//
// A [Command] either groups [Command.Subcommands] or runs, with flags
// from a [pflag.FlagSet] factory. The tree is assembled in
// cmd/blueprint/commands and dispatched with [Command.Execute], which
// routes to a subcommand, parses flags, and prints help.
//
// Flags are declared as tagged params structs and bound with
// [FlagsFromParams]. When a user types an unknown subcommand or flag,
// the framework computes Levenshtein edit distance against all known
// names and suggests the closest match (threshold: distance <= 3).
//
// Errors returned by commands are [ToolError] values carrying an
// [ErrorCategory]; [ExitError] requests a non-zero exit without an
// extra message.
package cli
