// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"github.com/bureau-foundation/blueprint/cmd/blueprint/cli"
	"github.com/bureau-foundation/blueprint/lib/codec"
)

// codecError categorizes an error from lib/codec. Problems with the
// input are validation errors; failed reads and writes, which include
// corrupt base64 and zlib data, are internal.
func codecError(source string, err error) error {
	switch codec.KindOf(err) {
	case codec.KindNoData:
		return cli.Validation("%s: %w", source, err).
			WithHint("Pass a blueprint string with --data or --file, or pipe one to stdin.")
	case codec.KindVersionMismatch:
		return cli.Validation("%s: %w", source, err).
			WithHint("Blueprint strings start with the character '0'. Check that the whole string was copied.")
	case codec.KindTextEncoding, codec.KindStructuredData:
		return cli.Validation("%s: %w", source, err)
	case codec.KindIO:
		return cli.Internal("%s: %w", source, err).
			WithHint("A truncated or altered string fails this way. Check that the whole string was copied.")
	default:
		return cli.Internal("%s: %w", source, err)
	}
}
