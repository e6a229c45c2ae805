// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"io"

	"github.com/fxamacker/cbor/v2"
)

// cborMode encodes with Core Deterministic Encoding (RFC 8949 §4.2):
// sorted map keys, smallest integer and float encodings, no
// indefinite-length items. The same document always produces
// identical bytes.
var cborMode cbor.EncMode

func init() {
	var err error
	cborMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("render: CBOR encoder initialization failed: " + err.Error())
	}
}

// writeCBOR encodes tree, a value built by [decodeTree], to writer.
func writeCBOR(writer io.Writer, tree any) error {
	return cborMode.NewEncoder(writer).Encode(tree)
}
