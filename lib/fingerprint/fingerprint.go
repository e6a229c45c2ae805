// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package fingerprint computes content hashes of blueprint documents.
//
// A fingerprint identifies what a document says, not how a particular
// transport string spells it: the hash covers the canonical JSON from
// schema.Canonical, so two strings that differ only in whitespace,
// compression level, or key order share a fingerprint.
package fingerprint

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/zeebo/blake3"

	"github.com/bureau-foundation/blueprint/lib/schema"
)

// Hash is a 32-byte BLAKE3 digest.
type Hash [32]byte

// shortPrefix starts the abbreviated form returned by [Hash.Short].
const shortPrefix = "bp-"

// documentDomainKey keys the BLAKE3 hash so document fingerprints can
// never collide with a plain BLAKE3 hash of the same bytes. The value
// is the ASCII domain name, zero-padded to 32 bytes.
var documentDomainKey = [32]byte{
	'b', 'l', 'u', 'e', 'p', 'r', 'i', 'n', 't', '.', 'd', 'o', 'c', 'u', 'm', 'e',
	'n', 't', 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// Compute returns the fingerprint of container. It fails only when
// the container cannot be serialized.
func Compute(container schema.Container) (Hash, error) {
	canonical, err := schema.Canonical(container)
	if err != nil {
		return Hash{}, fmt.Errorf("canonicalizing document: %w", err)
	}
	return keyedHash(canonical), nil
}

// String returns the 64-character hex form of h.
func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// Short returns "bp-" followed by the first 12 hex characters of h,
// for listings where the full hash is noise.
func (h Hash) Short() string {
	return shortPrefix + hex.EncodeToString(h[:6])
}

// IsZero reports whether h is the zero hash.
func (h Hash) IsZero() bool {
	return h == Hash{}
}

// Parse parses the 64-character hex form produced by [Hash.String].
func Parse(text string) (Hash, error) {
	var hash Hash
	if strings.HasPrefix(text, shortPrefix) {
		return hash, fmt.Errorf("parsing fingerprint: %q is abbreviated", text)
	}
	decoded, err := hex.DecodeString(text)
	if err != nil {
		return hash, fmt.Errorf("parsing fingerprint: %w", err)
	}
	if len(decoded) != len(hash) {
		return hash, fmt.Errorf("fingerprint is %d bytes, want %d", len(decoded), len(hash))
	}
	copy(hash[:], decoded)
	return hash, nil
}

func keyedHash(data []byte) Hash {
	// NewKeyed fails only for a key that is not 32 bytes long.
	hasher, err := blake3.NewKeyed(documentDomainKey[:])
	if err != nil {
		panic("fingerprint: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	hasher.Write(data)
	var hash Hash
	copy(hash[:], hasher.Sum(nil))
	return hash
}
