// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package schema defines the document model carried inside Factorio
// blueprint strings: blueprints, blueprint books, deconstruction
// planners, and upgrade planners, wrapped in the one-key [Container]
// union.
//
// The Go types are shaped so that decoding a payload and encoding it
// again yields the same document:
//
//   - Optional fields are pointers or slices tagged omitempty. They are
//     never written as null, and an explicit null reads as absent.
//   - Required fields are checked on decode; a missing one is a
//     [*MissingFieldError] naming the object and field.
//   - [Real] rejects NaN and infinities and writes integral values
//     without a decimal point, as the game does.
//   - [Index] is one-based and refuses zero in both directions.
//   - [Connection] and [ItemRequest] are untagged unions decoded by
//     trying their shapes in a fixed order.
//   - Enumerations reject values outside their declared set.
//
// Documents are built with struct literals; [Ptr] fills optional
// scalar fields, and [NewBlueprint] and friends supply the default
// item name and version:
//
//	blueprint := schema.NewBlueprint()
//	blueprint.Label = schema.Ptr("smelter")
//	blueprint.Entities = []schema.Entity{
//		schema.NewEntity(1, "stone-furnace", schema.NewPosition(0.5, 0.5)),
//	}
//	container := schema.NewBlueprintContainer(blueprint)
//
// [Marshal] and [Unmarshal] convert between a Container and its JSON
// payload. [Equal] and [Canonical] compare documents independent of
// key order. The wire framing (compression, base64, version byte)
// lives in lib/codec.
//
// This package depends on no other blueprint packages.
package schema
