// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ContainerKind names the variant held by a [Container]. The values
// are the JSON keys the variants are serialized under.
type ContainerKind string

const (
	KindNone                  ContainerKind = ""
	KindBlueprint             ContainerKind = "blueprint"
	KindBlueprintBook         ContainerKind = "blueprint_book"
	KindDeconstructionPlanner ContainerKind = "deconstruction_planner"
	KindUpgradePlanner        ContainerKind = "upgrade_planner"
)

// Container is the top-level document: exactly one of its fields is
// set. On the wire it is an object with exactly one key naming the
// variant:
//
//	{"blueprint": {...}}
//	{"blueprint_book": {...}}
//
// Decoding rejects objects with zero keys, several keys, or an unknown
// key. Encoding rejects a Container with zero or several variants set.
type Container struct {
	Blueprint             *Blueprint
	BlueprintBook         *BlueprintBook
	DeconstructionPlanner *DeconstructionPlanner
	UpgradePlanner        *UpgradePlanner
}

// ErrEmptyContainer is returned when a Container holds no variant.
var ErrEmptyContainer = errors.New("container holds no document")

// NewBlueprintContainer wraps a blueprint.
func NewBlueprintContainer(blueprint Blueprint) Container {
	return Container{Blueprint: &blueprint}
}

// NewBookContainer wraps a blueprint book.
func NewBookContainer(book BlueprintBook) Container {
	return Container{BlueprintBook: &book}
}

// NewDeconstructionPlannerContainer wraps a deconstruction planner.
func NewDeconstructionPlannerContainer(planner DeconstructionPlanner) Container {
	return Container{DeconstructionPlanner: &planner}
}

// NewUpgradePlannerContainer wraps an upgrade planner.
func NewUpgradePlannerContainer(planner UpgradePlanner) Container {
	return Container{UpgradePlanner: &planner}
}

// Kind returns the variant held by c, or KindNone when c is empty or
// holds more than one variant.
func (c Container) Kind() ContainerKind {
	kinds := c.kinds()
	if len(kinds) != 1 {
		return KindNone
	}
	return kinds[0]
}

func (c Container) kinds() []ContainerKind {
	var kinds []ContainerKind
	if c.Blueprint != nil {
		kinds = append(kinds, KindBlueprint)
	}
	if c.BlueprintBook != nil {
		kinds = append(kinds, KindBlueprintBook)
	}
	if c.DeconstructionPlanner != nil {
		kinds = append(kinds, KindDeconstructionPlanner)
	}
	if c.UpgradePlanner != nil {
		kinds = append(kinds, KindUpgradePlanner)
	}
	return kinds
}

// Label returns the label of whichever document c holds, or "" when it
// has none.
func (c Container) Label() string {
	var label *string
	switch c.Kind() {
	case KindBlueprint:
		label = c.Blueprint.Label
	case KindBlueprintBook:
		label = c.BlueprintBook.Label
	case KindDeconstructionPlanner:
		label = c.DeconstructionPlanner.Label
	case KindUpgradePlanner:
		label = c.UpgradePlanner.Label
	}
	if label == nil {
		return ""
	}
	return *label
}

// Version returns the packed game version of whichever document c
// holds, or 0 when it holds none. See [FormatGameVersion].
func (c Container) Version() uint64 {
	switch c.Kind() {
	case KindBlueprint:
		return c.Blueprint.Version
	case KindBlueprintBook:
		return c.BlueprintBook.Version
	case KindDeconstructionPlanner:
		return c.DeconstructionPlanner.Version
	case KindUpgradePlanner:
		return c.UpgradePlanner.Version
	}
	return 0
}

// Validate checks the union shape of c and of every book entry below
// it. Field-level rules (non-zero indices, known enum values) are
// enforced when the document is encoded.
func (c Container) Validate() error {
	return c.Walk(func(path []uint64, node Container) error {
		kinds := node.kinds()
		switch len(kinds) {
		case 0:
			return pathError(path, ErrEmptyContainer)
		case 1:
			return nil
		default:
			return pathError(path, fmt.Errorf("container holds %d documents (%s), want exactly one",
				len(kinds), joinKinds(kinds)))
		}
	})
}

func pathError(path []uint64, err error) error {
	if len(path) == 0 {
		return err
	}
	parts := make([]string, len(path))
	for i, index := range path {
		parts[i] = fmt.Sprint(index)
	}
	return fmt.Errorf("book entry %s: %w", strings.Join(parts, "/"), err)
}

func joinKinds(kinds []ContainerKind) string {
	names := make([]string, len(kinds))
	for i, kind := range kinds {
		names[i] = string(kind)
	}
	return strings.Join(names, ", ")
}

// Walk calls fn for c and then, depth first and in slot order, for
// every document nested in blueprint books below it. path holds the
// slot indices leading to the node and is empty for c itself; fn must
// not retain it. Walk stops at the first error fn returns.
//
// A node holding several variants is still visited once; only a book
// variant is descended into.
func (c Container) Walk(fn func(path []uint64, node Container) error) error {
	return c.walk(nil, fn)
}

func (c Container) walk(path []uint64, fn func([]uint64, Container) error) error {
	if err := fn(path, c); err != nil {
		return err
	}
	if c.BlueprintBook == nil {
		return nil
	}
	for _, entry := range c.BlueprintBook.Blueprints {
		if err := entry.Container.walk(append(path, entry.Index), fn); err != nil {
			return err
		}
	}
	return nil
}

// --- JSON ---

// MarshalJSON encodes c as a one-key object.
func (c Container) MarshalJSON() ([]byte, error) {
	var key ContainerKind
	var document any
	switch kinds := c.kinds(); len(kinds) {
	case 0:
		return nil, ErrEmptyContainer
	case 1:
		key = kinds[0]
	default:
		return nil, fmt.Errorf("container holds %d documents (%s), want exactly one",
			len(kinds), joinKinds(kinds))
	}
	switch key {
	case KindBlueprint:
		document = c.Blueprint
	case KindBlueprintBook:
		document = c.BlueprintBook
	case KindDeconstructionPlanner:
		document = c.DeconstructionPlanner
	case KindUpgradePlanner:
		document = c.UpgradePlanner
	}
	return marshalPlain(map[ContainerKind]any{key: document})
}

// UnmarshalJSON decodes a one-key object.
func (c *Container) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("container: %w", err)
	}
	if raw == nil {
		return errors.New("container: expected an object, got null")
	}
	container, err := containerFromFields(raw)
	if err != nil {
		return err
	}
	*c = container
	return nil
}

// containerFromFields decodes the variant named by the single key of
// fields. Shared by Container and the flattened BookEntry.
func containerFromFields(fields map[string]json.RawMessage) (Container, error) {
	if len(fields) != 1 {
		keys := make([]string, 0, len(fields))
		for key := range fields {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		return Container{}, fmt.Errorf("container: want exactly one of %s, %s, %s, %s; got keys %q",
			KindBlueprint, KindBlueprintBook, KindDeconstructionPlanner, KindUpgradePlanner, keys)
	}

	var container Container
	for key, value := range fields {
		var target any
		switch ContainerKind(key) {
		case KindBlueprint:
			container.Blueprint = new(Blueprint)
			target = container.Blueprint
		case KindBlueprintBook:
			container.BlueprintBook = new(BlueprintBook)
			target = container.BlueprintBook
		case KindDeconstructionPlanner:
			container.DeconstructionPlanner = new(DeconstructionPlanner)
			target = container.DeconstructionPlanner
		case KindUpgradePlanner:
			container.UpgradePlanner = new(UpgradePlanner)
			target = container.UpgradePlanner
		default:
			return Container{}, fmt.Errorf("container: unknown document kind %q", key)
		}
		if isNull(value) {
			return Container{}, fmt.Errorf("%s: expected an object, got null", key)
		}
		if err := json.Unmarshal(value, target); err != nil {
			return Container{}, fmt.Errorf("%s: %w", key, err)
		}
	}
	return container, nil
}

// Marshal returns the compact JSON payload for c, exactly as it is
// compressed into a transport string. HTML-sensitive characters are
// not escaped.
func Marshal(c Container) ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return marshalPlain(c)
}

// Unmarshal parses a JSON payload into a Container, applying defaults
// and enforcing required fields and enum values.
func Unmarshal(data []byte) (Container, error) {
	var container Container
	if err := json.Unmarshal(data, &container); err != nil {
		return Container{}, err
	}
	return container, nil
}

// Canonical returns a normalized JSON form of c: object keys sorted,
// optional fields that are unset or empty omitted, numbers in the
// format Marshal writes. Two containers with the same canonical form
// describe the same document.
func Canonical(c Container) ([]byte, error) {
	payload, err := Marshal(c)
	if err != nil {
		return nil, err
	}
	decoder := json.NewDecoder(bytes.NewReader(payload))
	decoder.UseNumber()
	var tree any
	if err := decoder.Decode(&tree); err != nil {
		return nil, fmt.Errorf("re-reading payload: %w", err)
	}
	return marshalPlain(tree)
}

// Equal reports whether a and b describe the same document: field
// order does not matter, and an omitted optional field equals an
// absent one and an empty list. Containers that cannot be encoded are
// never equal.
func Equal(a, b Container) bool {
	left, err := Canonical(a)
	if err != nil {
		return false
	}
	right, err := Canonical(b)
	if err != nil {
		return false
	}
	return bytes.Equal(left, right)
}

// Clone returns a deep copy of c by encoding and decoding it.
func (c Container) Clone() (Container, error) {
	payload, err := Marshal(c)
	if err != nil {
		return Container{}, err
	}
	return Unmarshal(payload)
}
