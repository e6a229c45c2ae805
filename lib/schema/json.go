// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// MissingFieldError reports a required field that is absent (or
// explicitly null) in a decoded object.
type MissingFieldError struct {
	Object string
	Field  string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: missing required field %q", e.Object, e.Field)
}

// requireFields checks that data is a JSON object carrying every named
// field with a non-null value.
func requireFields(data []byte, object string, fields ...string) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%s: %w", object, err)
	}
	if raw == nil {
		return fmt.Errorf("%s: expected an object, got null", object)
	}
	for _, field := range fields {
		value, ok := raw[field]
		if !ok || isNull(value) {
			return &MissingFieldError{Object: object, Field: field}
		}
	}
	return nil
}

// decodeRequired unmarshals data into target after checking the
// required fields. target must be a pointer to a type without an
// UnmarshalJSON method (the usual "type plain T" conversion).
func decodeRequired(data []byte, target any, object string, fields ...string) error {
	if err := requireFields(data, object, fields...); err != nil {
		return err
	}
	return json.Unmarshal(data, target)
}

func isNull(value json.RawMessage) bool {
	return string(bytes.TrimSpace(value)) == "null"
}

// marshalPlain encodes value without HTML escaping and without the
// trailing newline json.Encoder appends. Comparators such as "<" stay
// literal, which matches what the game writes.
func marshalPlain(value any) ([]byte, error) {
	var buffer bytes.Buffer
	encoder := json.NewEncoder(&buffer)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(value); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buffer.Bytes(), []byte("\n")), nil
}

// --- Untagged unions ---

// unionShape is one alternative of an untagged union: a name for error
// messages and a decoder that commits the value only on success.
type unionShape struct {
	name   string
	decode func(data []byte) error
}

// decodeUntagged tries each shape in declared order and stops at the
// first one that decodes cleanly. Order matters: when data fits more
// than one shape, the earlier shape wins. The error for data matching
// no shape names every shape tried.
func decodeUntagged(data []byte, union string, shapes ...unionShape) error {
	failures := make([]error, 0, len(shapes))
	names := make([]string, 0, len(shapes))
	for _, shape := range shapes {
		err := shape.decode(data)
		if err == nil {
			return nil
		}
		names = append(names, shape.name)
		failures = append(failures, fmt.Errorf("as %s: %w", shape.name, err))
	}
	return fmt.Errorf("%s: data matches none of [%s]: %w",
		union, strings.Join(names, ", "), errors.Join(failures...))
}

// --- Enumerations ---

// stringEnum is the closed set of values a string enumeration accepts.
type stringEnum[T ~string] struct {
	name   string
	values []T
}

func (e stringEnum[T]) valid(value T) bool {
	for _, candidate := range e.values {
		if candidate == value {
			return true
		}
	}
	return false
}

func (e stringEnum[T]) marshal(value T) ([]byte, error) {
	if !e.valid(value) {
		return nil, fmt.Errorf("unknown %s %q", e.name, string(value))
	}
	return json.Marshal(string(value))
}

func (e stringEnum[T]) unmarshal(data []byte, target *T) error {
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return fmt.Errorf("%s: %w", e.name, err)
	}
	if !e.valid(T(text)) {
		return fmt.Errorf("unknown %s %q", e.name, text)
	}
	*target = T(text)
	return nil
}

// intEnum is the closed set of values an integer enumeration accepts.
// The game writes and requires these as bare integers.
type intEnum[T ~uint32] struct {
	name   string
	values []T
}

func (e intEnum[T]) valid(value T) bool {
	for _, candidate := range e.values {
		if candidate == value {
			return true
		}
	}
	return false
}

func (e intEnum[T]) marshal(value T) ([]byte, error) {
	if !e.valid(value) {
		return nil, fmt.Errorf("unknown %s %d", e.name, uint32(value))
	}
	return json.Marshal(uint32(value))
}

func (e intEnum[T]) unmarshal(data []byte, target *T) error {
	if isNull(data) {
		return fmt.Errorf("%s: expected an integer, got null", e.name)
	}
	var number uint32
	if err := json.Unmarshal(data, &number); err != nil {
		return fmt.Errorf("%s: %w", e.name, err)
	}
	if !e.valid(T(number)) {
		return fmt.Errorf("unknown %s %d", e.name, number)
	}
	*target = T(number)
	return nil
}
