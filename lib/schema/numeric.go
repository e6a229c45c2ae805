// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Real is a finite float64. NaN and the infinities are rejected at
// construction and at decode, so every Real in a document can be
// serialized.
//
// Reals marshal the way the game writes them: integral values without
// a decimal point ("5", "-3"), everything else as the shortest decimal
// that parses back to the same float ("5.5", "0.75"). Exponent
// notation is never produced.
type Real struct {
	value float64
}

// ErrNotFinite is returned when a NaN or infinite value is offered as
// a [Real].
var ErrNotFinite = errors.New("real number must be finite")

// NewReal returns value as a Real, or ErrNotFinite.
func NewReal(value float64) (Real, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Real{}, fmt.Errorf("%w: got %v", ErrNotFinite, value)
	}
	return Real{value: value}, nil
}

// MustReal is like [NewReal] but panics on a non-finite value. Use it
// for literals and arithmetic whose inputs are already known finite.
func MustReal(value float64) Real {
	real, err := NewReal(value)
	if err != nil {
		panic(err)
	}
	return real
}

// Float64 returns the underlying value.
func (r Real) Float64() float64 {
	return r.value
}

// Equal reports whether r and other hold the same value.
func (r Real) Equal(other Real) bool {
	return r.value == other.value
}

// IsIntegral reports whether r has no fractional part.
func (r Real) IsIntegral() bool {
	return r.value == math.Trunc(r.value)
}

// String returns the same text MarshalJSON produces.
func (r Real) String() string {
	return formatReal(r.value)
}

// formatReal renders a finite float. Negative zero becomes "0".
func formatReal(value float64) string {
	if value == 0 {
		return "0"
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// MarshalJSON encodes r as a JSON number.
func (r Real) MarshalJSON() ([]byte, error) {
	if math.IsNaN(r.value) || math.IsInf(r.value, 0) {
		return nil, fmt.Errorf("%w: got %v", ErrNotFinite, r.value)
	}
	return []byte(formatReal(r.value)), nil
}

// UnmarshalJSON decodes a JSON number. Strings, booleans, and numbers
// outside the float64 range are rejected.
func (r *Real) UnmarshalJSON(data []byte) error {
	var number json.Number
	if err := json.Unmarshal(data, &number); err != nil {
		return fmt.Errorf("real number: %w", err)
	}
	if number == "" || data[0] == '"' {
		return fmt.Errorf("real number: expected a JSON number, got %s", data)
	}
	value, err := strconv.ParseFloat(string(number), 64)
	if err != nil {
		return fmt.Errorf("real number: %w", err)
	}
	real, err := NewReal(value)
	if err != nil {
		return err
	}
	*r = real
	return nil
}

// Index is a one-based position or identifier (entity numbers, icon
// slots, filter slots). Zero is never valid: it fails both to decode
// and to encode.
type Index uint64

// ErrZeroIndex is returned when an [Index] is zero.
var ErrZeroIndex = errors.New("index must be at least 1")

// MarshalJSON encodes i as a JSON number.
func (i Index) MarshalJSON() ([]byte, error) {
	if i == 0 {
		return nil, ErrZeroIndex
	}
	return strconv.AppendUint(nil, uint64(i), 10), nil
}

// UnmarshalJSON decodes a positive JSON integer.
func (i *Index) UnmarshalJSON(data []byte) error {
	var value uint64
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("index: %w", err)
	}
	if value == 0 {
		return ErrZeroIndex
	}
	*i = Index(value)
	return nil
}

// Position is a point on the map in tiles.
type Position struct {
	X Real `json:"x"`
	Y Real `json:"y"`
}

// NewPosition returns the position (x, y). It panics if either
// coordinate is not finite.
func NewPosition(x, y float64) Position {
	return Position{X: MustReal(x), Y: MustReal(y)}
}

// Add returns p translated by offset. It panics if the sum overflows
// to infinity.
func (p Position) Add(offset Position) Position {
	return NewPosition(p.X.value+offset.X.value, p.Y.value+offset.Y.value)
}

// Sub returns p translated by the negation of offset. It panics if
// the difference overflows to infinity.
func (p Position) Sub(offset Position) Position {
	return NewPosition(p.X.value-offset.X.value, p.Y.value-offset.Y.value)
}

// String formats p as "(x, y)".
func (p Position) String() string {
	return "(" + p.X.String() + ", " + p.Y.String() + ")"
}

func (p *Position) UnmarshalJSON(data []byte) error {
	type plain Position
	return decodeRequired(data, (*plain)(p), "position", "x", "y")
}

// Color is an RGBA color with components in [0, 1] (the game also
// accepts 0-255 and normalizes on import; values are kept as given).
type Color struct {
	R Real `json:"r"`
	G Real `json:"g"`
	B Real `json:"b"`
	A Real `json:"a"`
}

func (c *Color) UnmarshalJSON(data []byte) error {
	type plain Color
	return decodeRequired(data, (*plain)(c), "color", "r", "g", "b", "a")
}

// Ptr returns a pointer to a copy of value, for filling optional
// fields in struct literals:
//
//	entity.Direction = schema.Ptr[uint8](4)
func Ptr[T any](value T) *T {
	return &value
}
