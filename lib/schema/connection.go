// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"encoding/json"
	"errors"
	"sort"
	"strconv"
)

// EntityConnections maps a connection point name to the wires attached
// to it. Circuit points are named by number ("1", "2"); copper cable
// points on power switches by name ("Cu0", "Cu1"). JSON object keys
// are always strings, so the map is keyed by the exact text the game
// wrote and round-trips unchanged.
type EntityConnections map[string]Connection

// NewEntityConnections builds connections keyed by circuit point
// number, converting each key to the decimal text used on the wire.
func NewEntityConnections(points map[Index]Connection) EntityConnections {
	connections := make(EntityConnections, len(points))
	for point, connection := range points {
		connections[strconv.FormatUint(uint64(point), 10)] = connection
	}
	return connections
}

// Points returns the connection point names in sorted order.
func (c EntityConnections) Points() []string {
	points := make([]string, 0, len(c))
	for point := range c {
		points = append(points, point)
	}
	sort.Strings(points)
	return points
}

// Connection is the untagged union of the two shapes a connection
// point takes. Exactly one of Point and Wires is meaningful: Point
// when non-nil, Wires otherwise.
//
// Decoding tries the shapes in this order:
//
//  1. a single connection point object: {"red": [...], "green": [...]}
//  2. a list of connection data: [{"entity_id": 2, "wire_id": 0}]
//
// and keeps the first that decodes.
type Connection struct {
	Point *ConnectionPoint
	Wires []ConnectionData
}

// ErrAmbiguousConnection is returned when encoding a [Connection] with
// both shapes populated.
var ErrAmbiguousConnection = errors.New("connection sets both a point and a wire list")

func (c Connection) MarshalJSON() ([]byte, error) {
	if c.Point != nil {
		if c.Wires != nil {
			return nil, ErrAmbiguousConnection
		}
		return marshalPlain(c.Point)
	}
	if c.Wires == nil {
		return []byte("[]"), nil
	}
	return marshalPlain(c.Wires)
}

func (c *Connection) UnmarshalJSON(data []byte) error {
	return decodeUntagged(data, "connection",
		unionShape{name: "connection point", decode: func(data []byte) error {
			var point ConnectionPoint
			if err := json.Unmarshal(data, &point); err != nil {
				return err
			}
			*c = Connection{Point: &point}
			return nil
		}},
		unionShape{name: "connection data list", decode: func(data []byte) error {
			var wires []ConnectionData
			if err := json.Unmarshal(data, &wires); err != nil {
				return err
			}
			if wires == nil {
				return errors.New("expected a list, got null")
			}
			*c = Connection{Wires: wires}
			return nil
		}},
	)
}

// ConnectionPoint holds the circuit wires of one connection point.
type ConnectionPoint struct {
	Red   []ConnectionData `json:"red,omitempty"`
	Green []ConnectionData `json:"green,omitempty"`
}

func (p *ConnectionPoint) UnmarshalJSON(data []byte) error {
	type plain ConnectionPoint
	// A bare list must fall through to the next union shape rather
	// than decode as an empty point.
	if err := requireFields(data, "connection point"); err != nil {
		return err
	}
	return json.Unmarshal(data, (*plain)(p))
}

// ConnectionData is one end of a wire.
type ConnectionData struct {
	EntityID Index `json:"entity_id"`
	// CircuitID is the connection point on the target entity.
	CircuitID *int32 `json:"circuit_id,omitempty"`
	// WireID is set for copper cable connections.
	WireID *int32 `json:"wire_id,omitempty"`
}

func (d *ConnectionData) UnmarshalJSON(data []byte) error {
	type plain ConnectionData
	return decodeRequired(data, (*plain)(d), "connection data", "entity_id")
}

// --- Item requests ---

// ItemRequest is the untagged union of the two shapes the "items"
// field of an entity takes. Compact is used when non-nil, Verbose
// otherwise.
//
// Decoding tries the shapes in this order:
//
//  1. compact: {"coal": 50}
//  2. verbose: [{"item": "coal", "count": 50}]
//
// and keeps the first that decodes.
type ItemRequest struct {
	Compact map[string]uint32
	Verbose []ItemRequestVerbose
}

// ErrAmbiguousItemRequest is returned when encoding an [ItemRequest]
// with both shapes populated.
var ErrAmbiguousItemRequest = errors.New("item request sets both compact and verbose forms")

func (r ItemRequest) MarshalJSON() ([]byte, error) {
	if r.Compact != nil {
		if r.Verbose != nil {
			return nil, ErrAmbiguousItemRequest
		}
		return marshalPlain(r.Compact)
	}
	if r.Verbose == nil {
		return []byte("[]"), nil
	}
	return marshalPlain(r.Verbose)
}

func (r *ItemRequest) UnmarshalJSON(data []byte) error {
	return decodeUntagged(data, "item request",
		unionShape{name: "compact item map", decode: func(data []byte) error {
			var compact map[string]uint32
			if err := json.Unmarshal(data, &compact); err != nil {
				return err
			}
			if compact == nil {
				return errors.New("expected an object, got null")
			}
			*r = ItemRequest{Compact: compact}
			return nil
		}},
		unionShape{name: "verbose item list", decode: func(data []byte) error {
			var verbose []ItemRequestVerbose
			if err := json.Unmarshal(data, &verbose); err != nil {
				return err
			}
			if verbose == nil {
				return errors.New("expected a list, got null")
			}
			*r = ItemRequest{Verbose: verbose}
			return nil
		}},
	)
}

// ItemRequestVerbose is one entry of the verbose item request form.
type ItemRequestVerbose struct {
	Item  string `json:"item"`
	Count uint32 `json:"count"`
}

func (v *ItemRequestVerbose) UnmarshalJSON(data []byte) error {
	type plain ItemRequestVerbose
	return decodeRequired(data, (*plain)(v), "item request", "item", "count")
}
