// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"encoding/json"
	"errors"
	"slices"
	"strings"
	"testing"
)

func TestConnectionShapes(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantPoint bool
		wantWires int
	}{
		{"circuit point", `{"red":[{"entity_id":2,"circuit_id":1}]}`, true, 0},
		{"empty point", `{}`, true, 0},
		{"copper wires", `[{"entity_id":3,"wire_id":0},{"entity_id":4,"wire_id":1}]`, false, 2},
		{"empty wire list", `[]`, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var connection Connection
			if err := json.Unmarshal([]byte(tt.input), &connection); err != nil {
				t.Fatalf("Unmarshal: %v", err)
			}
			if (connection.Point != nil) != tt.wantPoint {
				t.Errorf("Point set = %v, want %v", connection.Point != nil, tt.wantPoint)
			}
			if len(connection.Wires) != tt.wantWires {
				t.Errorf("len(Wires) = %d, want %d", len(connection.Wires), tt.wantWires)
			}

			got, err := json.Marshal(connection)
			if err != nil {
				t.Fatalf("Marshal: %v", err)
			}
			if string(got) != tt.input {
				t.Errorf("Marshal = %s, want %s", got, tt.input)
			}
		})
	}
}

func TestConnectionRejectsAmbiguousValue(t *testing.T) {
	connection := Connection{
		Point: &ConnectionPoint{},
		Wires: []ConnectionData{{EntityID: 1}},
	}
	if _, err := json.Marshal(connection); !errors.Is(err, ErrAmbiguousConnection) {
		t.Errorf("err = %v, want ErrAmbiguousConnection", err)
	}
}

func TestConnectionDataRequiresEntity(t *testing.T) {
	var connection Connection
	if err := json.Unmarshal([]byte(`[{"wire_id":0}]`), &connection); err == nil {
		t.Error("wire without entity_id decoded")
	}
}

func TestEntityConnectionsKeys(t *testing.T) {
	connections := NewEntityConnections(map[Index]Connection{
		2: {Point: &ConnectionPoint{}},
		1: {Point: &ConnectionPoint{}},
	})
	if got, want := connections.Points(), []string{"1", "2"}; !slices.Equal(got, want) {
		t.Errorf("Points() = %q, want %q", got, want)
	}

	var decoded EntityConnections
	input := `{"1":{"green":[{"entity_id":5}]},"Cu0":[{"entity_id":6,"wire_id":0}]}`
	if err := json.Unmarshal([]byte(input), &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got, want := decoded.Points(), []string{"1", "Cu0"}; !slices.Equal(got, want) {
		t.Errorf("Points() = %q, want %q", got, want)
	}
	if decoded["Cu0"].Point != nil {
		t.Error("copper connection decoded as a circuit point")
	}
	got, err := json.Marshal(decoded)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(got) != input {
		t.Errorf("Marshal = %s, want %s", got, input)
	}
}

func TestItemRequestShapes(t *testing.T) {
	tests := []struct {
		input       string
		wantCompact bool
	}{
		{`{"coal":50}`, true},
		{`{}`, true},
		{`[{"item":"coal","count":50}]`, false},
	}
	for _, tt := range tests {
		var request ItemRequest
		if err := json.Unmarshal([]byte(tt.input), &request); err != nil {
			t.Fatalf("Unmarshal(%s): %v", tt.input, err)
		}
		if (request.Compact != nil) != tt.wantCompact {
			t.Errorf("Unmarshal(%s): compact = %v, want %v", tt.input, request.Compact != nil, tt.wantCompact)
		}
		got, err := json.Marshal(request)
		if err != nil {
			t.Fatalf("Marshal: %v", err)
		}
		if string(got) != tt.input {
			t.Errorf("Marshal = %s, want %s", got, tt.input)
		}
	}

	var request ItemRequest
	if err := json.Unmarshal([]byte(`{"coal":-1}`), &request); err == nil {
		t.Error("negative item count decoded")
	}
	ambiguous := ItemRequest{Compact: map[string]uint32{}, Verbose: []ItemRequestVerbose{}}
	if _, err := json.Marshal(ambiguous); !errors.Is(err, ErrAmbiguousItemRequest) {
		t.Errorf("err = %v, want ErrAmbiguousItemRequest", err)
	}
}

func TestConnectionPointDropsEmptyWireLists(t *testing.T) {
	input := `{"blueprint":{"item":"blueprint","version":77310525440,"entities":[` +
		`{"entity_number":1,"name":"small-lamp","position":{"x":0,"y":0},"connections":{"1":{"red":[],"green":[{"entity_id":2}]}}},` +
		`{"entity_number":2,"name":"small-lamp","position":{"x":1,"y":0}}]}}`
	container, err := Unmarshal([]byte(input))
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	payload, err := Marshal(container)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(payload), `"1":{"green":[{"entity_id":2}]}`) {
		t.Errorf("payload %s still carries the empty red list", payload)
	}

	again, err := Unmarshal(payload)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !Equal(container, again) {
		t.Error("dropping an empty wire list changed the document")
	}
}
