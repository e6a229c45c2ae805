// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"
)

// member is one key of a JSON object, in document order.
type member struct {
	key   string
	value any
}

// object is a JSON object that remembers its key order. Formats whose
// encoders sort keys (CBOR) see it as a map; YAML keeps the order.
type object []member

// decodeTree parses a JSON payload into a tree of object, []any,
// string, bool, nil, and numbers. Integral numbers become int64 (or
// uint64 beyond the int64 range) so they stay integers in every
// output format; the rest become float64.
func decodeTree(payload []byte) (any, error) {
	decoder := json.NewDecoder(bytes.NewReader(payload))
	decoder.UseNumber()
	tree, err := readValue(decoder)
	if err != nil {
		return nil, err
	}
	if _, err := decoder.Token(); err != io.EOF {
		return nil, fmt.Errorf("trailing data after JSON document")
	}
	return tree, nil
}

func readValue(decoder *json.Decoder) (any, error) {
	token, err := decoder.Token()
	if err != nil {
		return nil, err
	}
	switch token := token.(type) {
	case json.Delim:
		switch token {
		case '{':
			var members object
			for decoder.More() {
				keyToken, err := decoder.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyToken.(string)
				if !ok {
					return nil, fmt.Errorf("object key is %T, want string", keyToken)
				}
				value, err := readValue(decoder)
				if err != nil {
					return nil, err
				}
				members = append(members, member{key: key, value: value})
			}
			if _, err := decoder.Token(); err != nil {
				return nil, err
			}
			return members, nil
		case '[':
			elements := []any{}
			for decoder.More() {
				value, err := readValue(decoder)
				if err != nil {
					return nil, err
				}
				elements = append(elements, value)
			}
			if _, err := decoder.Token(); err != nil {
				return nil, err
			}
			return elements, nil
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", token)
		}
	case json.Number:
		return convertNumber(token)
	default:
		// string, bool, or nil
		return token, nil
	}
}

func convertNumber(number json.Number) (any, error) {
	if integer, err := number.Int64(); err == nil {
		return integer, nil
	}
	if unsigned, err := strconv.ParseUint(number.String(), 10, 64); err == nil {
		return unsigned, nil
	}
	return number.Float64()
}

// MarshalCBOR encodes o as a CBOR map.
func (o object) MarshalCBOR() ([]byte, error) {
	converted := make(map[string]any, len(o))
	for _, member := range o {
		converted[member.key] = member.value
	}
	return cborMode.Marshal(converted)
}

// yamlNode converts a tree from decodeTree into a YAML node, keeping
// object key order.
func yamlNode(value any) (*yaml.Node, error) {
	switch value := value.(type) {
	case object:
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, member := range value {
			child, err := yamlNode(member.value)
			if err != nil {
				return nil, err
			}
			key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: member.key}
			node.Content = append(node.Content, key, child)
		}
		return node, nil
	case []any:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, element := range value {
			child, err := yamlNode(element)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, child)
		}
		return node, nil
	case string:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}, nil
	case bool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(value)}, nil
	case nil:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	case int64:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(value, 10)}, nil
	case uint64:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatUint(value, 10)}, nil
	case float64:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: strconv.FormatFloat(value, 'f', -1, 64)}, nil
	default:
		return nil, fmt.Errorf("unexpected %T in document tree", value)
	}
}
