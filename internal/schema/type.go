// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package schema

import (
	"encoding/json"
	"fmt"
)

// Type is a tagged union describing a field's or enum's underlying type.
// Kind selects which of the remaining fields is populated:
//
//	"base"      -> Name is a primitive type name (schemabase.TypeString, ...)
//	"reference" -> Name is another Record's or Enum's name
//	"list"      -> Element is the element type
//	"map"       -> Key and Value are the key and value types
//	"oneOf"     -> Items lists the alternative types
type Type struct {
	Kind    string
	Name    string
	Element *Type
	Key     *Type
	Value   *Type
	Items   []*Type
	Line    int
}

type rawType struct {
	Kind    string          `json:"kind"`
	Name    string          `json:"name,omitempty"`
	Element json.RawMessage `json:"element,omitempty"`
	Key     json.RawMessage `json:"key,omitempty"`
	Value   json.RawMessage `json:"value,omitempty"`
	Items   json.RawMessage `json:"items,omitempty"`
	Line    int             `json:"line,omitempty"`
}

// UnmarshalJSON decodes a Type from its kind-tagged JSON representation,
// unmarshaling only the fields that kind says are present.
func (t *Type) UnmarshalJSON(data []byte) error {
	var raw rawType
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode type: %w", err)
	}

	t.Kind = raw.Kind
	t.Name = raw.Name
	t.Line = raw.Line

	switch raw.Kind {
	case "base", "reference":
		// Name already populated above.
	case "list":
		if len(raw.Element) == 0 {
			return fmt.Errorf("list type missing element")
		}
		var el Type
		if err := json.Unmarshal(raw.Element, &el); err != nil {
			return fmt.Errorf("decode list element: %w", err)
		}
		t.Element = &el
	case "map":
		if len(raw.Key) == 0 || len(raw.Value) == 0 {
			return fmt.Errorf("map type missing key or value")
		}
		var key, value Type
		if err := json.Unmarshal(raw.Key, &key); err != nil {
			return fmt.Errorf("decode map key: %w", err)
		}
		if err := json.Unmarshal(raw.Value, &value); err != nil {
			return fmt.Errorf("decode map value: %w", err)
		}
		t.Key = &key
		t.Value = &value
	case "oneOf":
		if len(raw.Items) == 0 {
			return fmt.Errorf("oneOf type missing items")
		}
		var items []*Type
		if err := json.Unmarshal(raw.Items, &items); err != nil {
			return fmt.Errorf("decode oneOf items: %w", err)
		}
		t.Items = items
	default:
		return fmt.Errorf("unknown type kind %q", raw.Kind)
	}
	return nil
}

// IsOptional reports whether t is a "oneOf" of exactly two items where one
// alternative is the base "null" type — the schema's way of marking an
// otherwise-required value as nullable.
func (t *Type) IsOptional() bool {
	if t == nil || t.Kind != "oneOf" || len(t.Items) != 2 {
		return false
	}
	return isNullType(t.Items[0]) || isNullType(t.Items[1])
}

// NonNullType returns the non-null alternative of an IsOptional type, or
// nil if t is not such a type.
func (t *Type) NonNullType() *Type {
	if !t.IsOptional() {
		return nil
	}
	if isNullType(t.Items[0]) {
		return t.Items[1]
	}
	return t.Items[0]
}

func isNullType(t *Type) bool {
	return t != nil && t.Kind == "base" && t.Name == "null"
}
