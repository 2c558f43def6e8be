// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Schemaforge Authors

package avro

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// jsonType is the loose wire form of an Avro type object.
type jsonType struct {
	Type         json.RawMessage   `json:"type"`
	LogicalType  string            `json:"logicalType"`
	Name         string            `json:"name"`
	Namespace    string            `json:"namespace"`
	Doc          string            `json:"doc"`
	Fields       []json.RawMessage `json:"fields"`
	Symbols      []string          `json:"symbols"`
	Size         int               `json:"size"`
	Items        json.RawMessage   `json:"items"`
	Values       json.RawMessage   `json:"values"`
	Precision    int               `json:"precision"`
	Scale        int               `json:"scale"`
	Dependencies []string          `json:"dependencies"`
}

type jsonField struct {
	Name    string          `json:"name"`
	Doc     string          `json:"doc"`
	Type    json.RawMessage `json:"type"`
	Default json.RawMessage `json:"default"`
}

// Parse reads an Avro schema document: either a single schema object or a
// top-level union array whose entries may mix named types with passthrough
// values. Nodes without an explicit "dependencies" annotation get theirs
// computed from the named references in their field trees.
func Parse(data []byte) ([]Entry, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty schema document")
	}

	var entries []Entry
	if trimmed[0] == '[' {
		var raws []json.RawMessage
		if err := json.Unmarshal(data, &raws); err != nil {
			return nil, fmt.Errorf("failed to parse schema list: %w", err)
		}
		for _, raw := range raws {
			e, err := parseEntry(raw)
			if err != nil {
				return nil, err
			}
			entries = append(entries, e)
		}
	} else {
		e, err := parseEntry(json.RawMessage(data))
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	ComputeDependencies(entries)
	return entries, nil
}

// parseEntry decodes one document entry. Objects that declare a named kind
// become nodes; everything else is kept as an opaque passthrough.
func parseEntry(raw json.RawMessage) (Entry, error) {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '{' {
		expr, err := parseExpr(raw)
		if err != nil {
			return Entry{}, err
		}
		if n, ok := expr.(*Node); ok {
			return Entry{Node: n}, nil
		}
	}
	return Entry{Raw: append(json.RawMessage(nil), raw...)}, nil
}

// parseExpr decodes one type expression following the Avro JSON grammar:
// a string is a reference, an array is a union, an object is a wrapper
// (array/map/logical) or a named type definition.
func parseExpr(raw json.RawMessage) (TypeExpr, error) {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty type expression")
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, err
		}
		return Ref(s), nil

	case '[':
		var raws []json.RawMessage
		if err := json.Unmarshal(raw, &raws); err != nil {
			return nil, err
		}
		u := make(Union, 0, len(raws))
		for _, r := range raws {
			member, err := parseExpr(r)
			if err != nil {
				return nil, err
			}
			u = append(u, member)
		}
		return u, nil

	case '{':
		return parseObject(raw)

	default:
		return nil, fmt.Errorf("unsupported type expression: %s", trimmed)
	}
}

func parseObject(raw json.RawMessage) (TypeExpr, error) {
	var jt jsonType
	if err := json.Unmarshal(raw, &jt); err != nil {
		return nil, err
	}

	// A non-string "type" key means the object is just a wrapper around a
	// nested expression.
	typeTrimmed := bytes.TrimLeft(jt.Type, " \t\r\n")
	if len(typeTrimmed) > 0 && typeTrimmed[0] != '"' {
		return parseExpr(jt.Type)
	}

	var typeName string
	if len(jt.Type) > 0 {
		if err := json.Unmarshal(jt.Type, &typeName); err != nil {
			return nil, err
		}
	}

	switch typeName {
	case "array":
		if jt.Items == nil {
			return nil, fmt.Errorf("array type missing items")
		}
		items, err := parseExpr(jt.Items)
		if err != nil {
			return nil, err
		}
		return &Array{Items: items}, nil

	case "map":
		if jt.Values == nil {
			return nil, fmt.Errorf("map type missing values")
		}
		values, err := parseExpr(jt.Values)
		if err != nil {
			return nil, err
		}
		return &Map{Values: values}, nil

	case KindRecord, KindEnum, KindFixed:
		n := &Node{
			Kind:         typeName,
			Name:         jt.Name,
			Namespace:    jt.Namespace,
			Doc:          jt.Doc,
			Symbols:      jt.Symbols,
			Size:         jt.Size,
			Dependencies: jt.Dependencies,
		}
		if n.Name == "" {
			return nil, fmt.Errorf("%s type missing name", typeName)
		}
		for _, fraw := range jt.Fields {
			var jf jsonField
			if err := json.Unmarshal(fraw, &jf); err != nil {
				return nil, err
			}
			ft, err := parseExpr(jf.Type)
			if err != nil {
				return nil, fmt.Errorf("field %q of %s: %w", jf.Name, n.Name, err)
			}
			n.Fields = append(n.Fields, Field{
				Name:    jf.Name,
				Doc:     jf.Doc,
				Type:    ft,
				Default: jf.Default,
			})
		}
		return n, nil

	default:
		if jt.LogicalType != "" {
			return &Logical{
				Type:        typeName,
				LogicalType: jt.LogicalType,
				Precision:   jt.Precision,
				Scale:       jt.Scale,
			}, nil
		}
		// {"type": "string"} and friends collapse to a plain reference.
		if typeName != "" {
			return Ref(typeName), nil
		}
		return nil, fmt.Errorf("type object missing type key")
	}
}

// Marshal serializes entries back to Avro schema JSON. A single entry
// serializes in its own form (object for a named type, scalar for a
// passthrough), anything else as a top-level union array. Dependency
// annotations are never written.
func Marshal(entries []Entry) ([]byte, error) {
	var out []byte
	var err error
	if len(entries) == 1 {
		out, err = json.MarshalIndent(entries[0], "", "  ")
	} else {
		out, err = json.MarshalIndent(entries, "", "  ")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return append(out, '\n'), nil
}

// MarshalJSON writes the node or the passthrough payload.
func (e Entry) MarshalJSON() ([]byte, error) {
	if e.Node != nil {
		return json.Marshal(e.Node)
	}
	if e.Raw == nil {
		return []byte("null"), nil
	}
	return e.Raw, nil
}

// MarshalJSON serializes a node with kind-appropriate keys.
func (n *Node) MarshalJSON() ([]byte, error) {
	switch n.Kind {
	case KindEnum:
		return json.Marshal(struct {
			Type      string   `json:"type"`
			Name      string   `json:"name"`
			Namespace string   `json:"namespace,omitempty"`
			Doc       string   `json:"doc,omitempty"`
			Symbols   []string `json:"symbols"`
		}{n.Kind, n.Name, n.Namespace, n.Doc, n.Symbols})
	case KindFixed:
		return json.Marshal(struct {
			Type      string `json:"type"`
			Name      string `json:"name"`
			Namespace string `json:"namespace,omitempty"`
			Doc       string `json:"doc,omitempty"`
			Size      int    `json:"size"`
		}{n.Kind, n.Name, n.Namespace, n.Doc, n.Size})
	default:
		fields := n.Fields
		if fields == nil {
			fields = []Field{}
		}
		return json.Marshal(struct {
			Type      string  `json:"type"`
			Name      string  `json:"name"`
			Namespace string  `json:"namespace,omitempty"`
			Doc       string  `json:"doc,omitempty"`
			Fields    []Field `json:"fields"`
		}{n.Kind, n.Name, n.Namespace, n.Doc, fields})
	}
}

// MarshalJSON serializes a field, keeping the default value verbatim.
func (f Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name    string          `json:"name"`
		Doc     string          `json:"doc,omitempty"`
		Type    TypeExpr        `json:"type"`
		Default json.RawMessage `json:"default,omitempty"`
	}{f.Name, f.Doc, f.Type, f.Default})
}

func (a *Array) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type  string   `json:"type"`
		Items TypeExpr `json:"items"`
	}{"array", a.Items})
}

func (m *Map) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type   string   `json:"type"`
		Values TypeExpr `json:"values"`
	}{"map", m.Values})
}

func (l *Logical) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type        string `json:"type"`
		LogicalType string `json:"logicalType"`
		Precision   int    `json:"precision,omitempty"`
		Scale       int    `json:"scale,omitempty"`
	}{l.Type, l.LogicalType, l.Precision, l.Scale})
}
