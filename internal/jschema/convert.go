// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Schemaforge Authors

package jschema

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/schemaforge/cli/internal/avro"
)

// converter holds shared state while building the node graph.
type converter struct {
	namespace string
	keyOrder  map[string][]string
	defs      map[string]*jsonschema.Schema
}

// Convert builds an Avro node graph from a JSON Schema document: one record
// per object-valued $def, one enum per string-enum $def, and a root record
// named after name. $ref links become named references with matching
// dependency annotations, so the result is ready for avro.Sort.
func Convert(name, namespace string, schema *jsonschema.Schema, keyOrder map[string][]string) ([]avro.Entry, error) {
	c := &converter{
		namespace: namespace,
		keyOrder:  keyOrder,
		defs:      schema.Defs,
	}

	var entries []avro.Entry

	defNames := make([]string, 0, len(schema.Defs))
	for defName := range schema.Defs {
		defNames = append(defNames, defName)
	}
	sort.Strings(defNames)

	for _, defName := range defNames {
		def := schema.Defs[defName]
		node, err := c.convertNamed(toPascalCase(defName), def, "$defs."+defName)
		if err != nil {
			return nil, fmt.Errorf("$defs.%s: %w", defName, err)
		}
		if node != nil {
			entries = append(entries, avro.Entry{Node: node})
		}
	}

	root, err := c.convertNamed(toPascalCase(name)+"Schema", schema, "")
	if err != nil {
		return nil, err
	}
	if root == nil {
		return nil, fmt.Errorf("root schema must be an object")
	}
	root.Doc = schema.Description
	entries = append(entries, avro.Entry{Node: root})

	avro.ComputeDependencies(entries)
	return entries, nil
}

// convertNamed turns an object or string-enum schema into a named node.
// Primitive-valued defs return nil; references to them resolve inline.
func (c *converter) convertNamed(name string, s *jsonschema.Schema, path string) (*avro.Node, error) {
	if len(s.Enum) > 0 {
		symbols, ok := enumSymbols(s.Enum)
		if !ok {
			return nil, nil
		}
		return &avro.Node{
			Kind:      avro.KindEnum,
			Name:      name,
			Namespace: c.namespace,
			Doc:       s.Description,
			Symbols:   symbols,
		}, nil
	}
	if !isObject(s) {
		return nil, nil
	}

	fields, err := c.convertFields(s, path)
	if err != nil {
		return nil, err
	}
	return &avro.Node{
		Kind:      avro.KindRecord,
		Name:      name,
		Namespace: c.namespace,
		Doc:       s.Description,
		Fields:    fields,
	}, nil
}

func (c *converter) convertFields(s *jsonschema.Schema, path string) ([]avro.Field, error) {
	fields := make([]avro.Field, 0, len(s.Properties))
	for _, propName := range c.orderedKeys(s, path) {
		prop := s.Properties[propName]

		var propPath string
		if path == "" {
			propPath = "properties." + propName
		} else {
			propPath = path + ".properties." + propName
		}

		expr, err := c.convertType(prop, propName, propPath)
		if err != nil {
			return nil, fmt.Errorf("property %q: %w", propName, err)
		}

		f := avro.Field{
			Name: propName,
			Doc:  prop.Description,
			Type: expr,
		}
		if !required(s, propName) {
			f.Type = avro.Union{avro.Ref("null"), expr}
			f.Default = json.RawMessage("null")
		}
		fields = append(fields, f)
	}
	return fields, nil
}

// convertType maps one property schema to an Avro type expression.
func (c *converter) convertType(s *jsonschema.Schema, fieldName, path string) (avro.TypeExpr, error) {
	// $ref to a $def becomes a named reference; refs to primitive defs
	// resolve to the primitive directly.
	if s.Ref != "" {
		defName, ok := strings.CutPrefix(s.Ref, "#/$defs/")
		if !ok {
			return nil, fmt.Errorf("unsupported $ref %q", s.Ref)
		}
		def, exists := c.defs[defName]
		if !exists {
			return nil, fmt.Errorf("unresolved $ref %q", s.Ref)
		}
		if isObject(def) || len(def.Enum) > 0 {
			return avro.Ref(qualify(c.namespace, toPascalCase(defName))), nil
		}
		return primitiveType(def.Type, def.Format), nil
	}

	if len(s.Enum) > 0 {
		if symbols, ok := enumSymbols(s.Enum); ok {
			return &avro.Node{
				Kind:      avro.KindEnum,
				Name:      toPascalCase(fieldName),
				Namespace: c.namespace,
				Symbols:   symbols,
			}, nil
		}
		return avro.Ref("string"), nil
	}

	if s.Type == "array" {
		if s.Items == nil {
			return &avro.Array{Items: avro.Ref("string")}, nil
		}
		items, err := c.convertType(s.Items, fieldName, path)
		if err != nil {
			return nil, err
		}
		return &avro.Array{Items: items}, nil
	}

	// Free-form objects map to string maps; shaped objects become inline
	// records named after the field.
	if isObject(s) {
		if len(s.Properties) == 0 {
			return &avro.Map{Values: avro.Ref("string")}, nil
		}
		node, err := c.convertNamed(toPascalCase(fieldName), s, path)
		if err != nil {
			return nil, err
		}
		return node, nil
	}

	return primitiveType(s.Type, s.Format), nil
}

func (c *converter) orderedKeys(s *jsonschema.Schema, path string) []string {
	orderPath := "properties"
	if path != "" {
		orderPath = path + ".properties"
	}
	if order, ok := c.keyOrder[orderPath]; ok {
		var result []string
		for _, key := range order {
			if _, exists := s.Properties[key]; exists {
				result = append(result, key)
			}
		}
		return result
	}

	// No recorded order: fall back to sorted names for determinism.
	keys := make([]string, 0, len(s.Properties))
	for name := range s.Properties {
		keys = append(keys, name)
	}
	sort.Strings(keys)
	return keys
}

// primitiveType maps a JSON Schema type and format to an Avro expression.
// Format is checked first, allowing "date-time" to override "string".
func primitiveType(schemaType, format string) avro.TypeExpr {
	if schemaType == "string" && format != "" {
		switch format {
		case "date":
			return &avro.Logical{Type: "int", LogicalType: "date"}
		case "date-time":
			return &avro.Logical{Type: "long", LogicalType: "timestamp-millis"}
		case "uuid":
			return &avro.Logical{Type: "string", LogicalType: "uuid"}
		}
	}

	switch schemaType {
	case "string":
		return avro.Ref("string")
	case "integer":
		return avro.Ref("long")
	case "number":
		return avro.Ref("double")
	case "boolean":
		return avro.Ref("boolean")
	default:
		return avro.Ref("string")
	}
}

func isObject(s *jsonschema.Schema) bool {
	return s.Type == "object" || (s.Type == "" && len(s.Properties) > 0)
}

func required(s *jsonschema.Schema, propName string) bool {
	for _, req := range s.Required {
		if req == propName {
			return true
		}
	}
	return false
}

func enumSymbols(values []any) ([]string, bool) {
	symbols := make([]string, 0, len(values))
	for _, v := range values {
		sv, ok := v.(string)
		if !ok {
			return nil, false
		}
		symbols = append(symbols, sv)
	}
	return symbols, true
}

func qualify(namespace, name string) string {
	if namespace != "" {
		return namespace + "." + name
	}
	return name
}

// toPascalCase converts a snake_case or kebab-case string to PascalCase.
func toPascalCase(s string) string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == '-'
	})

	var sb strings.Builder
	for _, part := range parts {
		if part != "" {
			sb.WriteString(strings.ToUpper(part[:1]) + part[1:])
		}
	}
	return sb.String()
}
