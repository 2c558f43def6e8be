// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Schemaforge Authors

// Package xsd converts XML Schema documents into Avro type-node graphs.
// It covers the structural subset relevant to data modeling: named complex
// types with element sequences, enumerated simple types, optionality via
// minOccurs, and repetition via maxOccurs.
package xsd

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/schemaforge/cli/internal/avro"
)

type xsdSchema struct {
	XMLName      xml.Name         `xml:"schema"`
	Elements     []xsdElement     `xml:"element"`
	ComplexTypes []xsdComplexType `xml:"complexType"`
	SimpleTypes  []xsdSimpleType  `xml:"simpleType"`
}

type xsdComplexType struct {
	Name     string       `xml:"name,attr"`
	Sequence *xsdSequence `xml:"sequence"`
	All      *xsdSequence `xml:"all"`
}

type xsdSequence struct {
	Elements []xsdElement `xml:"element"`
}

type xsdElement struct {
	Name        string          `xml:"name,attr"`
	Type        string          `xml:"type,attr"`
	MinOccurs   string          `xml:"minOccurs,attr"`
	MaxOccurs   string          `xml:"maxOccurs,attr"`
	ComplexType *xsdComplexType `xml:"complexType"`
}

type xsdSimpleType struct {
	Name        string          `xml:"name,attr"`
	Restriction *xsdRestriction `xml:"restriction"`
}

type xsdRestriction struct {
	Base         string `xml:"base,attr"`
	Enumerations []struct {
		Value string `xml:"value,attr"`
	} `xml:"enumeration"`
}

// builtins maps XSD built-in simple types to Avro expressions.
func builtinType(name string) (avro.TypeExpr, bool) {
	switch stripPrefix(name) {
	case "string", "normalizedString", "token", "anyURI", "QName":
		return avro.Ref("string"), true
	case "int", "short", "byte", "unsignedShort", "unsignedByte":
		return avro.Ref("int"), true
	case "long", "integer", "unsignedInt", "unsignedLong",
		"positiveInteger", "nonNegativeInteger", "negativeInteger", "nonPositiveInteger":
		return avro.Ref("long"), true
	case "float":
		return avro.Ref("float"), true
	case "double", "decimal":
		return avro.Ref("double"), true
	case "boolean":
		return avro.Ref("boolean"), true
	case "hexBinary", "base64Binary":
		return avro.Ref("bytes"), true
	case "date":
		return &avro.Logical{Type: "int", LogicalType: "date"}, true
	case "dateTime":
		return &avro.Logical{Type: "long", LogicalType: "timestamp-millis"}, true
	default:
		return nil, false
	}
}

// Parse reads an XSD document and returns one node per global complexType
// and enumerated simpleType, plus one per global element with an anonymous
// complex type. References between complex types carry dependency
// annotations, so the result is ready for avro.Sort.
func Parse(data []byte, namespace string) ([]avro.Entry, error) {
	var doc xsdSchema
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse XSD: %w", err)
	}

	var entries []avro.Entry

	for _, st := range doc.SimpleTypes {
		node, err := convertSimpleType(st, namespace)
		if err != nil {
			return nil, err
		}
		if node != nil {
			entries = append(entries, avro.Entry{Node: node})
		}
	}

	for _, ct := range doc.ComplexTypes {
		if ct.Name == "" {
			return nil, fmt.Errorf("global complexType missing name")
		}
		node, err := convertComplexType(ct.Name, ct, namespace)
		if err != nil {
			return nil, err
		}
		entries = append(entries, avro.Entry{Node: node})
	}

	for _, el := range doc.Elements {
		if el.ComplexType == nil {
			continue
		}
		node, err := convertComplexType(el.Name, *el.ComplexType, namespace)
		if err != nil {
			return nil, err
		}
		entries = append(entries, avro.Entry{Node: node})
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("no complex types found in XSD")
	}

	avro.ComputeDependencies(entries)
	return entries, nil
}

func convertComplexType(name string, ct xsdComplexType, namespace string) (*avro.Node, error) {
	seq := ct.Sequence
	if seq == nil {
		seq = ct.All
	}

	node := &avro.Node{
		Kind:      avro.KindRecord,
		Name:      name,
		Namespace: namespace,
	}
	if seq == nil {
		return node, nil
	}

	for _, el := range seq.Elements {
		if el.Name == "" {
			return nil, fmt.Errorf("element in %s missing name", name)
		}
		expr, err := elementType(el, namespace)
		if err != nil {
			return nil, fmt.Errorf("element %s.%s: %w", name, el.Name, err)
		}

		f := avro.Field{Name: el.Name, Type: expr}
		if el.MaxOccurs == "unbounded" {
			f.Type = &avro.Array{Items: expr}
		} else if el.MinOccurs == "0" {
			f.Type = avro.Union{avro.Ref("null"), expr}
			f.Default = json.RawMessage("null")
		}
		node.Fields = append(node.Fields, f)
	}
	return node, nil
}

func elementType(el xsdElement, namespace string) (avro.TypeExpr, error) {
	if el.ComplexType != nil {
		return convertComplexType(toPascal(el.Name), *el.ComplexType, namespace)
	}
	if el.Type == "" {
		return avro.Ref("string"), nil
	}
	if expr, ok := builtinType(el.Type); ok {
		return expr, nil
	}
	// A non-builtin type is a reference to another named type in this
	// document; qualify it so dependency scanning can match it.
	ref := stripPrefix(el.Type)
	if namespace != "" {
		ref = namespace + "." + ref
	}
	return avro.Ref(ref), nil
}

func convertSimpleType(st xsdSimpleType, namespace string) (*avro.Node, error) {
	if st.Name == "" {
		return nil, fmt.Errorf("global simpleType missing name")
	}
	if st.Restriction == nil || len(st.Restriction.Enumerations) == 0 {
		// Non-enumerated simple types alias builtins; references to them
		// stay named and resolve against nothing, which the dependency
		// scanner ignores.
		return nil, nil
	}

	symbols := make([]string, 0, len(st.Restriction.Enumerations))
	for _, e := range st.Restriction.Enumerations {
		symbols = append(symbols, e.Value)
	}
	return &avro.Node{
		Kind:      avro.KindEnum,
		Name:      st.Name,
		Namespace: namespace,
		Symbols:   symbols,
	}, nil
}

func stripPrefix(name string) string {
	if i := strings.IndexByte(name, ':'); i >= 0 {
		return name[i+1:]
	}
	return name
}

func toPascal(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
