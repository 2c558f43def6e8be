// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Schemaforge Authors

// Package avro models Avro schema documents as a graph of named types and
// orders them so every named-type reference is defined before first use,
// inlining definitions where cycles make a pure reordering impossible.
package avro

import "encoding/json"

// Node kinds.
const (
	KindRecord = "record"
	KindEnum   = "enum"
	KindFixed  = "fixed"
)

// TypeExpr is one Avro type expression. It is a closed union: Ref, Union,
// *Array, *Map, *Logical, and *Node (an inline named-type definition).
type TypeExpr interface {
	isTypeExpr()
}

// Ref is a primitive type name ("string", "long", ...) or a reference to a
// named type by its qualified or bare name.
type Ref string

// Union is an ordered list of alternative type expressions.
type Union []TypeExpr

// Array is an Avro array type.
type Array struct {
	Items TypeExpr
}

// Map is an Avro map type. Keys are always strings.
type Map struct {
	Values TypeExpr
}

// Logical is a primitive type annotated with a logical type,
// e.g. {"type": "long", "logicalType": "timestamp-millis"}.
type Logical struct {
	Type        string
	LogicalType string
	Precision   int
	Scale       int
}

func (Ref) isTypeExpr()      {}
func (Union) isTypeExpr()    {}
func (*Array) isTypeExpr()   {}
func (*Map) isTypeExpr()     {}
func (*Logical) isTypeExpr() {}
func (*Node) isTypeExpr()    {}

// Field is one member of a record.
type Field struct {
	Name    string
	Doc     string
	Type    TypeExpr
	Default json.RawMessage
}

// Node is one named schema type: a record, enum, or fixed.
//
// Dependencies lists the qualified names this node requires to be defined
// before it can be emitted. It is maintained by the sorter and the swap
// engine and is never serialized; a sorted sequence carries none.
type Node struct {
	Kind      string
	Name      string
	Namespace string
	Doc       string
	Fields    []Field  // records only
	Symbols   []string // enums only
	Size      int      // fixed only

	Dependencies []string
}

// QualifiedName returns namespace.name, or the bare name when the
// namespace is empty. This exact form is the key used to match a
// dependency entry to its defining node.
func (n *Node) QualifiedName() string {
	if n.Namespace != "" {
		return n.Namespace + "." + n.Name
	}
	return n.Name
}

// matchesRef reports whether ref names this node, by qualified or bare name.
func (n *Node) matchesRef(ref string) bool {
	return ref == n.QualifiedName() || ref == n.Name
}

// Entry is one element of a schema document: a named type node, or an opaque
// passthrough value (e.g. a bare primitive name inside a top-level union)
// that the sorter copies through untouched.
type Entry struct {
	Node *Node
	Raw  json.RawMessage // passthrough payload, set only when Node is nil
}
