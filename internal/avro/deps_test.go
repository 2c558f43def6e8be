// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Schemaforge Authors

package avro

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeDependencies_FirstSeenOrder(t *testing.T) {
	x := record("X", nil,
		Field{Name: "b", Type: Ref("B")},
		Field{Name: "a", Type: Ref("A")},
		Field{Name: "b2", Type: Ref("B")},
	)
	a := record("A", nil)
	b := record("B", nil)
	entries := []Entry{{Node: x}, {Node: a}, {Node: b}}
	x.Dependencies, a.Dependencies, b.Dependencies = nil, nil, nil

	ComputeDependencies(entries)

	assert.Equal(t, []string{"B", "A"}, x.Dependencies, "first-seen order, no duplicates")
}

func TestComputeDependencies_QualifiedNames(t *testing.T) {
	x := &Node{Kind: KindRecord, Name: "X", Namespace: "ex",
		Fields: []Field{{Name: "y", Type: Ref("Y")}}}
	y := &Node{Kind: KindRecord, Name: "Y", Namespace: "ex"}

	ComputeDependencies([]Entry{{Node: x}, {Node: y}})

	// A bare reference resolves to the defining node's qualified name.
	assert.Equal(t, []string{"ex.Y"}, x.Dependencies)
}

func TestComputeDependencies_PrimitivesAndUnknownsIgnored(t *testing.T) {
	x := record("X", nil,
		Field{Name: "s", Type: Ref("string")},
		Field{Name: "u", Type: Ref("SomewhereElse")},
	)
	x.Dependencies = nil

	ComputeDependencies([]Entry{{Node: x}})

	assert.Empty(t, x.Dependencies)
}

func TestComputeDependencies_SelfReferenceExcluded(t *testing.T) {
	n := record("Tree", nil, Field{Name: "left", Type: Union{Ref("null"), Ref("Tree")}})
	n.Dependencies = nil

	ComputeDependencies([]Entry{{Node: n}})

	assert.Empty(t, n.Dependencies)
}

func TestComputeDependencies_InlineDefinitionsInScope(t *testing.T) {
	inner := record("Inner", nil, Field{Name: "self", Type: Ref("Inner")})
	inner.Dependencies = nil
	x := record("X", nil,
		Field{Name: "inner", Type: inner},
		Field{Name: "other", Type: Ref("Other")},
	)
	x.Dependencies = nil
	other := record("Other", nil)

	ComputeDependencies([]Entry{{Node: x}, {Node: other}})

	assert.Equal(t, []string{"Other"}, x.Dependencies)
}

func TestComputeDependencies_NestedCollections(t *testing.T) {
	x := record("X", nil,
		Field{Name: "deep", Type: &Array{Items: &Map{Values: Union{Ref("null"), Ref("Y")}}}},
	)
	x.Dependencies = nil
	y := record("Y", nil)

	ComputeDependencies([]Entry{{Node: x}, {Node: y}})

	assert.Equal(t, []string{"Y"}, x.Dependencies)
}

func TestComputeDependencies_ExplicitListUntouched(t *testing.T) {
	x := record("X", []string{"Provided"}, Field{Name: "y", Type: Ref("Y")})
	y := record("Y", nil)

	ComputeDependencies([]Entry{{Node: x}, {Node: y}})

	assert.Equal(t, []string{"Provided"}, x.Dependencies)
}
