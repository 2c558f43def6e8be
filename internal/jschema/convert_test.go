// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Schemaforge Authors

package jschema

import (
	"testing"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schemaforge/cli/internal/avro"
)

func TestConvert_SimpleObject(t *testing.T) {
	schema := &jsonschema.Schema{
		Type:     "object",
		Required: []string{"name", "age"},
		Properties: map[string]*jsonschema.Schema{
			"name": {Type: "string"},
			"age":  {Type: "integer"},
		},
	}

	entries, err := Convert("users", "schemas", schema, nil)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	root := entries[0].Node
	assert.Equal(t, "UsersSchema", root.Name)
	assert.Equal(t, "schemas", root.Namespace)
	require.Len(t, root.Fields, 2)
	// No recorded key order, so fields fall back to sorted names.
	assert.Equal(t, "age", root.Fields[0].Name)
	assert.Equal(t, avro.Ref("long"), root.Fields[0].Type)
	assert.Equal(t, "name", root.Fields[1].Name)
	assert.Equal(t, avro.Ref("string"), root.Fields[1].Type)
}

func TestConvert_KeyOrderRespected(t *testing.T) {
	schema := &jsonschema.Schema{
		Type:     "object",
		Required: []string{"b", "a"},
		Properties: map[string]*jsonschema.Schema{
			"a": {Type: "string"},
			"b": {Type: "string"},
		},
	}
	keyOrder := map[string][]string{"properties": {"b", "a"}}

	entries, err := Convert("t", "", schema, keyOrder)
	require.NoError(t, err)

	root := entries[0].Node
	assert.Equal(t, "b", root.Fields[0].Name)
	assert.Equal(t, "a", root.Fields[1].Name)
}

func TestConvert_OptionalFieldsAreNullable(t *testing.T) {
	schema := &jsonschema.Schema{
		Type:     "object",
		Required: []string{"id"},
		Properties: map[string]*jsonschema.Schema{
			"id":   {Type: "integer"},
			"note": {Type: "string"},
		},
	}

	entries, err := Convert("t", "", schema, nil)
	require.NoError(t, err)

	root := entries[0].Node
	assert.Equal(t, avro.Ref("long"), root.Fields[0].Type)
	assert.Equal(t, avro.Union{avro.Ref("null"), avro.Ref("string")}, root.Fields[1].Type)
	assert.Equal(t, "null", string(root.Fields[1].Default))
}

func TestConvert_DateFormats(t *testing.T) {
	schema := &jsonschema.Schema{
		Type:     "object",
		Required: []string{"birth_date", "created_at", "uuid"},
		Properties: map[string]*jsonschema.Schema{
			"birth_date": {Type: "string", Format: "date"},
			"created_at": {Type: "string", Format: "date-time"},
			"uuid":       {Type: "string", Format: "uuid"},
		},
	}

	entries, err := Convert("t", "", schema, nil)
	require.NoError(t, err)

	root := entries[0].Node
	assert.Equal(t, &avro.Logical{Type: "int", LogicalType: "date"}, root.Fields[0].Type)
	assert.Equal(t, &avro.Logical{Type: "long", LogicalType: "timestamp-millis"}, root.Fields[1].Type)
	assert.Equal(t, &avro.Logical{Type: "string", LogicalType: "uuid"}, root.Fields[2].Type)
}

func TestConvert_DefsBecomeNodesWithDependencies(t *testing.T) {
	schema := &jsonschema.Schema{
		Type:     "object",
		Required: []string{"customer"},
		Properties: map[string]*jsonschema.Schema{
			"customer": {Ref: "#/$defs/Customer"},
		},
		Defs: map[string]*jsonschema.Schema{
			"Customer": {
				Type:     "object",
				Required: []string{"address"},
				Properties: map[string]*jsonschema.Schema{
					"address": {Ref: "#/$defs/Address"},
				},
			},
			"Address": {
				Type:     "object",
				Required: []string{"street"},
				Properties: map[string]*jsonschema.Schema{
					"street": {Type: "string"},
				},
			},
		},
	}

	entries, err := Convert("order", "shop", schema, nil)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// Defs come out in name order, root last.
	assert.Equal(t, "Address", entries[0].Node.Name)
	assert.Equal(t, "Customer", entries[1].Node.Name)
	assert.Equal(t, "OrderSchema", entries[2].Node.Name)

	assert.Empty(t, entries[0].Node.Dependencies)
	assert.Equal(t, []string{"shop.Address"}, entries[1].Node.Dependencies)
	assert.Equal(t, []string{"shop.Customer"}, entries[2].Node.Dependencies)

	assert.Equal(t, avro.Ref("shop.Customer"), entries[2].Node.Fields[0].Type)
}

func TestConvert_StringEnumDef(t *testing.T) {
	schema := &jsonschema.Schema{
		Type:     "object",
		Required: []string{"status"},
		Properties: map[string]*jsonschema.Schema{
			"status": {Ref: "#/$defs/Status"},
		},
		Defs: map[string]*jsonschema.Schema{
			"Status": {Enum: []any{"open", "closed"}},
		},
	}

	entries, err := Convert("ticket", "", schema, nil)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, avro.KindEnum, entries[0].Node.Kind)
	assert.Equal(t, []string{"open", "closed"}, entries[0].Node.Symbols)
	assert.Equal(t, avro.Ref("Status"), entries[1].Node.Fields[0].Type)
}

func TestConvert_InlineObjectBecomesInlineRecord(t *testing.T) {
	schema := &jsonschema.Schema{
		Type:     "object",
		Required: []string{"address"},
		Properties: map[string]*jsonschema.Schema{
			"address": {
				Type:     "object",
				Required: []string{"street"},
				Properties: map[string]*jsonschema.Schema{
					"street": {Type: "string"},
				},
			},
		},
	}

	entries, err := Convert("user", "", schema, nil)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	inline, ok := entries[0].Node.Fields[0].Type.(*avro.Node)
	require.True(t, ok)
	assert.Equal(t, "Address", inline.Name)
	assert.Equal(t, avro.Ref("string"), inline.Fields[0].Type)
}

func TestConvert_ArrayOfRefs(t *testing.T) {
	schema := &jsonschema.Schema{
		Type:     "object",
		Required: []string{"items"},
		Properties: map[string]*jsonschema.Schema{
			"items": {
				Type:  "array",
				Items: &jsonschema.Schema{Ref: "#/$defs/LineItem"},
			},
		},
		Defs: map[string]*jsonschema.Schema{
			"LineItem": {
				Type:     "object",
				Required: []string{"sku"},
				Properties: map[string]*jsonschema.Schema{
					"sku": {Type: "string"},
				},
			},
		},
	}

	entries, err := Convert("cart", "", schema, nil)
	require.NoError(t, err)

	root := entries[1].Node
	assert.Equal(t, &avro.Array{Items: avro.Ref("LineItem")}, root.Fields[0].Type)
	assert.Equal(t, []string{"LineItem"}, root.Dependencies)
}

func TestConvert_PrimitiveDefResolvedInline(t *testing.T) {
	schema := &jsonschema.Schema{
		Type:     "object",
		Required: []string{"when"},
		Properties: map[string]*jsonschema.Schema{
			"when": {Ref: "#/$defs/Timestamp"},
		},
		Defs: map[string]*jsonschema.Schema{
			"Timestamp": {Type: "string", Format: "date-time"},
		},
	}

	entries, err := Convert("event", "", schema, nil)
	require.NoError(t, err)
	require.Len(t, entries, 1, "primitive defs produce no node of their own")

	assert.Equal(t, &avro.Logical{Type: "long", LogicalType: "timestamp-millis"},
		entries[0].Node.Fields[0].Type)
}

func TestConvert_UnresolvedRef(t *testing.T) {
	schema := &jsonschema.Schema{
		Type:     "object",
		Required: []string{"x"},
		Properties: map[string]*jsonschema.Schema{
			"x": {Ref: "#/$defs/Missing"},
		},
	}

	_, err := Convert("t", "", schema, nil)
	assert.ErrorContains(t, err, "unresolved $ref")
}
