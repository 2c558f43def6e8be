// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Schemaforge Authors

package xsd

import (
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schemaforge/cli/internal/avro"
)

const orderXSD = `<?xml version="1.0"?>
<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema">
  <xs:complexType name="Order">
    <xs:sequence>
      <xs:element name="id" type="xs:long"/>
      <xs:element name="customer" type="Customer"/>
      <xs:element name="note" type="xs:string" minOccurs="0"/>
      <xs:element name="lines" type="LineItem" maxOccurs="unbounded"/>
    </xs:sequence>
  </xs:complexType>
  <xs:complexType name="Customer">
    <xs:sequence>
      <xs:element name="name" type="xs:string"/>
    </xs:sequence>
  </xs:complexType>
  <xs:complexType name="LineItem">
    <xs:sequence>
      <xs:element name="sku" type="xs:string"/>
      <xs:element name="quantity" type="xs:int"/>
    </xs:sequence>
  </xs:complexType>
</xs:schema>`

func TestParse_ComplexTypes(t *testing.T) {
	entries, err := Parse([]byte(orderXSD), "shop")
	require.NoError(t, err)
	require.Len(t, entries, 3)

	order := entries[0].Node
	assert.Equal(t, "shop.Order", order.QualifiedName())
	assert.Equal(t, []string{"shop.Customer", "shop.LineItem"}, order.Dependencies)
	require.Len(t, order.Fields, 4)

	assert.Equal(t, avro.Ref("long"), order.Fields[0].Type)
	assert.Equal(t, avro.Ref("shop.Customer"), order.Fields[1].Type)
	assert.Equal(t, avro.Union{avro.Ref("null"), avro.Ref("string")}, order.Fields[2].Type)
	assert.Equal(t, &avro.Array{Items: avro.Ref("shop.LineItem")}, order.Fields[3].Type)
}

func TestParse_SortsCleanly(t *testing.T) {
	entries, err := Parse([]byte(orderXSD), "shop")
	require.NoError(t, err)

	out := avro.Sort(entries, logr.Discard())
	require.Len(t, out, 3)
	assert.Equal(t, "Customer", out[0].Node.Name)
	assert.Equal(t, "LineItem", out[1].Node.Name)
	assert.Equal(t, "Order", out[2].Node.Name)
}

func TestParse_EnumeratedSimpleType(t *testing.T) {
	data := []byte(`<?xml version="1.0"?>
<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema">
  <xs:simpleType name="Color">
    <xs:restriction base="xs:string">
      <xs:enumeration value="RED"/>
      <xs:enumeration value="GREEN"/>
    </xs:restriction>
  </xs:simpleType>
  <xs:complexType name="Widget">
    <xs:sequence>
      <xs:element name="color" type="Color"/>
    </xs:sequence>
  </xs:complexType>
</xs:schema>`)

	entries, err := Parse(data, "")
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, avro.KindEnum, entries[0].Node.Kind)
	assert.Equal(t, []string{"RED", "GREEN"}, entries[0].Node.Symbols)
	assert.Equal(t, []string{"Color"}, entries[1].Node.Dependencies)
}

func TestParse_MutuallyReferentialTypes(t *testing.T) {
	data := []byte(`<?xml version="1.0"?>
<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema">
  <xs:complexType name="Person">
    <xs:sequence>
      <xs:element name="employer" type="Company"/>
    </xs:sequence>
  </xs:complexType>
  <xs:complexType name="Company">
    <xs:sequence>
      <xs:element name="contact" type="Person"/>
    </xs:sequence>
  </xs:complexType>
</xs:schema>`)

	entries, err := Parse(data, "")
	require.NoError(t, err)

	out := avro.Sort(entries, logr.Discard())

	// The cycle collapses to one node with the other inlined.
	require.Len(t, out, 1)
	assert.Equal(t, "Person", out[0].Node.Name)
	inlined, ok := out[0].Node.Fields[0].Type.(*avro.Node)
	require.True(t, ok)
	assert.Equal(t, "Company", inlined.Name)
	assert.Equal(t, avro.Ref("Person"), inlined.Fields[0].Type)
}

func TestParse_AnonymousComplexTypeInGlobalElement(t *testing.T) {
	data := []byte(`<?xml version="1.0"?>
<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema">
  <xs:element name="invoice">
    <xs:complexType>
      <xs:sequence>
        <xs:element name="total" type="xs:decimal"/>
      </xs:sequence>
    </xs:complexType>
  </xs:element>
</xs:schema>`)

	entries, err := Parse(data, "")
	require.NoError(t, err)
	require.Len(t, entries, 1)

	assert.Equal(t, "invoice", entries[0].Node.Name)
	assert.Equal(t, avro.Ref("double"), entries[0].Node.Fields[0].Type)
}

func TestParse_NoComplexTypes(t *testing.T) {
	_, err := Parse([]byte(`<?xml version="1.0"?>
<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema"/>`), "")
	assert.ErrorContains(t, err, "no complex types")
}

func TestParse_InvalidXML(t *testing.T) {
	_, err := Parse([]byte(`<not closed`), "")
	assert.ErrorContains(t, err, "failed to parse XSD")
}
