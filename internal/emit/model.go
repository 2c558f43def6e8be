// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Schemaforge Authors

package emit

// Data is the complete input passed to an emitter template.
type Data struct {
	Defs  []TypeDef      // named types in definition order
	Extra map[string]any // emitter-specific template data
}

// TypeDef represents one named type definition.
type TypeDef struct {
	Name    string     // formatted name, e.g. "LineItem"
	Doc     string     // schema doc, if any
	Enum    bool       // true for enum types
	Symbols []string   // enum symbols
	Fields  []FieldDef // ordered fields, records only
}

// FieldDef represents a single field within a record definition.
type FieldDef struct {
	Name     string // field name (may be mutated by EnrichField)
	Type     string // fully resolved target type string
	Nullable bool   // true when the Avro type was a ["null", T] union
	Tag      string // language-specific annotation, e.g. `json:"name,omitempty"`
	Doc      string // field doc, if any
}

// TypeResolver converts Avro types to target-language type strings and
// naming conventions. Each emitter implements this interface to control how
// the ordered node sequence maps to its output.
type TypeResolver interface {
	// PrimitiveType maps an Avro primitive and logical type to a target
	// type string. The logical type is checked first, allowing
	// "timestamp-millis" to override "long".
	PrimitiveType(name, logicalType string) string

	// ArrayType wraps an element type string in an array type.
	ArrayType(elemType string) string

	// MapType wraps a value type string in a string-keyed map type.
	MapType(valueType string) string

	// UnionType renders a multi-member union. Null members are already
	// stripped; two-member null unions never reach here.
	UnionType(memberTypes []string) string

	// RefType returns the type string for a reference to a named type.
	RefType(name string) string

	// FormatName formats a named type's name for the target language.
	FormatName(name string) string

	// EnrichField applies language-specific post-processing to a resolved
	// field: renaming, nullability wrapping, annotations.
	EnrichField(f *FieldDef)
}
